package pool

import "fmt"

// InsufficientQuestionsError is returned by Sample when the bank holds
// fewer matching questions than requested. Recoverable: the caller can
// lower the count or pick a different topic/level.
type InsufficientQuestionsError struct {
	Topic     string
	Level     string
	Requested int
	Available int
}

func (e *InsufficientQuestionsError) Error() string {
	return fmt.Sprintf("not enough questions for %s/%s: requested %d, have %d",
		e.Topic, e.Level, e.Requested, e.Available)
}
