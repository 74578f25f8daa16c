package quiz

import "fmt"

// InvalidStateError reports an operation invoked in a phase that
// forbids it. This signals a UI programming error and is surfaced, not
// silently ignored.
type InvalidStateError struct {
	Op    string
	Phase Phase
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s is not valid in phase %s", e.Op, e.Phase)
}
