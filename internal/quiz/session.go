// Package quiz implements the session state machine: question
// presentation, answer grading, feedback with a difficulty
// recommendation, and summary emission on completion.
package quiz

import (
	"time"

	"github.com/abhisek/adaptutor/internal/match"
	"github.com/abhisek/adaptutor/internal/pool"
)

// Phase is the session's state machine position.
type Phase int

const (
	// PhasePresenting: the current question is shown, no answer yet.
	PhasePresenting Phase = iota

	// PhaseGrading: a submission is being processed. Transient; the
	// engine grades synchronously, so callers never observe it.
	PhaseGrading

	// PhaseFeedback: grading result and recommendation are displayed,
	// awaiting acknowledgement.
	PhaseFeedback

	// PhaseCompleted: every question has been answered. Terminal.
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhasePresenting:
		return "presenting"
	case PhaseGrading:
		return "grading"
	case PhaseFeedback:
		return "feedback"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Tally is a per-topic correct/total pair accumulated over a session.
type Tally struct {
	Correct int
	Total   int
}

// Feedback is the pending result shown between submission and
// acknowledgement.
type Feedback struct {
	Result match.AttemptResult

	// Message is the user-facing grading line.
	Message string

	// Solution is the worked solution, empty for correct answers.
	Solution string

	// RecommendedLevel is the advisory next level, empty when the
	// predictor was unavailable.
	RecommendedLevel string

	// Warning carries the degraded-predictor notice, if any.
	Warning string
}

// Session is the mutable, single-owner state of one quiz run. It is
// created by Engine.Start and mutated only through Engine.SubmitAnswer
// and Engine.Advance; the UI layer owns the handle between events.
type Session struct {
	ID        string
	Topic     string
	Level     string
	Questions []pool.Question

	// Index is the current question position; monotonically
	// non-decreasing, 0 <= Index <= len(Questions).
	Index int

	// Score counts correct answers; 0 <= Score <= Index.
	Score int

	Phase   Phase
	Pending *Feedback

	// TopicTally holds per-topic results, seeded at zero for every
	// topic known to the pool.
	TopicTally map[string]*Tally

	StartedAt time.Time

	// PersistErr records a failed summary append. The session itself
	// completes normally; the caller reports the loss.
	PersistErr error

	emitted bool
}

// Current returns the question at Index, or nil once the session is
// completed.
func (s *Session) Current() *pool.Question {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// Length returns the fixed session length.
func (s *Session) Length() int {
	return len(s.Questions)
}
