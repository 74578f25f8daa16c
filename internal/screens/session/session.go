// Package session is the interactive quiz screen driving the engine
// through present, grade, feedback, and completion.
package session

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/adaptutor/internal/match"
	"github.com/abhisek/adaptutor/internal/quiz"
	"github.com/abhisek/adaptutor/internal/router"
	"github.com/abhisek/adaptutor/internal/screens/summary"
	"github.com/abhisek/adaptutor/internal/store"
	"github.com/abhisek/adaptutor/internal/ui/components"
	"github.com/abhisek/adaptutor/internal/ui/layout"
)

// Deps are the session screen's collaborators. Events may be nil, in
// which case attempt logging is skipped.
type Deps struct {
	Engine *quiz.Engine
	Events store.EventRecorder
	Log    *zap.Logger
}

// SessionScreen runs one quiz session.
type SessionScreen struct {
	deps        Deps
	sess        *quiz.Session
	input       components.TextInput
	confirmQuit bool
}

var _ router.Screen = (*SessionScreen)(nil)
var _ router.KeyHintProvider = (*SessionScreen)(nil)

// New creates a screen around an already-started session.
func New(deps Deps, sess *quiz.Session) *SessionScreen {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	return &SessionScreen{
		deps:  deps,
		sess:  sess,
		input: components.NewTextInput("Type your answer and press Enter", 80),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	s.recordSessionEvent("start")
	return s.input.Init()
}

func (s *SessionScreen) Title() string {
	return "Quiz"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.sess.Phase == quiz.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.forwardToInput(msg)
	}

	if s.confirmQuit {
		switch kmsg.String() {
		case "y", "Y":
			s.deps.Log.Info("session abandoned", zap.String("session_id", s.sess.ID))
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.sess.Phase {
	case quiz.PhasePresenting:
		switch kmsg.String() {
		case "esc":
			s.confirmQuit = true
			return s, nil
		case "enter":
			return s.submit()
		}
		return s.forwardToInput(msg)

	case quiz.PhaseFeedback:
		// Any key acknowledges the feedback.
		return s.advance()
	}

	return s, nil
}

func (s *SessionScreen) forwardToInput(msg tea.Msg) (router.Screen, tea.Cmd) {
	if s.sess.Phase != quiz.PhasePresenting || s.confirmQuit {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SessionScreen) submit() (router.Screen, tea.Cmd) {
	answer := s.input.Value()
	if answer == "" {
		return s, nil
	}

	q := s.sess.Current()
	fb, err := s.deps.Engine.SubmitAnswer(s.sess, answer)
	if err != nil {
		// Submitting outside PhasePresenting is a programming error.
		s.deps.Log.Error("submit rejected", zap.Error(err))
		return s, nil
	}

	if s.deps.Events != nil {
		ev := store.AttemptEvent{
			SessionID:  s.sess.ID,
			Topic:      q.Topic,
			Level:      q.Level,
			Problem:    q.Problem,
			Expected:   q.Answer,
			Submitted:  answer,
			Similarity: fb.Result.Similarity,
			Tier:       fb.Result.Tier.String(),
			Correct:    fb.Result.Tier == match.TierCorrect,
		}
		if err := s.deps.Events.AppendAttempt(context.Background(), ev); err != nil {
			s.deps.Log.Warn("attempt event not recorded", zap.Error(err))
		}
	}

	return s, nil
}

func (s *SessionScreen) advance() (router.Screen, tea.Cmd) {
	_, done, err := s.deps.Engine.Advance(s.sess)
	if err != nil {
		s.deps.Log.Error("advance rejected", zap.Error(err))
		return s, nil
	}

	if !done {
		s.input = components.NewTextInput("Type your answer and press Enter", 80)
		return s, s.input.Init()
	}

	s.recordSessionEvent("complete")

	sum, err := s.deps.Engine.Summary(s.sess)
	if err != nil {
		s.deps.Log.Error("summary unavailable", zap.Error(err))
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}

	deps, topic, level, count := s.deps, s.sess.Topic, s.sess.Level, s.sess.Length()
	restart := func() tea.Msg {
		sess, err := deps.Engine.Start(topic, level, count)
		if err != nil {
			deps.Log.Error("restart failed", zap.Error(err))
			return router.PopToRootMsg{}
		}
		return router.ReplaceMsg{Screen: New(deps, sess)}
	}

	return s, func() tea.Msg {
		return router.ReplaceMsg{Screen: summary.New(summary.Params{
			Topic:      topic,
			Level:      level,
			Length:     count,
			Summary:    sum,
			PersistErr: s.sess.PersistErr,
			Restart:    restart,
		})}
	}
}

func (s *SessionScreen) recordSessionEvent(action string) {
	if s.deps.Events == nil {
		return
	}
	ev := store.SessionEvent{
		SessionID: s.sess.ID,
		Action:    action,
		Topic:     s.sess.Topic,
		Level:     s.sess.Level,
		Questions: s.sess.Length(),
		Score:     s.sess.Score,
	}
	if err := s.deps.Events.AppendSession(context.Background(), ev); err != nil {
		s.deps.Log.Warn("session event not recorded",
			zap.String("action", action), zap.Error(err))
	}
}
