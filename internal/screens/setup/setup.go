// Package setup is the session configuration screen: topic, level,
// and quiz length.
package setup

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/adaptutor/internal/pool"
	"github.com/abhisek/adaptutor/internal/quiz"
	"github.com/abhisek/adaptutor/internal/router"
	"github.com/abhisek/adaptutor/internal/screens/session"
	"github.com/abhisek/adaptutor/internal/store"
	"github.com/abhisek/adaptutor/internal/ui/layout"
	"github.com/abhisek/adaptutor/internal/ui/theme"
)

// Quiz length bounds, matching the classic 3..20 picker with a
// default of 10.
const (
	minCount     = 3
	maxCount     = 20
	defaultCount = 10
)

const (
	fieldTopic = iota
	fieldLevel
	fieldCount
	fieldMax
)

// Deps are the collaborators handed through to the session screen.
type Deps struct {
	Engine *quiz.Engine
	Events store.EventRecorder
	Log    *zap.Logger
}

// SetupScreen lets the learner pick session parameters.
type SetupScreen struct {
	deps   Deps
	topics []string
	levels []string

	field  int
	topic  int
	level  int
	count  int
	errMsg string
}

var _ router.Screen = (*SetupScreen)(nil)
var _ router.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen over the engine's pool.
func New(deps Deps) *SetupScreen {
	return &SetupScreen{
		deps:   deps,
		topics: deps.Engine.Pool().Topics(),
		levels: deps.Engine.Pool().Levels(),
		count:  defaultCount,
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopMsg{} }

	case "up", "k":
		if s.field > 0 {
			s.field--
		}
	case "down", "j", "tab":
		if s.field < fieldMax-1 {
			s.field++
		}

	case "left", "h":
		s.adjust(-1)
	case "right", "l":
		s.adjust(1)

	case "enter":
		return s.start()
	}
	return s, nil
}

func (s *SetupScreen) adjust(delta int) {
	s.errMsg = ""
	switch s.field {
	case fieldTopic:
		s.topic = clamp(s.topic+delta, 0, len(s.topics)-1)
	case fieldLevel:
		s.level = clamp(s.level+delta, 0, len(s.levels)-1)
	case fieldCount:
		s.count = clamp(s.count+delta, minCount, maxCount)
	}
}

func (s *SetupScreen) start() (router.Screen, tea.Cmd) {
	if len(s.topics) == 0 || len(s.levels) == 0 {
		s.errMsg = "question bank is empty"
		return s, nil
	}

	sess, err := s.deps.Engine.Start(s.topics[s.topic], s.levels[s.level], s.count)
	if err != nil {
		var insufficient *pool.InsufficientQuestionsError
		if errors.As(err, &insufficient) {
			s.errMsg = fmt.Sprintf("Only %d questions available for %s / %s. Pick a lower count.",
				insufficient.Available, insufficient.Topic, insufficient.Level)
		} else {
			s.errMsg = err.Error()
		}
		return s, nil
	}

	return s, func() tea.Msg {
		return router.PushMsg{Screen: session.New(session.Deps{
			Engine: s.deps.Engine,
			Events: s.deps.Events,
			Log:    s.deps.Log,
		}, sess)}
	}
}

func (s *SetupScreen) View(width, height int) string {
	if len(s.topics) == 0 || len(s.levels) == 0 {
		return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("The question bank is empty."))
	}

	rows := []string{
		s.renderField(fieldTopic, "Topic", s.topics[s.topic]),
		s.renderField(fieldLevel, "Difficulty", s.levels[s.level]),
		s.renderField(fieldCount, "Questions", fmt.Sprintf("%d", s.count)),
	}

	form := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	out := "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, form)

	if s.errMsg != "" {
		out += "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(s.errMsg))
	}
	return out
}

func (s *SetupScreen) renderField(field int, label, value string) string {
	line := fmt.Sprintf("%-12s ◂ %s ▸", label, value)
	if s.field == field {
		return theme.Selected.Render("▸ " + line)
	}
	return theme.Unselected.Render("  " + line)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
