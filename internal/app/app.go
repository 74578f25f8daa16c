// Package app assembles the Bubble Tea program around the quiz engine.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/adaptutor/internal/progress"
	"github.com/abhisek/adaptutor/internal/quiz"
	"github.com/abhisek/adaptutor/internal/router"
	"github.com/abhisek/adaptutor/internal/screens/home"
	"github.com/abhisek/adaptutor/internal/store"
	"github.com/abhisek/adaptutor/internal/ui/layout"
)

// Options carries the dependencies the screens need.
type Options struct {
	Engine   *quiz.Engine
	Events   store.EventRecorder
	Progress *progress.Store
	Log      *zap.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	router *router.Router
	width  int
	height int
}

func newModel(opts Options) Model {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	return Model{
		router: router.New(home.New(home.Deps{
			Engine:   opts.Engine,
			Events:   opts.Events,
			Progress: opts.Progress,
			Log:      opts.Log,
		})),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(title, m.width)

	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(router.KeyHintProvider); ok {
		if custom := hp.KeyHints(); len(custom) > 0 {
			hints = custom
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	content := m.router.View(m.width, m.height)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
