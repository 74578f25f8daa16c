// Package home is the main menu screen.
package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/adaptutor/internal/progress"
	"github.com/abhisek/adaptutor/internal/quiz"
	"github.com/abhisek/adaptutor/internal/router"
	"github.com/abhisek/adaptutor/internal/screens/dashboard"
	"github.com/abhisek/adaptutor/internal/screens/setup"
	"github.com/abhisek/adaptutor/internal/store"
	"github.com/abhisek/adaptutor/internal/ui/components"
	"github.com/abhisek/adaptutor/internal/ui/theme"
)

// Deps gathers the collaborators the home screen hands down.
type Deps struct {
	Engine   *quiz.Engine
	Events   store.EventRecorder
	Progress *progress.Store
	Log      *zap.Logger
}

// HomeScreen is the application's entry screen.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ router.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps Deps) *HomeScreen {
	s := &HomeScreen{deps: deps}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushMsg{Screen: setup.New(setup.Deps{
					Engine: deps.Engine,
					Events: deps.Events,
					Log:    deps.Log,
				})}
			}
		}},
		{Label: "ANALYTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushMsg{Screen: dashboard.New(deps.Progress)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return s
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("Adaptive Quiz Tutor")
	subtitle := theme.Subtitle.Width(width).Render("Personalized practice with difficulty guidance")
	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View())

	return "\n\n" + title + "\n" + subtitle + "\n\n\n" + menu
}
