// Package router manages the stack of application screens.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adaptutor/internal/ui/layout"
)

// Screen is one full-frame view in the application.
type Screen interface {
	// Init returns an initial command when the screen is pushed.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content between header and footer.
	View(width, height int) string

	// Title is the screen name shown in the header.
	Title() string
}

// KeyHintProvider lets a screen supply footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// PushMsg pushes a new screen onto the stack.
type PushMsg struct {
	Screen Screen
}

// PopMsg pops the current screen.
type PopMsg struct{}

// PopToRootMsg pops back to the bottom screen.
type PopToRootMsg struct{}

// ReplaceMsg swaps the current screen for another.
type ReplaceMsg struct {
	Screen Screen
}

// Router is a stack of screens; the top screen is active.
type Router struct {
	stack []Screen
}

// New creates a Router with the given initial screen.
func New(initial Screen) *Router {
	return &Router{stack: []Screen{initial}}
}

// Active returns the top screen.
func (r *Router) Active() Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the stack depth.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update routes navigation messages and forwards everything else to
// the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushMsg:
		r.stack = append(r.stack, msg.Screen)
		return msg.Screen.Init()

	case PopMsg:
		if len(r.stack) > 1 {
			r.stack = r.stack[:len(r.stack)-1]
		}
		return nil

	case PopToRootMsg:
		if len(r.stack) > 1 {
			r.stack = r.stack[:1]
		}
		return nil

	case ReplaceMsg:
		if len(r.stack) > 0 {
			r.stack[len(r.stack)-1] = msg.Screen
			return msg.Screen.Init()
		}
		return nil
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
