package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput for answer entry.
type TextInput struct {
	Model textinput.Model
}

// NewTextInput creates a focused text input with the given placeholder.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti}
}

// Init returns the initial focus command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards messages to the underlying model.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the current input text.
func (t TextInput) Value() string {
	return t.Model.Value()
}
