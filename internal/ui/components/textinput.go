package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/maturity/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and an inline
// validation message.
type TextInput struct {
	Model    textinput.Model
	Label    string
	Required bool
	errMsg   string
}

// NewTextInput creates a new styled text input. The input starts blurred.
func NewTextInput(label, placeholder string, required bool, maxLen int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if maxLen > 0 {
		ti.CharLimit = maxLen
	}
	return TextInput{
		Model:    ti,
		Label:    label,
		Required: required,
	}
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages. Editing clears a previous validation message.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		t.errMsg = ""
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Value returns the trimmed input value.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// SetValue sets the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// Validate checks the required constraint and records a message on failure.
func (t *TextInput) Validate() bool {
	if t.Required && t.Value() == "" {
		t.errMsg = t.Label + " is required"
		return false
	}
	t.errMsg = ""
	return true
}

// Error returns the current validation message, if any.
func (t TextInput) Error() string {
	return t.errMsg
}

// View renders label, input and validation message.
func (t TextInput) View(width int) string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(t.Label)

	box := theme.Blurred
	if t.Model.Focused() {
		box = theme.Focused
	}
	if width > 4 {
		box = box.Width(width)
	}

	out := label + "\n" + box.Render(t.Model.View())
	if t.errMsg != "" {
		out += "\n" + theme.ErrorText.Render(t.errMsg)
	}
	return out
}
