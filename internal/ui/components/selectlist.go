package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/maturity/internal/ui/theme"
)

// SelectList is a scrollable single-choice list. Typing a letter jumps to
// the next option starting with it.
type SelectList struct {
	Label   string
	Options []string
	Cursor  int
	Chosen  int // -1 when nothing is chosen
	Visible int // rows shown at once
	Open    bool
	errMsg  string
}

// NewSelectList creates a closed list with nothing chosen.
func NewSelectList(label string, options []string, visible int) SelectList {
	if visible <= 0 {
		visible = 6
	}
	return SelectList{
		Label:   label,
		Options: options,
		Chosen:  -1,
		Visible: visible,
	}
}

// Value returns the chosen option or "".
func (s SelectList) Value() string {
	if s.Chosen < 0 || s.Chosen >= len(s.Options) {
		return ""
	}
	return s.Options[s.Chosen]
}

// SetValue chooses the option equal to v, if present.
func (s *SelectList) SetValue(v string) {
	for i, o := range s.Options {
		if o == v {
			s.Chosen = i
			s.Cursor = i
			return
		}
	}
}

// Validate requires a choice and records a message on failure.
func (s *SelectList) Validate() bool {
	if s.Value() == "" {
		s.errMsg = "Please select " + strings.ToLower(s.Label)
		return false
	}
	s.errMsg = ""
	return true
}

// Error returns the current validation message, if any.
func (s SelectList) Error() string {
	return s.errMsg
}

// Update handles navigation. A closed list opens on enter or space;
// an open list commits on enter and closes on esc without choosing.
// It reports whether the message was consumed.
func (s SelectList) Update(msg tea.Msg) (SelectList, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, false
	}
	key := kmsg.String()

	if !s.Open {
		if key == "enter" || key == "space" || key == " " {
			s.Open = true
			if s.Chosen >= 0 {
				s.Cursor = s.Chosen
			}
			return s, true
		}
		return s, false
	}

	switch key {
	case "up", "k":
		if s.Cursor > 0 {
			s.Cursor--
		}
	case "down", "j":
		if s.Cursor < len(s.Options)-1 {
			s.Cursor++
		}
	case "enter":
		s.Chosen = s.Cursor
		s.Open = false
		s.errMsg = ""
	case "esc":
		s.Open = false
	default:
		if len(key) == 1 {
			s.jumpTo(key)
		}
	}
	return s, true
}

func (s *SelectList) jumpTo(prefix string) {
	n := len(s.Options)
	for step := 1; step <= n; step++ {
		i := (s.Cursor + step) % n
		if strings.HasPrefix(strings.ToLower(s.Options[i]), strings.ToLower(prefix)) {
			s.Cursor = i
			return
		}
	}
}

// window returns the [start, end) range of visible options.
func (s SelectList) window() (int, int) {
	n := len(s.Options)
	if n <= s.Visible {
		return 0, n
	}
	start := s.Cursor - s.Visible/2
	start = min(max(start, 0), n-s.Visible)
	return start, start + s.Visible
}

// View renders the list. focused highlights the field border.
func (s SelectList) View(width int, focused bool) string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.Label)

	box := theme.Blurred
	if focused {
		box = theme.Focused
	}
	if width > 4 {
		box = box.Width(width)
	}

	var body string
	if !s.Open {
		if v := s.Value(); v != "" {
			body = theme.Body.Render(v) + theme.Hint.Render("  ▾")
		} else {
			body = theme.Hint.Render("Select an option  ▾")
		}
	} else {
		start, end := s.window()
		lines := make([]string, 0, end-start+2)
		if start > 0 {
			lines = append(lines, theme.Hint.Render("  ↑ more"))
		}
		for i := start; i < end; i++ {
			prefix := "  "
			style := theme.Unselected
			if i == s.Cursor {
				prefix = "▸ "
				style = theme.Selected
			}
			if i == s.Chosen {
				prefix += "✓ "
			}
			lines = append(lines, style.Render(prefix+s.Options[i]))
		}
		if end < len(s.Options) {
			lines = append(lines, theme.Hint.Render("  ↓ more"))
		}
		body = strings.Join(lines, "\n")
	}

	out := label + "\n" + box.Render(body)
	if s.errMsg != "" {
		out += "\n" + theme.ErrorText.Render(s.errMsg)
	}
	return out
}
