package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/maturity/internal/questionbank"
	"github.com/abhisek/maturity/internal/ui/theme"
)

// RatingSelector picks a value on the 1-5 rating scale.
type RatingSelector struct {
	// Cursor is the highlighted rating.
	Cursor int
	// Chosen is the committed rating, 0 when none.
	Chosen int
}

// NewRatingSelector creates a selector. A valid current rating is
// pre-selected; otherwise the cursor starts in the middle of the scale.
func NewRatingSelector(current int) RatingSelector {
	if current >= questionbank.MinRating && current <= questionbank.MaxRating {
		return RatingSelector{Cursor: current, Chosen: current}
	}
	return RatingSelector{Cursor: (questionbank.MinRating + questionbank.MaxRating) / 2}
}

// Update moves the cursor with arrow keys and commits on enter, space or
// a digit key. It reports whether a rating was committed.
func (r RatingSelector) Update(msg tea.Msg) (RatingSelector, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, false
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if r.Cursor > questionbank.MinRating {
			r.Cursor--
		}
	case "right", "l":
		if r.Cursor < questionbank.MaxRating {
			r.Cursor++
		}
	case "enter", "space", " ":
		r.Chosen = r.Cursor
		return r, true
	default:
		if len(key) == 1 && key[0] >= '0'+questionbank.MinRating && key[0] <= '0'+questionbank.MaxRating {
			r.Cursor = int(key[0] - '0')
			r.Chosen = r.Cursor
			return r, true
		}
	}
	return r, false
}

// View renders the five options side by side with the label of the
// highlighted rating underneath.
func (r RatingSelector) View() string {
	boxes := make([]string, 0, questionbank.MaxRating)
	for v := questionbank.MinRating; v <= questionbank.MaxRating; v++ {
		style := lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text)

		switch {
		case v == r.Cursor:
			style = style.BorderForeground(theme.Primary).Foreground(theme.Primary).Bold(true)
		case v == r.Chosen:
			style = style.BorderForeground(theme.Secondary).Foreground(theme.Secondary)
		}
		boxes = append(boxes, style.Render(fmt.Sprintf("%d", v)))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, interleave(boxes, " ")...)

	caption := questionbank.RatingLabel(r.Cursor)
	if r.Chosen == r.Cursor && r.Chosen != 0 {
		caption += " ✓"
	}
	scale := fmt.Sprintf("%-*s%s", lipgloss.Width(row)-len("Expert"), "Novice", "Expert")

	return row + "\n" +
		theme.Hint.Render(scale) + "\n" +
		lipgloss.PlaceHorizontal(lipgloss.Width(row), lipgloss.Center, theme.Selected.Render(caption))
}

func interleave(parts []string, sep string) []string {
	out := make([]string, 0, 2*len(parts))
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}

// RatingDots renders a compact rating such as "●●●○○".
func RatingDots(rating int) string {
	rating = min(max(rating, 0), questionbank.MaxRating)
	return strings.Repeat("●", rating) + strings.Repeat("○", questionbank.MaxRating-rating)
}
