package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/maturity/internal/router"
	"github.com/abhisek/maturity/internal/scoring"
	"github.com/abhisek/maturity/internal/screen"
	"github.com/abhisek/maturity/internal/screens/results"
	"github.com/abhisek/maturity/internal/store"
	"github.com/abhisek/maturity/internal/ui/components"
	"github.com/abhisek/maturity/internal/ui/layout"
	"github.com/abhisek/maturity/internal/ui/theme"
)

// pageSize caps how many saved results are loaded.
const pageSize = 50

type historyLoadedMsg struct {
	Records []store.ResultRecord
	Err     error
}

// HistoryScreen lists saved assessment results, newest first.
type HistoryScreen struct {
	svc      screen.Services
	records  []store.ResultRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(svc screen.Services) *HistoryScreen {
	return &HistoryScreen{
		svc:      svc.WithDefaults(),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.svc.Results
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{}
		}
		recs, err := repo.List(context.Background(), store.QueryOpts{Limit: pageSize})
		return historyLoadedMsg{Records: recs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "o", Description: "Open"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		case "o":
			return s, s.open()
		}
	}
	return s, nil
}

// open shows the selected record on the full results screen.
func (s *HistoryScreen) open() tea.Cmd {
	if s.selected >= len(s.records) {
		return nil
	}
	rec := s.records[s.selected]
	next := results.New(s.svc, results.Input{
		SessionID: rec.SessionID,
		Profile:   rec.Profile,
		Results:   rec.Results,
		Saved:     true,
	})
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No saved results yet. Complete an assessment first!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(layout.Centered(style.Render(prefix+summaryLine(rec)), width))
		b.WriteString("\n")

		if s.expanded[i] && rec.Results != nil {
			for _, c := range rec.Results.ByStrength() {
				line := fmt.Sprintf("    %-26s %s  %s", c.Name, components.RatingDots(int(c.Average()+0.5)), scoring.FormatAverage(c.Average()))
				b.WriteString(layout.Centered(
					lipgloss.NewStyle().Foreground(theme.LevelColor(c.Average())).Render(line), width))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// summaryLine renders one history row: date, who, overall average.
func summaryLine(rec store.ResultRecord) string {
	date := rec.SavedAt.Local().Format("Jan 02, 2006 15:04")
	who := "anonymous"
	if !rec.Profile.IsZero() {
		who = fmt.Sprintf("%s @ %s", rec.Profile.Role, rec.Profile.CompanyName)
	}
	avg := 0.0
	if rec.Results != nil {
		avg = rec.Results.OverallAverage()
	}
	return fmt.Sprintf("%s  %-32s  %s/5", date, truncate(who, 32), scoring.FormatAverage(avg))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
