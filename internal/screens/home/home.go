package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/maturity/internal/router"
	"github.com/abhisek/maturity/internal/screen"
	"github.com/abhisek/maturity/internal/screens/history"
	"github.com/abhisek/maturity/internal/screens/profile"
	"github.com/abhisek/maturity/internal/store"
	"github.com/abhisek/maturity/internal/ui/components"
	"github.com/abhisek/maturity/internal/ui/layout"
)

type latestLoadedMsg struct {
	Record *store.ResultRecord
	Err    error
}

// HomeScreen is the main menu. It shows the most recent saved result when
// local history is available.
type HomeScreen struct {
	svc    screen.Services
	menu   components.Menu
	latest *store.ResultRecord
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

func New(svc screen.Services) *HomeScreen {
	svc = svc.WithDefaults()
	h := &HomeScreen{svc: svc}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "START ASSESSMENT", Description: "Rate yourself on each statement", Action: h.startAssessment},
		{Label: "HISTORY", Description: "Browse saved results", Disabled: svc.Results == nil, Action: h.openHistory},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) openHistory() tea.Cmd {
	return push(history.New(h.svc))
}

func (h *HomeScreen) startAssessment() tea.Cmd {
	return push(profile.New(h.svc))
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadLatest()
}

func (h *HomeScreen) loadLatest() tea.Cmd {
	repo := h.svc.Results
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		rec, err := repo.Latest(context.Background())
		return latestLoadedMsg{Record: rec, Err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case latestLoadedMsg:
		if msg.Err != nil {
			h.svc.Logger.Warn("load latest result", zap.Error(msg.Err))
			return h, nil
		}
		h.latest = msg.Record
		return h, nil

	case screen.ResumedMsg:
		return h, h.loadLatest()

	case screen.StartAssessmentMsg:
		return h, h.startAssessment()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height)
	cw := contentWidth(width)

	menu := renderMenu(h.menu, cw)
	if compact {
		menu = layout.Centered(h.menu.View(), cw)
	}
	body := strings.Join([]string{
		renderTitle(cw, compact),
		renderLatestBar(h.latest, cw),
		menu,
		renderServicesNote(h.svc, cw),
	}, "\n\n")
	return renderFrame(body, width, height)
}
