package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/maturity/internal/router"
	"github.com/abhisek/maturity/internal/screen"
	"github.com/abhisek/maturity/internal/screens/home"
	"github.com/abhisek/maturity/internal/screens/welcome"
	"github.com/abhisek/maturity/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Services screen.Services

	// SkipWelcome starts directly on the home menu.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model. It owns the screen stack and
// draws the shared header and footer around the active screen.
type AppModel struct {
	router *router.Router
	logger *zap.Logger
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	svc := opts.Services.WithDefaults()
	var root screen.Screen = home.New(svc)
	if !opts.SkipWelcome {
		root = welcome.New(func() screen.Screen { return home.New(svc) })
	}
	return AppModel{router: router.New(root), logger: svc.Logger}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.logger.Debug("quit requested")
			return m, tea.Quit
		case "esc":
			if cmd, handled := m.back(); handled {
				return m, cmd
			}
		}
	}
	return m, m.router.Update(msg)
}

// back handles Esc. Screens that intercept it get the key themselves;
// otherwise the top screen is popped unless it is the root.
func (m AppModel) back() (tea.Cmd, bool) {
	if bi, ok := m.router.Active().(screen.BackInterceptor); ok && bi.InterceptBack() {
		return nil, false
	}
	if m.router.Depth() == 1 {
		return nil, true
	}
	return func() tea.Msg { return router.PopScreenMsg{} }, true
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	switch {
	case m.width == 0 || m.height == 0:
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
	default:
		v.SetContent(m.frame())
	}
	return v
}

func (m AppModel) frame() string {
	active := m.router.Active()
	var status string
	if sp, ok := active.(layout.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(active.Title(), status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	room := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return layout.RenderFrame(header, m.router.View(m.width, room), footer, m.width, m.height)
}

var (
	quitHint     = layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}
	backHints    = []layout.KeyHint{{Key: "Esc", Description: "Back"}, quitHint}
	defaultHints = []layout.KeyHint{{Key: "Any key", Description: "Continue"}, quitHint}
)

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kh, ok := active.(screen.KeyHintProvider); ok {
		return kh.KeyHints()
	}
	if m.router.Depth() > 1 {
		return backHints
	}
	return defaultHints
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if _, err := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
