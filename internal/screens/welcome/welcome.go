package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/maturity/internal/router"
	"github.com/abhisek/maturity/internal/screen"
	"github.com/abhisek/maturity/internal/ui/theme"
)

const (
	frame       = 100 * time.Millisecond
	barsGrown   = 500 * time.Millisecond
	bannerShown = 1500 * time.Millisecond
	maxElapsed  = 3 * time.Second
)

const tagline = "Know where you stand."

// levelGlyphs are the caps of the five rating bars, shortest first.
var levelGlyphs = []string{"▁", "▃", "▅", "▇", "█"}

var sparkleFrames = []string{"★", "✦"}

type frameMsg struct{}

// WelcomeScreen plays a short splash: rating bars grow from 1 to 5, a
// sparkle appears over the tallest, then the banner and tagline. Any key
// replaces it with the home screen; it never advances on its own.
type WelcomeScreen struct {
	next    func() screen.Screen
	elapsed time.Duration
	frames  int
	done    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New returns a splash that hands over to the screen built by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frame, func(time.Time) tea.Msg { return frameMsg{} })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		w.elapsed = min(w.elapsed+frame, maxElapsed)
		w.frames++
		if w.done {
			return w, nil
		}
		return w, nextFrame()
	case tea.KeyPressMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		home := w.next()
		return w, func() tea.Msg { return router.ReplaceScreenMsg{Screen: home} }
	}
	return w, nil
}

// barsShown returns how many level bars have grown in so far.
func (w *WelcomeScreen) barsShown() int {
	n := int(w.elapsed*time.Duration(len(levelGlyphs))/barsGrown) + 1
	return min(n, len(levelGlyphs))
}

func (w *WelcomeScreen) renderBars() string {
	shown := w.barsShown()
	height := len(levelGlyphs)

	var lines []string
	for row := 0; row < height; row++ {
		var b strings.Builder
		for level := 0; level < len(levelGlyphs); level++ {
			cell := " "
			top := height - 1 - level // row where this bar's cap sits
			switch {
			case level >= shown:
			case row == top:
				cell = levelGlyphs[level]
			case row > top:
				cell = "█"
			}
			b.WriteString("  " + cell + " ")
		}
		lines = append(lines, b.String())
	}
	lines = append(lines, " "+strings.Repeat("─", 4*len(levelGlyphs)))
	lines = append(lines, "  1   2   3   4   5")

	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Join(lines, "\n"))
}

func (w *WelcomeScreen) View(width, height int) string {
	sparkle := ""
	if w.elapsed >= barsGrown {
		sparkle = lipgloss.NewStyle().Foreground(theme.Accent).
			Render(strings.Repeat(" ", 18) + sparkleFrames[w.frames%len(sparkleFrames)])
	}
	sections := []string{sparkle, w.renderBars()}

	if w.elapsed >= bannerShown {
		sections = append(sections,
			"", RenderBanner(width), "",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
			theme.Hint.Render("A self-assessment across six core competencies"),
			"", theme.Hint.Render("press any key to continue"),
		)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
