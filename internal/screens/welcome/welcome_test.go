package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/maturity/internal/router"
	"github.com/abhisek/maturity/internal/screen"
)

type homeStub struct{}

func (homeStub) Init() tea.Cmd                          { return nil }
func (h homeStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return h, nil }
func (homeStub) View(int, int) string                   { return "home" }
func (homeStub) Title() string                          { return "Home" }

func splash() (*WelcomeScreen, *int) {
	built := 0
	return New(func() screen.Screen {
		built++
		return homeStub{}
	}), &built
}

func advance(w *WelcomeScreen, frames int) {
	for range frames {
		w.Update(frameMsg{})
	}
}

func TestSplashStages(t *testing.T) {
	w, _ := splash()
	assert.Equal(t, 1, w.barsShown())
	assert.NotContains(t, w.View(100, 30), tagline)

	advance(w, 5)
	assert.Equal(t, barsGrown, w.elapsed)
	assert.Equal(t, len(levelGlyphs), w.barsShown())
	assert.NotContains(t, w.View(100, 30), tagline)

	advance(w, 10)
	assert.Contains(t, w.View(100, 30), tagline)

	advance(w, 40)
	assert.Equal(t, maxElapsed, w.elapsed)
}

func TestAnyKeyHandsOverOnce(t *testing.T) {
	w, built := splash()
	advance(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "got %T", cmd())
	assert.Equal(t, homeStub{}, msg.Screen)

	_, cmd = w.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, *built)

	_, cmd = w.Update(frameMsg{})
	assert.Nil(t, cmd, "animation stops after hand-over")
}

func TestNoHandOverWithoutKey(t *testing.T) {
	w, built := splash()
	advance(w, 60)
	assert.Zero(t, *built)
}

func TestBannerWidth(t *testing.T) {
	assert.Contains(t, RenderBanner(40), bannerCompact)
	assert.False(t, strings.Contains(RenderBanner(120), bannerCompact))
}
