package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/maturity/internal/screen"
)

// fakeScreen counts Init calls and remembers the last message it saw.
type fakeScreen struct {
	name  string
	inits int
	last  tea.Msg
}

func (s *fakeScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.last = msg
	return s, nil
}

func (s *fakeScreen) View(int, int) string { return "view:" + s.name }
func (s *fakeScreen) Title() string        { return s.name }

func stack(names ...string) (*Router, []*fakeScreen) {
	screens := make([]*fakeScreen, len(names))
	for i, n := range names {
		screens[i] = &fakeScreen{name: n}
	}
	r := New(screens[0])
	for _, s := range screens[1:] {
		r.Update(PushScreenMsg{Screen: s})
	}
	return r, screens
}

func titles(r *Router) []string {
	out := make([]string, len(r.stack))
	for i, s := range r.stack {
		out[i] = s.Title()
	}
	return out
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name    string
		start   []string
		msg     tea.Msg
		want    []string
		resumed bool
	}{
		{"push", []string{"home"}, PushScreenMsg{Screen: &fakeScreen{name: "profile"}}, []string{"home", "profile"}, false},
		{"pop", []string{"home", "history"}, PopScreenMsg{}, []string{"home"}, true},
		{"pop keeps root", []string{"home"}, PopScreenMsg{}, []string{"home"}, false},
		{"replace", []string{"home", "profile"}, ReplaceScreenMsg{Screen: &fakeScreen{name: "assessment"}}, []string{"home", "assessment"}, false},
		{"replace root", []string{"welcome"}, ReplaceScreenMsg{Screen: &fakeScreen{name: "home"}}, []string{"home"}, false},
		{"pop to root", []string{"home", "assessment", "results"}, PopToRootMsg{}, []string{"home"}, true},
		{"pop to root at root", []string{"home"}, PopToRootMsg{}, []string{"home"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := stack(tt.start...)
			cmd := r.Update(tt.msg)

			assert.Equal(t, tt.want, titles(r))
			assert.Equal(t, len(tt.want), r.Depth())
			if !tt.resumed {
				assert.Nil(t, cmd)
				return
			}
			require.NotNil(t, cmd)
			assert.IsType(t, screen.ResumedMsg{}, cmd())
		})
	}
}

func TestShownScreensAreInitialised(t *testing.T) {
	r, screens := stack("home", "profile")
	assert.Equal(t, 0, screens[0].inits, "root is initialised by the app")
	assert.Equal(t, 1, screens[1].inits)

	next := &fakeScreen{name: "assessment"}
	r.Update(ReplaceScreenMsg{Screen: next})
	assert.Equal(t, 1, next.inits)
}

func TestUpdateGoesToActiveScreen(t *testing.T) {
	r, screens := stack("home", "results")
	key := tea.KeyPressMsg{Code: 'e'}

	assert.Nil(t, r.Update(key))
	assert.Equal(t, key, screens[1].last)
	assert.Nil(t, screens[0].last)
	assert.Equal(t, "view:results", r.View(80, 24))
}
