// Package router keeps the stack of screens the user has navigated
// through. Screens never touch the stack directly; they return one of the
// navigation messages below as a tea.Cmd result.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/maturity/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the current screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the current screen for Screen, so going back
// skips the replaced one.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// PopToRootMsg closes every screen above the first.
type PopToRootMsg struct{}

// Router is a screen stack. The root screen is never removed.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Active is the screen on top of the stack.
func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages to the stack and passes anything
// else to the active screen. Newly shown screens get their Init command;
// screens uncovered by a pop get a screen.ResumedMsg.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		r.stack = append(r.stack, msg.Screen)
		return msg.Screen.Init()
	case ReplaceScreenMsg:
		r.stack[len(r.stack)-1] = msg.Screen
		return msg.Screen.Init()
	case PopScreenMsg:
		return r.truncate(len(r.stack) - 1)
	case PopToRootMsg:
		return r.truncate(1)
	}

	next, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) truncate(depth int) tea.Cmd {
	if depth < 1 || depth >= len(r.stack) {
		return nil
	}
	clear(r.stack[depth:])
	r.stack = r.stack[:depth]
	return func() tea.Msg { return screen.ResumedMsg{} }
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
