package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/maturity/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackInterceptor is an optional interface for screens that handle Esc
// themselves, for example to confirm before discarding progress. When
// InterceptBack returns true the app forwards Esc to the screen instead of
// popping it.
type BackInterceptor interface {
	InterceptBack() bool
}

// ResumedMsg is delivered to a screen when it becomes active again after
// the screens above it were popped.
type ResumedMsg struct{}

// StartAssessmentMsg asks the root screen to begin a new assessment.
type StartAssessmentMsg struct{}
