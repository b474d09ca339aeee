package assessment

// Phase is the lifecycle state of an assessment session.
type Phase int

const (
	PhaseNotStarted Phase = iota // No answers yet
	PhaseInProgress              // At least one answer
	PhaseComplete                // Every question answered
)

// String returns a display name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "Not Started"
	case PhaseInProgress:
		return "In Progress"
	case PhaseComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}
