// Package game provides the main game loop and run progression.
package game

// Phase is where the current run stands.
type Phase int

const (
	// PhasePlaying accepts moves and casts.
	PhasePlaying Phase = iota
	// PhaseWon means the last level was cleared.
	PhaseWon
	// PhaseDead means the player died. Only a new run can follow.
	PhaseDead
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Over reports whether the run has ended.
func (p Phase) Over() bool {
	return p != PhasePlaying
}
