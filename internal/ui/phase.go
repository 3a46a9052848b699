package ui

import "github.com/starline-salvage/starline/internal/api"

// Phase is the client-visible state machine. It is mirrored from the
// server's status and pendingEvent fields, never computed independently.
type Phase int

const (
	PhaseNoGame    Phase = iota // no snapshot yet
	PhaseActive                 // run in progress, no blocking event
	PhaseEncounter              // blocking event must be resolved first
	PhaseWon
	PhaseLost
)

// PhaseOf classifies a snapshot. Terminal statuses win over a pending
// event, so a stale encounter can never mask the end of a run.
func PhaseOf(snap *api.State) Phase {
	switch {
	case snap == nil:
		return PhaseNoGame
	case snap.Status == api.StatusWon:
		return PhaseWon
	case snap.Status == api.StatusLost:
		return PhaseLost
	case snap.PendingEvent != nil:
		return PhaseEncounter
	default:
		return PhaseActive
	}
}

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseNoGame:
		return "no-game"
	case PhaseActive:
		return "active"
	case PhaseEncounter:
		return "encounter"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	}
	return "unknown"
}
