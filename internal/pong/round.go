package pong

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Phase is the round-level state of a match.
type Phase int

const (
	// PhaseServing waits out the initial serve delay after a (re)start.
	PhaseServing Phase = iota
	// PhasePlaying is normal play.
	PhasePlaying
	// PhaseAwaitingKickoff waits out the delay after a goal.
	PhaseAwaitingKickoff
	// PhaseGameOver ends the simulation.
	PhaseGameOver
	// PhaseWinnerDisplay bounces the ball around an empty field.
	PhaseWinnerDisplay
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseServing:
		return "serving"
	case PhasePlaying:
		return "playing"
	case PhaseAwaitingKickoff:
		return "awaiting-kickoff"
	case PhaseGameOver:
		return "game-over"
	case PhaseWinnerDisplay:
		return "winner-display"
	default:
		return "unknown"
	}
}

// RoundState is the kickoff/round state machine.
type RoundState struct {
	Phase Phase
	// Serve is the kickoff direction once the countdown expires.
	// DirNone picks a side at random.
	Serve core.Direction
	// Remaining counts the ticks left before kickoff.
	Remaining int
}

// DelayingKickoff reports whether the ball is parked waiting for a kickoff.
// Goals cannot be scored while this is true.
func (r RoundState) DelayingKickoff() bool {
	return r.Phase == PhaseServing || r.Phase == PhaseAwaitingKickoff
}

// Over reports whether the match has been decided.
func (r RoundState) Over() bool {
	return r.Phase == PhaseGameOver || r.Phase == PhaseWinnerDisplay
}

// Transition records a phase change.
type Transition struct {
	From Phase
	To   Phase
	Tick uint64
}

// DelayTicks converts a delay into a whole number of fixed ticks.
func DelayTicks(delay, fixed time.Duration) int {
	if fixed <= 0 {
		return 0
	}
	return int(math.Round(float64(delay) / float64(fixed)))
}
