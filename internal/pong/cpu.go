package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// TrackBall steers a paddle towards the ball's centre. Inside the dead band
// the paddle stops, which keeps it from shaking around the target.
func TrackBall(p *Paddle, b *Ball, deadband float64) core.Direction {
	pc, bc := p.Center().Y, b.Center().Y
	switch {
	case pc < bc-deadband:
		return core.DirDown
	case pc > bc+deadband:
		return core.DirUp
	default:
		return core.DirNone
	}
}
