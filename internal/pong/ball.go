package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Ball is the puck bounced between the paddles.
type Ball struct {
	Entity
}

// NewBall creates a stationary ball at the centre of the field.
func NewBall(s Settings) *Ball {
	return &Ball{
		Entity: Entity{
			Pos:      core.V(s.Field.X/2-s.BallSize.X/2, s.Field.Y/2-s.BallSize.Y/2),
			Size:     s.BallSize,
			MinSpeed: s.BallSpeed,
			Color:    core.ColorBrightWhite,
		},
	}
}

// KickOff launches the ball from the half line at a random height that
// keeps border*height clear of both walls. Any direction other than Left or
// Right picks one of the two at random.
func (b *Ball) KickOff(dir core.Direction, rng *rand.Rand, field core.Vec2, border float64) {
	b.Pos = core.V(
		field.X/2-b.Size.X/2,
		(rng.Float64()*(1-2*border)+border)*field.Y,
	)
	if dir != core.DirLeft && dir != core.DirRight {
		dir = core.DirLeft
		if rng.Intn(2) == 1 {
			dir = core.DirRight
		}
	}
	vx := b.MinSpeed
	if dir == core.DirLeft {
		vx = -vx
	}
	b.Vel = core.V(vx, (1-2*rng.Float64())*b.MinSpeed)
}

// StartWinnerScreen places the ball anywhere inside the border and sends it
// off diagonally.
func (b *Ball) StartWinnerScreen(rng *rand.Rand, field core.Vec2, border float64) {
	b.Pos = core.V(
		(rng.Float64()*(1-2*border)+border)*field.X,
		(rng.Float64()*(1-2*border)+border)*field.Y,
	)
	b.Vel = core.V(randomSign(rng)*b.MinSpeed, randomSign(rng)*b.MinSpeed)
}

func randomSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return 1
	}
	return -1
}
