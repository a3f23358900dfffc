package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Sentinel is the off-field parking spot for entities that are out of play.
var Sentinel = core.V(5000, 50)

// Entity is the state shared by paddles and the ball.
type Entity struct {
	Pos      core.Vec2
	Size     core.Vec2
	Vel      core.Vec2
	MinSpeed float64
	Color    core.Color
}

// Box returns the entity's bounding box.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.Pos, e.Size)
}

// Center returns the centre point of the entity.
func (e *Entity) Center() core.Vec2 {
	return e.Pos.Add(e.Size.Scale(0.5))
}

// Advance translates the entity by its velocity over dtMs milliseconds.
func (e *Entity) Advance(dtMs float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(dtMs))
}

// Bounce reflects the velocity off a surface at the given angle in degrees.
// 0 is a horizontal wall, 90 a vertical paddle face.
func (e *Entity) Bounce(surfaceAngle float64) {
	e.Vel = Reflect(e.Vel, surfaceAngle)
}

// Park stops the entity and moves it off the field.
func (e *Entity) Park() {
	e.Vel = core.Vec2{}
	e.Pos = Sentinel
}

// Parked reports whether the entity sits at the sentinel position.
func (e *Entity) Parked() bool {
	return e.Pos == Sentinel
}

// interpolated returns where to draw the entity alpha ticks ahead of its
// simulated position.
func (e *Entity) interpolated(dtMs, alpha float64) core.Vec2 {
	return e.Pos.Add(e.Vel.Scale(dtMs * alpha))
}

// Slope returns the angle of v in degrees.
func Slope(v core.Vec2) float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// Rotate turns v counter-clockwise by angle degrees.
func Rotate(v core.Vec2, angle float64) core.Vec2 {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return core.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Reflect mirrors v about a surface at surfaceAngle degrees.
// The reflected angle is 2*surface - incident, reached by rotating v by
// 2*(surface - incident).
func Reflect(v core.Vec2, surfaceAngle float64) core.Vec2 {
	incident := Slope(v)
	return Rotate(v, 2*(surfaceAngle-incident))
}
