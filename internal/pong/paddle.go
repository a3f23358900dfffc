package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Region is one of the five horizontal bands of a paddle face.
type Region int

const (
	RegionTop Region = iota
	RegionTopCenter
	RegionCenter
	RegionBottomCenter
	RegionBottom
)

// String returns the region name.
func (r Region) String() string {
	switch r {
	case RegionTop:
		return "top"
	case RegionTopCenter:
		return "top-center"
	case RegionCenter:
		return "center"
	case RegionBottomCenter:
		return "bottom-center"
	case RegionBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// regionColors shades the paddle from dim edges to a bright centre.
var regionColors = [...]core.Color{
	RegionTop:          core.ColorGray,
	RegionTopCenter:    core.ColorWhite,
	RegionCenter:       core.ColorBrightWhite,
	RegionBottomCenter: core.ColorWhite,
	RegionBottom:       core.ColorGray,
}

// hitOrder is the order in which regions are tested against the ball.
var hitOrder = [...]Region{RegionTop, RegionBottom, RegionTopCenter, RegionBottomCenter, RegionCenter}

// reflectionAngles gives the surface angle for a hit on each region.
// Every region is a flat vertical face for now.
var reflectionAngles = [...]float64{
	RegionTop:          90,
	RegionTopCenter:    90,
	RegionCenter:       90,
	RegionBottomCenter: 90,
	RegionBottom:       90,
}

// segmentsPerPaddle splits the paddle height into edge, near-edge and centre bands.
const segmentsPerPaddle = 8

// Bounds is the allowed range of a paddle's y-coordinate.
type Bounds struct {
	MinY, MaxY float64
}

// Contains reports whether y is inside the bounds.
func (b Bounds) Contains(y float64) bool {
	return y >= b.MinY && y <= b.MaxY
}

// Paddle is a vertically moving bat.
type Paddle struct {
	Entity
	Side  Side
	Dir   core.Direction
	homeX float64
}

// NewPaddle creates a paddle at column x, centred vertically.
func NewPaddle(side Side, x float64, s Settings) *Paddle {
	p := &Paddle{
		Entity: Entity{
			Size:     s.PaddleSize,
			MinSpeed: s.PaddleSpeed,
			Color:    core.ColorWhite,
		},
		Side:  side,
		homeX: x,
	}
	p.Recenter(s.Field.Y)
	return p
}

// Recenter stops the paddle and returns it to the middle of its column.
func (p *Paddle) Recenter(fieldH float64) {
	p.Pos = core.V(p.homeX, fieldH/2-p.Size.Y/2)
	p.SetDirection(core.DirNone)
}

// SetDirection sets the vertical velocity from a direction.
func (p *Paddle) SetDirection(dir core.Direction) {
	p.Dir = dir
	switch dir {
	case core.DirUp:
		p.Vel = core.V(0, -p.MinSpeed)
	case core.DirDown:
		p.Vel = core.V(0, p.MinSpeed)
	default:
		p.Dir = core.DirNone
		p.Vel = core.Vec2{}
	}
}

// Advance moves the paddle; a move that would leave the bounds is undone.
func (p *Paddle) Advance(dtMs float64, b Bounds) {
	last := p.Pos
	p.Entity.Advance(dtMs)
	if !b.Contains(p.Pos.Y) {
		p.Pos = last
	}
}

// SegmentHeight returns the height of one edge band.
func (p *Paddle) SegmentHeight() float64 {
	return p.Size.Y / segmentsPerPaddle
}

// RegionBox returns the bounding box of a region at the paddle's position.
func (p *Paddle) RegionBox(r Region) core.Box {
	return p.regionBoxAt(r, p.Pos)
}

func (p *Paddle) regionBoxAt(r Region, pos core.Vec2) core.Box {
	seg := p.SegmentHeight()
	w := p.Size.X
	switch r {
	case RegionTop:
		return core.NewBox(pos, core.V(w, seg))
	case RegionTopCenter:
		return core.NewBox(core.V(pos.X, pos.Y+seg), core.V(w, seg))
	case RegionCenter:
		return core.NewBox(core.V(pos.X, pos.Y+2*seg), core.V(w, p.Size.Y-4*seg))
	case RegionBottomCenter:
		return core.NewBox(core.V(pos.X, pos.Y+p.Size.Y-2*seg), core.V(w, seg))
	default:
		return core.NewBox(core.V(pos.X, pos.Y+p.Size.Y-seg), core.V(w, seg))
	}
}

// HitRegion returns the first region the box overlaps.
func (p *Paddle) HitRegion(box core.Box) (Region, bool) {
	for _, r := range hitOrder {
		if p.RegionBox(r).Overlaps(box) {
			return r, true
		}
	}
	return 0, false
}

// ReflectionAngle returns the surface angle for a ball hitting the paddle.
// A box that overlaps the paddle but none of its regions is a geometry bug.
func (p *Paddle) ReflectionAngle(box core.Box) (float64, error) {
	r, ok := p.HitRegion(box)
	if !ok {
		return 0, fmt.Errorf("%w: box at %v does not touch any region of the %s paddle at %v",
			ErrInvariantViolation, box.Pos, p.Side, p.Pos)
	}
	return reflectionAngles[r], nil
}
