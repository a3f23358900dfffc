package pong

// EntitySnapshot is the serialisable state of one entity.
type EntitySnapshot struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Parked bool    `yaml:"parked,omitempty"`
}

func snapshotOf(e *Entity) EntitySnapshot {
	return EntitySnapshot{X: e.Pos.X, Y: e.Pos.Y, VX: e.Vel.X, VY: e.Vel.Y, Parked: e.Parked()}
}

// Snapshot is a point-in-time summary of a game.
type Snapshot struct {
	Seed        int64          `yaml:"seed"`
	Phase       string         `yaml:"phase"`
	Winner      string         `yaml:"winner,omitempty"`
	Score       Score          `yaml:"score"`
	Ticks       uint64         `yaml:"ticks"`
	VirtualTime string         `yaml:"virtual_time"`
	Paused      bool           `yaml:"paused"`
	Ball        EntitySnapshot `yaml:"ball"`
	Left        EntitySnapshot `yaml:"left_paddle"`
	Right       EntitySnapshot `yaml:"right_paddle"`
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Seed:        g.seed,
		Phase:       g.round.Phase.String(),
		Score:       g.score,
		Ticks:       g.clock.Ticks(),
		VirtualTime: g.clock.VirtualTime().String(),
		Paused:      g.paused,
		Ball:        snapshotOf(&g.ball.Entity),
		Left:        snapshotOf(&g.left.Entity),
		Right:       snapshotOf(&g.right.Entity),
	}
	if w := g.Winner(); w != SideNone {
		s.Winner = w.String()
	}
	return s
}
