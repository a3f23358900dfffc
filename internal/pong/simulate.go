package pong

import (
	"fmt"
	"time"
)

// Report summarises a headless run.
type Report struct {
	Frames  int            `yaml:"frames"`
	Ticks   int            `yaml:"ticks"`
	Stalled int            `yaml:"stalled_frames,omitempty"`
	Goals   []string       `yaml:"goals,omitempty"` // Scoring side of each goal, in order
	Sounds  map[string]int `yaml:"sounds,omitempty"`
	Final   Snapshot       `yaml:"final"`
}

// Simulate drives g with idle input in frames of equal length until total
// wall-clock time has passed or the game is over. Only a CPU paddle moves.
func Simulate(g *Game, total, frame time.Duration) (Report, error) {
	if frame <= 0 {
		return Report{}, fmt.Errorf("simulate: frame length must be positive, got %v", frame)
	}
	rep := Report{Sounds: make(map[string]int)}
	for elapsed := time.Duration(0); elapsed+frame <= total; elapsed += frame {
		out, err := g.Frame(frame, Input{})
		rep.Frames++
		rep.Ticks += out.Ticks
		if out.Stalled {
			rep.Stalled++
		}
		for _, s := range out.Sounds {
			rep.Sounds[s.String()]++
		}
		for _, side := range out.Goals {
			rep.Goals = append(rep.Goals, side.String())
		}
		if err != nil {
			rep.Final = g.Snapshot()
			return rep, fmt.Errorf("simulate: frame %d: %w", rep.Frames, err)
		}
		if g.round.Phase == PhaseGameOver {
			break
		}
	}
	rep.Final = g.Snapshot()
	return rep, nil
}
