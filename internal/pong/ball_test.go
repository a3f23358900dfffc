package pong

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestKickOffDirection(t *testing.T) {
	s := DefaultSettings()

	tests := []struct {
		name string
		dir  core.Direction
		left bool
	}{
		{"left", core.DirLeft, true},
		{"right", core.DirRight, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(0); seed < 200; seed++ {
				b := NewBall(s)
				b.KickOff(tt.dir, rand.New(rand.NewSource(seed)), s.Field, s.BorderMargin)
				if tt.left && b.Vel.X >= 0 || !tt.left && b.Vel.X <= 0 {
					t.Fatalf("seed %d: kickoff %v gave vx=%v", seed, tt.dir, b.Vel.X)
				}
				if math.Abs(b.Vel.Y) > s.BallSpeed {
					t.Fatalf("seed %d: |vy|=%v exceeds %v", seed, math.Abs(b.Vel.Y), s.BallSpeed)
				}
			}
		})
	}
}

func TestKickOffPosition(t *testing.T) {
	s := DefaultSettings()
	minY := s.BorderMargin * s.Field.Y
	maxY := (1 - s.BorderMargin) * s.Field.Y

	for seed := int64(0); seed < 200; seed++ {
		b := NewBall(s)
		b.Park()
		b.KickOff(core.DirRight, rand.New(rand.NewSource(seed)), s.Field, s.BorderMargin)
		if b.Parked() {
			t.Fatalf("seed %d: ball still parked after kickoff", seed)
		}
		if b.Pos.X != s.Field.X/2-s.BallSize.X/2 {
			t.Fatalf("seed %d: kickoff x=%v, want half line", seed, b.Pos.X)
		}
		if b.Pos.Y < minY || b.Pos.Y >= maxY {
			t.Fatalf("seed %d: kickoff y=%v outside [%v, %v)", seed, b.Pos.Y, minY, maxY)
		}
	}
}

func TestKickOffRandomDirection(t *testing.T) {
	s := DefaultSettings()
	var left, right int
	for seed := int64(0); seed < 200; seed++ {
		b := NewBall(s)
		b.KickOff(core.DirNone, rand.New(rand.NewSource(seed)), s.Field, s.BorderMargin)
		if b.Vel.X < 0 {
			left++
		} else {
			right++
		}
	}
	if left == 0 || right == 0 {
		t.Errorf("random kickoff never varied: left=%d right=%d", left, right)
	}
}

func TestStartWinnerScreen(t *testing.T) {
	s := DefaultSettings()
	for seed := int64(0); seed < 50; seed++ {
		b := NewBall(s)
		b.StartWinnerScreen(rand.New(rand.NewSource(seed)), s.Field, s.BorderMargin)
		if math.Abs(b.Vel.X) != s.BallSpeed || math.Abs(b.Vel.Y) != s.BallSpeed {
			t.Fatalf("seed %d: winner screen velocity %v", seed, b.Vel)
		}
		if b.Pos.X < s.BorderMargin*s.Field.X || b.Pos.X >= (1-s.BorderMargin)*s.Field.X {
			t.Fatalf("seed %d: winner screen x=%v outside border", seed, b.Pos.X)
		}
	}
}
