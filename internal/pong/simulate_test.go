package pong

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestSimulateIsDeterministic(t *testing.T) {
	s := DefaultSettings()
	a, err := Simulate(New(s, 9), time.Minute, 16*time.Millisecond)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	b, err := Simulate(New(s, 9), time.Minute, 16*time.Millisecond)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("runs with the same seed differ:\n%+v\n%+v", a, b)
	}
	if a.Frames != 3750 {
		t.Errorf("frames = %d, want 3750", a.Frames)
	}
}

func TestSimulateReportMatchesScore(t *testing.T) {
	rep, err := Simulate(New(DefaultSettings(), 3), 2*time.Minute, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	score := rep.Final.Score
	if len(rep.Goals) != score.Left+score.Right {
		t.Errorf("%d goals reported, score is %d-%d", len(rep.Goals), score.Left, score.Right)
	}
	if rep.Sounds[SoundGoal.String()] != len(rep.Goals) {
		t.Errorf("goal sounds = %d, goals = %d", rep.Sounds[SoundGoal.String()], len(rep.Goals))
	}
	if uint64(rep.Ticks) != rep.Final.Ticks {
		t.Errorf("ticks = %d, clock ran %d", rep.Ticks, rep.Final.Ticks)
	}
}

func TestSimulateStopsAtGameOver(t *testing.T) {
	s := testSettings()
	s.WinScore = 1
	s.OnWin = WinGameOver
	g := inPlay(s)
	g.ball.Pos = core.V(175, 50)
	g.ball.Vel = core.V(s.BallSpeed, 0)

	rep, err := Simulate(g, time.Hour, 16*time.Millisecond)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if rep.Final.Phase != PhaseGameOver.String() || rep.Final.Winner != "left" {
		t.Errorf("final phase %q winner %q", rep.Final.Phase, rep.Final.Winner)
	}
	if rep.Frames > 10 {
		t.Errorf("ran %d frames after the match was decided", rep.Frames)
	}
	if len(rep.Goals) != 1 || rep.Goals[0] != "left" {
		t.Errorf("goals = %v", rep.Goals)
	}
}

func TestSimulateRejectsZeroFrame(t *testing.T) {
	if _, err := Simulate(New(DefaultSettings(), 1), time.Second, 0); err == nil {
		t.Error("zero frame length should fail")
	}
}
