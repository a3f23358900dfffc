package tui

import (
	"bytes"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

func TestBellSinkRingsConfiguredSounds(t *testing.T) {
	var buf bytes.Buffer
	sink := NewBellSink(&buf, []pong.Sound{pong.SoundGoal}, nil)

	sink.Play(pong.SoundWallHit)
	sink.Play(pong.SoundPaddleHit)
	if buf.Len() != 0 {
		t.Errorf("unconfigured sounds wrote %q", buf.String())
	}

	sink.Play(pong.SoundGoal)
	if buf.String() != "\a" {
		t.Errorf("goal wrote %q, want BEL", buf.String())
	}
}

func TestBellSinkWithoutWriter(t *testing.T) {
	sink := NewBellSink(nil, []pong.Sound{pong.SoundGoal}, nil)
	sink.Play(pong.SoundGoal) // must not panic
}
