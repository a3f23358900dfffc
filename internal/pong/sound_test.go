package pong

import (
	"testing"
	"time"
)

func TestToneFor(t *testing.T) {
	tests := []struct {
		sound Sound
		want  Tone
	}{
		{SoundWallHit, Tone{226, 16 * time.Millisecond}},
		{SoundPaddleHit, Tone{459, 96 * time.Millisecond}},
		{SoundGoal, Tone{490, 257 * time.Millisecond}},
	}
	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			if got := ToneFor(tt.sound); got != tt.want {
				t.Errorf("ToneFor(%v) = %+v, want %+v", tt.sound, got, tt.want)
			}
			parsed, ok := ParseSound(tt.sound.String())
			if !ok || parsed != tt.sound {
				t.Errorf("ParseSound(%q) = %v, %v", tt.sound.String(), parsed, ok)
			}
		})
	}

	if _, ok := ParseSound("boom"); ok {
		t.Error("ParseSound accepted an unknown name")
	}
}
