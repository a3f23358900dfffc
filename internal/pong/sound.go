package pong

import "time"

// Sound is a discrete audio trigger emitted by the simulation.
type Sound int

const (
	SoundWallHit Sound = iota
	SoundPaddleHit
	SoundGoal
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundWallHit:
		return "wall-hit"
	case SoundPaddleHit:
		return "paddle-hit"
	case SoundGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Tone describes the square wave an audio backend should play for a sound.
type Tone struct {
	FrequencyHz float64
	Duration    time.Duration
}

// ToneFor returns the tone associated with a sound trigger.
func ToneFor(s Sound) Tone {
	switch s {
	case SoundWallHit:
		return Tone{FrequencyHz: 226, Duration: 16 * time.Millisecond}
	case SoundPaddleHit:
		return Tone{FrequencyHz: 459, Duration: 96 * time.Millisecond}
	case SoundGoal:
		return Tone{FrequencyHz: 490, Duration: 257 * time.Millisecond}
	default:
		return Tone{}
	}
}

// ParseSound converts a sound name as returned by String back into a Sound.
func ParseSound(name string) (Sound, bool) {
	for _, s := range []Sound{SoundWallHit, SoundPaddleHit, SoundGoal} {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}
