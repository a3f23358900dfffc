package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Sink plays the sound triggers emitted by the simulation.
type Sink interface {
	Play(s pong.Sound)
}

// BellSink rings the terminal bell for a configured subset of sounds.
// Terminals cannot play tones, so every trigger is also logged with the
// tone it stands for.
type BellSink struct {
	w      io.Writer
	ring   map[pong.Sound]bool
	logger *log.Logger
}

// NewBellSink creates a sink that writes BEL to w for the given sounds.
// A nil writer only logs.
func NewBellSink(w io.Writer, sounds []pong.Sound, logger *log.Logger) *BellSink {
	ring := make(map[pong.Sound]bool, len(sounds))
	for _, s := range sounds {
		ring[s] = true
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BellSink{w: w, ring: ring, logger: logger}
}

// Play implements Sink.
func (b *BellSink) Play(s pong.Sound) {
	tone := pong.ToneFor(s)
	b.logger.Debug("sound", "name", s, "hz", tone.FrequencyHz, "duration", tone.Duration)
	if b.w == nil || !b.ring[s] {
		return
	}
	//nolint:errcheck // A missed bell is not worth interrupting the frame
	io.WriteString(b.w, "\a")
}
