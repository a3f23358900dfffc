package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultConfig returns the default configuration. It matches
// defaults/pong.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:  180,
			Height: 100,
		},
		Timing: TimingConfig{
			TickRate:     60,
			MaxFrameSkip: 5,
			FPS:          60,
			SpeedIndex:   6,
		},
		Ball: BallConfig{
			Size:         1,
			Speed:        0.04,
			BorderMargin: 0.05,
		},
		Paddles: PaddleConfig{
			Width:      1,
			Height:     8,
			Speed:      0.06,
			LeftX:      10,
			RightX:     170,
			Overscroll: 1,
		},
		Rules: RulesConfig{
			WinScore:       11,
			EdgeMargin:     1.1,
			KickoffDelayMs: 2000,
			ServeDelayMs:   1000,
			OnWin:          OnWinWinnerScreen,
		},
		CPU: CPUConfig{
			Side:     "left",
			Deadband: 2,
		},
		Display: DisplayConfig{
			Interpolation: true,
			MessageMs:     3000,
		},
		Input: InputConfig{
			KeyHoldMs: 150,
		},
		Audio: AudioConfig{
			Bell:   true,
			Sounds: []string{"goal"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
