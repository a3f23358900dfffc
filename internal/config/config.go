// Package config provides YAML-based configuration loading, validation and
// presets for the pong simulation.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all configuration for a pong match.
type Config struct {
	Field   FieldConfig   `yaml:"field"`
	Timing  TimingConfig  `yaml:"timing"`
	Ball    BallConfig    `yaml:"ball"`
	Paddles PaddleConfig  `yaml:"paddles"`
	Rules   RulesConfig   `yaml:"rules"`
	CPU     CPUConfig     `yaml:"cpu"`
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
}

// FieldConfig defines the logical playing field.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TimingConfig defines the fixed timestep and the render loop.
type TimingConfig struct {
	TickRate     int `yaml:"tick_rate"`      // Simulation ticks per second
	MaxFrameSkip int `yaml:"max_frame_skip"` // Frames longer than this many ticks are dropped; 0 disables
	FPS          int `yaml:"fps"`            // Render frame rate cap
	SpeedIndex   int `yaml:"speed_index"`    // Starting position on the speed ladder
}

// BallConfig defines the ball.
type BallConfig struct {
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`         // Units per millisecond
	BorderMargin float64 `yaml:"border_margin"` // Fraction of the field kept clear at kickoff
}

// PaddleConfig defines both paddles.
type PaddleConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"` // Units per millisecond
	LeftX      float64 `yaml:"left_x"`
	RightX     float64 `yaml:"right_x"`
	Overscroll float64 `yaml:"overscroll"`
}

// RulesConfig defines scoring and kickoff rules.
type RulesConfig struct {
	WinScore       int     `yaml:"win_score"`
	EdgeMargin     float64 `yaml:"edge_margin"`
	KickoffDelayMs int     `yaml:"kickoff_delay_ms"`
	ServeDelayMs   int     `yaml:"serve_delay_ms"`
	OnWin          string  `yaml:"on_win"` // "game_over" or "winner_screen"
}

// CPUConfig defines the computer-controlled paddle.
type CPUConfig struct {
	Side     string  `yaml:"side"` // "left", "right" or "none"
	Deadband float64 `yaml:"deadband"`
}

// DisplayConfig defines the toggleable overlays.
type DisplayConfig struct {
	Interpolation bool `yaml:"interpolation"`
	ShowFPS       bool `yaml:"show_fps"`
	ShowLimits    bool `yaml:"show_limits"`
	MessageMs     int  `yaml:"message_ms"`
}

// InputConfig defines keyboard handling.
type InputConfig struct {
	KeyHoldMs int `yaml:"key_hold_ms"` // How long a key press keeps a paddle moving
}

// AudioConfig defines the terminal audio sink.
type AudioConfig struct {
	Bell   bool     `yaml:"bell"`
	Sounds []string `yaml:"sounds"` // Sounds that ring the bell
}

// On-win modes.
const (
	OnWinGameOver     = "game_over"
	OnWinWinnerScreen = "winner_screen"
)

// Validate checks every value for range errors.
func (c Config) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return invalid("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	case c.Timing.TickRate <= 0:
		return invalid("tick_rate must be positive, got %d", c.Timing.TickRate)
	case c.Timing.MaxFrameSkip < 0:
		return invalid("max_frame_skip must not be negative, got %d", c.Timing.MaxFrameSkip)
	case c.Timing.FPS <= 0:
		return invalid("fps must be positive, got %d", c.Timing.FPS)
	case c.Timing.SpeedIndex < 0 || c.Timing.SpeedIndex >= len(pong.SpeedLadder):
		return invalid("speed_index must be in [0, %d), got %d", len(pong.SpeedLadder), c.Timing.SpeedIndex)
	case c.Ball.Size <= 0 || c.Ball.Speed <= 0:
		return invalid("ball size and speed must be positive")
	case c.Ball.BorderMargin < 0 || c.Ball.BorderMargin >= 0.5:
		return invalid("ball border_margin must be in [0, 0.5), got %v", c.Ball.BorderMargin)
	case c.Paddles.Width <= 0 || c.Paddles.Height <= 0 || c.Paddles.Speed <= 0:
		return invalid("paddle width, height and speed must be positive")
	case c.Paddles.LeftX < 0 || c.Paddles.RightX+c.Paddles.Width > c.Field.Width || c.Paddles.LeftX >= c.Paddles.RightX:
		return invalid("paddle columns %v and %v do not fit the field", c.Paddles.LeftX, c.Paddles.RightX)
	case c.Paddles.Overscroll < 0:
		return invalid("paddle overscroll must not be negative, got %v", c.Paddles.Overscroll)
	case c.Rules.WinScore <= 0:
		return invalid("win_score must be positive, got %d", c.Rules.WinScore)
	case c.Rules.EdgeMargin < 0:
		return invalid("edge_margin must not be negative, got %v", c.Rules.EdgeMargin)
	case c.Rules.KickoffDelayMs < 0 || c.Rules.ServeDelayMs < 0:
		return invalid("kickoff and serve delays must not be negative")
	case c.Rules.OnWin != OnWinGameOver && c.Rules.OnWin != OnWinWinnerScreen:
		return invalid("on_win must be %q or %q, got %q", OnWinGameOver, OnWinWinnerScreen, c.Rules.OnWin)
	case c.CPU.Deadband < 0:
		return invalid("cpu deadband must not be negative, got %v", c.CPU.Deadband)
	case c.Display.MessageMs < 0:
		return invalid("message_ms must not be negative, got %d", c.Display.MessageMs)
	case c.Input.KeyHoldMs < 0:
		return invalid("key_hold_ms must not be negative, got %d", c.Input.KeyHoldMs)
	}
	if _, ok := pong.ParseSide(c.CPU.Side); !ok {
		return invalid("cpu side must be left, right or none, got %q", c.CPU.Side)
	}
	for _, name := range c.Audio.Sounds {
		if _, ok := pong.ParseSound(name); !ok {
			return invalid("unknown sound %q", name)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Settings converts the configuration into simulation settings.
func (c Config) Settings() (pong.Settings, error) {
	if err := c.Validate(); err != nil {
		return pong.Settings{}, err
	}
	cpu, _ := pong.ParseSide(c.CPU.Side)
	onWin := pong.WinScreen
	if c.Rules.OnWin == OnWinGameOver {
		onWin = pong.WinGameOver
	}

	return pong.Settings{
		Field:           core.V(c.Field.Width, c.Field.Height),
		FixedDelta:      time.Second / time.Duration(c.Timing.TickRate),
		MaxFrameSkip:    c.Timing.MaxFrameSkip,
		Interpolation:   c.Display.Interpolation,
		SpeedIndex:      c.Timing.SpeedIndex,
		BallSize:        core.V(c.Ball.Size, c.Ball.Size),
		BallSpeed:       c.Ball.Speed,
		BorderMargin:    c.Ball.BorderMargin,
		PaddleSize:      core.V(c.Paddles.Width, c.Paddles.Height),
		PaddleSpeed:     c.Paddles.Speed,
		LeftX:           c.Paddles.LeftX,
		RightX:          c.Paddles.RightX,
		Overscroll:      c.Paddles.Overscroll,
		WinScore:        c.Rules.WinScore,
		EdgeMargin:      c.Rules.EdgeMargin,
		KickoffDelay:    ms(c.Rules.KickoffDelayMs),
		ServeDelay:      ms(c.Rules.ServeDelayMs),
		OnWin:           onWin,
		CPU:             cpu,
		CPUDeadband:     c.CPU.Deadband,
		ShowFPS:         c.Display.ShowFPS,
		ShowLimits:      c.Display.ShowLimits,
		MessageDuration: ms(c.Display.MessageMs),
	}, nil
}

// KeyHold returns how long a key press keeps a paddle moving.
func (c Config) KeyHold() time.Duration {
	return ms(c.Input.KeyHoldMs)
}

// BellSounds returns the sounds that should ring the terminal bell.
func (c Config) BellSounds() []pong.Sound {
	if !c.Audio.Bell {
		return nil
	}
	sounds := make([]pong.Sound, 0, len(c.Audio.Sounds))
	for _, name := range c.Audio.Sounds {
		if s, ok := pong.ParseSound(name); ok {
			sounds = append(sounds, s)
		}
	}
	return sounds
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
