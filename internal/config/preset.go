package config

import "fmt"

// Preset represents a named set of rule overrides.
type Preset string

const (
	// PresetClassic is the original arcade feel: a coarse 24Hz simulation
	// without interpolation that stops when the match is decided.
	PresetClassic Preset = "classic"
	// PresetEnhanced runs at 60Hz with interpolation and the winner screen.
	PresetEnhanced Preset = "enhanced"
)

// Presets lists the available presets.
var Presets = []Preset{PresetClassic, PresetEnhanced}

// ApplyPreset modifies the config based on a preset. An empty preset leaves
// the config unchanged.
func ApplyPreset(cfg *Config, preset Preset) error {
	switch preset {
	case "":
	case PresetClassic:
		cfg.Timing.TickRate = 24
		cfg.Display.Interpolation = false
		cfg.Paddles.Overscroll = 0
		cfg.Rules.OnWin = OnWinGameOver
	case PresetEnhanced:
		cfg.Timing.TickRate = 60
		cfg.Display.Interpolation = true
		cfg.Paddles.Overscroll = cfg.Paddles.Height / 8
		cfg.Rules.OnWin = OnWinWinnerScreen
	default:
		return fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, preset)
	}
	return nil
}
