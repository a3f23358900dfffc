package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded defaults differ from DefaultConfig():\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestDefaultSettingsMatchSimulation(t *testing.T) {
	got, err := DefaultConfig().Settings()
	if err != nil {
		t.Fatal(err)
	}
	want := pong.DefaultSettings()
	if got != want {
		t.Errorf("Settings() = %+v\nwant %+v", got, want)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	_, source, err := LoadWithSource("")
	if err != nil {
		t.Fatal(err)
	}
	if source != "embedded" {
		t.Errorf("source = %q, want embedded", source)
	}

	writeFile(t, filepath.Join(work, "configs", ConfigFile), "rules:\n  win_score: 5\n")
	cfg, source, err := LoadWithSource("")
	if err != nil {
		t.Fatal(err)
	}
	if source != filepath.Join("configs", ConfigFile) || cfg.Rules.WinScore != 5 {
		t.Errorf("local config: source=%q win_score=%d", source, cfg.Rules.WinScore)
	}

	userPath := filepath.Join(home, ".pong", ConfigFile)
	writeFile(t, userPath, "rules:\n  win_score: 7\n")
	cfg, source, err = LoadWithSource("")
	if err != nil {
		t.Fatal(err)
	}
	if source != userPath || cfg.Rules.WinScore != 7 {
		t.Errorf("user config: source=%q win_score=%d", source, cfg.Rules.WinScore)
	}

	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "rules:\n  win_score: 3\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rules.WinScore != 3 {
		t.Errorf("custom config win_score = %d, want 3", cfg.Rules.WinScore)
	}
	if cfg.Field.Width != 180 {
		t.Errorf("partial config lost defaults: field width %v", cfg.Field.Width)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "rules: [not, a, map]\n")
	if _, err := Load(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalidPath := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalidPath, "timing:\n  tick_rate: 0\n")
	if _, err := Load(invalidPath); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid values: err = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero field", func(c *Config) { c.Field.Width = 0 }},
		{"zero tick rate", func(c *Config) { c.Timing.TickRate = 0 }},
		{"negative frame skip", func(c *Config) { c.Timing.MaxFrameSkip = -1 }},
		{"speed index past ladder", func(c *Config) { c.Timing.SpeedIndex = len(pong.SpeedLadder) }},
		{"border too wide", func(c *Config) { c.Ball.BorderMargin = 0.5 }},
		{"paddle outside field", func(c *Config) { c.Paddles.RightX = 180 }},
		{"paddles crossed", func(c *Config) { c.Paddles.LeftX = 175 }},
		{"zero win score", func(c *Config) { c.Rules.WinScore = 0 }},
		{"negative delay", func(c *Config) { c.Rules.KickoffDelayMs = -1 }},
		{"unknown on_win", func(c *Config) { c.Rules.OnWin = "confetti" }},
		{"unknown cpu side", func(c *Config) { c.CPU.Side = "both" }},
		{"unknown sound", func(c *Config) { c.Audio.Sounds = []string{"boom"} }},
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
			if _, err := cfg.Settings(); err == nil {
				t.Error("Settings() accepted an invalid config")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset        Preset
		tick          time.Duration
		interpolation bool
		onWin         pong.WinMode
	}{
		{PresetClassic, time.Second / 24, false, pong.WinGameOver},
		{PresetEnhanced, time.Second / 60, true, pong.WinScreen},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			if err := ApplyPreset(&cfg, tt.preset); err != nil {
				t.Fatal(err)
			}
			s, err := cfg.Settings()
			if err != nil {
				t.Fatal(err)
			}
			if s.FixedDelta != tt.tick || s.Interpolation != tt.interpolation || s.OnWin != tt.onWin {
				t.Errorf("settings = tick %v interp %v onWin %v", s.FixedDelta, s.Interpolation, s.OnWin)
			}
		})
	}

	cfg := DefaultConfig()
	if err := ApplyPreset(&cfg, "arcade"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown preset err = %v", err)
	}
}

func TestBellSounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Audio.Sounds = []string{"goal", "wall-hit"}
	got := cfg.BellSounds()
	if !reflect.DeepEqual(got, []pong.Sound{pong.SoundGoal, pong.SoundWallHit}) {
		t.Errorf("BellSounds() = %v", got)
	}
	cfg.Audio.Bell = false
	if got := cfg.BellSounds(); len(got) != 0 {
		t.Errorf("bell disabled but BellSounds() = %v", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("marshalled config did not parse back to the defaults")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
