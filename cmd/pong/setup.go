package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// setup is the effective configuration after files, preset and flags.
type setup struct {
	cfg      config.Config
	source   string
	settings pong.Settings
}

// loadSetup loads the configuration and applies the preset and flag overrides.
func loadSetup() (setup, error) {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return setup{}, err
	}
	if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
		return setup{}, err
	}
	if flagCPU != "" {
		cfg.CPU.Side = flagCPU
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}

	settings, err := cfg.Settings()
	if err != nil {
		return setup{}, err
	}
	return setup{cfg: cfg, source: source, settings: settings}, nil
}

// mustSetup is loadSetup for commands that cannot continue without it.
func mustSetup() setup {
	s, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return s
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// newLogger creates the logger for a command. Interactive commands own the
// terminal, so without --log-file their logs are discarded.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the match database, warning and continuing without it on failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		logger.Warn("could not open match database", "error", err)
		// Continue without storage - the game still works
		return nil
	}
	return store
}
