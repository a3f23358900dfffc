package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a pong match directly, skipping the menu.

Controls:
  W/S        - Left paddle
  Up/Down    - Right paddle (both sets move your paddle against the CPU)
  P          - Pause
  R          - Reset the match
  Z/X        - Slower/faster simulation
  I/F/L      - Toggle interpolation, FPS readout, field limits
  Ctrl+S     - Save a text screenshot to ~/.pong/screenshots
  Q/Esc      - Quit

Examples:
  pong play
  pong play --cpu right
  pong play --cpu none        # two players on one keyboard
  pong play --preset classic
  pong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// tuiOptions builds the options for a terminal match from the effective setup.
func tuiOptions(s setup, width, height int) tui.Options {
	return tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: s.cfg.Timing.FPS,
			Seed:     flagSeed,
		},
		Settings: s.settings,
		KeyHold:  s.cfg.KeyHold(),
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	runInteractive(tui.Run)
}

func runMenu(_ *cobra.Command, _ []string) {
	runInteractive(tui.RunSession)
}

// runInteractive wires config, logging, storage and audio into a TUI program.
func runInteractive(run func(tui.Options) error) {
	s := mustSetup()

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", s.source)

	width, height := terminalSize()
	opts := tuiOptions(s, width, height)
	opts.Logger = logger
	opts.Audio = tui.NewBellSink(os.Stdout, s.cfg.BellSounds(), logger)
	opts.Store = openStore(logger)

	// Run the game
	runErr := run(opts)

	// Close store before potential exit
	if opts.Store != nil {
		opts.Store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
