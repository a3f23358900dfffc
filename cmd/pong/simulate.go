package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagSimSeconds float64
	flagSimFrameMs int
	flagSimRecord  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless match and print the final state",
	Long: `Run the simulation without a terminal UI, feeding it frames of equal
length, and print a YAML report: frames, goals, sound counts and the final
snapshot. Only the CPU paddle moves; the other paddle stays idle.

The same seed, config and frame length always produce the same report.

Examples:
  pong simulate --seed 7
  pong simulate --seed 7 --seconds 300 --frame-ms 33
  pong simulate --preset classic --cpu right
  pong simulate --record            # store the result in the match history`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 60, "Wall-clock seconds to simulate")
	simulateCmd.Flags().IntVar(&flagSimFrameMs, "frame-ms", 16, "Length of each rendered frame in milliseconds")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record the match in the history database")
}

func runSimulate(_ *cobra.Command, _ []string) {
	s := mustSetup()
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	total := time.Duration(flagSimSeconds * float64(time.Second))
	frame := time.Duration(flagSimFrameMs) * time.Millisecond
	logger.Debug("simulating", "seed", seed, "total", total, "frame", frame, "config", s.source)

	g := pong.New(s.settings, seed)
	report, simErr := pong.Simulate(g, total, frame)
	if simErr != nil {
		logger.Error("simulation aborted", "error", simErr)
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))

	if flagSimRecord {
		recordSimulation(g, logger)
	}
	closeLog()
	if simErr != nil {
		os.Exit(1)
	}
}

func recordSimulation(g *pong.Game, logger *log.Logger) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database", "error", err)
		return
	}
	defer store.Close()

	score := g.Score()
	_, err = store.SaveMatch(storage.Match{
		Player:     "simulate",
		LeftScore:  score.Left,
		RightScore: score.Right,
		Winner:     g.Winner().String(),
		CPUSide:    g.Settings().CPU.String(),
		Seed:       g.Seed(),
		Duration:   g.VirtualTime(),
	})
	if err != nil {
		logger.Warn("could not save match", "error", err)
	}
}
