// pong is a fixed-timestep pong game for the terminal.
//
// Usage:
//
//	pong                 - Start menu (vs CPU, two players, history)
//	pong play            - Play a match directly
//	pong serve           - Start SSH server for remote play
//	pong simulate        - Run a headless match and print the final state
//	pong history         - Show recorded matches
//	pong config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Custom pong.yaml
//	--preset <name>   - classic or enhanced
//	--cpu <side>      - CPU paddle: left, right or none
//	--fps <rate>      - Render frame rate (default: from config)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.pong/matches.db)
//	--log-file <path> - Write logs to a file while the TUI runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagCPU      string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - the classic paddle game in your terminal",
	Long: `Pong runs a fixed-timestep simulation of the classic paddle game and
renders it in the terminal. Without a subcommand it opens the start menu.

Available commands:
  play      - Play a match directly
  serve     - Start SSH server for remote play
  simulate  - Run a headless, deterministic match
  history   - View recorded matches
  config    - Print the effective configuration

Examples:
  pong
  pong play --cpu right
  pong play --preset classic
  pong serve --ssh :2222
  pong simulate --seed 7 --seconds 120
  pong history --plain`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pong.yaml")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Rule preset: classic, enhanced")
	rootCmd.PersistentFlags().StringVar(&flagCPU, "cpu", "", "CPU paddle: left, right or none (default: from config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Render frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/matches.db", "Path to match database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
