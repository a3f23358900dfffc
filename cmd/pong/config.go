package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a match would use, after the config file,
--preset and flag overrides, as YAML.

Config search order:
  --config <path>  ->  ~/.pong/pong.yaml  ->  ./configs/pong.yaml  ->  built-in defaults

Examples:
  pong config
  pong config --preset classic
  pong config --default > ~/.pong/pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefault {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	s := mustSetup()
	out, err := config.Marshal(s.cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# source: %s\n", s.source)
	if flagPreset != "" {
		fmt.Printf("# preset: %s\n", flagPreset)
	}
	fmt.Print(string(out))
}
