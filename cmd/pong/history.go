package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagHistoryPlayer string
	flagHistoryAll    bool
	flagHistoryPlain  bool
	flagHistoryClear  bool
	flagHistoryLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded matches",
	Long: `Display recently recorded matches and a win tally.

Matches are recorded once they are decided, or when a match with at least
one goal is abandoned (winner "none").

Examples:
  pong history                 # interactive table
  pong history --plain         # print to stdout
  pong history --player alice  # matches played over SSH by alice
  pong history --all --plain
  pong history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryPlayer, "player", "local", "Player whose matches to show")
	historyCmd.Flags().BoolVar(&flagHistoryAll, "all", false, "Show matches of every player")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print the history instead of opening the table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the selected matches")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of matches to print with --plain")
}

func runHistory(_ *cobra.Command, _ []string) {
	player := flagHistoryPlayer
	if flagHistoryAll {
		player = ""
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagHistoryClear:
		if err := store.ClearMatches(player); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing matches: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Match history cleared.")

	case flagHistoryPlain:
		if err := printHistory(store, player); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
			os.Exit(1)
		}

	default:
		width, height := terminalSize()
		if _, err := tui.RunHistory(store, flagHistoryPlayer, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printHistory(store *storage.Store, player string) error {
	matches, err := store.RecentMatches(player, flagHistoryLimit)
	if err != nil {
		return err
	}
	tally, err := store.Tally(player)
	if err != nil {
		return err
	}

	title := "Match History - " + player
	if player == "" {
		title = "Match History - all players"
	}
	fmt.Println(title)
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong play' and score a goal to get on the board!")
		return nil
	}

	// Print header
	format := "  %-12s  %-10s  %-7s  %-7s  %-6s  %s\n"
	fmt.Printf(format, "Date", "Player", "Score", "Winner", "CPU", "Time")
	fmt.Printf(format, "----", "------", "-----", "------", "---", "----")

	for _, m := range matches {
		row := tui.MatchRow(m)
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		fmt.Printf(format, cells...)
	}

	fmt.Println()
	fmt.Println(tui.TallyLine(tally))
	return nil
}
