package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/realm-runner/internal/platform/tui"
	"github.com/vovakirdan/realm-runner/internal/score"
	"github.com/vovakirdan/realm-runner/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs.

On a terminal this opens an interactive table; use --plain for text output.

Examples:
  runner scores
  runner scores --plain --limit 5
  runner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show in plain mode")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain text table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history (keeps the high score)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Println("Best Runs - Realm Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-5s  %s\n", "Rank", "Score", "Distance", "Falls", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-5s  %s\n", "----", "-----", "--------", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-10s  %-5d  %s\n",
			i+1, r.Score, fmt.Sprintf("%.0fm", r.Distance), r.Falls, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.Float(score.HighScoreKey, 0); err == nil {
		fmt.Printf("Best: %d\n", int(high))
	}
	return nil
}
