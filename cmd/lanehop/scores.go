package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanehop/internal/registry"
	"github.com/vovakirdan/lanehop/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <character>",
	Short: "Show best runs for a character",
	Long: `Display the best runs and overall stats for the specified character.

Examples:
  lanehop scores chicken
  lanehop scores snowman --limit 20
  lanehop scores guard --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the character")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown character %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'lanehop list' to see available characters.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		logger.Info("runs cleared", "game", gameID)
		fmt.Printf("Cleared all runs for %s.\n", title)
		return
	}

	runs, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'lanehop play %s' to set the first score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-17s  %s\n", "Rank", "Score", "Cause", "Date")
	fmt.Printf("  %-4s  %-7s  %-17s  %s\n", "----", "-----", "-----", "----")

	for i, run := range runs {
		cause := run.Cause
		if cause == "" {
			cause = "-"
		}
		fmt.Printf("  %-4d  %-7d  %-17s  %s\n", i+1, run.Score, cause, run.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  |  Best: %d  |  Average: %.1f\n", stats.Runs, stats.Best, stats.Average)
	for _, c := range stats.Causes {
		fmt.Printf("  %-17s  %d\n", c.Cause, c.Runs)
	}
}
