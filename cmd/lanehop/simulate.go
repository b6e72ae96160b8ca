package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanehop/internal/core"
	"github.com/vovakirdan/lanehop/internal/games/crossy"
	"github.com/vovakirdan/lanehop/internal/registry"
	"github.com/vovakirdan/lanehop/internal/storage"
)

var (
	flagSimTicks  int
	flagBotSeed   int64
	flagSimRounds int
	flagSimSave   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <character>",
	Short: "Run headless rounds driven by a bot",
	Long: `Play rounds without a terminal UI. A simple bot picks hops and
the results are printed when each round ends or the tick limit is hit.

Examples:
  lanehop simulate chicken
  lanehop simulate snowman --ticks 10000 --seed 42
  lanehop simulate guard --rounds 5 --save`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum ticks per round")
	simulateCmd.Flags().Int64Var(&flagBotSeed, "bot-seed", 1, "Seed for the bot's choices")
	simulateCmd.Flags().IntVar(&flagSimRounds, "rounds", 1, "Number of rounds to play")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record finished rounds in the runs database")
}

func runSimulate(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown character %q\n", gameID)
		os.Exit(1)
	}

	applyGameFlags()

	created, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	game, ok := created.(*crossy.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %q cannot be simulated\n", gameID)
		os.Exit(1)
	}

	var store *storage.Store
	if flagSimSave {
		store = openStore()
		if store != nil {
			defer store.Close()
			if best, err := store.HighScore(gameID); err == nil {
				game.SeedHighScore(best)
			}
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{TickRate: flagFPS}.WithDefaults(seed)
	bot := crossy.NewBot(flagBotSeed)

	fmt.Printf("Simulating %s (%s)\n\n", game.Title(), game.Character().Environment())
	fmt.Printf("  %-5s  %-7s  %-7s  %-17s  %s\n", "Round", "Score", "Ticks", "Cause", "Best")
	fmt.Printf("  %-5s  %-7s  %-7s  %-17s  %s\n", "-----", "-----", "-----", "-----", "----")

	for i := range flagSimRounds {
		cfg.Seed = seed + int64(i)
		game.Reset(cfg)
		state := bot.Play(game, flagSimTicks)

		cause := state.Cause
		if !state.GameOver {
			cause = "tick limit"
		}
		fmt.Printf("  %-5d  %-7d  %-7d  %-17s  %d\n", i+1, state.Score, state.Ticks, cause, state.HighScore)

		if store != nil && state.GameOver {
			if _, err := store.SaveRun(storage.Run{
				GameID: gameID,
				Score:  state.Score,
				Cause:  state.Cause,
				Ticks:  state.Ticks,
			}); err != nil {
				logger.Warn("could not save run", "game", gameID, "err", err)
			}
		}
	}
}
