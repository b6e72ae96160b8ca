package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lanehop/internal/core"
	"github.com/vovakirdan/lanehop/internal/games/crossy"
	"github.com/vovakirdan/lanehop/internal/platform/tui"
	"github.com/vovakirdan/lanehop/internal/registry"
	"github.com/vovakirdan/lanehop/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <character>",
	Short: "Play as a character",
	Long: `Start a round as the specified character.

Controls:
  W/A/S/D, arrows, h/j/k/l - Hop
  P                        - Pause
  R/Space                  - Restart (after game over)
  Esc                      - Leave the round
  Ctrl+S                   - Save a screenshot
  Q/Ctrl+C                 - Quit

Difficulty options:
  easy   - Lanes start at base speed and speed up with the score
  normal - Lanes start 30% of the way to top speed
  hard   - Lanes start 70% of the way to top speed
  fixed  - Lane speeds stay as configured

Examples:
  lanehop play chicken
  lanehop play snowman --difficulty hard
  lanehop play android --config ./my-lanes.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd, simulateCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// applyGameFlags passes --config and --difficulty to the game package.
func applyGameFlags() {
	crossy.SetConfigPath(flagConfig)
	crossy.SetDifficultyPreset(flagDifficulty)
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	// Seed stays zero here so each round picks its own unless --seed is set
	return cfg.WithDefaults(0)
}

// openStore opens the runs database. Play goes on without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("could not open runs database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown character %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'lanehop list' to see available characters.")
		os.Exit(1)
	}

	applyGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	_, runErr := tui.Run(game, store, terminalConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
