package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanehop/internal/config"
	"github.com/vovakirdan/lanehop/internal/games/crossy"
	"github.com/vovakirdan/lanehop/internal/platform/tui"
	"github.com/vovakirdan/lanehop/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a character interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a character,
then choose a difficulty. Esc during a round returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select character
  Tab          - Scoreboard
  Q            - Quit

Examples:
  lanehop menu
  lanehop menu --fps 30
  lanehop menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	applyGameFlags()
	store := openStore()
	cfg := terminalConfig()
	difficulty := config.ParsePreset(flagDifficulty)

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		preset, quit, err := tui.RunDifficultySelector(game.Title(), difficulty, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if quit {
			break
		}
		if preset == "" {
			continue
		}
		difficulty = preset
		if c, ok := game.(*crossy.Game); ok {
			c.SetDifficulty(string(preset))
		}

		// Fresh seed per round unless --seed pins it
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, runCfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
