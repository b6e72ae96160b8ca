// lanehop is an endless lane-hopping runner for the terminal.
//
// Usage:
//
//	lanehop list               - List playable characters
//	lanehop play <character>   - Play as a character
//	lanehop menu               - Pick a character interactively
//	lanehop serve              - Start SSH server for remote play
//	lanehop scores <character> - Show best runs for a character
//	lanehop simulate <char>    - Let the bot play a headless round
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible rounds
//	--db <path>       - Set database path (default: ~/.lanehop/runs.db)
//	--log-file <path> - Write round events to a log file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanehop/internal/games/crossy"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagVerbose bool
)

// logger is shared by every subcommand. It discards output unless
// --log-file is set, since the TUI owns the terminal.
var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lanehop",
	Short: "Lane Hop - hop across endless roads, rivers and rails",
	Long: `Lane Hop is an endless runner for the terminal. Hop forward across
procedurally generated roads, rivers, rail crossings and hazard zones.
Every character plays in its own world.

Available commands:
  list      - Show all playable characters
  play      - Play as a specific character
  menu      - Interactive character picker
  serve     - Start SSH server for remote play
  scores    - View best runs
  simulate  - Run a headless round driven by a bot

Examples:
  lanehop list
  lanehop play chicken
  lanehop menu
  lanehop serve --ssh :2222
  lanehop scores snowman
  lanehop simulate android --ticks 5000`,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lanehop/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug events")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setupLogging opens the log file, if any, and hands the logger to the game.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "lanehop",
		})
	}
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	crossy.SetLogger(logger)
	return nil
}
