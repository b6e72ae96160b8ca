// Package crossy implements the lane-hopping endless runner. The player hops
// across procedurally generated roads, rivers, rail crossings and hazard lanes.
package crossy

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanehop/internal/config"
	"github.com/vovakirdan/lanehop/internal/core"
	"github.com/vovakirdan/lanehop/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// logger receives round lifecycle events. Discarded unless the CLI sets one.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes game logs to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a Round to the registry.Game interface for one character.
type Game struct {
	character Character
	cfg       *config.CrossyConfig
	runtime   core.RuntimeConfig
	round     *Round
	preset    config.DifficultyPreset // Overrides the CLI preset when set
	highScore int                     // Best score across rounds of this instance
	paused    bool
}

// New creates a game for the given character.
func New(c Character) *Game {
	return &Game{character: c}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.character.ID()
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.character.Name()
}

// Description summarizes the character's world for menus.
func (g *Game) Description() string {
	return g.character.Environment().Blurb()
}

// Character returns the playable character.
func (g *Game) Character() Character {
	return g.character
}

// SetDifficulty picks the preset used from the next Reset on, overriding
// SetDifficultyPreset for this instance only.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// Reset discards the current round and starts a new one.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCrossy(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultCrossyConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	g.cfg = &cfg

	g.paused = false
	g.round = NewRound(g.cfg, g.character.Environment(), runtime.Seed, g.highScore, logger)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round == nil || g.round.Result().Terminal {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.round.Tick(intentFrom(in))
	if res.Terminal && res.HighScore > g.highScore {
		g.highScore = res.HighScore
	}
	return core.StepResult{State: g.State()}
}

// intentFrom picks one hop direction from the frame: Up > Down > Left > Right.
func intentFrom(in core.InputFrame) Direction {
	switch in.First(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight) {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// SeedHighScore raises the carried-over best score, e.g. from storage.
func (g *Game) SeedHighScore(best int) {
	if best > g.highScore {
		g.highScore = best
	}
	if g.round != nil {
		g.round.raiseHighScore(best)
	}
}

// Round returns the running round, or nil before the first Reset.
func (g *Game) Round() *Round {
	return g.round
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{HighScore: g.highScore}
	}
	res := g.round.Result()
	return core.GameState{
		Score:        res.Score,
		HighScore:    res.HighScore,
		NewHighScore: res.IsHighScore,
		GameOver:     res.Terminal,
		Paused:       g.paused,
		Cause:        res.Outcome.String(),
		Ticks:        g.round.Ticks(),
	}
}

// Register one game per character
func init() {
	for _, c := range Characters {
		registry.Register(c.ID(), func() registry.Game {
			return New(c)
		})
	}
}
