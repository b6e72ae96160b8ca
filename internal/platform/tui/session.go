package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanehop/internal/config"
	"github.com/vovakirdan/lanehop/internal/core"
	"github.com/vovakirdan/lanehop/internal/registry"
	"github.com/vovakirdan/lanehop/internal/storage"
)

// sessionStage is the screen a session is showing.
type sessionStage int

const (
	stageMenu sessionStage = iota
	stageDifficulty
	stageGame
	stageScores
)

// difficultySetter is implemented by games that take a difficulty preset
// per instance.
type difficultySetter interface {
	SetDifficulty(preset string)
}

// SessionModel drives one SSH connection: character menu, difficulty
// picker, game, and back, with the scoreboard reachable from the menu.
// Child models end their screen by returning tea.Quit; the session
// swallows those and switches stage instead.
type SessionModel struct {
	stage      sessionStage
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	menu       MenuModel
	difficulty DifficultyModel
	scores     ScoreboardModel
	game       GameModel
	pending    registry.Game           // Picked character waiting for a difficulty
	preset     config.DifficultyPreset // Last preset picked in this session
	quitting   bool
}

// NewSessionModel creates a session opened on the character menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	return SessionModel{
		store:  store,
		logger: logger,
		config: cfg,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the current stage.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = ws.Width, ws.Height
	}

	switch m.stage {
	case stageDifficulty:
		return m.updateDifficulty(msg)
	case stageGame:
		return m.updateGame(msg)
	case stageScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// toMenu rebuilds the menu so it shows fresh bests.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.stage = stageMenu
	m.pending = nil
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.WantsScoreboard():
		m.stage = stageScores
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().GameID
		game, err := registry.Create(id)
		if err != nil {
			m.logger.Error("cannot create game", "game", id, "err", err)
			return m.toMenu()
		}
		m.pending = game
		m.stage = stageDifficulty
		m.difficulty = NewDifficultyModel(game.Title(), m.preset, m.config.ScreenW, m.config.ScreenH)
		return m, m.difficulty.Init()
	}
	return m, cmd
}

func (m SessionModel) updateDifficulty(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.difficulty.Update(msg)
	m.difficulty = next.(DifficultyModel)

	switch {
	case m.difficulty.IsQuitting():
		return m.quit()
	case m.difficulty.WantsBack():
		return m.toMenu()
	case m.difficulty.Selected() != "":
		m.preset = m.difficulty.Selected()
		return m.startGame()
	}
	return m, cmd
}

// startGame launches the pending character with the chosen preset.
func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	game := m.pending
	if ds, ok := game.(difficultySetter); ok {
		ds.SetDifficulty(string(m.preset))
	}

	m.config.Seed = time.Now().UnixNano()
	m.logger.Info("game started", "game", game.ID(), "difficulty", m.preset)

	m.game = NewGameModel(game, m.store, m.config, m.logger)
	m.pending = nil
	m.stage = stageGame
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	switch {
	case m.game.IsQuitting():
		return m.quit()
	case m.game.BackToMenu():
		m.logger.Info("game left", "game", m.game.game.ID(), "score", m.game.gameState.Score)
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		return m.quit()
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// View renders the current stage.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.stage {
	case stageDifficulty:
		return m.difficulty.View()
	case stageGame:
		return m.game.View()
	case stageScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}
