package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanehop/internal/core"
)

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestSessionFlow(t *testing.T) {
	store := openTestStore(t)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewSessionModel(store, cfg, log.New(io.Discard))

	m, cmd := sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.stage != stageDifficulty || m.pending == nil || m.pending.ID() != "alpha" {
		t.Fatalf("enter should open the difficulty picker for alpha, stage %d", m.stage)
	}
	if cmd != nil {
		t.Error("the menu's quit must not end the session")
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.stage != stageGame || cmd == nil {
		t.Fatalf("picking a difficulty should start the game, stage %d", m.stage)
	}
	game := m.game.game.(*scriptedGame)
	if game.preset != "easy" || game.resets != 1 {
		t.Errorf("preset = %q resets = %d, want easy and one reset", game.preset, game.resets)
	}

	for range 2 {
		m, _ = sessionStep(t, m, TickMsg(time.Now()))
	}
	if !m.game.gameState.GameOver {
		t.Fatal("scripted round should be over after two ticks")
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.stage != stageMenu || m.quitting {
		t.Fatalf("esc in game should return to the menu, stage %d", m.stage)
	}
	if m.menu.items[0].Best != 2 {
		t.Errorf("menu best = %d, want the saved run", m.menu.items[0].Best)
	}
	if m.preset != "easy" {
		t.Errorf("session should remember the last preset, got %q", m.preset)
	}
}

func TestSessionScoreboardAndQuit(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewSessionModel(nil, cfg, log.New(io.Discard))

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.stage != stageScores {
		t.Fatalf("tab should open the scoreboard, stage %d", m.stage)
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.stage != stageMenu {
		t.Fatalf("esc should return to the menu, stage %d", m.stage)
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.stage != stageMenu || m.pending != nil {
		t.Error("esc in the difficulty picker should drop the pending character")
	}

	m, cmd := sessionStep(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q should end the session")
	}
	if m.View() != "" {
		t.Error("a finished session renders nothing")
	}
}

func TestSessionResizeTracksConfig(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, log.New(io.Discard))
	m, _ = sessionStep(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config = %dx%d, want 120x40", m.config.ScreenW, m.config.ScreenH)
	}
}
