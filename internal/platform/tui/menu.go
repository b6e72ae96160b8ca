package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lanehop/internal/core"
	"github.com/vovakirdan/lanehop/internal/registry"
	"github.com/vovakirdan/lanehop/internal/storage"
)

// menuRowWidth is the width of one character row, best score included.
const menuRowWidth = 30

// MenuItem represents a selectable character in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int // Stored best score, 0 without storage
}

// menuOutcome is how the menu was left.
type menuOutcome int

const (
	menuOpen menuOutcome = iota
	menuPicked
	menuScoreboard
	menuQuit
)

// MenuModel is the Bubble Tea model for the character picker.
type MenuModel struct {
	items   []MenuItem
	cursor  int
	config  core.RuntimeConfig // Tracks resizes for the screens that follow
	keys    *KeyMapper
	help    help.Model
	outcome menuOutcome
}

// NewMenuModel lists every registered character, with its stored best
// when store is not nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if store == nil {
			continue
		}
		if best, err := store.HighScore(g.ID); err == nil {
			items[i].Best = best
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW
	return MenuModel{items: items, config: cfg, keys: NewKeyMapper(), help: h}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.outcome = menuQuit
	case MenuActionScoreboard:
		m.outcome = menuScoreboard
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		m.outcome = menuPicked
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
		return m, nil
	case MenuActionDown:
		m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
		return m, nil
	default:
		return m, nil
	}
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.outcome == menuQuit {
		return ""
	}
	width := m.config.ScreenW

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	rowStyle := lipgloss.NewStyle().Width(menuRowWidth)
	activeStyle := rowStyle.Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("L A N E   H O P"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Who is crossing today?"), width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		style, marker := rowStyle, "  "
		if i == m.cursor {
			style, marker = activeStyle, "> "
		}
		b.WriteString(centerText(style.Render(marker+menuRow(item)), width))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(m.items[m.cursor].Description), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys.Menu), width))
	b.WriteString("\n")
	return b.String()
}

// menuRow right-aligns the stored best after the character name.
func menuRow(item MenuItem) string {
	if item.Best == 0 {
		return item.Title
	}
	best := fmt.Sprintf("best %d", item.Best)
	gap := max(menuRowWidth-2-lipgloss.Width(item.Title)-len(best), 1)
	return item.Title + strings.Repeat(" ", gap) + best
}

// Selected returns the picked character, or nil if none was picked.
func (m MenuModel) Selected() *MenuItem {
	if m.outcome != menuPicked {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.outcome == menuQuit
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.outcome == menuScoreboard
}

// Config returns the runtime config, updated by any resize.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the character picker until the user leaves it.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config(), WantsScoreboard: m.WantsScoreboard()}
	if sel := m.Selected(); sel != nil {
		res.GameID = sel.GameID
	} else if !res.WantsScoreboard {
		res.Quit = true
	}
	return res, nil
}
