package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lanehop/internal/config"
	"github.com/vovakirdan/lanehop/internal/core"
)

// difficultyOption is one row of the difficulty picker.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
	blurb  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyFixed, "Fixed", "Lane speeds never change"},
	{config.DifficultyEasy, "Easy", "Lanes start at base speed and speed up as you score"},
	{config.DifficultyNormal, "Normal", "Lanes start a little faster"},
	{config.DifficultyHard, "Hard", "Lanes start close to top speed"},
}

// DifficultyModel lets users pick a difficulty preset before a round.
type DifficultyModel struct {
	title     string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  config.DifficultyPreset
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a picker headed by title. The cursor starts
// on current when it names a known preset, otherwise on config.DefaultPreset.
func NewDifficultyModel(title string, current config.DifficultyPreset, width, height int) DifficultyModel {
	if current == "" {
		current = config.DefaultPreset
	}
	m := DifficultyModel{
		title:     title,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, opt := range difficultyOptions {
		if opt.preset == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = difficultyOptions[m.cursor].preset
		return m, tea.Quit
	}
	return m, nil
}

// View renders the picker.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		line := opt.label
		if i == m.cursor {
			cursor = "> "
			line = activeStyle.Render(line)
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(difficultyOptions[m.cursor].blurb), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen preset, or "" if none was chosen.
func (m DifficultyModel) Selected() config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector shows the picker. It returns "" when the user
// backs out, and quit reports whether they asked to leave entirely.
func RunDifficultySelector(title string, current config.DifficultyPreset, cfg core.RuntimeConfig) (preset config.DifficultyPreset, quit bool, err error) {
	model := NewDifficultyModel(title, current, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return "", true, nil
	}
	return m.Selected(), m.IsQuitting(), nil
}
