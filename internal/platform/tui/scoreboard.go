package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lanehop/internal/registry"
	"github.com/vovakirdan/lanehop/internal/storage"
)

const (
	wideScoreboard  = 80  // From this width the stats panel sits beside the table
	statsPanelWidth = 28  // Stats panel width including padding
	maxScores       = 100 // Runs loaded per character
	maxCauses       = 4   // Causes of death charted in the stats panel
	causeBarWidth   = 6   // Length of the bar for the most common cause
)

// ScoresKeyMap defines the scoreboard bindings.
type ScoresKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoresKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoresKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Back, k.Quit}}
}

// DefaultScoresKeyMap returns the scoreboard bindings.
func DefaultScoresKeyMap() ScoresKeyMap {
	return ScoresKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next character")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs of one character at a time along
// with a summary of how that character's runs ended.
type ScoreboardModel struct {
	characters []registry.GameInfo
	current    int // Index into characters
	store      *storage.Store
	runs       []storage.Run
	stats      *storage.Stats
	table      table.Model
	help       help.Model
	keys       ScoresKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
	wide       bool // Stats panel beside the table rather than under it
	showTicks  bool // Table is wide enough for the ticks column
}

// NewScoreboardModel creates a scoreboard opened on the first character.
// A nil store shows empty tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		characters: registry.List(),
		store:      store,
		keys:       DefaultScoresKeyMap(),
		help:       h,
		width:      width,
		height:     height,
	}
	m.load()
	return m
}

// load fetches runs and stats of the current character and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.characters) > 0 {
		id := m.characters[m.current].ID
		if runs, err := m.store.TopScores(id, maxScores); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.Stats(id); err == nil {
			m.stats = stats
		}
	}
	m.layout()
}

// layout sizes the table for the current window and fills its rows.
func (m *ScoreboardModel) layout() {
	m.wide = m.width >= wideScoreboard

	avail := m.width - 4 // Table border and padding
	height := m.height - 9
	if m.wide {
		avail -= statsPanelWidth + 4
	} else {
		height -= len(m.statsLines())
	}

	// Cell padding adds two per column.
	fixed := 4 + 6 + 7 + 12 + 10
	m.showTicks = avail >= fixed+10
	if !m.showTicks {
		fixed -= 7 + 2
	}
	causeW := min(max(avail-fixed, 10), 22)

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Cause", Width: causeW},
	}
	if m.showTicks {
		columns = append(columns, table.Column{Title: "Ticks", Width: 7})
	}
	columns = append(columns, table.Column{Title: "Date", Width: 12})

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		row := table.Row{fmt.Sprint(i + 1), fmt.Sprint(r.Score), causeOrDash(r.Cause)}
		if m.showTicks {
			row = append(row, fmt.Sprint(r.Ticks))
		}
		rows[i] = append(row, r.CreatedAt.Format("Jan 02 15:04"))
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
		table.WithStyles(styles),
	)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// cycle moves to the next or previous character, wrapping around.
func (m *ScoreboardModel) cycle(step int) {
	n := len(m.characters)
	if n == 0 {
		return
	}
	m.current = (m.current + step + n) % n
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	title := "BEST RUNS"
	if len(m.characters) > 0 {
		title = "BEST RUNS - " + m.characters[m.current].Title
	}

	runs := boxStyle.Render(m.tableView())
	stats := strings.Join(m.statsLines(), "\n")

	var body string
	switch {
	case stats == "":
		body = centerText(runs, m.width)
	case m.wide:
		panel := boxStyle.Width(statsPanelWidth).Render(stats)
		body = centerText(lipgloss.JoinHorizontal(lipgloss.Top, runs, "  ", panel), m.width)
	default:
		body = lipgloss.JoinVertical(lipgloss.Left, centerText(runs, m.width), dimStyle.Render(stats))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabsView renders one tab per character, or just the current one when
// the tabs do not fit.
func (m ScoreboardModel) tabsView() string {
	if len(m.characters) == 0 {
		return ""
	}
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	idle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)

	tabs := make([]string, len(m.characters))
	for i, c := range m.characters {
		st := idle
		if i == m.current {
			st = active
		}
		tabs[i] = st.Render(truncate(c.Title, 12))
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.characters[m.current].Title)
	}
	return centerText(line, m.width)
}

func (m ScoreboardModel) tableView() string {
	if len(m.runs) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2).
			Render("No runs recorded yet.\nHop across a few lanes first!")
	}
	return m.table.View()
}

// statsLines summarizes every run of the current character.
func (m ScoreboardModel) statsLines() []string {
	if m.stats == nil || m.stats.Runs == 0 {
		return nil
	}
	lines := []string{
		fmt.Sprintf("Runs     %d", m.stats.Runs),
		fmt.Sprintf("Best     %d", m.stats.Best),
		fmt.Sprintf("Average  %.1f", m.stats.Average),
	}
	if bars := causeBars(m.stats.Causes, maxCauses); len(bars) > 0 {
		lines = append(lines, "", "How runs ended")
		lines = append(lines, bars...)
	}
	return lines
}

// causeBars charts the most common causes of death, one line each,
// with bars scaled to the most common one.
func causeBars(causes []storage.CauseCount, limit int) []string {
	if len(causes) > limit {
		causes = causes[:limit]
	}
	nameW, most := 0, 0
	for _, c := range causes {
		nameW = max(nameW, len([]rune(c.Cause)))
		most = max(most, c.Runs)
	}

	lines := make([]string, 0, len(causes))
	for _, c := range causes {
		n := max(1, c.Runs*causeBarWidth/most)
		lines = append(lines, fmt.Sprintf("%-*s %s %d", nameW, c.Cause, strings.Repeat("█", n), c.Runs))
	}
	return lines
}

// truncate shortens s to at most n runes, marking the cut with a period.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

func causeOrDash(cause string) string {
	if cause == "" {
		return "-"
	}
	return cause
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// It reports whether the user went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
