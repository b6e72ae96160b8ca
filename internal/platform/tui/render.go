package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lanehop/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorBlue:        "4",
	core.ColorMagenta:     "5",
	core.ColorCyan:        "6",
	core.ColorWhite:       "7",
	core.ColorBrightGreen: "10",
	core.ColorBrightBlue:  "12",
	core.ColorOrange:      "208",
	core.ColorBrown:       "130",
	core.ColorPurple:      "93",
	core.ColorIceBlue:     "153",
	core.ColorGray:        "245",
	core.ColorDarkGray:    "238",
}

// cellColors is the styling key of a run of cells.
type cellColors struct {
	fg, bg core.Color
}

// styleCache builds each foreground/background style once per frame.
type styleCache map[cellColors]lipgloss.Style

func (c styleCache) get(k cellColors) lipgloss.Style {
	if st, ok := c[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if fg, ok := palette[k.fg]; ok {
		st = st.Foreground(fg)
	}
	if bg, ok := palette[k.bg]; ok {
		st = st.Background(bg)
	}
	c[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors share one styled run to keep
// escape sequences down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	styles := make(styleCache)

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			key := cellColors{first.Color, first.Bg}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if (cellColors{cell.Color, cell.Bg}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (cellColors{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(key).Render(run.String()))
		}
	}
	return sb.String()
}
