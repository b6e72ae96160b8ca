package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)

	s.SetColored(2, 1, '~', ColorBlue)
	cell := s.GetCell(2, 1)
	if cell.Rune != '~' || cell.Color != ColorBlue {
		t.Errorf("GetCell(2, 1) = %+v, expected blue '~'", cell)
	}

	s.DrawHLine(0, 2, 4, '=', ColorOrange)
	for x := 0; x < 4; x++ {
		if got := s.GetCell(x, 2); got.Color != ColorOrange {
			t.Errorf("cell %d color = %v, expected orange", x, got.Color)
		}
	}

	s.Clear()
	if got := s.GetCell(2, 1); got != blankCell {
		t.Errorf("Clear() left %+v", got)
	}
}

func TestScreenBackgrounds(t *testing.T) {
	s := NewScreen(6, 4)

	s.FillRow(1, '~', ColorCyan, ColorBlue)
	s.SetColored(2, 1, '=', ColorBrown)
	if got := s.GetCell(2, 1); got != (Cell{Rune: '=', Color: ColorBrown, Bg: ColorBlue}) {
		t.Errorf("SetColored should keep the row background, got %+v", got)
	}
	if got := s.GetCell(5, 1); got.Bg != ColorBlue || got.Rune != '~' {
		t.Errorf("FillRow() cell = %+v", got)
	}

	s.FillRow(-1, 'x', ColorRed, ColorRed)
	s.FillRow(4, 'x', ColorRed, ColorRed)

	s.ClearRect(NewRect(-2, 0, 4, 2))
	if got := s.GetCell(1, 1); got != blankCell {
		t.Errorf("ClearRect() left %+v", got)
	}
	if got := s.GetCell(2, 1); got.Bg != ColorBlue {
		t.Errorf("ClearRect() touched cells outside the rect: %+v", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "Score: 12")
	if !strings.HasPrefix(s.Row(1), "  Score: 12") {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	s.DrawTextCentered(3, "GO")
	if s.Get(9, 3) != 'G' || s.Get(10, 3) != 'O' {
		t.Errorf("centered text misplaced: %q", s.Row(3))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColored(3, 3, 'X', ColorRed)

	s.Resize(20, 5)
	if s.Width() != 20 || s.Height() != 5 {
		t.Fatalf("Resize() = %dx%d, expected 20x5", s.Width(), s.Height())
	}
	if got := s.GetCell(3, 3); got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("Resize should preserve content, got %+v", got)
	}

	s.Resize(2, 2)
	if s.Get(3, 3) != ' ' {
		t.Error("content outside the new bounds should be dropped")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A')
	s.Set(2, 1, 'B')

	expected := "A  \n  B"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if s.Get(0, 0) != '┌' || s.Get(5, 3) != '┘' {
		t.Errorf("box corners wrong:\n%s", s.String())
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Errorf("box edges wrong:\n%s", s.String())
	}
}
