package engine

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3,2) = %q, want 'X'", got)
	}

	// Out of bounds is silently ignored / returns space
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get out of bounds = %q, want space", got)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '▓', ColorBrightCyan)
	cell := s.GetCell(1, 1)
	if cell.Rune != '▓' || cell.Color != ColorBrightCyan {
		t.Errorf("GetCell = %+v, want ▓/bright cyan", cell)
	}

	s.Clear()
	if cell := s.GetCell(1, 1); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear did not reset cell: %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("clipped Row(0) = %q", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 0, "keep")

	s.Resize(20, 10)
	if !strings.HasPrefix(s.Row(0), "keep") {
		t.Errorf("content lost after grow: %q", s.Row(0))
	}

	s.Resize(2, 1)
	if got := s.Row(0); got != "ke" {
		t.Errorf("content after shrink = %q, want \"ke\"", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
