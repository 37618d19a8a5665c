package core

import (
	"strings"
	"testing"
)

// putText writes s into row y starting at x.
func putText(s *Screen, x, y int, text string) {
	for i, r := range []rune(text) {
		s.SetCell(x+i, y, Cell{Rune: r, FG: ColorWhite, BG: ColorBlack})
	}
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	blank := strings.Repeat(" ", 80)
	for y := 0; y < s.Height(); y++ {
		if row := s.Row(y); row != blank {
			t.Errorf("New screen should be filled with spaces, row %d = %q", y, row)
		}
	}
}

func TestScreenSetCellGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	want := Cell{Rune: 'X', FG: ColorRed, BG: ColorBlue}
	s.SetCell(5, 5, want)
	if got := s.GetCell(5, 5); got != want {
		t.Errorf("GetCell(5, 5) = %+v, expected %+v", got, want)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, want)
	s.SetCell(100, 0, want)
	s.SetCell(0, -1, want)
	s.SetCell(0, 100, want)

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
	if strings.Count(s.String(), "X") != 1 {
		t.Error("out of bounds writes should not land on the screen")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		putText(s, 0, y, "XXXXXXXXXX")
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		if row := s.Row(y); row != strings.Repeat(" ", 10) {
			t.Errorf("After Clear, row %d = %q", y, row)
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill(ColorSkyBlue)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if s.GetCell(x, y).BG != ColorSkyBlue {
				t.Errorf("After Fill, expected sky blue at (%d, %d)", x, y)
			}
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	putText(s, 0, 0, "AAAAA")
	putText(s, 0, 1, "B▀B▀B")
	putText(s, 3, 2, "CCCCC") // clipped at the right edge

	result := s.String()
	expected := "AAAAA\nB▀B▀B\n   CC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	putText(s, 0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row := s.Row(0); row != strings.Repeat(" ", 8) {
		t.Errorf("Resize should clear content, row 0 = %q", row)
	}
	if row := s.Row(10); len(row) != 8 {
		t.Errorf("out-of-range Row should be blank of screen width, got %q", row)
	}
}
