package core

import (
	"strings"
	"testing"
)

func TestScreenSetAndGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	s.SetColored(4, 2, 'Y', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'Y' || cell.Color != ColorRed {
		t.Errorf("GetCell(4, 2) = %+v, expected {Y Red}", cell)
	}

	// Out of bounds is ignored on write, blank on read
	s.Set(-1, 0, 'Z')
	s.Set(10, 0, 'Z')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out-of-bounds reads should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '#', ColorGreen)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear() left %+v behind", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')
	s.Set(9, 4, 'B')

	s.Resize(5, 3)
	if s.Get(2, 2) != 'A' {
		t.Error("resize should preserve content inside the new bounds")
	}
	if s.Width() != 5 || s.Height() != 3 {
		t.Errorf("size = %dx%d, expected 5x3", s.Width(), s.Height())
	}

	s.Resize(10, 5)
	if s.Get(9, 4) != ' ' {
		t.Error("content cropped by a shrink should not reappear")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText row = %q", s.Row(1))
	}

	// Clipped at the right edge without panicking
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Errorf("clipped DrawText row = %q", s.Row(0))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(8, 8)
	s.DrawRect(NewRect(1, 1, 3, 2), '#', ColorGray)

	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if s.Get(x, y) != '#' {
				t.Fatalf("cell (%d, %d) = %q, expected '#'", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(4, 1) != ' ' || s.Get(1, 3) != ' ' {
		t.Error("DrawRect painted outside its bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should join rows with single newlines")
	}
}
