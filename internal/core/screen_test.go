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

	// Check that it's initialized with spaces
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

	s.SetCell(5, 5, Cell{Rune: 'X', Fg: "#ff0000", Bold: true})
	c := s.GetCell(5, 5)
	if c.Rune != 'X' || c.Fg != "#ff0000" || !c.Bold {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClearAndResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	s.Clear()
	if s.Get(1, 1) != ' ' {
		t.Error("Clear should reset cells to spaces")
	}

	s.Set(1, 1, 'X')
	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Errorf("Resize: got %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should start from a blank buffer")
	}

	s.Resize(-1, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Error("Negative sizes should clamp to zero")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault, false)

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q, expected centered text", got)
	}
}

func TestScreenDrawTextWideRunes(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextCentered(0, "你好", ColorDefault, false)

	// Two wide runes take four columns, leaving one space on each side.
	if got := s.Row(0); got != " 你好 " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(2, 0).Rune != 0 {
		t.Error("Second column of a wide rune should be a zero placeholder")
	}
}

func TestScreenDrawTextTruncates(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawTextCentered(0, "a long message", ColorDefault, false)

	if got := s.Row(0); !strings.HasSuffix(got, "…") {
		t.Errorf("Row(0) = %q, expected ellipsis", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(s.Bounds(), ColorDefault)

	expected := "╭───╮\n│   │\n╰───╯"
	if s.String() != expected {
		t.Errorf("DrawBox produced:\n%s", s.String())
	}
}
