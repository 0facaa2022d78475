package core

import "testing"

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
			if s.GetCell(x, y).Rune != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", cell)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, 'A', ColorRed)
	s.SetCell(100, 0, 'A', ColorRed)
	s.SetCell(0, -1, 'A', ColorRed)
	s.SetCell(0, 100, 'A', ColorRed)

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorBrightWhite)

	for i, ch := range "Hello" {
		if s.GetCell(2+i, 1).Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.GetCell(2+i, 1).Rune)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorBrightWhite)
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorGreen)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorGreen {
				t.Errorf("DrawRect: expected green '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.GetCell(1, 1).Rune != ' ' || s.GetCell(5, 5).Rune != ' ' {
		t.Error("DrawRect should not affect outside area")
	}

	s.Clear()
	s.DrawBox(NewRect(1, 1, 5, 4), ColorBrightWhite)
	if s.GetCell(1, 1).Rune != '┌' || s.GetCell(5, 1).Rune != '┐' || s.GetCell(1, 4).Rune != '└' || s.GetCell(5, 4).Rune != '┘' {
		t.Errorf("DrawBox corners wrong:\n%s", s.String())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.GetCell(0, 0).Rune != ' ' {
		t.Error("Resize should start from a blank buffer")
	}
}
