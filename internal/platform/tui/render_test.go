package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dala-run/internal/assets"
	"github.com/vovakirdan/dala-run/internal/core"
)

func TestWinterPaletteCoversCatalog(t *testing.T) {
	catalog := assets.Default(700, 400)

	for _, img := range catalog.Images() {
		look, _ := catalog.Look(img)
		if look.Glyph == 0 {
			continue
		}
		if _, ok := winterPalette[look.Term]; !ok {
			t.Errorf("%s: color %d has no palette entry", img.Name, look.Term)
		}
	}

	// Snow tints
	for _, rgb := range []core.RGB{{R: 255, G: 220, B: 220}, {R: 220, G: 220, B: 255}, {R: 220, G: 255, B: 220}, {R: 240, G: 240, B: 240}} {
		if _, ok := winterPalette[rgb.Terminal()]; !ok {
			t.Errorf("snow color %v maps to %d, which has no palette entry", rgb, rgb.Terminal())
		}
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "dala", core.ColorDefault)

	if got := RenderScreen(s); got != "dala  \n      " {
		t.Errorf("RenderScreen() = %q, expected uncolored cells unchanged", got)
	}
}

func TestRenderScreenKeepsRunes(t *testing.T) {
	s := core.NewScreen(8, 1)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorBrightWhite)
	s.DrawText(4, 0, "ef", core.ColorDefault)

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd", "ef"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, missing %q", out, want)
		}
	}
}
