package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dala-run/internal/core"
)

// winterPalette maps core.Color to the 256-color shades of the snowy track.
// Snow tints stay pale so flakes read as snow over the scenery.
var winterPalette = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           fg("124"), // meatballs
	core.ColorGreen:         fg("28"),  // fir trees
	core.ColorMagenta:       fg("169"), // flowers
	core.ColorGray:          fg("246"), // mountains
	core.ColorOrange:        fg("202").Bold(true),
	core.ColorBrightGreen:   fg("120"),
	core.ColorBrightYellow:  fg("221").Bold(true),
	core.ColorBrightWhite:   fg("255"),
	core.ColorBrightMagenta: fg("225"),
	core.ColorBrightCyan:    fg("195"),
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// styleFor returns the palette style, falling back to the terminal default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := winterPalette[c]; ok {
		return style
	}
	return winterPalette[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each run of same-colored cells is styled once; uncolored runs are written as is.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run = run[:0]
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run = append(run, cell.Rune)
			}

			if color == core.ColorDefault {
				sb.WriteString(string(run))
				continue
			}
			sb.WriteString(styleFor(color).Render(string(run)))
		}
	}
	return sb.String()
}
