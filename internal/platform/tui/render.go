// Package tui provides the Bubble Tea front-end for a race and the lipgloss
// track renderer shared with the line console.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/race"
)

// colorStyles maps the core palette to lipgloss styles. Cars are bold so they
// stand out against the track.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// RenderScreen turns a screen into styled text, one style call per run of
// same-colored cells.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		var sb strings.Builder
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			var run []rune
			for x < s.Width() && s.GetCell(x, y).Color == color {
				run = append(run, s.GetCell(x, y).Rune)
				x++
			}
			sb.WriteString(styleFor(color).Render(string(run)))
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// ColorTrackLine renders the track with cars in color.
// It has the same shape as race.Race.TrackLine, so the console can use it for "show".
func ColorTrackLine(r *race.Race) string {
	screen := core.NewScreen(r.Track().Len(), 1)
	r.Render(screen)
	return RenderScreen(screen)
}
