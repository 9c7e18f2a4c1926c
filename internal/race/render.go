package race

import "github.com/vovakirdan/tui-racer/internal/core"

// Visual colors for cells and cars
var cellColors = map[CellKind]core.Color{
	CellPlain: core.ColorGray,
	CellStart: core.ColorWhite,
	CellBoost: core.ColorGreen,
	CellDrag:  core.ColorYellow,
	CellOil:   core.ColorMagenta,
}

const (
	playerColor   = core.ColorCyan
	opponentColor = core.ColorRed
)

// Render draws the track into row 0 of dst with every car drawn over the
// terrain under it. Cars are drawn in index order, so if two cars ever share
// a cell the later one is visible.
func (r *Race) Render(dst *core.Screen) {
	for x := 0; x < r.track.Len(); x++ {
		dst.SetCell(x, 0, r.track.SymbolAt(x), cellColors[r.track.CellKindAt(x)])
	}

	for i, e := range r.entities {
		color := opponentColor
		if i == 0 {
			color = playerColor
		}
		dst.SetCell(r.track.CellIndex(e.Position), 0, e.Symbol, color)
	}
}

// TrackLine returns the track with the cars drawn on it, without colors.
func (r *Race) TrackLine() string {
	screen := core.NewScreen(r.track.Len(), 1)
	r.Render(screen)
	return screen.Row(0)
}
