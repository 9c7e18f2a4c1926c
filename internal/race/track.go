// Package race implements the turn-based race engine: the circular track, the
// cars on it, speed control for the human player and the AI opponents, the
// yellow-flag collision resolver and the per-round state machine.
//
// The engine is pure game logic. It never reads input or writes output; the
// console and TUI packages drive it one round at a time.
package race

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Track cell symbols.
const (
	SymbolStart = 'S'
	SymbolBoost = '+'
	SymbolDrag  = '-'
	SymbolOil   = '!'
)

// ErrInvalidTrack is returned when a layout cannot be raced on.
var ErrInvalidTrack = errors.New("invalid track")

// CellKind is the effect a track cell has on a car that stops on it.
type CellKind int

const (
	CellPlain CellKind = iota
	CellStart
	CellBoost
	CellDrag
	CellOil
)

// ParseCellKind maps a layout symbol to its cell kind.
// Unknown symbols are plain track.
func ParseCellKind(r rune) CellKind {
	switch r {
	case SymbolStart:
		return CellStart
	case SymbolBoost:
		return CellBoost
	case SymbolDrag:
		return CellDrag
	case SymbolOil:
		return CellOil
	default:
		return CellPlain
	}
}

// String returns a human-readable name for the cell kind.
func (k CellKind) String() string {
	switch k {
	case CellPlain:
		return "plain"
	case CellStart:
		return "start"
	case CellBoost:
		return "boost"
	case CellDrag:
		return "drag"
	case CellOil:
		return "oil"
	default:
		return "unknown"
	}
}

// Track is an immutable circular track layout.
type Track struct {
	symbols []rune
	kinds   []CellKind
	pole    int
}

// LoadTrack parses a layout string into a Track.
// The layout must contain a start cell.
func LoadTrack(layout string) (*Track, error) {
	symbols := []rune(layout)
	if len(symbols) == 0 {
		return nil, fmt.Errorf("race: %w: empty layout", ErrInvalidTrack)
	}

	kinds := make([]CellKind, len(symbols))
	for i, r := range symbols {
		kinds[i] = ParseCellKind(r)
	}

	pole, err := findPolePosition(kinds)
	if err != nil {
		return nil, fmt.Errorf("race: %w: layout %q has no start cell %q", err, layout, SymbolStart)
	}

	return &Track{
		symbols: symbols,
		kinds:   kinds,
		pole:    pole,
	}, nil
}

// findPolePosition scans forward from index 0 for the first start cell and
// returns the index before it, shifted by one lap so that every grid slot
// behind the pole is a non-negative absolute position.
func findPolePosition(kinds []CellKind) (int, error) {
	for i, k := range kinds {
		if k == CellStart {
			return i - 1 + len(kinds), nil
		}
	}
	return 0, ErrInvalidTrack
}

// Len returns the number of cells in one lap.
func (t *Track) Len() int {
	return len(t.symbols)
}

// PolePosition returns the absolute position of the pole slot.
func (t *Track) PolePosition() int {
	return t.pole
}

// CellKindAt returns the kind of the cell under an absolute position.
func (t *Track) CellKindAt(pos int) CellKind {
	return t.kinds[t.CellIndex(pos)]
}

// CellIndex wraps an absolute position onto the track.
func (t *Track) CellIndex(pos int) int {
	return core.Mod(pos, len(t.symbols))
}

// SymbolAt returns the layout symbol under an absolute position.
func (t *Track) SymbolAt(pos int) rune {
	return t.symbols[t.CellIndex(pos)]
}

// String returns the original layout.
func (t *Track) String() string {
	return string(t.symbols)
}
