package race

import (
	"errors"
	"testing"
)

func TestLoadTrackPolePosition(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		expected int
	}{
		{"start at index 0", "S+--!", 4},
		{"start in the middle", "..S..", 6},
		{"start at the end", "....S", 8},
		{"single cell", "S", 0},
		{"first start wins", "S..S", 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			track, err := LoadTrack(tc.layout)
			if err != nil {
				t.Fatalf("LoadTrack(%q) failed: %v", tc.layout, err)
			}

			pole := track.PolePosition()
			if pole != tc.expected {
				t.Errorf("PolePosition() = %d, expected %d", pole, tc.expected)
			}
			if pole < 0 {
				t.Errorf("PolePosition() = %d, must be non-negative", pole)
			}
			if kind := track.CellKindAt(pole + 1); kind != CellStart {
				t.Errorf("CellKindAt(pole+1) = %v, expected start", kind)
			}
		})
	}
}

func TestLoadTrackWithoutStart(t *testing.T) {
	for _, layout := range []string{"", "....", "+-!"} {
		_, err := LoadTrack(layout)
		if err == nil {
			t.Errorf("LoadTrack(%q) should fail", layout)
			continue
		}
		if !errors.Is(err, ErrInvalidTrack) {
			t.Errorf("LoadTrack(%q) error = %v, expected ErrInvalidTrack", layout, err)
		}
	}
}

func TestCellKindAtWraps(t *testing.T) {
	track, err := LoadTrack("S+--!")
	if err != nil {
		t.Fatalf("LoadTrack failed: %v", err)
	}

	tests := []struct {
		pos      int
		expected CellKind
	}{
		{0, CellStart},
		{1, CellBoost},
		{2, CellDrag},
		{3, CellDrag},
		{4, CellOil},
		{5, CellStart},
		{11, CellBoost},
		{-1, CellOil},
	}

	for _, tc := range tests {
		if got := track.CellKindAt(tc.pos); got != tc.expected {
			t.Errorf("CellKindAt(%d) = %v, expected %v", tc.pos, got, tc.expected)
		}
	}
}

func TestParseCellKind(t *testing.T) {
	tests := []struct {
		symbol   rune
		expected CellKind
	}{
		{'S', CellStart},
		{'+', CellBoost},
		{'-', CellDrag},
		{'!', CellOil},
		{'.', CellPlain},
		{'=', CellPlain},
		{' ', CellPlain},
	}

	for _, tc := range tests {
		if got := ParseCellKind(tc.symbol); got != tc.expected {
			t.Errorf("ParseCellKind(%q) = %v, expected %v", tc.symbol, got, tc.expected)
		}
	}
}

func TestTrackAccessors(t *testing.T) {
	track, err := LoadTrack("S.+.")
	if err != nil {
		t.Fatalf("LoadTrack failed: %v", err)
	}

	if track.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", track.Len())
	}
	if track.String() != "S.+." {
		t.Errorf("String() = %q, expected %q", track.String(), "S.+.")
	}
	if track.SymbolAt(6) != '+' {
		t.Errorf("SymbolAt(6) = %q, expected '+'", track.SymbolAt(6))
	}
	if track.CellIndex(9) != 1 {
		t.Errorf("CellIndex(9) = %d, expected 1", track.CellIndex(9))
	}
}
