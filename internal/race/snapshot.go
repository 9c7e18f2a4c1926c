package race

// Snapshot captures the complete race state for determinism testing and display.
type Snapshot struct {
	Round      int
	Entities   []Entity
	YellowFlag bool
	Over       bool
	Winner     rune
}

// Snapshot returns a copy of the current race state.
func (r *Race) Snapshot() Snapshot {
	return Snapshot{
		Round:      r.round,
		Entities:   r.Entities(),
		YellowFlag: r.yellowFlag,
		Over:       r.Over(),
		Winner:     r.winner,
	}
}

// Equal reports whether two snapshots describe the same race state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Round != o.Round || s.YellowFlag != o.YellowFlag || s.Over != o.Over || s.Winner != o.Winner {
		return false
	}
	if len(s.Entities) != len(o.Entities) {
		return false
	}
	for i := range s.Entities {
		if s.Entities[i] != o.Entities[i] {
			return false
		}
	}
	return true
}
