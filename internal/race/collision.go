package race

// Move records how a single car was moved during a round.
type Move struct {
	Index   int
	Symbol  rune
	From    int  // Absolute position before the move
	To      int  // Absolute position after the move
	Target  int  // Tentative target before collision resolution
	Blocked bool // Target was occupied; the car backtracked (or stayed)
	Skipped bool // Car did not take part in the resolver this round
}

// Distance returns how many cells the car actually advanced.
func (m Move) Distance() int {
	return m.To - m.From
}

// IsOccupied reports whether any car other than exclude sits on the cell
// under the absolute position cell.
func (r *Race) IsOccupied(cell, exclude int) bool {
	idx := r.track.CellIndex(cell)
	for i, e := range r.entities {
		if i == exclude {
			continue
		}
		if r.track.CellIndex(e.Position) == idx {
			return true
		}
	}
	return false
}

// resolveMove advances car i by up to move cells.
//
// When the target cell is taken the yellow flag goes up and the car backs off
// one cell at a time towards its current position, stopping on the first free
// cell. If no cell in that span is free the car stays where it is.
// Occupancy uses the current positions of all other cars, including those
// already moved this round.
func (r *Race) resolveMove(i, move int) Move {
	e := &r.entities[i]
	m := Move{
		Index:  i,
		Symbol: e.Symbol,
		From:   e.Position,
		To:     e.Position,
		Target: e.Position + move,
	}

	if !r.IsOccupied(m.Target, i) {
		e.Position = m.Target
		m.To = e.Position
		return m
	}

	r.yellowFlag = true
	m.Blocked = true
	for n := 1; n <= move; n++ {
		if !r.IsOccupied(m.Target-n, i) {
			e.Position = m.Target - n
			m.To = e.Position
			break
		}
	}
	return m
}
