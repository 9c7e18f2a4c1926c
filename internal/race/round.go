package race

import "github.com/vovakirdan/tui-racer/internal/core"

// RoundReport summarizes one processed round.
type RoundReport struct {
	Round      int
	Moves      []Move // One per car processed, in order
	YellowFlag bool
	Winner     rune // Zero unless the race ended this round
}

// Finished reports whether the race was decided during this round.
func (rr RoundReport) Finished() bool {
	return rr.Winner != 0
}

// Accelerate plays one full turn: the human player applies delta, every
// opponent applies its own decision, then the round is processed.
// Opponent decisions are taken from the state at the start of the turn.
func (r *Race) Accelerate(delta int) (RoundReport, error) {
	if r.Over() {
		return RoundReport{Round: r.round}, ErrRaceOver
	}

	r.ApplyPlayerAccel(delta)
	for i := 1; i < len(r.entities); i++ {
		r.ApplyOpponentAccel(i)
	}
	return r.ProcessRound(), nil
}

// ProcessRound moves every car once, in index order, and updates laps and the
// winner. Processing stops as soon as a car wins: cars behind it in the order
// keep their pre-round state.
func (r *Race) ProcessRound() RoundReport {
	report := RoundReport{Round: r.round}
	if r.Over() {
		return report
	}

	r.round++
	report.Round = r.round
	r.yellowFlag = false

	for i := range r.entities {
		if r.Over() {
			break
		}
		report.Moves = append(report.Moves, r.moveEntity(i))
		r.applyCellEffect(i)
		r.clampSpeed(i)
		r.updateLaps(i)
	}

	report.YellowFlag = r.yellowFlag
	if winner, ok := r.Winner(); ok {
		report.Winner = winner
	}
	return report
}

// moveEntity picks the move distance for car i and resolves it.
// Under a yellow flag raised earlier in the same round cars crawl one cell,
// and stopped cars stay put.
func (r *Race) moveEntity(i int) Move {
	e := r.entities[i]
	if !r.yellowFlag {
		return r.resolveMove(i, e.Speed)
	}
	if e.Speed > 0 {
		return r.resolveMove(i, 1)
	}
	return Move{
		Index:   i,
		Symbol:  e.Symbol,
		From:    e.Position,
		To:      e.Position,
		Target:  e.Position,
		Skipped: true,
	}
}

// applyCellEffect applies the cell car i ended up on. Boost may push the speed
// above the limit; the following clamp brings it back.
func (r *Race) applyCellEffect(i int) {
	e := &r.entities[i]
	switch r.track.CellKindAt(e.Position) {
	case CellBoost:
		e.Speed++
	case CellDrag:
		e.Speed--
	case CellOil:
		e.Speed = 0
	}
}

// updateLaps recomputes car i's completed laps and checks for a winner.
func (r *Race) updateLaps(i int) {
	e := &r.entities[i]
	laps := core.FloorDiv(e.Position-(r.track.PolePosition()+1), r.track.Len())
	e.Laps = max(laps, 0)

	if e.Laps >= r.settings.Laps {
		r.winCount = 1
		r.winner = e.Symbol
	}
}
