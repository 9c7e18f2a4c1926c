package race

import "github.com/vovakirdan/tui-racer/internal/core"

// lookahead is how many cells an AI opponent inspects in front of it.
const lookahead = 3

// ApplyPlayerAccel changes the human player's speed by delta.
// Deltas outside {-1, 0, 1} are not rejected; the result is clamped.
func (r *Race) ApplyPlayerAccel(delta int) {
	r.entities[0].Speed += delta
	r.clampSpeed(0)
}

// AIDecision returns the acceleration opponent i chooses this round.
// A reachable boost with room to speed up wins over braking for oil.
func (r *Race) AIDecision(i int) int {
	e := r.entities[i]

	if e.Speed < r.settings.MaxSpeed {
		for n := 1; n <= lookahead; n++ {
			if r.track.CellKindAt(e.Position+n) == CellBoost {
				return 1
			}
		}
	}

	if e.Speed > 0 {
		for n := 1; n <= lookahead; n++ {
			if r.track.CellKindAt(e.Position+n) == CellOil {
				return -1
			}
		}
	}

	return 0
}

// ApplyOpponentAccel applies opponent i's own decision to its speed.
func (r *Race) ApplyOpponentAccel(i int) {
	r.entities[i].Speed += r.AIDecision(i)
	r.clampSpeed(i)
}

// clampSpeed restricts car i's speed to [0, MaxSpeed].
func (r *Race) clampSpeed(i int) {
	r.entities[i].Speed = core.Clamp(r.entities[i].Speed, 0, r.settings.MaxSpeed)
}
