package race

import (
	"errors"
	"fmt"
	"strings"
)

// PlayerSymbol identifies the human player on the track.
const PlayerSymbol = 'P'

// opponentSymbols is the ordered alphabet handed out to AI opponents.
const opponentSymbols = "abcdefghijklmnopqrstuvwxyz"

// MaxOpponents is the number of AI opponents the symbol alphabet can name.
const MaxOpponents = len(opponentSymbols)

// Error sentinels.
var (
	ErrInvalidSettings = errors.New("invalid race settings")
	ErrRaceOver        = errors.New("race is over")
)

// Settings holds the rules of a single race.
type Settings struct {
	Laps       int // Laps needed to win; 0 means the first car to move wins
	MaxSpeed   int // Upper speed bound for every car; 0 keeps everyone parked
	Opponents  int // Number of AI opponents
	StartSpeed int // Speed every car has on the grid
}

// Validate checks the settings against a track.
func (s Settings) Validate(track *Track) error {
	switch {
	case s.Laps < 0:
		return fmt.Errorf("race: %w: laps must not be negative, got %d", ErrInvalidSettings, s.Laps)
	case s.MaxSpeed < 0:
		return fmt.Errorf("race: %w: max speed must not be negative, got %d", ErrInvalidSettings, s.MaxSpeed)
	case s.Opponents < 0 || s.Opponents > MaxOpponents:
		return fmt.Errorf("race: %w: opponents must be between 0 and %d, got %d",
			ErrInvalidSettings, MaxOpponents, s.Opponents)
	case s.StartSpeed < 0 || s.StartSpeed > s.MaxSpeed:
		return fmt.Errorf("race: %w: start speed must be between 0 and %d, got %d",
			ErrInvalidSettings, s.MaxSpeed, s.StartSpeed)
	}
	if track != nil && s.Opponents+1 > track.Len() {
		return fmt.Errorf("race: %w: %d cars do not fit on a %d-cell track",
			ErrInvalidSettings, s.Opponents+1, track.Len())
	}
	return nil
}

// Entity is a single car on the track.
type Entity struct {
	Symbol   rune
	Position int // Absolute position, never wrapped
	Speed    int
	Laps     int
}

// SymbolFor returns the symbol of the car at index i (0 is the human player).
func SymbolFor(i int) rune {
	if i == 0 {
		return PlayerSymbol
	}
	return rune(opponentSymbols[i-1])
}

// SetGrid returns the starting positions of the human player and the
// opponents: car i starts i cells behind the pole.
func SetGrid(pole, numOpponents int) []int {
	positions := make([]int, numOpponents+1)
	for i := range positions {
		positions[i] = pole - i
	}
	return positions
}

// Race owns the full mutable state of one race.
// It is not safe for concurrent use; a single driver calls it round by round.
type Race struct {
	track    *Track
	settings Settings
	entities []Entity

	round      int
	winner     rune
	winCount   int
	yellowFlag bool
	quit       bool
}

// New places the cars on the grid of the given track.
func New(track *Track, settings Settings) (*Race, error) {
	if track == nil {
		return nil, fmt.Errorf("race: %w: nil track", ErrInvalidTrack)
	}
	if err := settings.Validate(track); err != nil {
		return nil, err
	}

	grid := SetGrid(track.PolePosition(), settings.Opponents)
	entities := make([]Entity, len(grid))
	for i, pos := range grid {
		entities[i] = Entity{
			Symbol:   SymbolFor(i),
			Position: pos,
			Speed:    settings.StartSpeed,
		}
	}

	return &Race{
		track:    track,
		settings: settings,
		entities: entities,
	}, nil
}

// Track returns the race track.
func (r *Race) Track() *Track {
	return r.track
}

// Settings returns the race rules.
func (r *Race) Settings() Settings {
	return r.settings
}

// NumEntities returns the number of cars, human player included.
func (r *Race) NumEntities() int {
	return len(r.entities)
}

// Entity returns a copy of the car at index i.
func (r *Race) Entity(i int) Entity {
	return r.entities[i]
}

// Entities returns a copy of every car in processing order.
func (r *Race) Entities() []Entity {
	out := make([]Entity, len(r.entities))
	copy(out, r.entities)
	return out
}

// Index looks up a car by symbol.
func (r *Race) Index(symbol rune) (int, bool) {
	for i, e := range r.entities {
		if e.Symbol == symbol {
			return i, true
		}
	}
	return -1, false
}

// Cell returns the track cell occupied by car i.
func (r *Race) Cell(i int) int {
	return r.track.CellIndex(r.entities[i].Position)
}

// Winner returns the winning symbol, if the race has been decided.
func (r *Race) Winner() (rune, bool) {
	return r.winner, r.winCount != 0
}

// Over reports whether a car has completed the required laps.
func (r *Race) Over() bool {
	return r.winCount != 0
}

// YellowFlag reports whether a collision was resolved during the last round.
func (r *Race) YellowFlag() bool {
	return r.yellowFlag
}

// Round returns the number of rounds played so far.
func (r *Race) Round() int {
	return r.round
}

// RequestQuit marks the session as finished.
func (r *Race) RequestQuit() {
	r.quit = true
}

// QuitRequested reports whether the session was asked to end.
func (r *Race) QuitRequested() bool {
	return r.quit
}

// Symbols returns the symbols of all cars as a string, in processing order.
func (r *Race) Symbols() string {
	var sb strings.Builder
	for _, e := range r.entities {
		sb.WriteRune(e.Symbol)
	}
	return sb.String()
}
