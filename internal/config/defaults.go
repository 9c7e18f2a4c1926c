package config

import (
	_ "embed"
)

//go:embed defaults/race.yaml
var defaultRaceYAML []byte

//go:embed defaults/tracks.yaml
var defaultTracksYAML []byte

// DefaultRaceConfig returns the hardcoded default race.
func DefaultRaceConfig() RaceConfig {
	return RaceConfig{
		Track:      "S..+...-..!...+..-....",
		Laps:       2,
		MaxSpeed:   3,
		Opponents:  3,
		StartSpeed: 0,
	}
}
