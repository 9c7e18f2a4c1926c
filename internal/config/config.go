// Package config provides race configuration: the startup block read from the
// command channel, YAML config files with embedded defaults, bundled track
// presets and environment overrides.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-racer/internal/race"
)

// Error sentinels.
var (
	ErrMissingValue = errors.New("missing value")
	ErrInvalidValue = errors.New("invalid value")
	ErrUnknownTrack = errors.New("unknown track preset")
)

// RaceConfig contains everything needed to set up a race.
type RaceConfig struct {
	Track      string `yaml:"track"`
	Laps       int    `yaml:"laps"`
	MaxSpeed   int    `yaml:"max_speed"`
	Opponents  int    `yaml:"opponents"`
	StartSpeed int    `yaml:"start_speed"` // 0 unless configured
}

// Settings returns the race rules part of the config.
func (c RaceConfig) Settings() race.Settings {
	return race.Settings{
		Laps:       c.Laps,
		MaxSpeed:   c.MaxSpeed,
		Opponents:  c.Opponents,
		StartSpeed: c.StartSpeed,
	}
}

// Validate checks that the config describes a raceable setup.
func (c RaceConfig) Validate() error {
	track, err := race.LoadTrack(c.Track)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Settings().Validate(track); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// NewRace loads the track and places the cars on the grid.
func (c RaceConfig) NewRace() (*race.Race, error) {
	track, err := race.LoadTrack(c.Track)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	r, err := race.New(track, c.Settings())
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return r, nil
}

// Overrides holds optional per-value overrides from flags or the environment.
// Nil fields leave the config untouched.
type Overrides struct {
	Laps       *int
	MaxSpeed   *int
	Opponents  *int
	StartSpeed *int
}

// Apply copies every set override into cfg.
func (o Overrides) Apply(cfg *RaceConfig) {
	if o.Laps != nil {
		cfg.Laps = *o.Laps
	}
	if o.MaxSpeed != nil {
		cfg.MaxSpeed = *o.MaxSpeed
	}
	if o.Opponents != nil {
		cfg.Opponents = *o.Opponents
	}
	if o.StartSpeed != nil {
		cfg.StartSpeed = *o.StartSpeed
	}
}
