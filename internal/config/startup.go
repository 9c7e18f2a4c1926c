package config

import (
	"fmt"
	"strconv"
	"strings"
)

// LineScanner is the subset of *bufio.Scanner the startup reader needs.
type LineScanner interface {
	Scan() bool
	Text() string
	Err() error
}

// ReadStartup reads the startup block from the command channel: the track
// layout on its own line, then laps, max speed and number of opponents as
// whitespace-separated integers that may span several lines. Anything after
// the last integer on its line is discarded, so the scanner is left at the
// first command line.
func ReadStartup(sc LineScanner) (RaceConfig, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return RaceConfig{}, fmt.Errorf("config: cannot read track: %w", err)
		}
		return RaceConfig{}, fmt.Errorf("config: %w: track layout", ErrMissingValue)
	}
	cfg := RaceConfig{Track: strings.TrimRight(sc.Text(), "\r")}

	names := []string{"laps", "max speed", "opponents"}
	dst := []*int{&cfg.Laps, &cfg.MaxSpeed, &cfg.Opponents}

	var tokens []string
	for i, name := range names {
		for len(tokens) == 0 {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return RaceConfig{}, fmt.Errorf("config: cannot read %s: %w", name, err)
				}
				return RaceConfig{}, fmt.Errorf("config: %w: %s", ErrMissingValue, name)
			}
			tokens = strings.Fields(sc.Text())
		}

		v, err := strconv.Atoi(tokens[0])
		if err != nil {
			return RaceConfig{}, fmt.Errorf("config: %w: %s %q", ErrInvalidValue, name, tokens[0])
		}
		*dst[i] = v
		tokens = tokens[1:]
	}

	return cfg, nil
}
