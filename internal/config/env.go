package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override config values.
const (
	EnvLaps       = "RACER_LAPS"
	EnvMaxSpeed   = "RACER_MAX_SPEED"
	EnvOpponents  = "RACER_OPPONENTS"
	EnvStartSpeed = "RACER_START_SPEED"
	EnvLogLevel   = "RACER_LOG_LEVEL"
)

// DefaultEnvFile is loaded when no env file is given explicitly.
const DefaultEnvFile = ".env"

// LoadEnvFile loads variables from a dotenv file into the process environment.
// Variables already set are not overwritten. A missing default file is not an
// error; a missing explicit file is.
func LoadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: cannot load env file %s: %w", path, err)
	}
	return nil
}

// EnvOverrides reads the RACER_* variables.
func EnvOverrides() (Overrides, error) {
	var o Overrides
	fields := []struct {
		name string
		dst  **int
	}{
		{EnvLaps, &o.Laps},
		{EnvMaxSpeed, &o.MaxSpeed},
		{EnvOpponents, &o.Opponents},
		{EnvStartSpeed, &o.StartSpeed},
	}

	for _, f := range fields {
		raw, ok := os.LookupEnv(f.name)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Overrides{}, fmt.Errorf("config: %w: %s=%q", ErrInvalidValue, f.name, raw)
		}
		*f.dst = &v
	}
	return o, nil
}

// EnvLogLevelOr returns RACER_LOG_LEVEL, or fallback when unset.
func EnvLogLevelOr(fallback string) string {
	if v := os.Getenv(EnvLogLevel); v != "" {
		return v
	}
	return fallback
}
