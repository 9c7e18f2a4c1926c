package main

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/race"
)

// newFlags binds fresh play flags, resetting the package globals.
func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("play", pflag.ContinueOnError)
	addPlayFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%q) failed: %v", args, err)
	}
	return fs
}

func TestPlayFromStdin(t *testing.T) {
	fs := newFlags(t)
	in := strings.NewReader("S+--!\n1 3 0\naccel 1\nshow\nquit\n")
	var out bytes.Buffer

	if err := play(fs, in, &out, false); err != nil {
		t.Fatalf("play() failed: %v", err)
	}

	expected := "Player P: cell 0, laps 0!\nP+--! (ongoing)\nThe race is not over yet!\n"
	if out.String() != expected {
		t.Errorf("output = %q, expected %q", out.String(), expected)
	}
}

func TestPlayInvalidStartup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{"empty input", "", config.ErrMissingValue},
		{"missing opponents", "S+--!\n1 3\n", config.ErrMissingValue},
		{"non-numeric laps", "S+--!\nx 3 0\n", config.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFlags(t)
			var out bytes.Buffer
			err := play(fs, strings.NewReader(tt.input), &out, false)
			if !errors.Is(err, tt.expected) {
				t.Errorf("play() error = %v, expected %v", err, tt.expected)
			}
			if out.Len() != 0 {
				t.Errorf("unexpected output %q", out.String())
			}
		})
	}
}

func TestPlayRejectsInvalidTrack(t *testing.T) {
	fs := newFlags(t)
	var out bytes.Buffer

	err := play(fs, strings.NewReader("+--!\n1 3 0\n"), &out, false)
	if !errors.Is(err, race.ErrInvalidTrack) {
		t.Errorf("play() error = %v, expected %v", err, race.ErrInvalidTrack)
	}
}

func TestPlayZeroLaps(t *testing.T) {
	fs := newFlags(t)
	var out bytes.Buffer

	if err := play(fs, strings.NewReader("S+--!\n0 3 0\naccel 0\nquit\n"), &out, false); err != nil {
		t.Fatalf("play() failed: %v", err)
	}

	expected := "Player P won the race!\nRace ended: P won the race!\n"
	if out.String() != expected {
		t.Errorf("output = %q, expected %q", out.String(), expected)
	}
}

func TestResolveConfigPreset(t *testing.T) {
	fs := newFlags(t, "--track", "sprint", "--laps", "3")
	sc := bufio.NewScanner(strings.NewReader(""))

	cfg, err := resolveConfig(fs, sc)
	if err != nil {
		t.Fatalf("resolveConfig() failed: %v", err)
	}
	if cfg.Track != "S+--!" {
		t.Errorf("Track = %q, expected %q", cfg.Track, "S+--!")
	}
	if cfg.Laps != 3 {
		t.Errorf("Laps = %d, expected 3", cfg.Laps)
	}
	if cfg.MaxSpeed != 3 {
		t.Errorf("MaxSpeed = %d, expected 3", cfg.MaxSpeed)
	}
}

func TestResolveConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "race.yaml")
	data := "track: \"S....\"\nlaps: 4\nmax_speed: 2\nopponents: 1\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	fs := newFlags(t, "--config", path, "--opponents", "2")
	cfg, err := resolveConfig(fs, bufio.NewScanner(strings.NewReader("")))
	if err != nil {
		t.Fatalf("resolveConfig() failed: %v", err)
	}

	expected := config.RaceConfig{Track: "S....", Laps: 4, MaxSpeed: 2, Opponents: 2}
	if cfg != expected {
		t.Errorf("config = %+v, expected %+v", cfg, expected)
	}
}

func TestResolveConfigEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvLaps, "7")

	fs := newFlags(t, "--track", "sprint")
	cfg, err := resolveConfig(fs, bufio.NewScanner(strings.NewReader("")))
	if err != nil {
		t.Fatalf("resolveConfig() failed: %v", err)
	}
	if cfg.Laps != 7 {
		t.Errorf("preset Laps = %d, expected env override 7", cfg.Laps)
	}

	// The stdin startup block is taken as given
	fs = newFlags(t)
	cfg, err = resolveConfig(fs, bufio.NewScanner(strings.NewReader("S+--!\n1 3 0\n")))
	if err != nil {
		t.Fatalf("resolveConfig() failed: %v", err)
	}
	if cfg.Laps != 1 {
		t.Errorf("stdin Laps = %d, expected 1", cfg.Laps)
	}

	// Flags beat the environment
	fs = newFlags(t, "--track", "sprint", "--laps", "2")
	cfg, err = resolveConfig(fs, bufio.NewScanner(strings.NewReader("")))
	if err != nil {
		t.Fatalf("resolveConfig() failed: %v", err)
	}
	if cfg.Laps != 2 {
		t.Errorf("flag Laps = %d, expected 2", cfg.Laps)
	}
}

func TestResolveConfigErrors(t *testing.T) {
	t.Run("config and track", func(t *testing.T) {
		fs := newFlags(t, "--config", "race.yaml", "--track", "sprint")
		_, err := resolveConfig(fs, bufio.NewScanner(strings.NewReader("")))
		if !errors.Is(err, errConflictingSource) {
			t.Errorf("error = %v, expected %v", err, errConflictingSource)
		}
	})

	t.Run("unknown preset", func(t *testing.T) {
		fs := newFlags(t, "--track", "nowhere")
		_, err := resolveConfig(fs, bufio.NewScanner(strings.NewReader("")))
		if !errors.Is(err, config.ErrUnknownTrack) {
			t.Errorf("error = %v, expected %v", err, config.ErrUnknownTrack)
		}
	})

	t.Run("bad env value", func(t *testing.T) {
		t.Setenv(config.EnvMaxSpeed, "fast")
		fs := newFlags(t, "--track", "sprint")
		_, err := resolveConfig(fs, bufio.NewScanner(strings.NewReader("")))
		if !errors.Is(err, config.ErrInvalidValue) {
			t.Errorf("error = %v, expected %v", err, config.ErrInvalidValue)
		}
	})
}

func TestNewLoggerLevel(t *testing.T) {
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = "" })

	if _, err := newLogger(); err == nil {
		t.Error("expected error for unknown log level")
	}

	flagLogLevel = "debug"
	if _, err := newLogger(); err != nil {
		t.Errorf("newLogger() failed: %v", err)
	}
}
