package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLaps, "4")
	t.Setenv(EnvOpponents, "2")
	t.Setenv(EnvMaxSpeed, "")

	o, err := EnvOverrides()
	if err != nil {
		t.Fatalf("EnvOverrides() failed: %v", err)
	}

	if o.Laps == nil || *o.Laps != 4 {
		t.Errorf("Laps override = %v, expected 4", o.Laps)
	}
	if o.Opponents == nil || *o.Opponents != 2 {
		t.Errorf("Opponents override = %v, expected 2", o.Opponents)
	}
	if o.MaxSpeed != nil {
		t.Errorf("empty variable should not override, got %d", *o.MaxSpeed)
	}
}

func TestEnvOverridesInvalid(t *testing.T) {
	t.Setenv(EnvStartSpeed, "fast")

	_, err := EnvOverrides()
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("EnvOverrides() error = %v, expected ErrInvalidValue", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racer.env")
	if err := os.WriteFile(path, []byte("RACER_LAPS=6\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv(EnvLaps, "") // registers cleanup for the variable
	os.Unsetenv(EnvLaps)

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() failed: %v", err)
	}
	if got := os.Getenv(EnvLaps); got != "6" {
		t.Errorf("%s = %q, expected %q", EnvLaps, got, "6")
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("LoadEnvFile() with a missing explicit file should fail")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) }) //nolint:errcheck // Best-effort restore

	if err := LoadEnvFile(""); err != nil {
		t.Errorf("LoadEnvFile() without a default .env should succeed, got %v", err)
	}
}

func TestEnvLogLevelOr(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	if got := EnvLogLevelOr("warn"); got != "warn" {
		t.Errorf("EnvLogLevelOr() = %q, expected fallback", got)
	}

	t.Setenv(EnvLogLevel, "debug")
	if got := EnvLogLevelOr("warn"); got != "debug" {
		t.Errorf("EnvLogLevelOr() = %q, expected %q", got, "debug")
	}
}
