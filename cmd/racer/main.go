// racer is a one-dimensional circuit race played over a line-oriented
// command channel or an interactive terminal UI.
//
// Usage:
//
//	racer                    - Read the startup block from stdin and race
//	racer play               - Same as above, with config and TUI options
//	racer tracks             - List bundled track presets
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--env-file <path>    - Load RACER_* variables from a dotenv file (default: .env)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/config"
)

var (
	// Global flags
	flagLogLevel string
	flagEnvFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "TUI Racer - A circuit race in your terminal",
	Long: `TUI Racer is a turn-based race around a circular track. You drive the
car P against computer opponents, one "accel" command per round.

Available commands:
  play     - Start a race (default)
  tracks   - Show bundled track presets

Examples:
  printf 'S+--!\n1 3 0\naccel 1\nshow\nquit\n' | racer
  racer play --track oval
  racer play --tui --opponents 5`,
	PersistentPreRunE: loadEnv,
	Run:               runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default: $RACER_LOG_LEVEL or warn)")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "Dotenv file with RACER_* variables (default: .env if present)")

	addPlayFlags(rootCmd.Flags())

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tracksCmd)
}

func loadEnv(_ *cobra.Command, _ []string) error {
	return config.LoadEnvFile(flagEnvFile)
}

// newLogger creates the stderr logger for one race, tagged with a race id.
func newLogger() (*log.Logger, error) {
	name := flagLogLevel
	if name == "" {
		name = config.EnvLogLevelOr("warn")
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", name, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "racer",
		Level:           level,
	})
	return logger.With("race", uuid.NewString()), nil
}
