package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/console"
	"github.com/vovakirdan/tui-racer/internal/platform/tui"
)

var (
	flagConfig     string
	flagTrack      string
	flagLaps       int
	flagMaxSpeed   int
	flagOpponents  int
	flagStartSpeed int
	flagTUI        bool
	flagColor      bool
)

var errConflictingSource = errors.New("use either --config or --track, not both")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a race",
	Long: `Start a race and read commands from stdin, one per line.

Unless --config, --track or --tui is given, the race setup is read from stdin
first: the track layout on one line, then laps, max speed and number of
opponents.

Commands:
  accel <v>    - Change your speed by v and play one round
  show         - Print the track with every car on it
  status <c>   - Print the position of car c
  help         - List commands
  quit         - Leave the race

Track symbols:
  S  start/finish line     +  boost (+1 speed)
  -  drag (-1 speed)       !  oil (speed drops to 0)

Examples:
  racer play < race.txt
  racer play --track sprint
  racer play --config ./my-race.yaml --laps 5
  racer play --tui --track grand-prix`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd.Flags())
}

func addPlayFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flagConfig, "config", "", "Path to race config YAML")
	fs.StringVar(&flagTrack, "track", "", "Bundled track preset (see 'racer tracks')")
	fs.IntVar(&flagLaps, "laps", 0, "Override number of laps")
	fs.IntVar(&flagMaxSpeed, "max-speed", 0, "Override maximum speed")
	fs.IntVar(&flagOpponents, "opponents", 0, "Override number of opponents")
	fs.IntVar(&flagStartSpeed, "start-speed", 0, "Override starting speed of every car")
	fs.BoolVar(&flagTUI, "tui", false, "Play in the interactive terminal UI")
	fs.BoolVar(&flagColor, "color", false, "Color the track printed by 'show' when stdout is a terminal")
}

func runPlay(cmd *cobra.Command, _ []string) {
	color := flagColor && term.IsTerminal(int(os.Stdout.Fd()))
	if err := play(cmd.Flags(), os.Stdin, os.Stdout, color); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play sets up a race from flags, environment or stdin and runs it.
func play(fs *pflag.FlagSet, in io.Reader, out io.Writer, color bool) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	cfg, err := resolveConfig(fs, sc)
	if err != nil {
		return err
	}
	r, err := cfg.NewRace()
	if err != nil {
		return err
	}
	logger.Info("race started",
		"track", r.Track().String(),
		"cars", r.Symbols(),
		"laps", cfg.Laps,
		"max_speed", cfg.MaxSpeed,
		"opponents", cfg.Opponents,
	)

	if flagTUI {
		return tui.Run(r, logger)
	}

	opts := []console.Option{console.WithLogger(logger)}
	if color {
		opts = append(opts, console.WithTrackRenderer(tui.ColorTrackLine))
	}
	return console.NewSession(r, out, opts...).Run(sc)
}

// resolveConfig picks the race setup source and applies overrides.
// Environment overrides only apply to file and preset setups; the stdin
// startup block is always taken as given. Flags override everything.
func resolveConfig(fs *pflag.FlagSet, sc *bufio.Scanner) (config.RaceConfig, error) {
	var (
		cfg config.RaceConfig
		err error
	)

	fromStdin := false
	switch {
	case flagConfig != "" && flagTrack != "":
		return config.RaceConfig{}, errConflictingSource
	case flagConfig != "":
		cfg, err = config.Load(flagConfig)
	case flagTrack != "":
		cfg, err = config.LoadPreset(flagTrack)
	case flagTUI:
		cfg, err = config.Load("")
	default:
		cfg, err = config.ReadStartup(sc)
		fromStdin = true
	}
	if err != nil {
		return config.RaceConfig{}, err
	}

	if !fromStdin {
		env, err := config.EnvOverrides()
		if err != nil {
			return config.RaceConfig{}, err
		}
		env.Apply(&cfg)
	}

	flagOverrides(fs).Apply(&cfg)
	return cfg, nil
}

// flagOverrides returns the numeric flags that were set explicitly.
func flagOverrides(fs *pflag.FlagSet) config.Overrides {
	var o config.Overrides
	if fs.Changed("laps") {
		o.Laps = &flagLaps
	}
	if fs.Changed("max-speed") {
		o.MaxSpeed = &flagMaxSpeed
	}
	if fs.Changed("opponents") {
		o.Opponents = &flagOpponents
	}
	if fs.Changed("start-speed") {
		o.StartSpeed = &flagStartSpeed
	}
	return o
}
