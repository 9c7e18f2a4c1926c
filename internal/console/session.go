// Package console implements the line-oriented command channel of a race:
// it parses one command per line, drives the race engine and writes the
// replies.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/race"
)

// LineScanner is the subset of *bufio.Scanner the command loop needs.
type LineScanner interface {
	Scan() bool
	Text() string
	Err() error
}

// TrackRenderer turns the race into the track line printed by "show".
type TrackRenderer func(r *race.Race) string

// Session processes commands for a single race.
// It owns no state besides a pointer to the race it drives.
type Session struct {
	race        *race.Race
	out         io.Writer
	logger      *log.Logger
	commands    map[string]Command
	renderTrack TrackRenderer
	err         error // First write error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for round diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithTrackRenderer replaces the plain track line used by "show".
func WithTrackRenderer(fn TrackRenderer) Option {
	return func(s *Session) {
		s.renderTrack = fn
	}
}

// NewSession creates a session writing its replies to out.
func NewSession(r *race.Race, out io.Writer, opts ...Option) *Session {
	s := &Session{
		race:        r,
		out:         out,
		logger:      log.New(io.Discard),
		commands:    defaultCommands(),
		renderTrack: (*race.Race).TrackLine,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Race returns the race driven by this session.
func (s *Session) Race() *race.Race {
	return s.race
}

// Done reports whether the quit command has been processed.
func (s *Session) Done() bool {
	return s.race.QuitRequested()
}

// Execute processes a single command line. Blank lines are ignored.
// Only the first character of a car symbol and the first argument of each
// command are used; extra tokens are ignored.
func (s *Session) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return s.err
	}

	cmd, ok := s.commands[fields[0]]
	if !ok {
		s.logger.Debug("unknown command", "command", fields[0])
		s.print(msgInvalidCommand)
		return s.err
	}

	if err := cmd.run(s, fields[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			return fmt.Errorf("console: %s: %w", cmd.Name, err)
		}
		s.logger.Debug("bad command usage", "command", cmd.Name, "args", fields[1:])
		s.print(msgInvalidCommand)
	}
	return s.err
}

// Run reads commands until quit or end of input.
func (s *Session) Run(sc LineScanner) error {
	for !s.Done() && sc.Scan() {
		if err := s.Execute(sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("console: cannot read command: %w", err)
	}
	if !s.Done() {
		s.logger.Debug("input closed before quit")
	}
	return nil
}

// logRound writes the diagnostics of a processed round.
func (s *Session) logRound(report race.RoundReport) {
	s.logger.Debug("round processed",
		"round", report.Round,
		"yellow_flag", report.YellowFlag,
		"moves", len(report.Moves),
	)
	for _, m := range report.Moves {
		s.logger.Debug("car moved",
			"car", string(m.Symbol),
			"from", m.From,
			"to", m.To,
			"target", m.Target,
			"distance", m.Distance(),
			"blocked", m.Blocked,
			"skipped", m.Skipped,
		)
	}
	if report.Finished() {
		s.logger.Info("race finished", "winner", string(report.Winner), "round", report.Round)
	}
}

func (s *Session) print(text string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.out, text)
}

func (s *Session) printf(format string, args ...any) {
	s.print(fmt.Sprintf(format, args...))
}
