package console

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/vovakirdan/tui-racer/internal/race"
)

// errUsage marks a known command called with bad arguments.
var errUsage = errors.New("bad command usage")

// Command is a single entry of the command table.
type Command struct {
	Name    string
	Usage   string
	Summary string
	run     func(s *Session, args []string) error
}

// CommandInfo contains metadata about a command.
type CommandInfo struct {
	Name    string
	Usage   string
	Summary string
}

// defaultCommands returns the command table every session starts with.
func defaultCommands() map[string]Command {
	cmds := []Command{
		{Name: "accel", Usage: "accel <value>", Summary: "accelerate by <value> and play one round", run: runAccel},
		{Name: "show", Usage: "show", Summary: "draw the track with every car on it", run: runShow},
		{Name: "status", Usage: "status <car>", Summary: "show a car's cell and laps", run: runStatus},
		{Name: "quit", Usage: "quit", Summary: "end the session", run: runQuit},
		{Name: "help", Usage: "help", Summary: "list commands", run: runHelp},
	}

	table := make(map[string]Command, len(cmds))
	for _, c := range cmds {
		table[c.Name] = c
	}
	return table
}

// Commands returns information about all commands, sorted by name.
func (s *Session) Commands() []CommandInfo {
	result := make([]CommandInfo, 0, len(s.commands))
	for _, c := range s.commands {
		result = append(result, CommandInfo{
			Name:    c.Name,
			Usage:   c.Usage,
			Summary: c.Summary,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

func runAccel(s *Session, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	delta, err := strconv.Atoi(args[0])
	if err != nil {
		return errUsage
	}

	report, err := s.race.Accelerate(delta)
	if errors.Is(err, race.ErrRaceOver) {
		winner, _ := s.race.Winner()
		s.printf(msgRaceEnded, winner)
		return nil
	}
	if err != nil {
		return err
	}
	s.logRound(report)

	if winner, ok := s.race.Winner(); ok {
		s.printf(msgWin, winner)
		return nil
	}
	player := s.race.Entity(0)
	s.printf(msgPosition, player.Symbol, s.race.Cell(0), player.Laps)
	return nil
}

func runShow(s *Session, _ []string) error {
	s.print(s.renderTrack(s.race))
	if s.race.Over() {
		s.print(msgEnded)
	} else {
		s.print(msgOngoing)
	}
	return nil
}

func runStatus(s *Session, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	symbol := []rune(args[0])[0]

	if winner, ok := s.race.Winner(); ok && symbol == winner {
		s.printf(msgRaceEnded, symbol)
		return nil
	}

	i, ok := s.race.Index(symbol)
	if !ok {
		s.printf(msgPlayerNotFound, symbol)
		return nil
	}

	e := s.race.Entity(i)
	s.printf(msgPosition, symbol, s.race.Cell(i), e.Laps)
	return nil
}

func runQuit(s *Session, _ []string) error {
	s.race.RequestQuit()
	if winner, ok := s.race.Winner(); ok {
		s.printf(msgRaceEnded, winner)
	} else {
		s.print(msgNotOver)
	}
	return nil
}

func runHelp(s *Session, _ []string) error {
	for _, c := range s.Commands() {
		s.print(fmt.Sprintf("  %-14s %s\n", c.Usage, c.Summary))
	}
	return nil
}
