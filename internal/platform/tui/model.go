package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/console"
	"github.com/vovakirdan/tui-racer/internal/race"
)

// maxHistory bounds the scroll-back kept in memory.
const maxHistory = 200

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	flagStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model is the Bubble Tea model for playing a race.
// Commands typed at the prompt go through the same console session as the
// line-oriented mode; their replies are appended to the scroll-back.
type Model struct {
	session  *console.Session
	output   *bytes.Buffer
	input    textinput.Model
	keys     KeyMap
	help     help.Model
	history  []string
	last     string
	width    int
	height   int
	quitting bool
	err      error
}

// NewModel creates a model driving the given race.
func NewModel(r *race.Race, logger *log.Logger) Model {
	output := &bytes.Buffer{}
	opts := []console.Option{console.WithTrackRenderer(ColorTrackLine)}
	if logger != nil {
		opts = append(opts, console.WithLogger(logger))
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "accel 1"
	input.CharLimit = 64
	input.Focus()

	return Model{
		session: console.NewSession(r, output, opts...),
		output:  output,
		input:   input,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   80,
		height:  24,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Recall):
			m.input.SetValue(m.last)
			m.input.CursorEnd()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.history = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the prompt line to the console session.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")
	if strings.TrimSpace(line) == "" {
		return m, nil
	}
	m.last = line

	m.output.Reset()
	err := m.session.Execute(line)

	m.appendHistory(echoStyle.Render("> " + line))
	for _, reply := range strings.Split(strings.TrimRight(m.output.String(), "\n"), "\n") {
		if reply != "" {
			m.appendHistory(reply)
		}
	}

	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if m.session.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) appendHistory(line string) {
	m.history = append(m.history, line)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

// History returns the scroll-back lines.
func (m Model) History() []string {
	return m.history
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting && m.err == nil {
		return ""
	}

	r := m.session.Race()
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("TUI Racer"))
	sb.WriteString("\n\n")
	sb.WriteString(ColorTrackLine(r))
	sb.WriteString("\n")
	sb.WriteString(m.statusLine(r))
	sb.WriteString("\n\n")

	// Fit the scroll-back between the header and the prompt
	rows := m.height - 9
	if rows < 1 {
		rows = 1
	}
	start := len(m.history) - rows
	if start < 0 {
		start = 0
	}
	for _, line := range m.history[start:] {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if m.err != nil {
		sb.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// statusLine summarizes round, player progress and flags.
func (m Model) statusLine(r *race.Race) string {
	player := r.Entity(0)
	status := fmt.Sprintf("round %d  laps %d/%d  speed %d/%d",
		r.Round(), player.Laps, r.Settings().Laps, player.Speed, r.Settings().MaxSpeed)

	var flags string
	if winner, ok := r.Winner(); ok {
		flags = " " + flagStyle.Render(fmt.Sprintf(" %c WINS ", winner))
	} else if r.YellowFlag() {
		flags = " " + flagStyle.Render(" YELLOW FLAG ")
	}
	return statusStyle.Render(status) + flags
}

// Run starts the Bubble Tea program for a race.
func Run(r *race.Race, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(r, logger),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
