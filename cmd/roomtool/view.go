package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/shared/physics"
	"github.com/automoto/cavefall/shared/rooms"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var flagViewRoom int

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Play the rooms in the terminal",
	Long: `view runs the simulation in the terminal. Terminals report key presses
but not releases, so a move key keeps the miner walking for a few ticks.`,
	Run: func(cmd *cobra.Command, args []string) {
		cat := mustCatalog()
		sim := physics.New(rooms.New(cat, newRNG()), config.Kernel())
		sim.Start(flagViewRoom)

		p := tea.NewProgram(newViewModel(sim), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	viewCmd.Flags().IntVar(&flagViewRoom, "room", 0, "Catalog index to start in")
}

// holdTicks is how long one key press keeps the miner moving.
const holdTicks = 8

type viewKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Rotate  key.Binding
	Respawn key.Binding
	Next    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k viewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Help, k.Quit}
}

func (k viewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate},
		{k.Respawn, k.Next},
		{k.Help, k.Quit},
	}
}

func defaultViewKeyMap() viewKeyMap {
	return viewKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "walk left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "walk right"),
		),
		Rotate: key.NewBinding(
			key.WithKeys(" ", "up", "k"),
			key.WithHelp("space", "turn cave"),
		),
		Respawn: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart room"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n", "next room"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type viewTickMsg time.Time

func viewTick(step float64) tea.Cmd {
	return tea.Tick(time.Duration(step*float64(time.Second)), func(t time.Time) tea.Msg {
		return viewTickMsg(t)
	})
}

// viewModel is the Bubble Tea model wrapping a live simulation.
type viewModel struct {
	sim  *physics.Simulation
	keys viewKeyMap
	help help.Model

	dir    float64
	hold   int
	deaths int
	last   string
}

func newViewModel(sim *physics.Simulation) viewModel {
	return viewModel{
		sim:  sim,
		keys: defaultViewKeyMap(),
		help: help.New(),
		last: "entered room",
	}
}

func (m viewModel) Init() tea.Cmd {
	return viewTick(m.sim.Config.TimeStep)
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case viewTickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m viewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.dir, m.hold = -1, holdTicks
	case key.Matches(msg, m.keys.Right):
		m.dir, m.hold = 1, holdTicks
	case key.Matches(msg, m.keys.Rotate):
		if !m.sim.Rotate() {
			m.last = "still turning"
		}
	case key.Matches(msg, m.keys.Respawn):
		m.sim.Respawn()
	case key.Matches(msg, m.keys.Next):
		m.sim.Start(m.sim.Room.Next())
		m.last = fmt.Sprintf("skipped to room %d", m.sim.Room.Index()+1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m.absorb(), nil
}

func (m viewModel) handleTick() (tea.Model, tea.Cmd) {
	in := physics.Input{}
	if m.hold > 0 {
		in.Horizontal = m.dir
		m.hold--
	}
	m.sim.Step(in)
	return m.absorb(), viewTick(m.sim.Config.TimeStep)
}

// absorb folds queued simulation events into the status line.
func (m viewModel) absorb() viewModel {
	for _, ev := range m.sim.DrainEvents() {
		switch ev.Kind {
		case physics.EventDeath, physics.EventSuffocated:
			m.deaths++
			m.last = describeEvent(ev)
		case physics.EventExit, physics.EventRotated, physics.EventRespawn:
			m.last = describeEvent(ev)
		}
	}
	return m
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

func (m viewModel) View() string {
	p := m.sim.Player
	cx := p.Position.X + p.Width/2
	cy := p.Position.Y + p.Height/2
	marker := rooms.CellAt(cx, cy)

	var sb strings.Builder
	sb.WriteString(roomCard(m.sim.Room, &marker, true))
	sb.WriteString("\n")
	sb.WriteString(oxygenBar(p.OxygenRatio(m.sim.Config), 20))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(fmt.Sprintf("%-9s deaths %d  %s", p.State, m.deaths, m.last)))
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

var (
	oxygenStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	oxygenLowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// oxygenBar draws ratio as a bar width cells wide.
func oxygenBar(ratio float64, width int) string {
	filled := int(math.Round(ratio * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	style := oxygenStyle
	if ratio < config.HUD.OxygenLowFraction {
		style = oxygenLowStyle
	}
	return "O2 " + style.Render(bar)
}
