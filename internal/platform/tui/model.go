package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/floppy/internal/core"
	"github.com/vovakirdan/floppy/internal/game"
)

// footerHeight is the number of rows reserved below the playfield.
const footerHeight = 1

// pausedLabel is drawn over the middle of the playfield while paused.
const pausedLabel = " PAUSED "

var (
	stateStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is the Bubble Tea model that runs a started game.Machine.
type Model struct {
	machine  *game.Machine
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	config   core.RuntimeConfig
	logger   *log.Logger
	pending  core.InputFrame // actions seen since the last tick
	lastTick time.Time
	quitting bool
}

// NewModel creates a model for machine. The machine must already be started.
func NewModel(machine *game.Machine, keys KeyMap, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	h := help.New()
	h.ShowAll = false
	return Model{
		machine: machine,
		keys:    keys,
		help:    h,
		screen:  core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-footerHeight)),
		config:  cfg,
		logger:  logger,
		pending: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		for _, a := range m.keys.MouseActions(msg) {
			m.pending.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the actions a key triggers until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always works, even when unbound: treat it as closing the window.
	if msg.Type == tea.KeyCtrlC {
		m.pending.Set(core.ActionClose)
	}
	for _, a := range m.keys.Actions(msg) {
		m.pending.Set(a)
	}
	return m, nil
}

// handleResize processes terminal resize events.
// The world keeps its size; only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-footerHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the machine with the time elapsed since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.TickSeconds()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	res := m.machine.Step(dt, m.pending)
	if res.Trans.Op != game.OpNone {
		m.logger.Debug("tui transition", "event", res.Event, "state", res.State)
	}
	m.pending.Clear()

	if !res.Running {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	cfg := m.machine.Config()
	Project(m.screen, m.machine.Drawables(), cfg.Display.Width, cfg.Display.Height)
	if m.machine.State() == game.Paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, pausedLabel)
	}

	footer := titleStyle.Render(cfg.Display.Title+" ") +
		stateStyle.Render(m.machine.State().String()) + "  " +
		m.help.View(m.keys)
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for a started machine.
func Run(machine *game.Machine, keys KeyMap, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(machine, keys, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks can be bound to flap
	)

	_, err := p.Run()
	return err
}
