package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/pkarell/fissim/internal/reactor"
	"github.com/pkarell/fissim/internal/sim"
)

const historyCapacity = 600

var graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)

type TickMsg time.Time

// Model drives a reactor in real time. An optional controller runs before
// every plant step, exactly as in a headless run; the arrow keys nudge the
// commanded rates between controller updates.
type Model struct {
	reactor    *reactor.Reactor
	controller sim.Controller
	dt         float64
	tickRate   int
	t          float64
	running    bool
	tempHist   []float64
	powerHist  []float64
}

// NewModel wires a reactor and an optional controller into a live view
// stepped at tickRate frames per second.
func NewModel(r *reactor.Reactor, ctrl sim.Controller, tickRate int) Model {
	if tickRate <= 0 {
		tickRate = sim.DefaultTickRate
	}
	return Model{
		reactor:    r,
		controller: ctrl,
		dt:         1 / float64(tickRate),
		tickRate:   tickRate,
		running:    true,
		tempHist:   make([]float64, 0, historyCapacity),
		powerHist:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.tickRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the reactor.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "up", "k":
			m.nudgeFission(5)
		case "down", "j":
			m.nudgeFission(-5)
		case "right", "l":
			m.nudgeTurbine(5)
		case "left", "h":
			m.nudgeTurbine(-5)
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) nudgeFission(delta float64) {
	in, _ := m.reactor.Controls()
	in.SetFissionRate(in.FissionRate() + delta)
}

func (m *Model) nudgeTurbine(delta float64) {
	in, _ := m.reactor.Controls()
	in.SetTurbineRate(in.TurbineRate() + delta)
}

// step advances the plant by one tick, controller first.
func (m *Model) step() {
	in, out := m.reactor.Controls()
	if m.controller != nil {
		m.controller.Update(out, in)
	}
	m.reactor.Update(m.dt)
	m.t += m.dt

	m.tempHist = append(m.tempHist, m.reactor.Temperature())
	if len(m.tempHist) > historyCapacity {
		m.tempHist = m.tempHist[1:]
	}
	m.powerHist = append(m.powerHist, m.reactor.Power())
	if len(m.powerHist) > historyCapacity {
		m.powerHist = m.powerHist[1:]
	}
}

// reset swaps in a fresh reactor with the same plant parameters.
func (m *Model) reset() {
	m.reactor = reactor.New(m.reactor.FuelPotential(), m.reactor.PowerMax())
	m.t = 0
	m.tempHist = m.tempHist[:0]
	m.powerHist = m.powerHist[:0]
}

// View renders the TUI interface.
func (m Model) View() string {
	in, out := m.reactor.Controls()

	var s strings.Builder
	s.WriteString(HeaderStyle.Render("REACTOR CORE") + "\n")

	status := StatusRunning.Render("RUNNING")
	if !m.running {
		status = StatusPaused.Render("PAUSED")
	}
	s.WriteString(fmt.Sprintf("%s  t=%.1fs  fuel potential %.0f\n", status, m.t, m.reactor.FuelPotential()))

	if len(m.tempHist) > 1 {
		chart := asciigraph.Plot(m.tempHist,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("Temperature"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	s.WriteString("\n")

	s.WriteString(metricRow("Temperature", out.Temperature/10000,
		fmt.Sprintf("%7.1f", out.Temperature)))
	s.WriteString(metricRow("Fission", out.FissionRate/100,
		fmt.Sprintf("%5.1f → %5.1f", out.FissionRate, in.FissionRate())))
	s.WriteString(metricRow("Turbine", out.TurbineRate/100,
		fmt.Sprintf("%5.1f → %5.1f", out.TurbineRate, in.TurbineRate())))
	s.WriteString(metricRow("Load", out.Load/100, fmt.Sprintf("%5.1f", out.Load)))

	powerFrac := 0.0
	if m.reactor.PowerMax() > 0 {
		powerFrac = out.Power / m.reactor.PowerMax()
	}
	s.WriteString(metricRow("Power", powerFrac, fmt.Sprintf("%7.1f", out.Power)))
	if len(m.powerHist) > 1 {
		s.WriteString(strings.Repeat(" ", 12) + Sparkline(m.powerHist, 40) + "\n")
	}

	s.WriteString(fmt.Sprintf("\nheat supply %.0f  demand %.0f\n",
		m.reactor.HeatSupply(), m.reactor.HeatDemand()))

	s.WriteString(KeyHint.Render("\nSPACE:Pause R:Reset ↑↓:Fission ←→:Turbine Q:Quit"))
	return s.String()
}

func metricRow(label string, frac float64, value string) string {
	return MetricLabel.Render(fmt.Sprintf("%-12s", label)) +
		Gauge(frac, 24) + " " + MetricValue.Render(value) + "\n"
}
