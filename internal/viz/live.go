// Package viz renders a running simulation live in the terminal.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ecosim/internal/sim"
)

const (
	graphWidth      = 72
	graphHeight     = 14
	historyCapacity = 600
	stepsPerFrame   = 8
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	frozenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model holds the stepping simulation and the per-species history shown in
// the live graph.
type Model struct {
	sys      sim.System
	stepper  sim.Stepper
	initial  []float64
	pop      []float64
	t        float64
	dt       float64
	duration float64
	history  [][]float64
	paused   bool
	frozen   bool
	done     bool
}

// NewModel initializes the live view for a simulation run.
func NewModel(sys sim.System, stepper sim.Stepper, initial []float64, dt, duration float64) Model {
	m := Model{
		sys:      sys,
		stepper:  stepper,
		initial:  initial,
		dt:       dt,
		duration: duration,
	}
	m.reset()
	return m
}

func (m *Model) reset() {
	m.pop = make([]float64, len(m.initial))
	copy(m.pop, m.initial)
	m.t = 0
	m.paused = false
	m.frozen = false
	m.done = false
	m.history = make([][]float64, m.sys.Species())
	for i := range m.history {
		m.history[i] = make([]float64, 0, historyCapacity)
	}
	m.record()
}

func (m *Model) record() {
	for i := range m.history {
		m.history[i] = append(m.history[i], m.pop[i])
		if len(m.history[i]) > historyCapacity {
			m.history[i] = m.history[i][1:]
		}
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.reset()
		}
		return m, nil

	case TickMsg:
		if !m.paused && !m.done {
			for i := 0; i < stepsPerFrame && m.t < m.duration; i++ {
				if !m.frozen {
					m.pop = m.stepper.Step(m.sys, m.pop, m.dt)
					for _, p := range m.pop {
						if p > sim.PopulationUpperBound {
							m.frozen = true
							break
						}
					}
				}
				m.t += m.dt
				m.record()
			}
			if m.t >= m.duration {
				m.done = true
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("ecosim live — %d species", m.sys.Species())))
	b.WriteByte('\n')

	graph := asciigraph.PlotMany(m.history,
		asciigraph.Width(graphWidth),
		asciigraph.Height(graphHeight),
		asciigraph.Caption(fmt.Sprintf("t = %.2f / %.2f", m.t, m.duration)),
	)
	b.WriteString(graphStyle.Render(graph))
	b.WriteByte('\n')

	for i, p := range m.pop {
		b.WriteString(labelStyle.Render(fmt.Sprintf("species %d", i)))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%12.4f", p)))
		b.WriteByte('\n')
	}

	if m.frozen {
		b.WriteString(frozenStyle.Render("population diverged — state frozen"))
		b.WriteByte('\n')
	}

	status := "running"
	switch {
	case m.done:
		status = "finished"
	case m.paused:
		status = "paused"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("[%s]  space pause · r reset · q quit", status)))
	b.WriteByte('\n')

	return b.String()
}

// RunLive steps the system in real time inside a bubbletea program.
func RunLive(sys sim.System, stepper sim.Stepper, initial []float64, dt, duration float64) error {
	p := tea.NewProgram(NewModel(sys, stepper, initial, dt, duration))
	_, err := p.Run()
	return err
}
