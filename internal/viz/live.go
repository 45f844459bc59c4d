// Package viz provides a terminal live view of a stepping disk.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"pebbledisk/internal/accrete"
	"pebbledisk/internal/disk"
)

const (
	graphWidth      = 70
	graphHeight     = 10
	historyCapacity = 600
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps a disk at the frame rate and renders its state.
type Model struct {
	d       *disk.Disk
	stepper *accrete.Stepper
	t, dt   float64
	running bool
	err     error

	lastReport  *StepSummary
	fluxHistory []float64
	fps         int
}

// StepSummary is the slice of the step report the view renders.
type StepSummary struct {
	ProductionRate float64
	FinalFlux      float64
	Spawned        int
	EmbryoSigma    []float64
}

// NewModel builds a live view over a disk and stepper, starting at
// startTime [yr] with step dt [yr].
func NewModel(d *disk.Disk, stepper *accrete.Stepper, startTime, dt float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		d:           d,
		stepper:     stepper,
		t:           startTime,
		dt:          dt,
		running:     true,
		fluxHistory: make([]float64, 0, historyCapacity),
		fps:         fps,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case TickMsg:
		if m.running && m.err == nil {
			report, err := m.stepper.Advance(m.d, m.t, m.dt)
			if err != nil {
				m.err = err
				m.running = false
			} else {
				m.t += m.dt
				m.lastReport = &StepSummary{
					ProductionRate: report.ProductionRate,
					FinalFlux:      report.FinalFlux,
					Spawned:        report.Spawned,
					EmbryoSigma:    report.EmbryoSigma,
				}
				m.fluxHistory = append(m.fluxHistory, report.FinalFlux)
				if len(m.fluxHistory) > historyCapacity {
					m.fluxHistory = m.fluxHistory[1:]
				}
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("pebbledisk live"))
	b.WriteString("\n")

	totalMass := 0.0
	for _, e := range m.d.Embryos {
		totalMass += e.Mass
	}

	stats := []string{
		statLine("time", fmt.Sprintf("%.0f yr", m.t)),
		statLine("embryos", fmt.Sprintf("%d", len(m.d.Embryos))),
		statLine("total mass", fmt.Sprintf("%.4g M_E", totalMass)),
	}
	if m.lastReport != nil {
		stats = append(stats,
			statLine("production", fmt.Sprintf("%.3g M_E/yr", m.lastReport.ProductionRate)),
			statLine("leftover flux", fmt.Sprintf("%.3g M_E/yr", m.lastReport.FinalFlux)),
			statLine("spawned", fmt.Sprintf("%d", m.lastReport.Spawned)),
		)
	}
	b.WriteString(statsStyle.Render(strings.Join(stats, "\n")))
	b.WriteString("\n")

	if m.lastReport != nil && len(m.lastReport.EmbryoSigma) > 1 {
		logSigma := make([]float64, len(m.lastReport.EmbryoSigma))
		for i, v := range m.lastReport.EmbryoSigma {
			logSigma[i] = math.Log10(v + 1e-30)
		}
		b.WriteString(graphStyle.Render(asciigraph.Plot(logSigma,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("log10 embryo surface density vs annulus"),
		)))
		b.WriteString("\n")
	}

	if len(m.fluxHistory) > 1 {
		b.WriteString(graphStyle.Render(asciigraph.Plot(m.fluxHistory,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("leftover pebble flux [M_E/yr] vs step"),
		)))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(warnStyle.Render("step failed: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space: pause/resume  q: quit"))
	b.WriteString("\n")
	return b.String()
}

func statLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
