package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rule30life/internal/automaton"
	"github.com/san-kum/rule30life/internal/control"
	"github.com/san-kum/rule30life/internal/harness"
	"github.com/san-kum/rule30life/internal/metrics"
	"github.com/san-kum/rule30life/internal/sim"
)

const DefaultFrameInterval = time.Second / 30

type TickMsg time.Time

// Model is the Bubble Tea front end of a running harness. It only reads
// snapshots; the harness steps on its own goroutine.
type Model struct {
	h        *harness.Harness
	ctrl     *control.Controller
	rec      *metrics.Recorder
	interval time.Duration

	snap     sim.Snapshot
	frame    []automaton.Cell
	canvas   *Canvas
	theme    Theme
	showHelp bool
	lastErr  error
}

// NewModel draws the initial frame so the first View is never empty. rec may
// be nil.
func NewModel(h *harness.Harness, ctrl *control.Controller, rec *metrics.Recorder, interval time.Duration, theme string) Model {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	cw, ch := CanvasSize(h.Width(), h.Height())
	m := Model{
		h:        h,
		ctrl:     ctrl,
		rec:      rec,
		interval: interval,
		canvas:   NewCanvas(cw, ch),
		theme:    GetTheme(theme),
	}
	m.refresh()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "t":
			m.theme = NextTheme(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		default:
			a, err := m.ctrl.HandleKey(key)
			m.lastErr = err
			if a == control.Quit {
				return m, tea.Quit
			}
		}
	case TickMsg:
		m.refresh()
		return m, m.tick()
	}
	return m, nil
}

// refresh copies the latest state out of the harness and redraws the canvas.
func (m *Model) refresh() {
	m.h.SnapshotInto(&m.snap)
	m.frame = m.snap.Composite(m.frame)
	m.canvas.DrawCells(m.frame, m.snap.Width)
}

// Tick is the generation currently on screen.
func (m Model) Tick() uint64 { return m.snap.Tick }

func (m Model) Theme() Theme { return m.theme }

func (m Model) View() string {
	canvasView := lipgloss.NewStyle().Padding(1, 2).Render(m.renderCanvas())
	statsView := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(m.theme.Muted).
		Padding(1, 2).
		Width(40).
		Render(m.renderStats())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// renderCanvas colours every character row that shows at least one Life row
// with the Life colour and the rest with the Rule 30 colour.
func (m Model) renderCanvas() string {
	lifeStyle := lipgloss.NewStyle().Foreground(m.theme.Life)
	lineStyle := lipgloss.NewStyle().Foreground(m.theme.Lines)

	rows := m.canvas.Lines()
	for i, row := range rows {
		if i*4 < m.snap.LifeHeight {
			rows[i] = lifeStyle.Render(row)
		} else {
			rows[i] = lineStyle.Render(row)
		}
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderStats() string {
	header := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).MarginBottom(1)
	label := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(12)
	value := lipgloss.NewStyle().Foreground(m.theme.Text)
	help := lipgloss.NewStyle().Foreground(m.theme.Muted).MarginTop(1)
	errStyle := lipgloss.NewStyle().Foreground(m.theme.Error)

	speed := m.h.Speed()
	var s strings.Builder
	s.WriteString(header.Render("RULE 30 → LIFE") + "\n")

	row := func(k, v string) {
		s.WriteString(label.Render(k) + value.Render(v) + "\n")
	}
	row("Tick", fmt.Sprintf("%d", m.snap.Tick))
	row("Grid", fmt.Sprintf("%dx%d", m.snap.Width, m.snap.Height()))
	row("Speed", fmt.Sprintf("x%.3g", speed.Get()))
	row("Interval", speed.Interval(m.h.BaseInterval()).Round(time.Microsecond).String())

	if m.rec != nil {
		for _, v := range m.rec.Values() {
			row(v.Name, formatValue(v))
		}
		if hist := m.rec.History(); len(hist) > 1 {
			chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Population"))
			s.WriteString(lipgloss.NewStyle().Foreground(m.theme.Life).Padding(1, 0).Render(chart) + "\n")
		}
	}

	if err := m.h.Err(); err != nil {
		s.WriteString(errStyle.Render("stopped: "+err.Error()) + "\n")
	} else if m.lastErr != nil {
		s.WriteString(errStyle.Render(m.lastErr.Error()) + "\n")
	}

	if m.showHelp {
		lines := append(m.ctrl.KeyMap().Help(), "t: theme", "?: hide help")
		s.WriteString(help.Render(strings.Join(lines, "\n")))
	} else {
		s.WriteString(help.Render("?:Help T:Theme Q:Quit"))
	}
	return s.String()
}

func formatValue(v metrics.Value) string {
	if v.Name == "population" {
		return fmt.Sprintf("%.0f", v.Value)
	}
	return fmt.Sprintf("%.3f", v.Value)
}
