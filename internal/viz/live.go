package viz

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/collision"
	"github.com/san-kum/colsim/internal/sim"
	"github.com/san-kum/colsim/internal/vec"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600

	minDt = 1e-4
	maxDt = 0.5
)

// Snapshot stores positions at a specific time for replay.
type Snapshot struct {
	Positions []vec.Vec2
	Time      float64
	Energy    float64
}

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model contains simulation state, visualization buffers, and UI context.
type Model struct {
	sim           *sim.Simulation
	initial       []*body.Body
	scene         *Scene
	dt            float64
	running       bool
	name          string
	energyHistory []float64
	speedHistory  []float64
	history       []Snapshot
	playHead      int
	recording     bool
	frames        []*image.Paletted
	showHelp      bool

	// GIFPath is where a recording lands when the user stops it.
	GIFPath string
}

// NewModel wraps a simulation for interactive viewing. The simulation
// is stepped live at dt per tick; reset restores the bodies captured
// here.
func NewModel(s *sim.Simulation, dt float64, name string) Model {
	bodies := s.Bodies()
	initial := make([]*body.Body, len(bodies))
	radii := make([]float64, len(bodies))
	for i, b := range bodies {
		initial[i] = b.Clone()
		radii[i] = b.Radius
	}

	return Model{
		sim:           s,
		initial:       initial,
		scene:         NewScene(s.Bounds(), radii, width, height),
		dt:            dt,
		running:       true,
		name:          name,
		energyHistory: make([]float64, 0, historyCapacity),
		speedHistory:  make([]float64, 0, historyCapacity),
		history:       make([]Snapshot, 0, historyCapacity),
		playHead:      -1,
		GIFPath:       "simulation.gif",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
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
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		case "up", "k":
			m.adjustDt(1.05)
		case "down", "j":
			m.adjustDt(0.95)
		case "g":
			if m.recording {
				SaveGIF(m.GIFPath, m.frames)
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
			}
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			if m.playHead == -1 {
				m.step()
			} else {
				m.playHead++
				if m.playHead >= len(m.history) {
					m.playHead = -1
				}
			}
		}
		m.draw()
		if m.recording {
			m.frames = append(m.frames, m.scene.Canvas().Paletted())
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) adjustDt(factor float64) {
	dt := m.dt * factor
	if dt < minDt {
		dt = minDt
	}
	if dt > maxDt {
		dt = maxDt
	}
	m.dt = dt
}

// step advances the physics and records history.
func (m *Model) step() {
	m.sim.Step(m.dt)

	energy := m.sim.Energy()
	m.energyHistory = append(m.energyHistory, energy)
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}

	mean := 0.0
	bodies := m.sim.Bodies()
	for _, b := range bodies {
		mean += b.Vel.Length()
	}
	if len(bodies) > 0 {
		mean /= float64(len(bodies))
	}
	m.speedHistory = append(m.speedHistory, mean)
	if len(m.speedHistory) > historyCapacity {
		m.speedHistory = m.speedHistory[1:]
	}

	snap := Snapshot{Positions: m.sim.Positions(), Time: m.sim.Time(), Energy: energy}
	m.history = append(m.history, snap)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

// scrub changes the playback position in history.
func (m *Model) scrub(dir int) {
	if m.playHead == -1 {
		if len(m.history) > 0 {
			m.playHead = len(m.history) - 1
			m.running = false
		} else {
			return
		}
	}
	m.playHead += dir
	if m.playHead < 0 {
		m.playHead = 0
	}
	if m.playHead >= len(m.history) {
		m.playHead = -1
	}
}

// reset restores the bodies captured at construction.
func (m *Model) reset() {
	fresh := make([]*body.Body, len(m.initial))
	for i, b := range m.initial {
		fresh[i] = b.Clone()
	}
	s, err := sim.New(fresh, m.sim.Bounds())
	if err != nil {
		return
	}
	m.sim = s
	m.energyHistory = m.energyHistory[:0]
	m.speedHistory = m.speedHistory[:0]
	m.history = m.history[:0]
	m.playHead = -1
}

// contacts counts currently touching pairs.
func (m *Model) contacts() int {
	bodies := m.sim.Bodies()
	n := 0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if collision.Detect(bodies[i], bodies[j]).Colliding {
				n++
			}
		}
	}
	return n
}

// draw renders the live state, or the snapshot under the play head.
func (m *Model) draw() {
	if m.playHead >= 0 && m.playHead < len(m.history) {
		m.scene.Draw(m.history[m.playHead].Positions)
		return
	}
	m.scene.Draw(m.sim.Positions())
}

// View renders the TUI interface.
func (m Model) View() string {
	theme := CurrentTheme
	headerStyle := lipgloss.NewStyle().Foreground(theme.Header).Bold(true).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Label).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Value)
	graphStyle := lipgloss.NewStyle().Foreground(theme.Graph).Padding(1, 0)

	m.draw()
	canvasView := canvasStyle.Render(m.scene.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")

	status := StatusRunning.Render("RUNNING")
	if !m.running {
		status = StatusPaused.Render("PAUSED")
	}
	if m.playHead != -1 {
		status = StatusPaused.Render(fmt.Sprintf("REPLAY %.2fs", m.history[m.playHead].Time))
	}
	if m.recording {
		status += "  " + StatusRecording.Render("REC")
	}
	s.WriteString(status + "\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	t := m.sim.Time()
	energy := m.sim.Energy()
	if m.playHead >= 0 && m.playHead < len(m.history) {
		t = m.history[m.playHead].Time
		energy = m.history[m.playHead].Energy
	}
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", t)) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.4f", energy)) + "\n")
	if len(m.energyHistory) > 0 && m.energyHistory[0] != 0 {
		drift := (energy - m.energyHistory[0]) / m.energyHistory[0]
		s.WriteString(labelStyle.Render("Drift") + valueStyle.Render(fmt.Sprintf("%+.2e", drift)) + "\n")
	}
	s.WriteString(labelStyle.Render("Momentum") + valueStyle.Render(fmt.Sprintf("%.4f", m.sim.Momentum().Length())) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", len(m.sim.Bodies()))) + "\n")
	s.WriteString(labelStyle.Render("Contacts") + valueStyle.Render(fmt.Sprintf("%d", m.contacts())) + "\n")
	s.WriteString(labelStyle.Render("Collisions") + valueStyle.Render(fmt.Sprintf("%d", m.sim.Collisions())) + "\n")
	s.WriteString(labelStyle.Render("dt") + valueStyle.Render(fmt.Sprintf("%.4f", m.dt)) + "\n")

	if len(m.speedHistory) > 1 {
		s.WriteString("\n" + labelStyle.Render("Mean speed") + SparklineChart(m.speedHistory, 24) + "\n")
	}
	if m.playHead != -1 && len(m.history) > 0 {
		pos := float64(m.playHead) / float64(len(m.history)-1)
		s.WriteString("\n" + labelStyle.Render("Replay") + ProgressBar(pos, 24) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nT:Theme  G:Record ?:Help\n[ ]:Replay ↑↓:Time step"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  R        - Reset simulation         ║
║  Q        - Quit                     ║
║  Up/K     - Larger time step (+5%)   ║
║  Down/J   - Smaller time step (-5%)  ║
║  [        - Rewind (replay)          ║
║  ]        - Forward (replay)         ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// SaveGIF encodes frames as an endlessly looping animation. The frame
// delay is two hundredths of a second, matching the 60fps-ish tick.
func SaveGIF(path string, frames []*image.Paletted) error {
	if len(frames) == 0 {
		return errors.New("viz: no frames to encode")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
