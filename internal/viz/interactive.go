package viz

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/scenario"
	"github.com/san-kum/colsim/internal/sim"
)

var scenarioInfo = map[string]string{
	"random":    "non-overlapping gas mix",
	"lattice":   "jittered grid",
	"billiards": "cue fired at a rack",
	"headon":    "symmetric collision course",
	"shower":    "rain on a heavy base",
}

const (
	stateMenu = iota
	stateConfig
	stateSim
)

type app struct {
	state, cursor int
	scenarios     []string
	selected      string
	params        map[string]float64
	paramNames    []string
	paramCursor   int
	editing       bool
	editBuf       string
	liveModel     Model
}

func newInteractiveApp() *app {
	return &app{
		state:     stateMenu,
		scenarios: scenario.List(),
		params: map[string]float64{
			"bodies": 12, "width": 10, "height": 8, "rmin": 0.2, "rmax": 0.5,
			"maxspeed": 2.0, "dt": 0.02, "seed": 1,
		},
		paramNames: []string{"bodies", "width", "height", "rmin", "rmax", "maxspeed", "dt", "seed"},
	}
}

func (m app) Init() tea.Cmd { return nil }

func (m app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		if m.state == stateSim {
			newLive, cmd := m.liveModel.Update(msg)
			m.liveModel = newLive.(Model)
			return m, cmd
		}
	}
	return m, nil
}

func (m app) handleKey(msg tea.KeyMsg) (app, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateSim:
		newLive, cmd := m.liveModel.Update(msg)
		m.liveModel = newLive.(Model)
		return m, cmd
	}
	return m, nil
}

func (m app) menuKey(msg tea.KeyMsg) (app, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.scenarios)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.scenarios[m.cursor]
		m.state, m.paramCursor = stateConfig, 0
	}
	return m, nil
}

func (m app) configKey(msg tea.KeyMsg) (app, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.params[m.paramNames[m.paramCursor]] = val
			m.editing, m.editBuf = false, ""
		case "escape":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}
	switch msg.String() {
	case "q", "escape":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing, m.editBuf = true, fmt.Sprintf("%.2f", m.params[m.paramNames[m.paramCursor]])
	case "s":
		return m.start()
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	}
	return m, nil
}

// adjust nudges the selected parameter by a step sized to its meaning:
// counts and seeds move by one, dimensions by one, the rest by 0.1.
func (m *app) adjust(dir float64) {
	name := m.paramNames[m.paramCursor]
	step := 0.1
	switch name {
	case "bodies", "seed", "width", "height":
		step = 1
	case "dt":
		step = 0.005
	}
	m.params[name] += dir * step
	if m.params[name] < 0 {
		m.params[name] = 0
	}
}

func (m app) start() (app, tea.Cmd) {
	dt := m.params["dt"]
	if dt <= 0 {
		dt = 0.02
	}
	bounds := body.Boundary{Width: m.params["width"], Height: m.params["height"]}
	if bounds.Width <= 0 || bounds.Height <= 0 {
		bounds = body.Boundary{Width: 10, Height: 8}
	}

	gen, err := scenario.Get(m.selected)
	if err != nil {
		m.state = stateMenu
		return m, nil
	}
	rng := rand.New(rand.NewSource(int64(m.params["seed"])))
	bodies := gen(rng, scenario.Params{
		Bounds:    bounds,
		Count:     int(m.params["bodies"]),
		RadiusMin: m.params["rmin"],
		RadiusMax: m.params["rmax"],
		MaxSpeed:  m.params["maxspeed"],
	})

	s, err := sim.New(bodies, bounds)
	if err != nil {
		m.state = stateMenu
		return m, nil
	}
	m.liveModel = NewModel(s, dt, m.selected)
	m.state = stateSim
	return m, m.liveModel.Init()
}

func (m app) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateSim:
		return m.liveModel.View()
	}
	return ""
}

func (m app) viewMenu() string {
	theme := CurrentTheme
	h := lipgloss.NewStyle().Foreground(theme.Header).Bold(true)
	sub := lipgloss.NewStyle().Foreground(theme.Muted)
	sel := lipgloss.NewStyle().Foreground(theme.Value).Bold(true)
	selMark := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.Label)

	var b strings.Builder
	b.WriteString("\n\n    " + h.Render("COLSIM") + "\n    " + sub.Render("elastic collision sandbox") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, name := range m.scenarios {
		info := scenarioInfo[name]
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", selMark.Render("▸"), sel.Render(fmt.Sprintf("%-12s", name)), desc.Render(info)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", sub.Render(fmt.Sprintf("%-12s", name)), sub.Render(info)))
		}
	}
	b.WriteString("\n    " + selMark.Render("j/k") + sub.Render(" navigate  ") + selMark.Render("enter") + sub.Render(" select  ") + selMark.Render("q") + sub.Render(" quit") + "\n")
	return b.String()
}

func (m app) viewConfig() string {
	theme := CurrentTheme
	h := lipgloss.NewStyle().Foreground(theme.Header).Bold(true)
	sub := lipgloss.NewStyle().Foreground(theme.Muted)
	sel := lipgloss.NewStyle().Foreground(theme.Value).Bold(true)
	selMark := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	val := lipgloss.NewStyle().Foreground(theme.Accent)

	var b strings.Builder
	b.WriteString("\n\n    " + h.Render(strings.ToUpper(m.selected)) + "\n    " + sub.Render(scenarioInfo[m.selected]) + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, name := range m.paramNames {
		valStr := fmt.Sprintf("%8.3f", m.params[name])
		if m.editing && i == m.paramCursor {
			valStr = fmt.Sprintf("%8s", m.editBuf+"_")
		}
		if i == m.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", selMark.Render("▸"), sel.Render(fmt.Sprintf("%-10s", name)), val.Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n", sub.Render(fmt.Sprintf("%-10s", name)), sub.Render(valStr)))
		}
	}
	b.WriteString("\n    " + selMark.Render("j/k") + sub.Render(" select  ") + selMark.Render("h/l") + sub.Render(" adjust  ") + selMark.Render("s") + sub.Render(" start  ") + selMark.Render("esc") + sub.Render(" back") + "\n")
	return b.String()
}

func RunInteractive() error {
	return tea.NewProgram(newInteractiveApp(), tea.WithAltScreen()).Start()
}
