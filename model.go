package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tickInterval   = 400 * time.Millisecond
	framesPerLayer = 3
	holdFrames     = 5
)

// tickMsg drives the animation clock.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// animation order of the stages.
var stageOrder = []stage{
	stageTitle, stageLogical, stageDecompose,
	stageSpatial, stagePulse, stageHardware, stageSummary,
}

// Model represents the TUI application state.
type Model struct {
	circuit *CircuitDefinition
	native  []Gate   // circuit after native decomposition
	layers  [][]Gate // parallel CZ layers of the decomposed circuit

	stageIdx int
	frame    int // frames elapsed within the current stage
	paused   bool
	width    int
	height   int

	codeView viewport.Model
	progBar  progress.Model
}

func initialModel(c *CircuitDefinition) Model {
	vp := viewport.New(40, 16)
	pb := progress.New(progress.WithDefaultGradient())

	return Model{
		circuit:  c,
		native:   c.NativeDecomposition(),
		layers:   c.CZLayers(),
		codeView: vp,
		progBar:  pb,
	}
}

func (m Model) currentStage() stage {
	return stageOrder[m.stageIdx]
}

// stageFrames returns how many ticks the given stage runs before the
// animation moves on.
func (m Model) stageFrames(s stage) int {
	switch s {
	case stageTitle, stageSummary:
		return 2 * holdFrames
	case stageLogical:
		return len(m.circuit.Gates) + holdFrames
	case stageDecompose:
		return len(m.native) + holdFrames
	case stageSpatial:
		return (len(m.layers) + 1) * framesPerLayer
	case stagePulse:
		return m.width/2 + holdFrames
	case stageHardware:
		return (len(m.layers)+1)*framesPerLayer + 2*holdFrames
	}
	return holdFrames
}

func (m *Model) gotoStage(idx int) {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(stageOrder) {
		idx = len(stageOrder) - 1
	}
	m.stageIdx = idx
	m.frame = 0
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		codeW := max(msg.Width/3-6, 24)
		m.codeView.Width = codeW
		m.codeView.Height = max(msg.Height-14, 8)
		m.progBar.Width = max(msg.Width-8, 20)

	case tickMsg:
		if !m.paused {
			m.frame++
			// Auto-advance, holding on the summary screen.
			if m.frame >= m.stageFrames(m.currentStage()) && m.stageIdx < len(stageOrder)-1 {
				m.gotoStage(m.stageIdx + 1)
			}
		}
		return m, tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "n", "right", "l":
			m.gotoStage(m.stageIdx + 1)
		case "p", "left", "h":
			m.gotoStage(m.stageIdx - 1)
		case "r":
			m.gotoStage(0)
			m.paused = false
		case "1", "2", "3", "4", "5":
			// Digits jump straight to the matching pipeline layer.
			m.gotoStage(int(msg.String()[0]-'1') + 1)
		case "up", "k":
			m.codeView.LineUp(1)
		case "down", "j":
			m.codeView.LineDown(1)
		}
	}

	return m, nil
}

// ──────────────────────────── View ────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := m.currentStage()
	info := stageCatalog[s]

	header := titleStyle.Render(info.title) + "  " + subtitleStyle.Render(info.subtitle)

	codeW := m.codeView.Width + 4
	centerW := max(m.width-codeW-6, 30)

	center := circuitStyle.Width(centerW).Render(m.centerContent(s, centerW-4))
	m.codeView.SetContent(m.codeContent(s))
	code := codeStyle.Render(m.codeView.View())
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, center, code)

	var rows []string
	rows = append(rows, header, topRow)
	if info.explain != "" {
		rows = append(rows, explainStyle.Width(m.width-4).Render(info.explain))
	}
	rows = append(rows, m.progBar.ViewAs(m.progressFraction()))
	rows = append(rows, controlsStyle.Render(m.controlsLine()))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// progressFraction measures overall position in the pipeline, including the
// frame position inside the current stage.
func (m Model) progressFraction() float64 {
	total := float64(len(stageOrder))
	frames := m.stageFrames(m.currentStage())
	within := 0.0
	if frames > 0 {
		within = min(float64(m.frame)/float64(frames), 1)
	}
	return (float64(m.stageIdx) + within) / total
}

func (m Model) controlsLine() string {
	state := "▶ playing"
	if m.paused {
		state = "⏸ paused"
	}
	return fmt.Sprintf("%s │ Space pause │ ←/→ stage │ 1-5 jump │ r restart │ q quit", state)
}

// centerContent renders the main panel for the active stage.
func (m Model) centerContent(s stage, width int) string {
	switch s {
	case stageTitle:
		var sb strings.Builder
		sb.WriteString(titleStyle.Render("Neutral-Atom Compilation Pipeline") + "\n")
		sb.WriteString(subtitleStyle.Render(m.circuit.Name) + "\n\n")
		for _, p := range pipelineSummary {
			sb.WriteString("  " + stageTitleStyle.Render(p.name) + dimStyle.Render("  "+p.desc) + "\n")
		}
		return sb.String()

	case stageLogical:
		reveal := min(m.frame+1, len(m.circuit.Gates))
		return renderCircuit(m.circuit.Gates[:reveal], m.circuit.NumQubits, width, nil)

	case stageDecompose:
		reveal := min(m.frame+1, len(m.native))
		// Highlight the CZ gates as they are the hardware-native ones.
		highlight := make(map[int]bool)
		for i, g := range m.native[:reveal] {
			if g.Type == GateCZ {
				highlight[i] = true
			}
		}
		return renderCircuit(m.native[:reveal], m.circuit.NumQubits, width, highlight)

	case stageSpatial:
		idx := layerForFrame(m.frame, framesPerLayer, len(m.layers))
		return renderChipPanel(m.circuit, m.layers, idx)

	case stagePulse:
		return renderPulsePanel(width, m.frame)

	case stageHardware:
		idx := layerForFrame(m.frame, framesPerLayer, len(m.layers))
		readout := m.frame >= (len(m.layers)+1)*framesPerLayer+holdFrames
		return renderHardwarePanel(m.circuit, m.layers, idx, readout)

	case stageSummary:
		return renderSummaryPanel(m.circuit)
	}
	return ""
}

// codeContent picks what the side panel shows for the active stage.
func (m Model) codeContent(s stage) string {
	switch s {
	case stageTitle, stageLogical:
		return m.circuit.DisplayCode()

	case stageDecompose:
		native := &CircuitDefinition{
			Name:      m.circuit.Name,
			NumQubits: m.circuit.NumQubits,
			Gates:     m.native,
		}
		return native.SquinCode()

	default:
		var sb strings.Builder
		sb.WriteString(dimStyle.Render("parallel CZ layers") + "\n\n")
		for i, layer := range m.layers {
			sb.WriteString(fmt.Sprintf("layer %d:\n", i+1))
			for _, g := range layer {
				sb.WriteString(fmt.Sprintf("  CZ(q%d, q%d)\n", g.Qubits[0], g.Qubits[1]))
			}
		}
		if len(m.layers) == 0 {
			sb.WriteString(dimStyle.Render("(none)"))
		}
		return sb.String()
	}
}
