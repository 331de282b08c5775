// Package ui implements the terminal visualizer for 2D and 3D keyspaces.
//
// The visualizer is a read-only consumer of the core: it renders the
// vectors of one keyspace as a scatter plot with axes and unit markers,
// supports pan/zoom, and rotates 3D keyspaces about the vertical axis.
// Nothing here feeds back into store state.
package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hupe1980/vecstore"
)

const (
	pointRune  = '●'
	originRune = '┼'
	hAxisRune  = '─'
	vAxisRune  = '│'
	tickRune   = '+'

	// Terminal cells are roughly twice as tall as wide; squash the
	// vertical axis so circles look like circles.
	cellAspect = 0.5

	panStep   = 0.5
	zoomStep  = 1.25
	angleStep = math.Pi / 12
)

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6"))

	pointStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

// Model is the bubbletea model rendering one keyspace of a VectorStore.
type Model struct {
	store    *vecstore.VectorStore
	keyspace *vecstore.Keyspace

	width  int
	height int
	ready  bool

	scale      float64
	panX, panY float64
	angle      float64 // rotation about the y axis, 3D only

	quitting bool
}

// NewModel creates a visualizer model for the named keyspace.
// Only 2D and 3D keyspaces can be rendered.
func NewModel(store *vecstore.VectorStore, keyspaceName string) (*Model, error) {
	ks, err := store.Keyspace(keyspaceName)
	if err != nil {
		return nil, err
	}
	if d := ks.Dimension(); d != 2 && d != 3 {
		return nil, fmt.Errorf("ui: cannot render %d-dimensional keyspace %q", d, keyspaceName)
	}

	return &Model{
		store:    store,
		keyspace: ks,
		scale:    8,
	}, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "left":
			m.panX += panStep
		case "right":
			m.panX -= panStep
		case "up":
			m.panY -= panStep
		case "down":
			m.panY += panStep
		case "+", "=":
			m.scale *= zoomStep
		case "-", "_":
			m.scale /= zoomStep
		case "r":
			if m.keyspace.Dimension() == 3 {
				m.angle += angleStep
			}
		case "R":
			if m.keyspace.Dimension() == 3 {
				m.angle -= angleStep
			}
		case "0":
			m.panX, m.panY, m.angle = 0, 0, 0
			m.scale = 8
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.quitting {
		return ""
	}

	plotW := m.width - 4
	plotH := m.height - 5
	if plotW < 8 || plotH < 4 {
		return "Terminal too small"
	}

	grid := m.renderGrid(plotW, plotH)
	status := statusStyle.Render(m.statusLine())
	help := statusStyle.Render("arrows pan · +/- zoom · r/R rotate · 0 reset · q quit")

	return borderStyle.Render(grid) + "\n" + status + "\n" + help
}

func (m *Model) renderGrid(plotW, plotH int) string {
	rows := make([][]rune, plotH)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", plotW))
	}

	axisCells := make(map[[2]int]bool)
	centerX, centerY := plotW/2, plotH/2

	set := func(col, row int, r rune) {
		if col < 0 || col >= plotW || row < 0 || row >= plotH {
			return
		}
		rows[row][col] = r
	}

	// Axes through the world origin.
	oc, or := m.toScreen(0, 0, centerX, centerY)
	for col := 0; col < plotW; col++ {
		set(col, or, hAxisRune)
		axisCells[[2]int{col, or}] = true
	}
	for row := 0; row < plotH; row++ {
		set(oc, row, vAxisRune)
		axisCells[[2]int{oc, row}] = true
	}
	set(oc, or, originRune)

	// Unit markers; spread them out when zoomed far out.
	spacing := 1.0
	if m.scale < 4 {
		spacing = 5.0
	} else if m.scale < 8 {
		spacing = 2.0
	}
	for u := spacing; u < 1000; u += spacing {
		for _, x := range []float64{u, -u} {
			col, row := m.toScreen(x, 0, centerX, centerY)
			set(col, row, tickRune)
		}
		for _, y := range []float64{u, -u} {
			col, row := m.toScreen(0, y, centerX, centerY)
			set(col, row, tickRune)
		}
	}

	// Stored points, projected and plotted on top of the axes.
	pointCells := make(map[[2]int]bool)
	for i := 0; i < m.keyspace.Size(); i++ {
		vec, err := m.keyspace.VectorAt(i)
		if err != nil {
			continue // concurrent removal shrank the keyspace
		}
		x, y := project(vec, m.angle)
		col, row := m.toScreen(x, y, centerX, centerY)
		set(col, row, pointRune)
		if col >= 0 && col < plotW && row >= 0 && row < plotH {
			pointCells[[2]int{col, row}] = true
		}
	}

	var b strings.Builder
	for row := range rows {
		for col, r := range rows[row] {
			switch {
			case pointCells[[2]int{col, row}]:
				b.WriteString(pointStyle.Render(string(r)))
			case axisCells[[2]int{col, row}]:
				b.WriteString(axisStyle.Render(string(r)))
			default:
				b.WriteRune(r)
			}
		}
		if row < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *Model) toScreen(x, y float64, centerX, centerY int) (col, row int) {
	col = centerX + int(math.Round((x+m.panX)*m.scale))
	row = centerY - int(math.Round((y+m.panY)*m.scale*cellAspect))
	return col, row
}

func (m *Model) statusLine() string {
	s := fmt.Sprintf("store=%s keyspace=%s dim=%d vectors=%d scale=%.1f",
		m.store.Name(), m.keyspace.Name(), m.keyspace.Dimension(), m.keyspace.Size(), m.scale)
	if m.keyspace.Dimension() == 3 {
		s += fmt.Sprintf(" angle=%.0f°", m.angle*180/math.Pi)
	}
	return s
}

// project maps a stored vector to plot coordinates. 3D vectors are
// rotated about the y axis by angle before dropping the depth component.
func project(vec vecstore.Vector, angle float64) (x, y float64) {
	x, _ = vec.Element(0)
	y, _ = vec.Element(1)
	if vec.Dimension() < 3 {
		return x, y
	}

	z, _ := vec.Element(2)
	sin, cos := math.Sincos(angle)
	return x*cos + z*sin, y
}

// Run starts the visualizer over the named keyspace and blocks until
// the user quits.
func Run(store *vecstore.VectorStore, keyspaceName string) error {
	model, err := NewModel(store, keyspaceName)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
