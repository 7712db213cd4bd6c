// Package mapview renders the day's points of interest as a character
// grid: the terminal's stand-in for a tile map. It consumes the
// activities, the last known user position, and an optional focused
// location, and marks each on a lat/lng-normalized canvas.
package mapview

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sgarcia/romaday/internal/geo"
	"github.com/sgarcia/romaday/internal/models"
)

var (
	canvasStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)

	poiStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("88")).Bold(true)
	focusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true)
	userStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	legendStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	offlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
)

type Model struct {
	activities []models.Activity
	user       *models.Coordinates
	focused    *models.Coordinates
	focusLabel string
	available  bool
	width      int
	height     int
}

func New(activities []models.Activity, positioningAvailable bool, width, height int) Model {
	return Model{
		activities: activities,
		available:  positioningAvailable,
		width:      width,
		height:     height,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetActivities(activities []models.Activity) {
	m.activities = activities
}

// SetUser replaces the last known position wholesale; each reading
// supersedes the previous one.
func (m *Model) SetUser(c models.Coordinates) {
	m.user = &c
}

// Focus flies the view to a location (a tap on a timeline card).
func (m *Model) Focus(c models.Coordinates, label string) {
	m.focused = &c
	m.focusLabel = label
}

func (m Model) View() string {
	cols := m.width - 6
	rows := m.height - 8
	if cols < 20 {
		cols = 20
	}
	if rows < 8 {
		rows = 8
	}

	// City detail only: the port is ~60 km away and would crush the
	// centre into a single cell.
	var pois []models.Activity
	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLng, maxLng := math.Inf(1), math.Inf(-1)
	for _, act := range m.activities {
		if act.Coords.Lat > 42.0 {
			continue
		}
		pois = append(pois, act)
		minLat = math.Min(minLat, act.Coords.Lat)
		maxLat = math.Max(maxLat, act.Coords.Lat)
		minLng = math.Min(minLng, act.Coords.Lng)
		maxLng = math.Max(maxLng, act.Coords.Lng)
	}
	if len(pois) == 0 {
		return offlineStyle.Render("No hay puntos para mostrar.")
	}

	// Pad the bounding box so edge markers don't sit on the border.
	latPad := (maxLat - minLat) * 0.1
	lngPad := (maxLng - minLng) * 0.1
	minLat, maxLat = minLat-latPad, maxLat+latPad
	minLng, maxLng = minLng-lngPad, maxLng+lngPad

	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, cols)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}

	plot := func(c models.Coordinates, marker string) {
		// Lat grows north, rows grow down.
		row := int(float64(rows-1) * (maxLat - c.Lat) / (maxLat - minLat))
		col := int(float64(cols-1) * (c.Lng - minLng) / (maxLng - minLng))
		if row >= 0 && row < rows && col >= 0 && col < cols {
			grid[row][col] = marker
		}
	}

	for _, act := range pois {
		plot(act.Coords, poiStyle.Render("•"))
	}
	if m.user != nil {
		plot(*m.user, userStyle.Render("✪"))
	}
	if m.focused != nil {
		plot(*m.focused, focusStyle.Render("◉"))
	}

	var canvas strings.Builder
	for i, row := range grid {
		canvas.WriteString(strings.Join(row, ""))
		if i < rows-1 {
			canvas.WriteString("\n")
		}
	}

	var legend []string
	if m.focused != nil {
		legend = append(legend, focusStyle.Render("◉ ")+m.focusLabel)
	}
	switch {
	case m.user != nil:
		legend = append(legend, userStyle.Render("✪ ")+"tu posición"+m.nearestLine())
	case m.available:
		legend = append(legend, offlineStyle.Render("esperando posición…"))
	default:
		legend = append(legend, offlineStyle.Render("sin posición (no disponible en este equipo)"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Roma — centro histórico"),
		canvasStyle.Render(canvas.String()),
		legendStyle.Render(strings.Join(legend, "\n")),
	)
}

// nearestLine names the closest point of interest to the user.
func (m Model) nearestLine() string {
	if m.user == nil {
		return ""
	}
	best := ""
	bestDist := math.Inf(1)
	for _, act := range m.activities {
		if act.Coords.Lat > 42.0 {
			continue
		}
		if d := geo.Distance(*m.user, act.Coords); d < bestDist {
			bestDist = d
			best = act.LocationName
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" — %s a %s", best, geo.FormatDistance(bestDist))
}
