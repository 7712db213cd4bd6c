package budgetview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sgarcia/romaday/internal/budget"
	"github.com/sgarcia/romaday/internal/models"
)

var (
	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("88")).
			Padding(1, 3).
			Bold(true)

	itemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	extraStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
)

type Model struct {
	activities []models.Activity
	width      int
	height     int
}

func New(activities []models.Activity, width, height int) Model {
	return Model{activities: activities, width: width, height: height}
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

func (m Model) View() string {
	items := budget.Breakdown(m.activities)
	total := budget.Total(m.activities)

	var maxPrice float64
	for _, item := range items {
		if item.Price > maxPrice {
			maxPrice = item.Price
		}
	}

	barWidth := m.width - 50
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	for _, item := range items {
		style := itemStyle
		if item.Extra {
			style = extraStyle
		}
		barLen := 1
		if maxPrice > 0 {
			barLen = int(item.Price / maxPrice * float64(barWidth))
			if barLen < 1 {
				barLen = 1
			}
		}
		b.WriteString(fmt.Sprintf("%s %s €%6.2f\n",
			style.Render(fmt.Sprintf("%-30s", item.Title)),
			barStyle.Render(strings.Repeat("█", barLen)),
			item.Price,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		totalStyle.Render(fmt.Sprintf("Total estimado: €%.2f", total)),
		"",
		b.String(),
		noteStyle.Render("Perfil low cost (30–40€). Los nasoni dan el agua gratis."),
	)
}
