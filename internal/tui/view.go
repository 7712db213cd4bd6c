package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/sgarcia/romaday/internal/engine"
	"github.com/sgarcia/romaday/internal/trip"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateTimeline:
		content = docStyle.Render(m.timelineModel.View())
	case StateMap:
		content = docStyle.Render(m.mapModel.View())
	case StateBudget:
		content = docStyle.Render(m.budgetModel.View())
	case StateGuide:
		content = docStyle.Render(m.guideModel.View())
	case StateConfirmReset:
		content = m.viewConfirmReset()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		m.viewTabs(),
		content,
		m.help.View(m.keys),
	)
}

// viewHeader is the persistent ship banner: all-aboard time on the
// left, live countdown on the right.
func (m Model) viewHeader() string {
	countdown := engine.ShipState(m.now, m.arrivalMin, m.onboardMin)

	label := countdownStyle.Render(countdown.Label())
	if countdown.Phase == engine.PhaseEnRoute {
		label = enRouteStyle.Render(countdown.Label())
	}

	left := headerStyle.Render(fmt.Sprintf("⚓ A BORDO: %s · %s", trip.ShipOnboardTime, trip.VisitDate))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(label) - 2
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + label
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Itinerario", "Mapa", "Gastos", "Guía"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmReset() string {
	return lipgloss.Place(m.width, m.height-5,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			"¿Borrar todo el progreso del día?",
			"",
			"[y] Sí, empezar de cero",
			"[n] No",
		),
	)
}
