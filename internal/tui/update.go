package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/sgarcia/romaday/internal/models"
	"github.com/sgarcia/romaday/internal/tui/components/timeline"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 5 // header, tabs, help
		m.timelineModel.SetSize(msg.Width-4, contentHeight)
		m.mapModel.SetSize(msg.Width-4, contentHeight)
		m.budgetModel.SetSize(msg.Width-4, contentHeight)
		m.guideModel.SetSize(msg.Width-4, contentHeight)
		return m, nil

	case TickMsg:
		m.now = time.Time(msg)
		m.refresh()
		return m, tick()

	case watchStartedMsg:
		m.positions = msg.ch
		m.cancelWatch = msg.cancel
		return m, nil

	case PositionMsg:
		m.mapModel.SetUser(models.Coordinates(msg))
		// Best-effort trail recording; a failed write never interrupts
		// the session.
		if err := m.store.AppendTrackPoint(models.TrackPoint{
			ID:         uuid.NewString(),
			Coords:     models.Coordinates(msg),
			RecordedAt: time.Now(),
		}); err != nil {
			slog.Debug("track point not recorded", "error", err)
		}
		return m, waitForPosition(m.positions)

	case positionStreamClosedMsg:
		return m, nil

	case timeline.ToggleMsg:
		m.itinerary = m.tracker.Toggle(m.itinerary, msg.ID)
		m.refresh()
		return m, nil

	case timeline.LocateMsg:
		m.mapModel.Focus(msg.Coords, msg.Label)
		m.state = StateMap
		return m, nil

	case tea.KeyMsg:
		if m.state == StateConfirmReset {
			return m.updateConfirmReset(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.teardown()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.previousState = m.state
			m.state = StateConfirmReset
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	return m.updateComponents(msg)
}

func (m Model) updateConfirmReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if reset, err := m.tracker.Reset(m.itinerary); err == nil {
			m.itinerary = reset
			m.refresh()
		} else {
			slog.Warn("progress reset failed", "error", err)
		}
		m.state = m.previousState
	case "n", "N", "esc", "q":
		m.state = m.previousState
	}
	return m, nil
}

// updateComponents routes remaining messages to the visible tab.
func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateTimeline:
		m.timelineModel, cmd = m.timelineModel.Update(msg)
	case StateMap:
		m.mapModel, cmd = m.mapModel.Update(msg)
	case StateBudget:
		m.budgetModel, cmd = m.budgetModel.Update(msg)
	case StateGuide:
		m.guideModel, cmd = m.guideModel.Update(msg)
	}
	return m, cmd
}
