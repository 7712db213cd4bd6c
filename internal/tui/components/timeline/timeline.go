package timeline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sgarcia/romaday/internal/engine"
	"github.com/sgarcia/romaday/internal/models"
)

// ToggleMsg asks the root model to flip completion for an activity.
type ToggleMsg struct {
	ID string
}

// LocateMsg asks the root model to focus the map on a location.
type LocateMsg struct {
	Coords models.Coordinates
	Label  string
}

var (
	timeBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("88")).
			Padding(0, 1).
			Bold(true)

	activeBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("232")).
				Background(lipgloss.Color("178")).
				Padding(0, 1).
				Bold(true)

	durationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	completedTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("71")).
				Bold(true).
				Strikethrough(true)

	locationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("109"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Italic(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	gapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")).
			Bold(true)
)

type Model struct {
	viewport viewport.Model
	bar      progress.Model
	states   []engine.ActivityState
	cursor   int
	width    int
	height   int
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false
	return Model{viewport: vp, bar: bar}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.render()
			}
		case "down", "j":
			if m.cursor < len(m.states)-1 {
				m.cursor++
				m.render()
			}
		case " ", "enter":
			if m.cursor < len(m.states) {
				return m, func() tea.Msg {
					return ToggleMsg{ID: m.states[m.cursor].Activity.ID}
				}
			}
		case "m":
			if m.cursor < len(m.states) {
				act := m.states[m.cursor].Activity
				return m, func() tea.Msg {
					return LocateMsg{Coords: act.Coords, Label: act.LocationName}
				}
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

// Selected returns the activity under the cursor.
func (m Model) Selected() (models.Activity, bool) {
	if m.cursor >= len(m.states) {
		return models.Activity{}, false
	}
	return m.states[m.cursor].Activity, true
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.bar.Width = min(width-8, 40)
	m.render()
}

// SetStates replaces the derived view state; called on every tick and
// after every toggle.
func (m *Model) SetStates(states []engine.ActivityState) {
	m.states = states
	if m.cursor >= len(states) && len(states) > 0 {
		m.cursor = len(states) - 1
	}
	m.render()
}

func (m *Model) render() {
	var b strings.Builder

	for i, s := range m.states {
		act := s.Activity

		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("▶ ")
		}

		check := "○"
		if s.Status == engine.StatusCompleted {
			check = "✓"
		}

		badge := timeBadgeStyle
		if s.Status == engine.StatusActive {
			badge = activeBadgeStyle
		}

		header := fmt.Sprintf("%s%s %s %s",
			pointer,
			check,
			badge.Render(act.StartTime+"–"+act.EndTime),
			durationStyle.Render(s.Duration),
		)
		if s.Status == engine.StatusActive {
			header += " " + activeBadgeStyle.Render("EN CURSO")
		}
		if s.Urgent {
			header += " " + urgentStyle.Render("⚠ CRÍTICO")
		}
		b.WriteString(header + "\n")

		title := titleStyle
		if s.Status == engine.StatusCompleted {
			title = completedTitleStyle
		}
		b.WriteString("    " + title.Render(act.Title) + "\n")

		location := act.LocationName
		if act.EndLocationName != "" {
			location += " → " + act.EndLocationName
		}
		b.WriteString("    " + locationStyle.Render(location) + "\n")

		// The progress bar only shows for the activity happening right
		// now, and disappears once it is checked off.
		if s.Status == engine.StatusActive {
			b.WriteString("    " + m.bar.ViewAs(s.Progress/100) +
				durationStyle.Render(fmt.Sprintf(" %.0f%%", s.Progress)) + "\n")
		}

		if i == m.cursor {
			b.WriteString("    " + detailStyle.Render("“"+act.KeyDetails+"”") + "\n")
		}

		if act.Warning != "" && s.Status != engine.StatusCompleted {
			b.WriteString("    " + warningStyle.Render("⚠ "+act.Warning) + "\n")
		}

		if s.GapAfter > 0 {
			b.WriteString(gapStyle.Render(
				fmt.Sprintf("      ⋯ intervalo libre / tránsito: %s", engine.FormatDuration(s.GapAfter))) + "\n")
		}
		b.WriteString("\n")
	}

	m.viewport.SetContent(b.String())
	m.scrollToCursor()
}

// scrollToCursor keeps the selected card in view as the cursor moves.
func (m *Model) scrollToCursor() {
	if m.viewport.Height <= 0 || len(m.states) == 0 {
		return
	}
	// Cards are variable-height; an approximate line offset is enough
	// for keeping the selection visible.
	approxLine := 0
	for i := 0; i < m.cursor && i < len(m.states); i++ {
		approxLine += cardHeight(m.states[i])
	}
	if approxLine < m.viewport.YOffset {
		m.viewport.SetYOffset(approxLine)
	} else if approxLine+cardHeight(m.states[m.cursor]) > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(approxLine + cardHeight(m.states[m.cursor]) - m.viewport.Height)
	}
}

func cardHeight(s engine.ActivityState) int {
	h := 4 // header, title, location, trailing blank
	if s.Status == engine.StatusActive {
		h++
	}
	if s.Activity.Warning != "" && s.Status != engine.StatusCompleted {
		h++
	}
	if s.GapAfter > 0 {
		h++
	}
	return h
}
