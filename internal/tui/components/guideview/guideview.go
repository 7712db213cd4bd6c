package guideview

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sgarcia/romaday/internal/guide"
	"github.com/sgarcia/romaday/internal/models"
)

var tipStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("250")).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(lipgloss.Color("178")).
	PaddingLeft(1)

// Item adapts a phrase to the bubbles list delegate.
type Item struct {
	Phrase models.Phrase
}

func (i Item) Title() string {
	return i.Phrase.Word + "  " + i.Phrase.Phonetic
}

func (i Item) Description() string {
	return "\"" + i.Phrase.Simplified + "\" — " + i.Phrase.Meaning
}

func (i Item) FilterValue() string {
	return i.Phrase.Word + " " + i.Phrase.Meaning
}

type Model struct {
	phrases list.Model
	tips    []models.Tip
	width   int
	height  int
}

func New(width, height int) Model {
	items := make([]list.Item, 0)
	for _, p := range guide.Phrases() {
		items = append(items, Item{Phrase: p})
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Frases útiles"
	l.SetShowHelp(false)

	return Model{phrases: l, tips: guide.Tips()}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.phrases, cmd = m.phrases.Update(msg)
	return m, cmd
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	tipLines := len(m.tips)*3 + 1
	listHeight := height - tipLines
	if listHeight < 6 {
		listHeight = 6
	}
	m.phrases.SetSize(width, listHeight)
}

func (m Model) View() string {
	parts := make([]string, 0, len(m.tips)+1)
	for _, tip := range m.tips {
		parts = append(parts, tipStyle.Render(tip.Title+"\n"+tip.Body))
	}
	parts = append(parts, m.phrases.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
