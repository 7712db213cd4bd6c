package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sgarcia/romaday/internal/engine"
	"github.com/sgarcia/romaday/internal/geo"
	"github.com/sgarcia/romaday/internal/models"
	"github.com/sgarcia/romaday/internal/storage"
	"github.com/sgarcia/romaday/internal/tracker"
	"github.com/sgarcia/romaday/internal/trip"
	"github.com/sgarcia/romaday/internal/tui/components/budgetview"
	"github.com/sgarcia/romaday/internal/tui/components/guideview"
	"github.com/sgarcia/romaday/internal/tui/components/mapview"
	"github.com/sgarcia/romaday/internal/tui/components/timeline"
)

type SessionState int

const (
	StateTimeline SessionState = iota
	StateMap
	StateBudget
	StateGuide
	StateConfirmReset
)

// tabCount is the number of cycleable tabs (confirm state excluded).
const tabCount = 4

// TickMsg drives the once-per-second recomputation of all derived
// time state.
type TickMsg time.Time

// PositionMsg carries one reading from the position stream.
type PositionMsg models.Coordinates

// positionStreamClosedMsg signals the stream ended (source drained or
// subscription released).
type positionStreamClosedMsg struct{}

type Model struct {
	tracker   *tracker.Tracker
	store     storage.Provider
	source    geo.Source
	itinerary []models.Activity

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	timelineModel timeline.Model
	mapModel      mapview.Model
	budgetModel   budgetview.Model
	guideModel    guideview.Model

	now         time.Time
	arrivalMin  int
	onboardMin  int
	positions   <-chan models.Coordinates
	cancelWatch context.CancelFunc

	width    int
	height   int
	quitting bool
}

func NewModel(merged []models.Activity, trk *tracker.Tracker, store storage.Provider, source geo.Source) Model {
	now := time.Now()

	m := Model{
		tracker:       trk,
		store:         store,
		source:        source,
		itinerary:     merged,
		state:         StateTimeline,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		timelineModel: timeline.New(0, 0),
		mapModel:      mapview.New(merged, source.Available(), 0, 0),
		budgetModel:   budgetview.New(merged, 0, 0),
		guideModel:    guideview.New(0, 0),
		now:           now,
		arrivalMin:    engine.MustClock(trip.ShipArrivalTime),
		onboardMin:    engine.MustClock(trip.ShipOnboardTime),
	}
	m.timelineModel.SetStates(engine.Derive(merged, now))
	return m
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}

	if m.source.Available() {
		ctx, cancel := context.WithCancel(context.Background())
		ch, err := m.source.Watch(ctx)
		if err != nil {
			cancel()
			slog.Debug("position stream unavailable", "error", err)
		} else {
			// The cancel func is stashed via a message because Init runs
			// on a value receiver.
			cmds = append(cmds, func() tea.Msg {
				return watchStartedMsg{ch: ch, cancel: cancel}
			}, waitForPosition(ch))
		}
	}

	return tea.Batch(cmds...)
}

type watchStartedMsg struct {
	ch     <-chan models.Coordinates
	cancel context.CancelFunc
}

func waitForPosition(ch <-chan models.Coordinates) tea.Cmd {
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return positionStreamClosedMsg{}
		}
		return PositionMsg(c)
	}
}

// refresh recomputes every derived view after the itinerary or the
// clock changed.
func (m *Model) refresh() {
	m.timelineModel.SetStates(engine.Derive(m.itinerary, m.now))
	m.mapModel.SetActivities(m.itinerary)
	m.budgetModel.SetActivities(m.itinerary)
}

// teardown releases the position subscription; called on quit.
func (m *Model) teardown() {
	if m.cancelWatch != nil {
		m.cancelWatch()
		m.cancelWatch = nil
	}
}
