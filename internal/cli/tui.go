package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sgarcia/romaday/internal/geo"
	"github.com/sgarcia/romaday/internal/itinerary"
	"github.com/sgarcia/romaday/internal/tui"
)

type TuiCmd struct {
	Demo bool `help:"Replay the planned walking route as a simulated position stream."`
}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.CheckSchedule(); err != nil {
		return err
	}

	source := ctx.Source
	if c.Demo {
		source = geo.NewTrackSource(itinerary.CityTrack(), 2*time.Second)
	}

	p := tea.NewProgram(
		tui.NewModel(ctx.Itinerary(), ctx.Tracker, ctx.Store, source),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
