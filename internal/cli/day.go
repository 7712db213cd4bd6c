package cli

import (
	"fmt"

	"github.com/sgarcia/romaday/internal/engine"
	"github.com/sgarcia/romaday/internal/trip"
)

type DayCmd struct{}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.CheckSchedule(); err != nil {
		return err
	}

	now := ctx.Now()
	states := engine.Derive(ctx.Itinerary(), now)

	fmt.Printf("Roma, %s — a bordo a las %s\n\n", trip.VisitDate, trip.ShipOnboardTime)

	for _, s := range states {
		act := s.Activity
		check := " "
		if s.Status == engine.StatusCompleted {
			check = "x"
		}

		fmt.Printf("[%s] %s–%s  %-32s %s%s\n",
			check, act.StartTime, act.EndTime, act.Title, statusLabel(s), urgencyMark(s))
		fmt.Printf("             %s (%s)\n", act.LocationName, s.Duration)

		if act.Warning != "" && !act.Completed {
			fmt.Printf("             ⚠ %s\n", act.Warning)
		}
		if s.GapAfter > 0 {
			fmt.Printf("      · intervalo libre / tránsito: %s\n", engine.FormatDuration(s.GapAfter))
		}
	}

	countdown := engine.ShipState(now, engine.MustClock(trip.ShipArrivalTime), engine.MustClock(trip.ShipOnboardTime))
	fmt.Printf("\n%s\n", countdown.Label())
	return nil
}
