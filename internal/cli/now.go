package cli

import (
	"fmt"

	"github.com/sgarcia/romaday/internal/engine"
	"github.com/sgarcia/romaday/internal/geo"
	"github.com/sgarcia/romaday/internal/models"
	"github.com/sgarcia/romaday/internal/trip"
)

type NowCmd struct{}

func (c *NowCmd) Run(ctx *Context) error {
	if err := ctx.CheckSchedule(); err != nil {
		return err
	}

	now := ctx.Now()
	states := engine.Derive(ctx.Itinerary(), now)

	if current, ok := engine.Active(states, now); ok {
		act := current.Activity
		fmt.Printf("Ahora (%s): %s\n", now.Format("15:04"), act.Title)
		fmt.Printf("  %s–%s en %s\n", act.StartTime, act.EndTime, act.LocationName)
		if current.Status != engine.StatusCompleted {
			fmt.Printf("  progreso: %.0f%%\n", current.Progress)
		} else {
			fmt.Println("  ya marcado como listo")
		}
		if act.Warning != "" && !act.Completed {
			fmt.Printf("  ⚠ %s\n", act.Warning)
		}
	} else {
		fmt.Printf("Ahora (%s): tiempo libre\n", now.Format("15:04"))
	}

	if next, ok := engine.Next(states, now); ok {
		fmt.Printf("Siguiente: %s a las %s (%s)\n",
			next.Activity.Title, next.Activity.StartTime, next.Activity.LocationName)
		if last, ok := lastKnownPosition(ctx); ok {
			fmt.Printf("  a %s de tu última posición\n",
				geo.FormatDistance(geo.Distance(last, next.Activity.Coords)))
		}
	}

	countdown := engine.ShipState(now, engine.MustClock(trip.ShipArrivalTime), engine.MustClock(trip.ShipOnboardTime))
	fmt.Printf("\n%s\n", countdown.Label())
	return nil
}

// lastKnownPosition returns the most recent recorded track point, if
// any. Storage failures degrade to "no location known".
func lastKnownPosition(ctx *Context) (models.Coordinates, bool) {
	points, err := ctx.Store.TrackPoints()
	if err != nil || len(points) == 0 {
		return models.Coordinates{}, false
	}
	return points[len(points)-1].Coords, true
}
