package cli

import (
	"fmt"

	"github.com/sgarcia/romaday/internal/itinerary"
)

type CheckCmd struct {
	ID string `arg:"" help:"Activity id to toggle (see 'romaday day')."`
}

func (c *CheckCmd) Run(ctx *Context) error {
	current := ctx.Itinerary()
	if _, ok := itinerary.ByID(current, c.ID); !ok {
		// Unknown ids are a silent no-op in the engine; on the CLI a
		// hint is friendlier than nothing.
		fmt.Printf("No activity with id %q. Ids are shown by 'romaday day'.\n", c.ID)
		return nil
	}

	next := ctx.Tracker.Toggle(current, c.ID)
	act, _ := itinerary.ByID(next, c.ID)
	if act.Completed {
		fmt.Printf("✓ %s marcado como listo\n", act.Title)
	} else {
		fmt.Printf("○ %s pendiente de nuevo\n", act.Title)
	}
	return nil
}
