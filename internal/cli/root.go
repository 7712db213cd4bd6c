package cli

import (
	"fmt"
	"time"

	"github.com/sgarcia/romaday/internal/engine"
	"github.com/sgarcia/romaday/internal/geo"
	"github.com/sgarcia/romaday/internal/models"
	"github.com/sgarcia/romaday/internal/storage"
	"github.com/sgarcia/romaday/internal/tracker"
	"github.com/sgarcia/romaday/internal/validation"
)

// Context is the shared state every command runs against.
type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
	Source  geo.Source
	Canon   []models.Activity
	Now     func() time.Time
}

// Itinerary returns the canonical plan with persisted completion
// overrides merged in. Progress-store failures degrade to the
// canonical defaults.
func (ctx *Context) Itinerary() []models.Activity {
	return tracker.Merge(ctx.Canon, ctx.Tracker.Load())
}

// CheckSchedule validates the authored plan. Errors are configuration
// faults that stop startup; warnings are printed and tolerated.
func (ctx *Context) CheckSchedule() error {
	result := validation.New().ValidateItinerary(ctx.Canon)
	if result.HasErrors() {
		return fmt.Errorf("invalid itinerary configuration:\n%s", result.FormatReport())
	}
	for _, c := range result.Conflicts {
		fmt.Printf("⚠ schedule warning: %s: %s\n", c.ActivityID, c.Message)
	}
	return nil
}

func statusLabel(s engine.ActivityState) string {
	switch s.Status {
	case engine.StatusCompleted:
		return "[listo]"
	case engine.StatusActive:
		return fmt.Sprintf("[en curso %.0f%%]", s.Progress)
	case engine.StatusPast:
		return "[pasado]"
	default:
		return ""
	}
}

func urgencyMark(s engine.ActivityState) string {
	if s.Urgent {
		return " ⚠"
	}
	return ""
}
