// Package validation checks the authored itinerary at startup.
// Malformed data (bad clock times, reversed windows, duplicate ids) is
// a configuration error; a non-monotonic or overlapping sequence is an
// authoring warning, rendered best-effort rather than rejected.
package validation

import (
	"fmt"
	"strings"

	"github.com/sgarcia/romaday/internal/engine"
	"github.com/sgarcia/romaday/internal/models"
)

type ConflictType string

const (
	ConflictInvalidTime      ConflictType = "invalid_time"
	ConflictReversedWindow   ConflictType = "reversed_window"
	ConflictDuplicateID      ConflictType = "duplicate_id"
	ConflictUnknownType      ConflictType = "unknown_type"
	ConflictNegativePrice    ConflictType = "negative_price"
	ConflictOutOfOrder       ConflictType = "out_of_order"
	ConflictOverlappingSlots ConflictType = "overlapping_slots"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type Conflict struct {
	Type       ConflictType
	Severity   Severity
	ActivityID string
	Message    string
}

type ValidationResult struct {
	Conflicts []Conflict
}

func (r ValidationResult) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// HasErrors reports whether any conflict is fatal (as opposed to an
// authoring warning).
func (r ValidationResult) HasErrors() bool {
	for _, c := range r.Conflicts {
		if c.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r ValidationResult) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d conflict(s):\n", len(r.Conflicts))
	for _, c := range r.Conflicts {
		marker := "⚠"
		if c.Severity == SeverityError {
			marker = "❌"
		}
		fmt.Fprintf(&b, "%s [%s] %s: %s\n", marker, c.Severity, c.ActivityID, c.Message)
	}
	return b.String()
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

var knownTypes = map[models.ActivityType]bool{
	models.TypeTransport:   true,
	models.TypeFood:        true,
	models.TypeSightseeing: true,
	models.TypeShopping:    true,
	models.TypeLogistics:   true,
}

// ValidateItinerary checks the whole plan in declaration order.
func (v *Validator) ValidateItinerary(activities []models.Activity) ValidationResult {
	var conflicts []Conflict
	seen := make(map[string]bool)

	type window struct {
		id         string
		start, end int
	}
	var windows []window

	for _, act := range activities {
		if seen[act.ID] {
			conflicts = append(conflicts, Conflict{
				Type:       ConflictDuplicateID,
				Severity:   SeverityError,
				ActivityID: act.ID,
				Message:    "duplicate activity id",
			})
		}
		seen[act.ID] = true

		if !knownTypes[act.Type] {
			conflicts = append(conflicts, Conflict{
				Type:       ConflictUnknownType,
				Severity:   SeverityError,
				ActivityID: act.ID,
				Message:    fmt.Sprintf("unknown activity type %q", act.Type),
			})
		}

		if act.PriceEUR < 0 {
			conflicts = append(conflicts, Conflict{
				Type:       ConflictNegativePrice,
				Severity:   SeverityError,
				ActivityID: act.ID,
				Message:    fmt.Sprintf("negative price %.2f", act.PriceEUR),
			})
		}

		startMin, errStart := engine.ParseClock(act.StartTime)
		endMin, errEnd := engine.ParseClock(act.EndTime)
		if errStart != nil {
			conflicts = append(conflicts, Conflict{
				Type:       ConflictInvalidTime,
				Severity:   SeverityError,
				ActivityID: act.ID,
				Message:    errStart.Error(),
			})
		}
		if errEnd != nil {
			conflicts = append(conflicts, Conflict{
				Type:       ConflictInvalidTime,
				Severity:   SeverityError,
				ActivityID: act.ID,
				Message:    errEnd.Error(),
			})
		}
		if errStart != nil || errEnd != nil {
			continue
		}

		if endMin < startMin {
			conflicts = append(conflicts, Conflict{
				Type:       ConflictReversedWindow,
				Severity:   SeverityError,
				ActivityID: act.ID,
				Message:    fmt.Sprintf("ends at %s before it starts at %s", act.EndTime, act.StartTime),
			})
			continue
		}

		windows = append(windows, window{id: act.ID, start: startMin, end: endMin})
	}

	// Declaration order is the authoritative chronology; flag authoring
	// mistakes but keep rendering best-effort.
	for i := 1; i < len(windows); i++ {
		prev, cur := windows[i-1], windows[i]
		if cur.start < prev.start {
			conflicts = append(conflicts, Conflict{
				Type:       ConflictOutOfOrder,
				Severity:   SeverityWarning,
				ActivityID: cur.id,
				Message:    fmt.Sprintf("starts before the previous entry %q", prev.id),
			})
		} else if cur.start < prev.end {
			conflicts = append(conflicts, Conflict{
				Type:       ConflictOverlappingSlots,
				Severity:   SeverityWarning,
				ActivityID: cur.id,
				Message:    fmt.Sprintf("overlaps with %q", prev.id),
			})
		}
	}

	return ValidationResult{Conflicts: conflicts}
}
