package validation

import (
	"strings"
	"testing"

	"github.com/sgarcia/romaday/internal/itinerary"
	"github.com/sgarcia/romaday/internal/models"
)

func activity(id, start, end string) models.Activity {
	return models.Activity{
		ID:        id,
		Title:     id,
		StartTime: start,
		EndTime:   end,
		Type:      models.TypeSightseeing,
	}
}

func TestValidateItinerary(t *testing.T) {
	tests := []struct {
		name       string
		activities []models.Activity
		wantTypes  []ConflictType
		wantErrors bool
	}{
		{
			name: "clean plan",
			activities: []models.Activity{
				activity("a", "09:00", "10:00"),
				activity("b", "10:15", "11:00"),
			},
		},
		{
			name: "checkpoint window is valid",
			activities: []models.Activity{
				activity("dock", "07:00", "07:00"),
				activity("a", "08:00", "09:00"),
			},
		},
		{
			name: "back to back is valid",
			activities: []models.Activity{
				activity("a", "09:00", "10:00"),
				activity("b", "10:00", "11:00"),
			},
		},
		{
			name: "invalid start time",
			activities: []models.Activity{
				activity("a", "9am", "10:00"),
			},
			wantTypes:  []ConflictType{ConflictInvalidTime},
			wantErrors: true,
		},
		{
			name: "reversed window",
			activities: []models.Activity{
				activity("a", "11:00", "10:00"),
			},
			wantTypes:  []ConflictType{ConflictReversedWindow},
			wantErrors: true,
		},
		{
			name: "duplicate id",
			activities: []models.Activity{
				activity("a", "09:00", "10:00"),
				activity("a", "10:15", "11:00"),
			},
			wantTypes:  []ConflictType{ConflictDuplicateID},
			wantErrors: true,
		},
		{
			name: "unknown type",
			activities: []models.Activity{
				{ID: "a", StartTime: "09:00", EndTime: "10:00", Type: "siesta"},
			},
			wantTypes:  []ConflictType{ConflictUnknownType},
			wantErrors: true,
		},
		{
			name: "negative price",
			activities: []models.Activity{
				{ID: "a", StartTime: "09:00", EndTime: "10:00", Type: models.TypeFood, PriceEUR: -5},
			},
			wantTypes:  []ConflictType{ConflictNegativePrice},
			wantErrors: true,
		},
		{
			name: "out of order is a warning",
			activities: []models.Activity{
				activity("b", "10:15", "11:00"),
				activity("a", "09:00", "10:00"),
			},
			wantTypes:  []ConflictType{ConflictOutOfOrder},
			wantErrors: false,
		},
		{
			name: "overlap is a warning",
			activities: []models.Activity{
				activity("a", "09:00", "10:00"),
				activity("b", "09:30", "10:30"),
			},
			wantTypes:  []ConflictType{ConflictOverlappingSlots},
			wantErrors: false,
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidateItinerary(tt.activities)
			if len(result.Conflicts) != len(tt.wantTypes) {
				t.Fatalf("ValidateItinerary() conflicts = %+v, want types %v", result.Conflicts, tt.wantTypes)
			}
			for i, want := range tt.wantTypes {
				if result.Conflicts[i].Type != want {
					t.Errorf("ValidateItinerary() conflict[%d].Type = %v, want %v", i, result.Conflicts[i].Type, want)
				}
			}
			if result.HasErrors() != tt.wantErrors {
				t.Errorf("HasErrors() = %v, want %v", result.HasErrors(), tt.wantErrors)
			}
		})
	}
}

func TestValidateMalformedTimeDoesNotCascade(t *testing.T) {
	// A malformed entry must not produce bogus ordering warnings against
	// its neighbors.
	v := New()
	result := v.ValidateItinerary([]models.Activity{
		activity("a", "09:00", "10:00"),
		activity("bad", "nope", "nope"),
		activity("b", "10:15", "11:00"),
	})
	for _, c := range result.Conflicts {
		if c.Type == ConflictOutOfOrder || c.Type == ConflictOverlappingSlots {
			t.Errorf("ValidateItinerary() produced ordering conflict %+v from malformed entry", c)
		}
	}
}

func TestDefaultItineraryIsClean(t *testing.T) {
	result := New().ValidateItinerary(itinerary.Default())
	if result.HasConflicts() {
		t.Errorf("ValidateItinerary(Default()) = %s", result.FormatReport())
	}
}

func TestFormatReport(t *testing.T) {
	v := New()

	clean := v.ValidateItinerary([]models.Activity{activity("a", "09:00", "10:00")})
	if got := clean.FormatReport(); got != "No conflicts found." {
		t.Errorf("FormatReport() = %q, want no conflicts message", got)
	}

	dirty := v.ValidateItinerary([]models.Activity{activity("a", "11:00", "10:00")})
	report := dirty.FormatReport()
	if !strings.Contains(report, "1 conflict(s)") || !strings.Contains(report, "a") {
		t.Errorf("FormatReport() = %q", report)
	}
}
