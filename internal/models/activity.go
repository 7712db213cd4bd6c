package models

import "time"

type ActivityType string

const (
	TypeTransport   ActivityType = "transport"
	TypeFood        ActivityType = "food"
	TypeSightseeing ActivityType = "sightseeing"
	TypeShopping    ActivityType = "shopping"
	TypeLogistics   ActivityType = "logistics"
)

// NoteCritical marks an activity as failure-sensitive. It only affects
// display urgency, never scheduling.
const NoteCritical = "CRITICAL"

type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Activity is one scheduled, time-boxed event in the day's plan.
// Every field except Completed is immutable after authoring.
// StartTime == EndTime is a valid degenerate checkpoint that is active
// only during the exact matching minute.
type Activity struct {
	ID              string       `json:"id" yaml:"id"`
	Title           string       `json:"title" yaml:"title"`
	StartTime       string       `json:"start_time" yaml:"start_time"` // HH:MM
	EndTime         string       `json:"end_time" yaml:"end_time"`     // HH:MM
	LocationName    string       `json:"location_name" yaml:"location_name"`
	EndLocationName string       `json:"end_location_name,omitempty" yaml:"end_location_name,omitempty"`
	Coords          Coordinates  `json:"coords" yaml:"coords"`
	EndCoords       *Coordinates `json:"end_coords,omitempty" yaml:"end_coords,omitempty"`
	Description     string       `json:"description" yaml:"description"`
	KeyDetails      string       `json:"key_details" yaml:"key_details"`
	PriceEUR        float64      `json:"price_eur" yaml:"price_eur"`
	Type            ActivityType `json:"type" yaml:"type"`
	Notes           string       `json:"notes,omitempty" yaml:"notes,omitempty"`
	MapsLink        string       `json:"maps_link,omitempty" yaml:"maps_link,omitempty"`
	Warning         string       `json:"warning,omitempty" yaml:"warning,omitempty"`
	Completed       bool         `json:"completed" yaml:"completed"`
}

// Critical reports whether the activity carries the urgency tag.
func (a Activity) Critical() bool {
	return a.Notes == NoteCritical
}

// Completion is the persisted projection of an activity: the only
// state that survives between sessions.
type Completion struct {
	ID        string `json:"id"`
	Completed bool   `json:"completed"`
}

// TrackPoint is one recorded position reading from the day's walk.
type TrackPoint struct {
	ID         string      `json:"id"`
	Coords     Coordinates `json:"coords"`
	RecordedAt time.Time   `json:"recorded_at"`
}
