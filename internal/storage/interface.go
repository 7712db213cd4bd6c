package storage

import (
	"errors"
	"strings"

	"github.com/sgarcia/romaday/internal/models"
)

// ErrNoData means no progress has been recorded yet (missing store,
// empty store, or state from an older itinerary version). Callers
// treat it as "nothing completed", never as a failure.
var ErrNoData = errors.New("no progress recorded")

// ErrCorrupt wraps a store that exists but cannot be parsed. The
// caller-visible behaviour is the same as ErrNoData (proceed with a
// blank slate) but the two are kept distinct so the fail-soft paths
// stay testable.
var ErrCorrupt = errors.New("progress store corrupt")

// Provider persists the mutable slice of trip state: completion flags
// and the recorded position trail. Everything else is compile-time
// data.
//
// Providers are not safe for concurrent use from multiple processes
// sharing the same path; `romaday doctor` checks for that.
type Provider interface {
	// Init creates an empty store, failing if one already exists.
	Init() error

	// LoadCompletions returns the persisted {id, completed} overrides.
	// Returns ErrNoData when nothing has been recorded.
	LoadCompletions() ([]models.Completion, error)
	// SaveCompletions replaces the whole persisted projection.
	SaveCompletions([]models.Completion) error
	// ResetCompletions drops all recorded progress.
	ResetCompletions() error

	AppendTrackPoint(models.TrackPoint) error
	TrackPoints() ([]models.TrackPoint, error)

	Path() string
	Close() error
}

// ForPath picks a backend by file extension: ".json" selects the
// plain-file store, everything else SQLite.
func ForPath(path string) Provider {
	if strings.HasSuffix(path, ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}
