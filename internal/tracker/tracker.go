// Package tracker reconciles persisted completion flags with the
// canonical itinerary and records toggles back to storage. Its
// contract is total graceful degradation: a broken store must never
// keep the plan from rendering, and a failed write must never cost the
// user their in-memory session.
package tracker

import (
	"errors"
	"log/slog"

	"github.com/sgarcia/romaday/internal/models"
	"github.com/sgarcia/romaday/internal/storage"
)

type Tracker struct {
	store storage.Provider
}

func New(store storage.Provider) *Tracker {
	return &Tracker{store: store}
}

// Load returns the persisted overrides, collapsing every failure mode
// (missing store, corrupt data, stale namespace) to an empty set. Loss
// of progress is non-fatal; losing the app over it would not be.
func (t *Tracker) Load() []models.Completion {
	completions, err := t.store.LoadCompletions()
	if err != nil {
		if !errors.Is(err, storage.ErrNoData) {
			slog.Debug("discarding unreadable progress store", "error", err)
		}
		return nil
	}
	return completions
}

// Merge applies overrides onto the canonical plan by id. Canonical
// order and every canonical field except Completed stay authoritative.
// Overrides without a matching activity are dropped silently, so the
// itinerary can evolve between versions without choking on stale
// state; activities without an override keep their canonical default.
func Merge(canonical []models.Activity, overrides []models.Completion) []models.Activity {
	byID := make(map[string]bool, len(overrides))
	for _, o := range overrides {
		byID[o.ID] = o.Completed
	}

	merged := make([]models.Activity, len(canonical))
	for i, act := range canonical {
		if completed, ok := byID[act.ID]; ok {
			act.Completed = completed
		}
		merged[i] = act
	}
	return merged
}

// Toggle flips the completion flag of the matching activity and
// persists the full projection before returning. An unknown id is a
// no-op. A failed write is swallowed: the returned in-memory state
// stays authoritative for the session.
func (t *Tracker) Toggle(current []models.Activity, id string) []models.Activity {
	next := make([]models.Activity, len(current))
	found := false
	for i, act := range current {
		if act.ID == id {
			act.Completed = !act.Completed
			found = true
		}
		next[i] = act
	}
	if !found {
		return next
	}

	if err := t.store.SaveCompletions(Projection(next)); err != nil {
		slog.Warn("progress not persisted, keeping in-memory state", "error", err)
	}
	return next
}

// Reset clears all persisted progress and returns the plan with every
// activity back to its canonical default.
func (t *Tracker) Reset(canonical []models.Activity) ([]models.Activity, error) {
	if err := t.store.ResetCompletions(); err != nil {
		return nil, err
	}
	return Merge(canonical, nil), nil
}

// Projection extracts the persistable {id, completed} slice.
func Projection(activities []models.Activity) []models.Completion {
	completions := make([]models.Completion, len(activities))
	for i, act := range activities {
		completions[i] = models.Completion{ID: act.ID, Completed: act.Completed}
	}
	return completions
}
