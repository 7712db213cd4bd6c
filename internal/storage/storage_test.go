package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sgarcia/romaday/internal/models"
)

// providers returns a fresh instance of every backend, keyed by name,
// each rooted in its own temp directory.
func providers(t *testing.T) map[string]Provider {
	t.Helper()
	return map[string]Provider{
		"sqlite": NewSQLiteStore(filepath.Join(t.TempDir(), "romaday.db")),
		"json":   NewJSONStore(filepath.Join(t.TempDir(), "romaday.json")),
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantJSON bool
	}{
		{name: "json extension", path: "/tmp/store.json", wantJSON: true},
		{name: "db extension", path: "/tmp/store.db", wantJSON: false},
		{name: "no extension", path: "/tmp/store", wantJSON: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ForPath(tt.path)
			_, isJSON := p.(*JSONStore)
			if isJSON != tt.wantJSON {
				t.Errorf("ForPath(%q) json = %v, want %v", tt.path, isJSON, tt.wantJSON)
			}
			if p.Path() != tt.path {
				t.Errorf("ForPath(%q).Path() = %q", tt.path, p.Path())
			}
		})
	}
}

func TestLoadCompletionsEmpty(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()
			if _, err := store.LoadCompletions(); !errors.Is(err, ErrNoData) {
				t.Errorf("LoadCompletions() on fresh store error = %v, want ErrNoData", err)
			}
		})
	}
}

func TestSaveAndLoadCompletions(t *testing.T) {
	saved := []models.Completion{
		{ID: "tren-ida", Completed: true},
		{ID: "pantheon", Completed: false},
		{ID: "colosseo", Completed: true},
	}

	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()
			if err := store.SaveCompletions(saved); err != nil {
				t.Fatalf("SaveCompletions() error = %v", err)
			}

			got, err := store.LoadCompletions()
			if err != nil {
				t.Fatalf("LoadCompletions() error = %v", err)
			}
			byID := make(map[string]bool, len(got))
			for _, c := range got {
				byID[c.ID] = c.Completed
			}
			for _, want := range saved {
				completed, ok := byID[want.ID]
				if !ok {
					t.Errorf("LoadCompletions() missing %s", want.ID)
					continue
				}
				if completed != want.Completed {
					t.Errorf("LoadCompletions() %s = %v, want %v", want.ID, completed, want.Completed)
				}
			}
		})
	}
}

func TestSaveReplacesPreviousState(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()
			first := []models.Completion{{ID: "a", Completed: true}, {ID: "b", Completed: true}}
			if err := store.SaveCompletions(first); err != nil {
				t.Fatalf("SaveCompletions() error = %v", err)
			}
			second := []models.Completion{{ID: "a", Completed: false}}
			if err := store.SaveCompletions(second); err != nil {
				t.Fatalf("SaveCompletions() error = %v", err)
			}

			got, err := store.LoadCompletions()
			if err != nil {
				t.Fatalf("LoadCompletions() error = %v", err)
			}
			if len(got) != 1 || got[0].ID != "a" || got[0].Completed {
				t.Errorf("LoadCompletions() after rewrite = %+v, want only a=false", got)
			}
		})
	}
}

func TestResetCompletions(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()
			if err := store.SaveCompletions([]models.Completion{{ID: "a", Completed: true}}); err != nil {
				t.Fatalf("SaveCompletions() error = %v", err)
			}
			if err := store.ResetCompletions(); err != nil {
				t.Fatalf("ResetCompletions() error = %v", err)
			}
			if _, err := store.LoadCompletions(); !errors.Is(err, ErrNoData) {
				t.Errorf("LoadCompletions() after reset error = %v, want ErrNoData", err)
			}
		})
	}
}

func TestTrackPointsRoundTrip(t *testing.T) {
	recorded := time.Date(2026, time.April, 16, 10, 45, 0, 0, time.UTC)

	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()
			points := []models.TrackPoint{
				{ID: "p1", Coords: models.Coordinates{Lat: 41.9022, Lng: 12.4539}, RecordedAt: recorded},
				{ID: "p2", Coords: models.Coordinates{Lat: 41.8986, Lng: 12.4768}, RecordedAt: recorded.Add(time.Minute)},
			}
			for _, p := range points {
				if err := store.AppendTrackPoint(p); err != nil {
					t.Fatalf("AppendTrackPoint() error = %v", err)
				}
			}

			got, err := store.TrackPoints()
			if err != nil {
				t.Fatalf("TrackPoints() error = %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("TrackPoints() returned %d points, want 2", len(got))
			}
			if got[0].ID != "p1" || got[1].ID != "p2" {
				t.Errorf("TrackPoints() order = %s, %s, want p1, p2", got[0].ID, got[1].ID)
			}
			if got[0].Coords.Lat != 41.9022 || got[0].Coords.Lng != 12.4539 {
				t.Errorf("TrackPoints() coords = %+v", got[0].Coords)
			}
			if !got[0].RecordedAt.Equal(recorded) {
				t.Errorf("TrackPoints() recorded at = %v, want %v", got[0].RecordedAt, recorded)
			}
		})
	}
}

func TestInitRefusesExistingStore(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()
			if err := store.Init(); err != nil {
				t.Fatalf("Init() error = %v", err)
			}
			if err := store.Init(); err == nil {
				t.Errorf("Init() on existing store succeeded, want error")
			}
		})
	}
}

func TestJSONStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "romaday.json")
	if err := os.WriteFile(path, []byte("{truncated"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if _, err := store.LoadCompletions(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("LoadCompletions() on corrupt file error = %v, want ErrCorrupt", err)
	}
}

func TestJSONStoreNamespaceDrift(t *testing.T) {
	path := filepath.Join(t.TempDir(), "romaday.json")
	body := `{"version":1,"namespace":"romaday_2024_v0","completions":[{"id":"pantheon","completed":true}]}`
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if _, err := store.LoadCompletions(); !errors.Is(err, ErrNoData) {
		t.Errorf("LoadCompletions() with stale namespace error = %v, want ErrNoData", err)
	}

	// A write against a stale namespace starts fresh instead of mixing
	// the old data in.
	if err := store.SaveCompletions([]models.Completion{{ID: "colosseo", Completed: true}}); err != nil {
		t.Fatalf("SaveCompletions() error = %v", err)
	}
	got, err := store.LoadCompletions()
	if err != nil {
		t.Fatalf("LoadCompletions() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "colosseo" {
		t.Errorf("LoadCompletions() after namespace reset = %+v, want only colosseo", got)
	}
}
