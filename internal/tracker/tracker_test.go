package tracker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sgarcia/romaday/internal/models"
	"github.com/sgarcia/romaday/internal/storage"
)

func canonical() []models.Activity {
	return []models.Activity{
		{ID: "tren-ida", Title: "Tren a Roma", StartTime: "07:20", EndTime: "08:40"},
		{ID: "san-pietro", Title: "Plaza San Pedro", StartTime: "08:50", EndTime: "09:40"},
		{ID: "pantheon", Title: "Panteón", StartTime: "11:20", EndTime: "11:50"},
	}
}

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	path := filepath.Join(t.TempDir(), "romaday.json")
	return New(storage.NewJSONStore(path))
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name      string
		overrides []models.Completion
		want      map[string]bool
	}{
		{
			name:      "no overrides keeps defaults",
			overrides: nil,
			want:      map[string]bool{"tren-ida": false, "san-pietro": false, "pantheon": false},
		},
		{
			name: "override flips matching activity",
			overrides: []models.Completion{
				{ID: "san-pietro", Completed: true},
			},
			want: map[string]bool{"tren-ida": false, "san-pietro": true, "pantheon": false},
		},
		{
			name: "stale override for a removed activity is dropped",
			overrides: []models.Completion{
				{ID: "tren-ida", Completed: true},
				{ID: "colina-que-ya-no-existe", Completed: true},
			},
			want: map[string]bool{"tren-ida": true, "san-pietro": false, "pantheon": false},
		},
		{
			name: "explicit false override wins over canonical true",
			overrides: []models.Completion{
				{ID: "pantheon", Completed: false},
			},
			want: map[string]bool{"tren-ida": false, "san-pietro": false, "pantheon": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := Merge(canonical(), tt.overrides)
			if len(merged) != 3 {
				t.Fatalf("Merge() returned %d activities, want 3", len(merged))
			}
			for i, act := range merged {
				if want := tt.want[act.ID]; act.Completed != want {
					t.Errorf("Merge() %s completed = %v, want %v", act.ID, act.Completed, want)
				}
				if act.ID != canonical()[i].ID {
					t.Errorf("Merge() reordered activities: got %s at %d", act.ID, i)
				}
			}
		})
	}
}

func TestToggleRoundTrip(t *testing.T) {
	trk := newTestTracker(t)

	current := Merge(canonical(), trk.Load())
	current = trk.Toggle(current, "san-pietro")
	if !current[1].Completed {
		t.Fatalf("Toggle() did not mark san-pietro completed")
	}

	// A fresh merge from the store must see the persisted flag.
	reloaded := Merge(canonical(), trk.Load())
	if !reloaded[1].Completed {
		t.Errorf("Toggle() state not persisted across reload")
	}

	// Double toggle restores the original state.
	current = trk.Toggle(current, "san-pietro")
	if current[1].Completed {
		t.Errorf("Toggle() twice left san-pietro completed")
	}
	reloaded = Merge(canonical(), trk.Load())
	if reloaded[1].Completed {
		t.Errorf("Toggle() twice not persisted across reload")
	}
}

func TestToggleUnknownID(t *testing.T) {
	trk := newTestTracker(t)

	current := Merge(canonical(), trk.Load())
	next := trk.Toggle(current, "no-such-stop")
	for i := range next {
		if next[i].Completed != current[i].Completed {
			t.Errorf("Toggle() with unknown id changed %s", next[i].ID)
		}
	}
}

func TestToggleWriteFailureKeepsMemoryState(t *testing.T) {
	// A directory at the store path makes every write fail.
	dir := t.TempDir()
	path := filepath.Join(dir, "romaday.json")
	if err := os.Mkdir(path, 0700); err != nil {
		t.Fatal(err)
	}
	trk := New(storage.NewJSONStore(path))

	current := trk.Toggle(canonical(), "pantheon")
	if !current[2].Completed {
		t.Errorf("Toggle() with failing store lost the in-memory flag")
	}
}

func TestLoadFailSoft(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name  string
		setup func(t *testing.T, path string)
	}{
		{
			name:  "missing file",
			setup: func(t *testing.T, path string) {},
		},
		{
			name: "corrupt json",
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name: "stale namespace",
			setup: func(t *testing.T, path string) {
				body := `{"version":1,"namespace":"romaday_2024_v0","completions":[{"id":"pantheon","completed":true}]}`
				if err := os.WriteFile(path, []byte(body), 0600); err != nil {
					t.Fatal(err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			tt.setup(t, path)
			trk := New(storage.NewJSONStore(path))
			if got := trk.Load(); got != nil {
				t.Errorf("Load() = %v, want nil", got)
			}
		})
	}
}

func TestReset(t *testing.T) {
	trk := newTestTracker(t)

	current := trk.Toggle(canonical(), "tren-ida")
	current = trk.Toggle(current, "pantheon")

	reset, err := trk.Reset(canonical())
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	for _, act := range reset {
		if act.Completed {
			t.Errorf("Reset() left %s completed", act.ID)
		}
	}

	reloaded := Merge(canonical(), trk.Load())
	for _, act := range reloaded {
		if act.Completed {
			t.Errorf("Reset() not persisted: %s still completed", act.ID)
		}
	}
}

func TestProjection(t *testing.T) {
	acts := canonical()
	acts[0].Completed = true

	got := Projection(acts)
	if len(got) != len(acts) {
		t.Fatalf("Projection() returned %d entries, want %d", len(got), len(acts))
	}
	if !got[0].Completed || got[0].ID != "tren-ida" {
		t.Errorf("Projection()[0] = %+v, want tren-ida completed", got[0])
	}
	if got[1].Completed {
		t.Errorf("Projection()[1] = %+v, want not completed", got[1])
	}
}
