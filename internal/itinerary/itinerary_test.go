package itinerary

import (
	"testing"

	"github.com/sgarcia/romaday/internal/engine"
)

func TestDefaultChronology(t *testing.T) {
	acts := Default()
	if len(acts) == 0 {
		t.Fatal("Default() returned no activities")
	}

	seen := make(map[string]bool)
	prevStart := -1
	for _, act := range acts {
		if seen[act.ID] {
			t.Errorf("Default() has duplicate id %s", act.ID)
		}
		seen[act.ID] = true

		start, err := engine.ParseClock(act.StartTime)
		if err != nil {
			t.Errorf("Default() %s start time: %v", act.ID, err)
			continue
		}
		end, err := engine.ParseClock(act.EndTime)
		if err != nil {
			t.Errorf("Default() %s end time: %v", act.ID, err)
			continue
		}
		if end < start {
			t.Errorf("Default() %s window reversed: %s-%s", act.ID, act.StartTime, act.EndTime)
		}
		if start < prevStart {
			t.Errorf("Default() %s starts before the previous entry", act.ID)
		}
		prevStart = start
	}
}

func TestDefaultAnchors(t *testing.T) {
	acts := Default()

	first, last := acts[0], acts[len(acts)-1]
	if first.StartTime != first.EndTime {
		t.Errorf("Default() first entry %s is not a checkpoint", first.ID)
	}
	if last.StartTime != last.EndTime {
		t.Errorf("Default() last entry %s is not a checkpoint", last.ID)
	}
	if !first.Critical() || !last.Critical() {
		t.Errorf("Default() day anchors not marked critical")
	}
}

func TestByID(t *testing.T) {
	acts := Default()

	got, ok := ByID(acts, "pantheon")
	if !ok || got.ID != "pantheon" {
		t.Errorf("ByID(pantheon) = %v, %v", got.ID, ok)
	}

	if _, ok := ByID(acts, "no-such-stop"); ok {
		t.Errorf("ByID(no-such-stop) = true, want false")
	}
}

func TestCityTrack(t *testing.T) {
	track := CityTrack()
	if len(track) < 2 {
		t.Fatalf("CityTrack() has %d points, want a walkable polyline", len(track))
	}
	for i, p := range track {
		// Everything on the track is in or near Rome.
		if p.Lat < 41.8 || p.Lat > 42.2 || p.Lng < 11.7 || p.Lng > 12.6 {
			t.Errorf("CityTrack()[%d] = %+v outside the Rome area", i, p)
		}
	}
}
