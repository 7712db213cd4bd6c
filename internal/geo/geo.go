// Package geo provides position input and distance math. A Source is
// the terminal counterpart of a device positioning stream: it may be
// unavailable (feature-detected), and when it is the rest of the app
// runs with no known location.
package geo

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sgarcia/romaday/internal/models"
)

const earthRadiusM = 6371000.0

// Distance returns the haversine great-circle distance in meters.
func Distance(a, b models.Coordinates) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusM * math.Asin(math.Sqrt(h))
}

// FormatDistance renders meters as "850 m" or "2.3 km".
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

// Source is a subscription-style position capability. Watch delivers
// readings until the context is cancelled; each reading replaces the
// previous one wholesale, so consumption is idempotent.
type Source interface {
	// Available reports whether this host can produce positions at all.
	Available() bool
	// Watch starts the stream. The channel closes when ctx is done;
	// cancelling the context is how the subscription is released.
	Watch(ctx context.Context) (<-chan models.Coordinates, error)
}

// NoSource is the feature-detection negative: no positions, ever.
type NoSource struct{}

func (NoSource) Available() bool { return false }

func (NoSource) Watch(context.Context) (<-chan models.Coordinates, error) {
	return nil, fmt.Errorf("positioning not available on this host")
}

// TrackSource replays a fixed polyline at a steady cadence. It stands
// in for device positioning in a terminal, and doubles as the demo
// mode for walking the planned route.
type TrackSource struct {
	Track    []models.Coordinates
	Interval time.Duration
}

func NewTrackSource(track []models.Coordinates, interval time.Duration) *TrackSource {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &TrackSource{Track: track, Interval: interval}
}

func (s *TrackSource) Available() bool { return len(s.Track) > 0 }

func (s *TrackSource) Watch(ctx context.Context) (<-chan models.Coordinates, error) {
	if !s.Available() {
		return nil, fmt.Errorf("empty track")
	}

	out := make(chan models.Coordinates)
	go func() {
		defer close(out)
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case out <- s.Track[i%len(s.Track)]:
					i++
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
