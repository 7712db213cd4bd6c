package engine

import (
	"fmt"
	"time"
)

type Phase int

const (
	// PhaseEnRoute: the ship has not docked yet; no countdown math.
	PhaseEnRoute Phase = iota
	// PhaseCountdown: ashore, counting down to the all-aboard deadline.
	PhaseCountdown
	// PhaseAboard: the deadline has passed.
	PhaseAboard
)

// Countdown is the global boarding state at one instant.
type Countdown struct {
	Phase     Phase
	Remaining time.Duration
}

// ShipState derives the boarding countdown from the current instant
// and the fixed arrival and all-aboard clock times (minutes since
// midnight, validated at startup). Remaining is computed from `now`
// on every call rather than decremented, so sleep/wake and clock
// adjustments never accumulate drift.
func ShipState(now time.Time, arrivalMin, onboardMin int) Countdown {
	arrival := time.Date(now.Year(), now.Month(), now.Day(), arrivalMin/60, arrivalMin%60, 0, 0, now.Location())
	if now.Before(arrival) {
		return Countdown{Phase: PhaseEnRoute}
	}

	deadline := time.Date(now.Year(), now.Month(), now.Day(), onboardMin/60, onboardMin%60, 0, 0, now.Location())
	remaining := deadline.Sub(now)
	if remaining <= 0 {
		return Countdown{Phase: PhaseAboard}
	}
	return Countdown{Phase: PhaseCountdown, Remaining: remaining}
}

// Label renders the countdown the way the header shows it.
func (c Countdown) Label() string {
	switch c.Phase {
	case PhaseEnRoute:
		return "🚢 EN NAVEGACIÓN"
	case PhaseAboard:
		return "¡A BORDO!"
	default:
		h := int(c.Remaining.Hours())
		m := int(c.Remaining.Minutes()) % 60
		s := int(c.Remaining.Seconds()) % 60
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
}
