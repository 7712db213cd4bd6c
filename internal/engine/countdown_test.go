package engine

import (
	"testing"
	"time"
)

func TestShipState(t *testing.T) {
	arrivalMin := MustClock("07:00")
	onboardMin := MustClock("19:30")

	tests := []struct {
		name          string
		now           time.Time
		wantPhase     Phase
		wantRemaining time.Duration
	}{
		{
			name:      "before arrival",
			now:       clock(6, 59),
			wantPhase: PhaseEnRoute,
		},
		{
			name:          "at arrival the countdown starts",
			now:           clock(7, 0),
			wantPhase:     PhaseCountdown,
			wantRemaining: 12*time.Hour + 30*time.Minute,
		},
		{
			name:          "mid afternoon",
			now:           clock(14, 0),
			wantPhase:     PhaseCountdown,
			wantRemaining: 5*time.Hour + 30*time.Minute,
		},
		{
			name:          "one second left",
			now:           clock(19, 29).Add(59 * time.Second),
			wantPhase:     PhaseCountdown,
			wantRemaining: time.Second,
		},
		{
			name:      "at the deadline",
			now:       clock(19, 30),
			wantPhase: PhaseAboard,
		},
		{
			name:      "after the deadline",
			now:       clock(22, 0),
			wantPhase: PhaseAboard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShipState(tt.now, arrivalMin, onboardMin)
			if got.Phase != tt.wantPhase {
				t.Errorf("ShipState() phase = %v, want %v", got.Phase, tt.wantPhase)
			}
			if got.Phase == PhaseCountdown && got.Remaining != tt.wantRemaining {
				t.Errorf("ShipState() remaining = %v, want %v", got.Remaining, tt.wantRemaining)
			}
		})
	}
}

func TestShipStateRecomputesFromNow(t *testing.T) {
	arrivalMin := MustClock("07:00")
	onboardMin := MustClock("19:30")

	// Jumping the clock forward (suspend/resume) must not leave a stale
	// remaining value behind.
	before := ShipState(clock(14, 0), arrivalMin, onboardMin)
	after := ShipState(clock(16, 0), arrivalMin, onboardMin)
	if after.Remaining >= before.Remaining {
		t.Errorf("ShipState() remaining did not shrink across a clock jump: %v then %v", before.Remaining, after.Remaining)
	}
}

func TestCountdownLabel(t *testing.T) {
	tests := []struct {
		name string
		c    Countdown
		want string
	}{
		{
			name: "en route",
			c:    Countdown{Phase: PhaseEnRoute},
			want: "🚢 EN NAVEGACIÓN",
		},
		{
			name: "aboard",
			c:    Countdown{Phase: PhaseAboard},
			want: "¡A BORDO!",
		},
		{
			name: "counting down",
			c:    Countdown{Phase: PhaseCountdown, Remaining: 5*time.Hour + 30*time.Minute},
			want: "5h 30m 0s",
		},
		{
			name: "last second",
			c:    Countdown{Phase: PhaseCountdown, Remaining: time.Second},
			want: "0h 0m 1s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}
