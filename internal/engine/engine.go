// Package engine derives display state for the day plan from the
// current wall-clock time. Everything here is a pure function of its
// inputs; nothing is cached between ticks, so the output self-corrects
// after clock changes or a suspend/resume.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sgarcia/romaday/internal/models"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusActive    Status = "active"
	StatusUpcoming  Status = "upcoming"
	StatusPast      Status = "past"
)

// ActivityState is the per-tick derived view of one activity.
type ActivityState struct {
	Activity models.Activity
	Status   Status
	// Urgent marks a critical activity that is not yet completed. It is
	// orthogonal to Status and suppressed once the activity is done.
	Urgent bool
	// Progress is the elapsed fraction of the window in [0,100]. Only
	// meaningful while Status is active.
	Progress float64
	// Duration is the window length formatted as "1h 30m".
	Duration string
	// GapAfter is the strictly positive idle time in minutes before the
	// next declared activity, or 0 when there is none (back-to-back,
	// overlapping, or last entry).
	GapAfter int
}

// ParseClock converts an "HH:MM" clock time to minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time out of range: %q", s)
	}
	return hour*60 + minute, nil
}

// MustClock is ParseClock for compile-time constants; malformed input
// is a configuration fault and panics at startup.
func MustClock(s string) int {
	m, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ClockOf truncates a wall-clock instant to minutes since midnight.
func ClockOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// IsActive reports whether a window is active at the given minute.
// Regular windows are half-open [start, end), so an activity ending
// exactly when the next begins never overlaps with it. A degenerate
// window (start == end) is a checkpoint, active only on that minute.
func IsActive(startMin, endMin, nowMin int) bool {
	if startMin == endMin {
		return nowMin == startMin
	}
	return startMin <= nowMin && nowMin < endMin
}

// Progress returns the elapsed percentage of the window at the given
// minute, clamped to [0,100]. Checkpoints have no interval to fill and
// report 100 immediately.
func Progress(startMin, endMin, nowMin int) float64 {
	if startMin == endMin {
		return 100
	}
	pct := float64(nowMin-startMin) / float64(endMin-startMin) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// FormatDuration renders a minute count as "1h 30m", "45m" or "0m".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// Derive computes the view state for every activity at the given
// instant. Declaration order is trusted as the chronology; gaps are
// computed between adjacent declared pairs only. Activities with
// malformed times (already flagged at startup by validation) render as
// neutral upcoming entries rather than failing the tick.
func Derive(activities []models.Activity, now time.Time) []ActivityState {
	nowMin := ClockOf(now)
	states := make([]ActivityState, 0, len(activities))

	for i, act := range activities {
		state := ActivityState{Activity: act, Status: StatusUpcoming}

		startMin, errStart := ParseClock(act.StartTime)
		endMin, errEnd := ParseClock(act.EndTime)
		if errStart == nil && errEnd == nil {
			state.Duration = FormatDuration(endMin - startMin)

			switch {
			case act.Completed:
				state.Status = StatusCompleted
			case IsActive(startMin, endMin, nowMin):
				state.Status = StatusActive
				state.Progress = Progress(startMin, endMin, nowMin)
			case nowMin >= endMin:
				state.Status = StatusPast
			}

			if i < len(activities)-1 {
				if nextStart, err := ParseClock(activities[i+1].StartTime); err == nil && nextStart > endMin {
					state.GapAfter = nextStart - endMin
				}
			}
		}

		state.Urgent = act.Critical() && !act.Completed
		states = append(states, state)
	}

	return states
}

// Active returns the state of the activity whose window contains the
// given instant, or false when it falls in a gap or outside the plan.
// A completed activity still owns its window for "what should I be
// doing now" purposes, even though its status renders as completed.
func Active(states []ActivityState, now time.Time) (ActivityState, bool) {
	nowMin := ClockOf(now)
	for _, s := range states {
		startMin, errStart := ParseClock(s.Activity.StartTime)
		endMin, errEnd := ParseClock(s.Activity.EndTime)
		if errStart == nil && errEnd == nil && IsActive(startMin, endMin, nowMin) {
			return s, true
		}
	}
	return ActivityState{}, false
}

// Next returns the first upcoming activity after the given instant.
func Next(states []ActivityState, now time.Time) (ActivityState, bool) {
	nowMin := ClockOf(now)
	for _, s := range states {
		startMin, err := ParseClock(s.Activity.StartTime)
		if err != nil {
			continue
		}
		if startMin > nowMin {
			return s, true
		}
	}
	return ActivityState{}, false
}
