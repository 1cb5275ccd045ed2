// Package interval provides the temporal primitives behind registration and
// attendance window validation. All checks are pure functions over half-open
// intervals: touching endpoints never count as overlap.
package interval

import (
	"time"

	"github.com/Tannang0903/campus-events/internal/domain"
)

type Interval struct {
	Start time.Time
	End   time.Time
}

func Of(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Overlaps reports whether a and b intersect: a.Start < b.End && b.Start < a.End.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// NoPairwiseOverlap reports whether no unordered pair of windows overlaps.
func NoPairwiseOverlap(windows []Interval) bool {
	for i := 0; i < len(windows); i++ {
		for j := i + 1; j < len(windows); j++ {
			if Overlaps(windows[i], windows[j]) {
				return false
			}
		}
	}
	return true
}

// AllContainedWithin reports whether every window lies inside outer:
// start >= outer.Start and end <= outer.End.
func AllContainedWithin(windows []Interval, outer Interval) bool {
	for _, w := range windows {
		if w.Start.Before(outer.Start) || w.End.After(outer.End) {
			return false
		}
	}
	return true
}

// AllEndBefore reports whether every window's end is at or before the cutoff.
func AllEndBefore(windows []Interval, cutoff time.Time) bool {
	for _, w := range windows {
		if w.End.After(cutoff) {
			return false
		}
	}
	return true
}

// Contains reports whether now falls inside the window, bounds inclusive.
func Contains(now time.Time, w Interval) bool {
	return !w.Start.After(now) && !w.End.Before(now)
}

// AnyContains reports whether now falls inside at least one window.
func AnyContains(now time.Time, windows []Interval) bool {
	for _, w := range windows {
		if Contains(now, w) {
			return true
		}
	}
	return false
}

// Status classifies a single window as Upcoming, Happening or Done for the
// sub-window display on event details.
func Status(now, start, end time.Time) domain.WindowStatus {
	switch {
	case Contains(now, Interval{Start: start, End: end}):
		return domain.WindowHappening
	case start.After(now):
		return domain.WindowUpcoming
	default:
		return domain.WindowDone
	}
}
