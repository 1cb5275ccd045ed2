// Package lifecycle derives the live status of an event from its stored
// status, its absolute schedule and its sub-windows. Resolve is a pure
// function: now is always passed in, never read from a wall clock, so the
// derivation is deterministic for a given input.
package lifecycle

import (
	"time"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/Tannang0903/campus-events/internal/interval"
)

// Resolve evaluates the derivation rules in precedence order, first match
// wins:
//
//  1. stored Cancelled / Rejected pass through
//  2. Approved, now inside the event and inside an attendance window -> Attendance
//  3. Approved, now inside the event -> Happening
//  4. Approved, before start, inside a registration window -> Registration
//  5. Approved, before start, every registration window ended -> ClosedRegistration
//  6. Approved, before start -> Upcoming
//  7. Approved, after end -> Done
//  8. Pending, any registration window already started -> Expired
//  9. otherwise the stored status unchanged
func Resolve(
	now time.Time,
	status domain.EventStatus,
	startAt, endAt time.Time,
	attendanceWindows []domain.AttendanceWindow,
	registrationWindows []domain.RegistrationWindow,
) domain.DerivedStatus {
	switch status {
	case domain.EventStatusCancelled:
		return domain.DerivedCancelled
	case domain.EventStatusRejected:
		return domain.DerivedRejected
	}

	running := interval.Contains(now, interval.Of(startAt, endAt))
	beforeStart := !startAt.Before(now)

	if status == domain.EventStatusApproved {
		switch {
		case running && interval.AnyContains(now, attendanceIntervals(attendanceWindows)):
			return domain.DerivedAttendance
		case running:
			return domain.DerivedHappening
		case beforeStart && interval.AnyContains(now, registrationIntervals(registrationWindows)):
			return domain.DerivedRegistration
		case beforeStart && allRegistrationEnded(now, registrationWindows):
			return domain.DerivedClosedRegistration
		case beforeStart:
			return domain.DerivedUpcoming
		case !endAt.After(now):
			return domain.DerivedDone
		}
	}

	if status == domain.EventStatusPending {
		if anyRegistrationStarted(now, registrationWindows) {
			return domain.DerivedExpired
		}
		return domain.DerivedPending
	}

	return domain.DerivedStatus(status)
}

func attendanceIntervals(windows []domain.AttendanceWindow) []interval.Interval {
	res := make([]interval.Interval, len(windows))
	for i, w := range windows {
		res[i] = interval.Of(w.StartAt, w.EndAt)
	}
	return res
}

func registrationIntervals(windows []domain.RegistrationWindow) []interval.Interval {
	res := make([]interval.Interval, len(windows))
	for i, w := range windows {
		res[i] = interval.Of(w.StartAt, w.EndAt)
	}
	return res
}

func allRegistrationEnded(now time.Time, windows []domain.RegistrationWindow) bool {
	for _, w := range windows {
		if w.EndAt.After(now) {
			return false
		}
	}
	return true
}

func anyRegistrationStarted(now time.Time, windows []domain.RegistrationWindow) bool {
	for _, w := range windows {
		if !w.StartAt.After(now) {
			return true
		}
	}
	return false
}
