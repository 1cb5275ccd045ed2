package lifecycle

import (
	"testing"
	"time"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/stretchr/testify/assert"
)

var day = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

func clock(hour, min int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func regWindow(start, end time.Time) domain.RegistrationWindow {
	return domain.RegistrationWindow{ID: "rw", StartAt: start, EndAt: end}
}

func attWindow(start, end time.Time) domain.AttendanceWindow {
	return domain.AttendanceWindow{ID: "aw", StartAt: start, EndAt: end}
}

func TestResolve_StoredTerminalStates(t *testing.T) {
	got := Resolve(clock(12, 0), domain.EventStatusCancelled, clock(10, 0), clock(14, 0), nil, nil)
	assert.Equal(t, domain.DerivedCancelled, got)

	got = Resolve(clock(12, 0), domain.EventStatusRejected, clock(10, 0), clock(14, 0), nil, nil)
	assert.Equal(t, domain.DerivedRejected, got)
}

func TestResolve_ApprovedTimeline(t *testing.T) {
	start, end := clock(10, 0), clock(14, 0)
	atts := []domain.AttendanceWindow{attWindow(clock(10, 0), clock(11, 0))}
	regs := []domain.RegistrationWindow{regWindow(clock(8, 0), clock(9, 0))}

	tests := []struct {
		name string
		now  time.Time
		want domain.DerivedStatus
	}{
		{"inside attendance window", clock(10, 30), domain.DerivedAttendance},
		{"inside event only", clock(12, 0), domain.DerivedHappening},
		{"inside registration window", clock(8, 30), domain.DerivedRegistration},
		{"registration over, not started", clock(9, 30), domain.DerivedClosedRegistration},
		{"before registration opens", clock(7, 0), domain.DerivedUpcoming},
		{"after event end", clock(15, 0), domain.DerivedDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.now, domain.EventStatusApproved, start, end, atts, regs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_AttendanceBeatsHappening(t *testing.T) {
	start, end := clock(10, 0), clock(14, 0)
	atts := []domain.AttendanceWindow{attWindow(clock(11, 0), clock(12, 0))}

	got := Resolve(clock(11, 30), domain.EventStatusApproved, start, end, atts, nil)
	assert.Equal(t, domain.DerivedAttendance, got)

	got = Resolve(clock(12, 30), domain.EventStatusApproved, start, end, atts, nil)
	assert.Equal(t, domain.DerivedHappening, got)
}

func TestResolve_Pending(t *testing.T) {
	start, end := clock(10, 0), clock(14, 0)

	// Registration already open while the event is still unapproved.
	regs := []domain.RegistrationWindow{regWindow(clock(8, 0), clock(9, 0))}
	got := Resolve(clock(8, 30), domain.EventStatusPending, start, end, nil, regs)
	assert.Equal(t, domain.DerivedExpired, got)

	got = Resolve(clock(7, 0), domain.EventStatusPending, start, end, nil, regs)
	assert.Equal(t, domain.DerivedPending, got)
}

func TestResolve_IsPure(t *testing.T) {
	start, end := clock(10, 0), clock(14, 0)
	regs := []domain.RegistrationWindow{regWindow(clock(8, 0), clock(9, 0))}
	now := clock(8, 30)

	first := Resolve(now, domain.EventStatusApproved, start, end, nil, regs)
	second := Resolve(now, domain.EventStatusApproved, start, end, nil, regs)
	assert.Equal(t, first, second)
}

func TestResolve_DoneOnceAttendanceNoLongerMatches(t *testing.T) {
	start, end := clock(10, 0), clock(14, 0)
	atts := []domain.AttendanceWindow{attWindow(clock(13, 0), clock(14, 0))}

	got := Resolve(clock(16, 0), domain.EventStatusApproved, start, end, atts, nil)
	assert.Equal(t, domain.DerivedDone, got)
}

func TestResolve_NoRegistrationWindows(t *testing.T) {
	// An approved future event with no registration windows reports
	// ClosedRegistration, matching the vacuous "every window ended" rule.
	got := Resolve(clock(7, 0), domain.EventStatusApproved, clock(10, 0), clock(14, 0), nil, nil)
	assert.Equal(t, domain.DerivedClosedRegistration, got)
}
