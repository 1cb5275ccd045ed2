package service

import (
	"context"
	"testing"
	"time"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/Tannang0903/campus-events/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	campusLat = 16.074160
	campusLng = 108.150782
)

func openCheckIn(code string) *domain.CheckInContext {
	now := time.Now().UTC()
	window := domain.AttendanceWindow{
		ID:      "aw1",
		EventID: "e1",
		StartAt: now.Add(-time.Hour),
		EndAt:   now.Add(time.Hour),
		Code:    code,
	}
	return &domain.CheckInContext{
		Window: window,
		Event: domain.Event{
			ID:        "e1",
			Name:      "Career Fair",
			Latitude:  campusLat,
			Longitude: campusLng,
		},
		Windows: []domain.AttendanceWindow{window},
	}
}

func TestAttendanceService_Attend(t *testing.T) {
	repo := mocks.NewMockAttendanceRepo(t)
	log := newTestLogger(t)

	svc := NewAttendanceService(repo, 200, log)

	repo.EXPECT().GetCheckInContext(mock.Anything, "code-1").Return(openCheckIn("code-1"), nil)
	repo.EXPECT().GetApprovedRegistration(mock.Anything, "e1", "s1").Return(&domain.Registration{
		ID: "g1", EventID: "e1", StudentID: "s1", Status: domain.RegisterStatusApproved,
	}, nil)
	repo.EXPECT().Exists(mock.Anything, "g1").Return(false, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	attendance, err := svc.Attend(context.Background(), "s1", domain.AttendInput{
		Code:      "code-1",
		Latitude:  campusLat,
		Longitude: campusLng,
	})

	require.NoError(t, err)
	assert.Equal(t, "g1", attendance.RegistrationID)
	assert.Equal(t, "aw1", attendance.AttendanceWindowID)
	assert.NotEmpty(t, attendance.ID)
}

func TestAttendanceService_Attend_WindowClosed(t *testing.T) {
	repo := mocks.NewMockAttendanceRepo(t)
	log := newTestLogger(t)

	svc := NewAttendanceService(repo, 200, log)

	cc := openCheckIn("code-1")
	now := time.Now().UTC()
	cc.Window.StartAt = now.Add(-3 * time.Hour)
	cc.Window.EndAt = now.Add(-2 * time.Hour)
	cc.Windows = []domain.AttendanceWindow{cc.Window}
	repo.EXPECT().GetCheckInContext(mock.Anything, "code-1").Return(cc, nil)

	_, err := svc.Attend(context.Background(), "s1", domain.AttendInput{
		Code:      "code-1",
		Latitude:  campusLat,
		Longitude: campusLng,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAttendanceClosed)
}

func TestAttendanceService_Attend_UnknownCode(t *testing.T) {
	repo := mocks.NewMockAttendanceRepo(t)
	log := newTestLogger(t)

	svc := NewAttendanceService(repo, 200, log)

	repo.EXPECT().GetCheckInContext(mock.Anything, "bogus").Return(nil, domain.ErrAttendanceWindowNotFound)

	_, err := svc.Attend(context.Background(), "s1", domain.AttendInput{Code: "bogus"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAttendanceWindowNotFound)
}

func TestAttendanceService_Attend_NotRegistered(t *testing.T) {
	repo := mocks.NewMockAttendanceRepo(t)
	log := newTestLogger(t)

	svc := NewAttendanceService(repo, 200, log)

	repo.EXPECT().GetCheckInContext(mock.Anything, "code-1").Return(openCheckIn("code-1"), nil)
	repo.EXPECT().GetApprovedRegistration(mock.Anything, "e1", "s1").Return(nil, domain.ErrNotRegistered)

	_, err := svc.Attend(context.Background(), "s1", domain.AttendInput{
		Code:      "code-1",
		Latitude:  campusLat,
		Longitude: campusLng,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestAttendanceService_Attend_AlreadyAttended(t *testing.T) {
	repo := mocks.NewMockAttendanceRepo(t)
	log := newTestLogger(t)

	svc := NewAttendanceService(repo, 200, log)

	repo.EXPECT().GetCheckInContext(mock.Anything, "code-1").Return(openCheckIn("code-1"), nil)
	repo.EXPECT().GetApprovedRegistration(mock.Anything, "e1", "s1").Return(&domain.Registration{
		ID: "g1", EventID: "e1", StudentID: "s1", Status: domain.RegisterStatusApproved,
	}, nil)
	repo.EXPECT().Exists(mock.Anything, "g1").Return(true, nil)

	_, err := svc.Attend(context.Background(), "s1", domain.AttendInput{
		Code:      "code-1",
		Latitude:  campusLat,
		Longitude: campusLng,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyAttended)
}

func TestAttendanceService_Attend_OutOfRange(t *testing.T) {
	repo := mocks.NewMockAttendanceRepo(t)
	log := newTestLogger(t)

	svc := NewAttendanceService(repo, 200, log)

	repo.EXPECT().GetCheckInContext(mock.Anything, "code-1").Return(openCheckIn("code-1"), nil)
	repo.EXPECT().GetApprovedRegistration(mock.Anything, "e1", "s1").Return(&domain.Registration{
		ID: "g1", EventID: "e1", StudentID: "s1", Status: domain.RegisterStatusApproved,
	}, nil)
	repo.EXPECT().Exists(mock.Anything, "g1").Return(false, nil)

	// A kilometer north of the venue.
	_, err := svc.Attend(context.Background(), "s1", domain.AttendInput{
		Code:      "code-1",
		Latitude:  campusLat + 0.009,
		Longitude: campusLng,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
}

func TestAttendanceService_DefaultRadius(t *testing.T) {
	repo := mocks.NewMockAttendanceRepo(t)
	log := newTestLogger(t)

	svc := NewAttendanceService(repo, 0, log)

	assert.Equal(t, 200.0, svc.radiusMeters)
}
