package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/Tannang0903/campus-events/internal/geo"
	"github.com/Tannang0903/campus-events/internal/interval"
	"github.com/Tannang0903/campus-events/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type AttendanceService struct {
	repo         ports.AttendanceRepo
	radiusMeters float64
	log          logger.Logger
}

func NewAttendanceService(repo ports.AttendanceRepo, radiusMeters float64, log logger.Logger) *AttendanceService {
	if radiusMeters <= 0 {
		radiusMeters = geo.DefaultRadiusMeters
	}
	return &AttendanceService{repo: repo, radiusMeters: radiusMeters, log: log}
}

// Attend checks a student in against a window code. Checks run in a fixed
// order: window, registration, duplicate attendance, geofence.
func (s *AttendanceService) Attend(ctx context.Context, studentID string, input domain.AttendInput) (*domain.Attendance, error) {
	cc, err := s.repo.GetCheckInContext(ctx, input.Code)
	if err != nil {
		return nil, fmt.Errorf("resolve check-in code: %w", err)
	}

	now := time.Now().UTC()
	if !interval.AnyContains(now, attendanceIntervals(cc.Windows)) {
		return nil, domain.ErrAttendanceClosed
	}

	registration, err := s.repo.GetApprovedRegistration(ctx, cc.Event.ID, studentID)
	if err != nil {
		return nil, fmt.Errorf("load registration: %w", err)
	}

	attended, err := s.repo.Exists(ctx, registration.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing attendance: %w", err)
	}
	if attended {
		return nil, domain.ErrAlreadyAttended
	}

	reported := geo.Point{Latitude: input.Latitude, Longitude: input.Longitude}
	target := geo.Point{Latitude: cc.Event.Latitude, Longitude: cc.Event.Longitude}
	if !geo.WithinRadius(reported, target, s.radiusMeters) {
		return nil, domain.ErrOutOfRange
	}

	attendance := &domain.Attendance{
		ID:                 uuid.New().String(),
		RegistrationID:     registration.ID,
		AttendanceWindowID: cc.Window.ID,
		CreatedAt:          now,
	}

	if err := s.repo.Create(ctx, attendance); err != nil {
		return nil, fmt.Errorf("create attendance: %w", err)
	}

	s.log.Info("attendance recorded",
		logger.String("attendance_id", attendance.ID),
		logger.String("registration_id", registration.ID),
		logger.String("event_id", cc.Event.ID),
		logger.String("student_id", studentID),
	)

	return attendance, nil
}

func (s *AttendanceService) ListByEvent(ctx context.Context, eventID string) ([]*domain.AttendedStudent, error) {
	return s.repo.ListByEvent(ctx, eventID)
}

func (s *AttendanceService) ListByStudent(ctx context.Context, studentID string) ([]*domain.AttendedEvent, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

func attendanceIntervals(windows []domain.AttendanceWindow) []interval.Interval {
	res := make([]interval.Interval, len(windows))
	for i, w := range windows {
		res[i] = interval.Of(w.StartAt, w.EndAt)
	}
	return res
}
