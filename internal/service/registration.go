package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/Tannang0903/campus-events/internal/interval"
	"github.com/Tannang0903/campus-events/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type RegistrationService struct {
	repo        ports.RegistrationRepo
	studentRepo ports.StudentRepo
	eventRepo   ports.EventRepo
	notifier    ports.RegistrationNotifier
	log         logger.Logger
}

func NewRegistrationService(
	repo ports.RegistrationRepo,
	studentRepo ports.StudentRepo,
	eventRepo ports.EventRepo,
	notifier ports.RegistrationNotifier,
	log logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		repo:        repo,
		studentRepo: studentRepo,
		eventRepo:   eventRepo,
		notifier:    notifier,
		log:         log,
	}
}

// Register admits a student into an event role. Checks run in a fixed order:
// capacity, registration window, duplicate approved registration. Roles that
// do not require approval admit immediately as Approved.
func (s *RegistrationService) Register(ctx context.Context, studentID string, input domain.RegisterInput) (*domain.Registration, error) {
	adm, err := s.repo.GetRoleAdmission(ctx, input.EventRoleID)
	if err != nil {
		return nil, fmt.Errorf("load role: %w", err)
	}

	if adm.ApprovedCount >= adm.Role.Quantity {
		return nil, domain.ErrCapacityExceeded
	}

	now := time.Now().UTC()
	if !interval.AnyContains(now, registrationIntervals(adm.Windows)) {
		return nil, domain.ErrRegistrationClosed
	}

	registered, err := s.repo.HasApprovedForEvent(ctx, adm.Event.ID, studentID)
	if err != nil {
		return nil, fmt.Errorf("check existing registration: %w", err)
	}
	if registered {
		return nil, domain.ErrAlreadyRegistered
	}

	status := domain.RegisterStatusApproved
	if adm.Role.IsNeedApprove {
		status = domain.RegisterStatusPending
	}

	registration := &domain.Registration{
		ID:          uuid.New().String(),
		EventID:     adm.Event.ID,
		EventRoleID: adm.Role.ID,
		StudentID:   studentID,
		Description: input.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, registration); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.log.Info("registration created",
		logger.String("registration_id", registration.ID),
		logger.String("event_id", registration.EventID),
		logger.String("student_id", studentID),
		logger.String("status", string(status)),
	)

	return registration, nil
}

// Approve resolves a pending registration. An already approved or rejected
// registration is not re-applied: re-running the transition would re-fire its
// side effects.
func (s *RegistrationService) Approve(ctx context.Context, studentID, registrationID string) error {
	registration, err := s.loadPending(ctx, studentID, registrationID)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, registrationID, domain.RegisterStatusApproved, ""); err != nil {
		return fmt.Errorf("approve registration: %w", err)
	}

	s.log.Info("registration approved",
		logger.String("registration_id", registrationID),
		logger.String("student_id", studentID),
	)

	s.notifyResolved(ctx, registration, domain.RegisterStatusApproved, "")
	return nil
}

func (s *RegistrationService) Reject(ctx context.Context, studentID, registrationID, reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: reject reason is required", domain.ErrValidation)
	}

	registration, err := s.loadPending(ctx, studentID, registrationID)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, registrationID, domain.RegisterStatusRejected, reason); err != nil {
		return fmt.Errorf("reject registration: %w", err)
	}

	s.log.Info("registration rejected",
		logger.String("registration_id", registrationID),
		logger.String("student_id", studentID),
	)

	s.notifyResolved(ctx, registration, domain.RegisterStatusRejected, reason)
	return nil
}

func (s *RegistrationService) ListByEvent(ctx context.Context, eventID string) ([]*domain.RegisteredStudent, error) {
	return s.repo.ListByEvent(ctx, eventID)
}

func (s *RegistrationService) loadPending(ctx context.Context, studentID, registrationID string) (*domain.Registration, error) {
	registration, err := s.repo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}
	if registration.StudentID != studentID {
		return nil, domain.ErrRegistrationNotFound
	}
	if registration.Status != domain.RegisterStatusPending {
		return nil, domain.ErrRegistrationResolved
	}
	return registration, nil
}

func (s *RegistrationService) notifyResolved(ctx context.Context, registration *domain.Registration, status domain.RegisterStatus, reason string) {
	student, err := s.studentRepo.GetByID(ctx, registration.StudentID)
	if err != nil {
		s.log.Error("failed to get student for notification",
			logger.String("student_id", registration.StudentID),
			logger.String("error", err.Error()),
		)
		return
	}

	event, err := s.eventRepo.GetByID(ctx, registration.EventID)
	if err != nil {
		s.log.Error("failed to get event for notification",
			logger.String("event_id", registration.EventID),
			logger.String("error", err.Error()),
		)
		return
	}

	if status == domain.RegisterStatusApproved {
		go s.notifier.NotifyRegistrationApproved(context.WithoutCancel(ctx), student, event)
	} else {
		go s.notifier.NotifyRegistrationRejected(context.WithoutCancel(ctx), student, event, reason)
	}
}

func registrationIntervals(windows []domain.RegistrationWindow) []interval.Interval {
	res := make([]interval.Interval, len(windows))
	for i, w := range windows {
		res[i] = interval.Of(w.StartAt, w.EndAt)
	}
	return res
}
