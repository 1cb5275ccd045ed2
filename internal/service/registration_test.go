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
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func openAdmission(roleID string, quantity int, needApprove bool, approved int) *domain.RoleAdmission {
	now := time.Now().UTC()
	return &domain.RoleAdmission{
		Role: domain.EventRole{
			ID:            roleID,
			EventID:       "e1",
			Name:          "Participant",
			Quantity:      quantity,
			Score:         3,
			IsNeedApprove: needApprove,
		},
		Event:         domain.Event{ID: "e1", Name: "Career Fair", StartAt: now.Add(24 * time.Hour), EndAt: now.Add(30 * time.Hour)},
		ApprovedCount: approved,
		Windows: []domain.RegistrationWindow{
			{ID: "w1", EventID: "e1", StartAt: now.Add(-time.Hour), EndAt: now.Add(time.Hour)},
		},
	}
}

func TestRegistrationService_Register_AutoApproves(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	studentRepo := mocks.NewMockStudentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(repo, studentRepo, eventRepo, notifier, log)

	repo.EXPECT().GetRoleAdmission(mock.Anything, "r1").Return(openAdmission("r1", 10, false, 0), nil)
	repo.EXPECT().HasApprovedForEvent(mock.Anything, "e1", "s1").Return(false, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	registration, err := svc.Register(context.Background(), "s1", domain.RegisterInput{EventRoleID: "r1"})

	require.NoError(t, err)
	assert.Equal(t, domain.RegisterStatusApproved, registration.Status)
	assert.Equal(t, "e1", registration.EventID)
	assert.Equal(t, "r1", registration.EventRoleID)
	assert.Equal(t, "s1", registration.StudentID)
	assert.NotEmpty(t, registration.ID)
}

func TestRegistrationService_Register_PendingWhenApprovalRequired(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	studentRepo := mocks.NewMockStudentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(repo, studentRepo, eventRepo, notifier, log)

	repo.EXPECT().GetRoleAdmission(mock.Anything, "r1").Return(openAdmission("r1", 10, true, 0), nil)
	repo.EXPECT().HasApprovedForEvent(mock.Anything, "e1", "s1").Return(false, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	registration, err := svc.Register(context.Background(), "s1", domain.RegisterInput{EventRoleID: "r1"})

	require.NoError(t, err)
	assert.Equal(t, domain.RegisterStatusPending, registration.Status)
}

func TestRegistrationService_Register_CapacityExceeded(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	studentRepo := mocks.NewMockStudentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(repo, studentRepo, eventRepo, notifier, log)

	// Capacity 1, already one approved registration.
	repo.EXPECT().GetRoleAdmission(mock.Anything, "r1").Return(openAdmission("r1", 1, false, 1), nil)

	_, err := svc.Register(context.Background(), "s2", domain.RegisterInput{EventRoleID: "r1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestRegistrationService_Register_WindowClosed(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	studentRepo := mocks.NewMockStudentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(repo, studentRepo, eventRepo, notifier, log)

	adm := openAdmission("r1", 10, false, 0)
	now := time.Now().UTC()
	adm.Windows = []domain.RegistrationWindow{
		{ID: "w1", EventID: "e1", StartAt: now.Add(-3 * time.Hour), EndAt: now.Add(-2 * time.Hour)},
	}
	repo.EXPECT().GetRoleAdmission(mock.Anything, "r1").Return(adm, nil)

	_, err := svc.Register(context.Background(), "s1", domain.RegisterInput{EventRoleID: "r1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
}

func TestRegistrationService_Register_NoWindowsMeansClosed(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	studentRepo := mocks.NewMockStudentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(repo, studentRepo, eventRepo, notifier, log)

	adm := openAdmission("r1", 10, false, 0)
	adm.Windows = nil
	repo.EXPECT().GetRoleAdmission(mock.Anything, "r1").Return(adm, nil)

	_, err := svc.Register(context.Background(), "s1", domain.RegisterInput{EventRoleID: "r1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
}

func TestRegistrationService_Register_AlreadyRegistered(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	studentRepo := mocks.NewMockStudentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(repo, studentRepo, eventRepo, notifier, log)

	repo.EXPECT().GetRoleAdmission(mock.Anything, "r1").Return(openAdmission("r1", 10, false, 0), nil)
	repo.EXPECT().HasApprovedForEvent(mock.Anything, "e1", "s1").Return(true, nil)

	_, err := svc.Register(context.Background(), "s1", domain.RegisterInput{EventRoleID: "r1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestRegistrationService_Register_RoleNotFound(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	studentRepo := mocks.NewMockStudentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(repo, studentRepo, eventRepo, notifier, log)

	repo.EXPECT().GetRoleAdmission(mock.Anything, "missing").Return(nil, domain.ErrRoleNotFound)

	_, err := svc.Register(context.Background(), "s1", domain.RegisterInput{EventRoleID: "missing"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}

func TestRegistrationService_Approve_Notifies(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	studentRepo := mocks.NewMockStudentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(repo, studentRepo, eventRepo, notifier, log)

	registration := &domain.Registration{
		ID: "g1", EventID: "e1", EventRoleID: "r1",
		StudentID: "s1", Status: domain.RegisterStatusPending,
	}
	student := &domain.Student{ID: "s1", Fullname: "Alice"}
	event := &domain.Event{ID: "e1", Name: "Career Fair"}

	repo.EXPECT().GetByID(mock.Anything, "g1").Return(registration, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "g1", domain.RegisterStatusApproved, "").Return(nil)
	studentRepo.EXPECT().GetByID(mock.Anything, "s1").Return(student, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyRegistrationApproved(mock.Anything, student, event).Return()

	err := svc.Approve(context.Background(), "s1", "g1")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRegistrationService_Approve_AlreadyResolved(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	studentRepo := mocks.NewMockStudentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(repo, studentRepo, eventRepo, notifier, log)

	repo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Registration{
		ID: "g1", StudentID: "s1", Status: domain.RegisterStatusApproved,
	}, nil)

	err := svc.Approve(context.Background(), "s1", "g1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationResolved)
}

func TestRegistrationService_Approve_WrongStudent(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	studentRepo := mocks.NewMockStudentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(repo, studentRepo, eventRepo, notifier, log)

	repo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Registration{
		ID: "g1", StudentID: "someone-else", Status: domain.RegisterStatusPending,
	}, nil)

	err := svc.Approve(context.Background(), "s1", "g1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestRegistrationService_Reject_RequiresReason(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	studentRepo := mocks.NewMockStudentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(repo, studentRepo, eventRepo, notifier, log)

	err := svc.Reject(context.Background(), "s1", "g1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistrationService_Reject_Notifies(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	studentRepo := mocks.NewMockStudentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(repo, studentRepo, eventRepo, notifier, log)

	registration := &domain.Registration{
		ID: "g1", EventID: "e1", EventRoleID: "r1",
		StudentID: "s1", Status: domain.RegisterStatusPending,
	}
	student := &domain.Student{ID: "s1"}
	event := &domain.Event{ID: "e1"}

	repo.EXPECT().GetByID(mock.Anything, "g1").Return(registration, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "g1", domain.RegisterStatusRejected, "incomplete profile").Return(nil)
	studentRepo.EXPECT().GetByID(mock.Anything, "s1").Return(student, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyRegistrationRejected(mock.Anything, student, event, "incomplete profile").Return()

	err := svc.Reject(context.Background(), "s1", "g1", "incomplete profile")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}
