package ports

import (
	"context"

	"github.com/Tannang0903/campus-events/internal/domain"
)

type RegistrationRepo interface {
	// GetRoleAdmission loads a role with its parent event, approved count and
	// the event's registration windows in one read.
	GetRoleAdmission(ctx context.Context, roleID string) (*domain.RoleAdmission, error)

	HasApprovedForEvent(ctx context.Context, eventID, studentID string) (bool, error)

	// Create inserts the registration, re-checking role capacity inside the
	// same transaction. Conflicting approved duplicates surface as
	// domain.ErrAlreadyRegistered.
	Create(ctx context.Context, r *domain.Registration) error

	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	UpdateStatus(ctx context.Context, id string, status domain.RegisterStatus, rejectReason string) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.RegisteredStudent, error)
}
