package ports

import (
	"context"

	"github.com/Tannang0903/campus-events/internal/domain"
)

type EventRepo interface {
	// Create persists the event with all of its sub-collections in one
	// transaction.
	Create(ctx context.Context, e *domain.Event,
		roles []domain.EventRole,
		registrationWindows []domain.RegistrationWindow,
		attendanceWindows []domain.AttendanceWindow,
		organizations []domain.OrganizationInEvent) error

	// Replace deletes every sub-collection of the event and recreates it from
	// the given sets, atomically.
	Replace(ctx context.Context, e *domain.Event,
		roles []domain.EventRole,
		registrationWindows []domain.RegistrationWindow,
		attendanceWindows []domain.AttendanceWindow,
		organizations []domain.OrganizationInEvent) error

	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.EventDetails, error)
	UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error
}
