package ports

import (
	"context"

	"github.com/Tannang0903/campus-events/internal/domain"
)

type AttendanceRepo interface {
	// GetCheckInContext resolves an attendance window by its check-in code
	// together with the parent event and all of the event's attendance windows.
	GetCheckInContext(ctx context.Context, code string) (*domain.CheckInContext, error)

	GetApprovedRegistration(ctx context.Context, eventID, studentID string) (*domain.Registration, error)
	Exists(ctx context.Context, registrationID string) (bool, error)

	// Create inserts the attendance. A duplicate for the same registration
	// surfaces as domain.ErrAlreadyAttended.
	Create(ctx context.Context, a *domain.Attendance) error

	ListByEvent(ctx context.Context, eventID string) ([]*domain.AttendedStudent, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.AttendedEvent, error)
}
