package ports

import (
	"context"

	"github.com/Tannang0903/campus-events/internal/domain"
)

type RegistrationNotifier interface {
	NotifyRegistrationApproved(ctx context.Context, student *domain.Student, event *domain.Event)
	NotifyRegistrationRejected(ctx context.Context, student *domain.Student, event *domain.Event, reason string)
}
