package ports

import (
	"context"

	"github.com/Tannang0903/campus-events/internal/domain"
)

type ProofRepo interface {
	// Create persists the proof parent row and its variant payload in one
	// transaction.
	Create(ctx context.Context, p *domain.Proof) error

	// Update rewrites the proof and its variant payload; the kind never
	// changes after creation.
	Update(ctx context.Context, p *domain.Proof) error

	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Proof, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.Proof, error)
	UpdateStatus(ctx context.Context, id string, status domain.ProofStatus, rejectReason string) error
}
