package ports

import (
	"context"

	"github.com/Tannang0903/campus-events/internal/domain"
)

type StudentRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	GetProgram(ctx context.Context, id string) (*domain.EducationProgram, error)

	// AttendedEventScores returns one row per event the student attended, with
	// the sum of all role scores on the event and the student's own role score.
	AttendedEventScores(ctx context.Context, studentID string) ([]domain.AttendedEventScore, error)
}
