package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type StudentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewStudentRepo(db *dbpg.DB) *StudentRepository {
	return &StudentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *StudentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `SELECT id, code, fullname, email, education_program_id, created_at
			  FROM students
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}

	var s domain.Student
	if err := row.Scan(&s.ID, &s.Code, &s.Fullname, &s.Email, &s.EducationProgramID, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("scan student: %w", err)
	}
	return &s, nil
}

func (r *StudentRepository) GetProgram(ctx context.Context, id string) (*domain.EducationProgram, error) {
	query := `SELECT id, name, required_activity_score
			  FROM education_programs
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get education program: %w", err)
	}

	var p domain.EducationProgram
	if err := row.Scan(&p.ID, &p.Name, &p.RequiredActivityScore); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProgramNotFound
		}
		return nil, fmt.Errorf("scan education program: %w", err)
	}
	return &p, nil
}

func (r *StudentRepository) AttendedEventScores(ctx context.Context, studentID string) ([]domain.AttendedEventScore, error) {
	query := `SELECT e.id,
					 (SELECT COALESCE(SUM(r2.score), 0) FROM event_roles r2 WHERE r2.event_id = e.id),
					 er.score
			  FROM attendances a
			  JOIN registrations g ON g.id = a.registration_id
			  JOIN events e ON e.id = g.event_id
			  JOIN event_roles er ON er.id = g.event_role_id
			  WHERE g.student_id = $1`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("list attended event scores: %w", err)
	}
	defer rows.Close()

	var scores []domain.AttendedEventScore
	for rows.Next() {
		var s domain.AttendedEventScore
		if err := rows.Scan(&s.EventID, &s.AllRolesScore, &s.OwnRoleScore); err != nil {
			return nil, fmt.Errorf("scan attended event score: %w", err)
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}
