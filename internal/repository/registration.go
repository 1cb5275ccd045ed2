package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RegistrationRepository) GetRoleAdmission(ctx context.Context, eventRoleID string) (*domain.RoleAdmission, error) {
	query := `SELECT r.id, r.event_id, r.name, r.description, r.quantity, r.score, r.is_need_approve,
					 e.id, e.name, e.introduction, e.description, e.image_url, e.start_at, e.end_at,
					 e.full_address, e.latitude, e.longitude, e.status, e.representative_org_id,
					 e.created_by, e.created_at, e.updated_at,
					 (SELECT COUNT(*) FROM registrations g
					  WHERE g.event_role_id = r.id AND g.status = 'Approved')
			  FROM event_roles r
			  JOIN events e ON e.id = r.event_id
			  WHERE r.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventRoleID)
	if err != nil {
		return nil, fmt.Errorf("get role admission: %w", err)
	}

	var adm domain.RoleAdmission
	var repOrg sql.NullString
	if err := row.Scan(
		&adm.Role.ID, &adm.Role.EventID, &adm.Role.Name, &adm.Role.Description,
		&adm.Role.Quantity, &adm.Role.Score, &adm.Role.IsNeedApprove,
		&adm.Event.ID, &adm.Event.Name, &adm.Event.Introduction, &adm.Event.Description,
		&adm.Event.ImageURL, &adm.Event.StartAt, &adm.Event.EndAt,
		&adm.Event.FullAddress, &adm.Event.Latitude, &adm.Event.Longitude,
		&adm.Event.Status, &repOrg, &adm.Event.CreatedBy,
		&adm.Event.CreatedAt, &adm.Event.UpdatedAt,
		&adm.ApprovedCount,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("scan role admission: %w", err)
	}
	adm.Event.RepresentativeOrgID = repOrg.String

	windows, err := r.registrationWindows(ctx, adm.Event.ID)
	if err != nil {
		return nil, err
	}
	adm.Windows = windows

	return &adm, nil
}

func (r *RegistrationRepository) HasApprovedForEvent(ctx context.Context, eventID, studentID string) (bool, error) {
	query := `SELECT EXISTS (
				  SELECT 1 FROM registrations
				  WHERE event_id = $1 AND student_id = $2 AND status = 'Approved'
			  )`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, studentID)
	if err != nil {
		return false, fmt.Errorf("check approved registration: %w", err)
	}

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan approved registration: %w", err)
	}
	return exists, nil
}

// Create re-checks role capacity under a row lock so two concurrent
// registrations cannot both take the last slot.
func (r *RegistrationRepository) Create(ctx context.Context, g *domain.Registration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	quantityQuery := `SELECT quantity FROM event_roles WHERE id = $1 FOR UPDATE`
	var quantity int
	if err = tx.QueryRowContext(ctx, quantityQuery, g.EventRoleID).Scan(&quantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoleNotFound
		}
		return fmt.Errorf("get role quantity: %w", err)
	}

	approvedQuery := `SELECT COUNT(*) FROM registrations
					  WHERE event_role_id = $1 AND status = 'Approved'`
	var approved int
	if err = tx.QueryRowContext(ctx, approvedQuery, g.EventRoleID).Scan(&approved); err != nil {
		return fmt.Errorf("count approved registrations: %w", err)
	}

	if g.Status == domain.RegisterStatusApproved && approved >= quantity {
		return domain.ErrCapacityExceeded
	}

	query := `INSERT INTO registrations (id, event_id, event_role_id, student_id, description, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, query, g.ID, g.EventID, g.EventRoleID,
		g.StudentID, g.Description, g.Status, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return tx.Commit()
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT id, event_id, event_role_id, student_id, description, status, reject_reason, created_at, updated_at
			  FROM registrations
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	var g domain.Registration
	if err := row.Scan(
		&g.ID, &g.EventID, &g.EventRoleID, &g.StudentID,
		&g.Description, &g.Status, &g.RejectReason, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}
	return &g, nil
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id string, status domain.RegisterStatus, rejectReason string) error {
	query := `UPDATE registrations SET status = $2, reject_reason = $3, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, rejectReason)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("update registration status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("registration rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.RegisteredStudent, error) {
	query := `SELECT g.id, g.event_id, g.event_role_id, g.student_id, g.description, g.status, g.reject_reason,
					 g.created_at, g.updated_at, s.fullname, s.code, r.name
			  FROM registrations g
			  JOIN students s ON s.id = g.student_id
			  JOIN event_roles r ON r.id = g.event_role_id
			  WHERE g.event_id = $1
			  ORDER BY g.created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by event: %w", err)
	}
	defer rows.Close()

	var res []*domain.RegisteredStudent
	for rows.Next() {
		var rs domain.RegisteredStudent
		if err := rows.Scan(
			&rs.Registration.ID, &rs.Registration.EventID, &rs.Registration.EventRoleID,
			&rs.Registration.StudentID, &rs.Registration.Description, &rs.Registration.Status,
			&rs.Registration.RejectReason, &rs.Registration.CreatedAt, &rs.Registration.UpdatedAt,
			&rs.StudentName, &rs.StudentCode, &rs.RoleName,
		); err != nil {
			return nil, fmt.Errorf("scan registered student: %w", err)
		}
		res = append(res, &rs)
	}
	return res, rows.Err()
}

func (r *RegistrationRepository) registrationWindows(ctx context.Context, eventID string) ([]domain.RegistrationWindow, error) {
	query := `SELECT id, event_id, start_at, end_at
			  FROM registration_windows
			  WHERE event_id = $1
			  ORDER BY start_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registration windows: %w", err)
	}
	defer rows.Close()

	var windows []domain.RegistrationWindow
	for rows.Next() {
		var w domain.RegistrationWindow
		if err := rows.Scan(&w.ID, &w.EventID, &w.StartAt, &w.EndAt); err != nil {
			return nil, fmt.Errorf("scan registration window: %w", err)
		}
		windows = append(windows, w)
	}
	return windows, rows.Err()
}
