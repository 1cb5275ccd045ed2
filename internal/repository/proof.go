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

type ProofRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProofRepo(db *dbpg.DB) *ProofRepository {
	return &ProofRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ProofRepository) Create(ctx context.Context, p *domain.Proof) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO proofs (id, student_id, kind, status, description, image_url, reject_reason, attendance_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, query, p.ID, p.StudentID, p.Kind, p.Status,
		p.Description, p.ImageURL, p.RejectReason, nullableTime(p.AttendanceAt),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert proof: %w", err)
	}

	if err := insertVariant(ctx, tx, p); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ProofRepository) Update(ctx context.Context, p *domain.Proof) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE proofs
			  SET status = $2, description = $3, image_url = $4, reject_reason = $5,
			      attendance_at = $6, updated_at = $7
			  WHERE id = $1`
	res, err := tx.ExecContext(
		ctx, query, p.ID, p.Status, p.Description, p.ImageURL,
		p.RejectReason, nullableTime(p.AttendanceAt), p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update proof: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return domain.ErrProofNotFound
	}

	variantTable := map[domain.ProofKind]string{
		domain.ProofKindInternal: "internal_proofs",
		domain.ProofKindExternal: "external_proofs",
		domain.ProofKindSpecial:  "special_proofs",
	}[p.Kind]
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, variantTable), p.ID); err != nil {
		return fmt.Errorf("clear %s: %w", variantTable, err)
	}

	if err := insertVariant(ctx, tx, p); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ProofRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM proofs WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete proof: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("proof rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrProofNotFound
	}
	return nil
}

func (r *ProofRepository) GetByID(ctx context.Context, id string) (*domain.Proof, error) {
	query := `SELECT id, student_id, kind, status, description, image_url, reject_reason, attendance_at, created_at, updated_at
			  FROM proofs
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get proof: %w", err)
	}

	p, err := scanProof(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProofNotFound
		}
		return nil, fmt.Errorf("scan proof: %w", err)
	}

	if err := r.loadVariant(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProofRepository) ListByStudent(ctx context.Context, studentID string) ([]*domain.Proof, error) {
	query := `SELECT id, student_id, kind, status, description, image_url, reject_reason, attendance_at, created_at, updated_at
			  FROM proofs
			  WHERE student_id = $1
			  ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("list proofs: %w", err)
	}
	defer rows.Close()

	var proofs []*domain.Proof
	for rows.Next() {
		p, err := scanProof(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan proof: %w", err)
		}
		proofs = append(proofs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, p := range proofs {
		if err := r.loadVariant(ctx, p); err != nil {
			return nil, err
		}
	}
	return proofs, nil
}

func (r *ProofRepository) UpdateStatus(ctx context.Context, id string, status domain.ProofStatus, rejectReason string) error {
	query := `UPDATE proofs SET status = $2, reject_reason = $3, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, rejectReason)
	if err != nil {
		return fmt.Errorf("update proof status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("proof rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrProofNotFound
	}
	return nil
}

func (r *ProofRepository) loadVariant(ctx context.Context, p *domain.Proof) error {
	switch p.Kind {
	case domain.ProofKindInternal:
		query := `SELECT i.event_id, i.event_role_id, e.name, r.name, r.score
				  FROM internal_proofs i
				  JOIN events e ON e.id = i.event_id
				  JOIN event_roles r ON r.id = i.event_role_id
				  WHERE i.id = $1`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, p.ID)
		if err != nil {
			return fmt.Errorf("get internal proof: %w", err)
		}
		var v domain.InternalProof
		if err := row.Scan(&v.EventID, &v.EventRoleID, &v.EventName, &v.RoleName, &v.RoleScore); err != nil {
			return fmt.Errorf("scan internal proof: %w", err)
		}
		p.Internal = &v

	case domain.ProofKindExternal:
		query := `SELECT event_name, organization_name, address, start_at, end_at, role, score
				  FROM external_proofs
				  WHERE id = $1`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, p.ID)
		if err != nil {
			return fmt.Errorf("get external proof: %w", err)
		}
		var v domain.ExternalProof
		if err := row.Scan(&v.EventName, &v.OrganizationName, &v.Address, &v.StartAt, &v.EndAt, &v.Role, &v.Score); err != nil {
			return fmt.Errorf("scan external proof: %w", err)
		}
		p.External = &v

	case domain.ProofKindSpecial:
		query := `SELECT title, start_at, end_at, role, score
				  FROM special_proofs
				  WHERE id = $1`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, p.ID)
		if err != nil {
			return fmt.Errorf("get special proof: %w", err)
		}
		var v domain.SpecialProof
		if err := row.Scan(&v.Title, &v.StartAt, &v.EndAt, &v.Role, &v.Score); err != nil {
			return fmt.Errorf("scan special proof: %w", err)
		}
		p.Special = &v
	}
	return nil
}

func insertVariant(ctx context.Context, tx *sql.Tx, p *domain.Proof) error {
	switch p.Kind {
	case domain.ProofKindInternal:
		query := `INSERT INTO internal_proofs (id, event_id, event_role_id)
				  VALUES ($1, $2, $3)`
		if _, err := tx.ExecContext(ctx, query, p.ID, p.Internal.EventID, p.Internal.EventRoleID); err != nil {
			return fmt.Errorf("insert internal proof: %w", err)
		}

	case domain.ProofKindExternal:
		query := `INSERT INTO external_proofs (id, event_name, organization_name, address, start_at, end_at, role, score)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		v := p.External
		if _, err := tx.ExecContext(ctx, query, p.ID, v.EventName, v.OrganizationName, v.Address, v.StartAt, v.EndAt, v.Role, v.Score); err != nil {
			return fmt.Errorf("insert external proof: %w", err)
		}

	case domain.ProofKindSpecial:
		query := `INSERT INTO special_proofs (id, title, start_at, end_at, role, score)
				  VALUES ($1, $2, $3, $4, $5, $6)`
		v := p.Special
		if _, err := tx.ExecContext(ctx, query, p.ID, v.Title, v.StartAt, v.EndAt, v.Role, v.Score); err != nil {
			return fmt.Errorf("insert special proof: %w", err)
		}
	}
	return nil
}

func scanProof(scan func(dest ...any) error) (*domain.Proof, error) {
	var p domain.Proof
	var attendanceAt sql.NullTime
	if err := scan(
		&p.ID, &p.StudentID, &p.Kind, &p.Status, &p.Description,
		&p.ImageURL, &p.RejectReason, &attendanceAt, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.AttendanceAt = attendanceAt.Time
	return &p, nil
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
