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

const eventColumns = `id, name, introduction, description, image_url, start_at, end_at,
			full_address, latitude, longitude, status, representative_org_id, created_by, created_at, updated_at`

// replaceCleanupTables is the order Replace drops sub-collections in.
// event_roles goes first: its cascade removes registrations and their
// attendance rows, which reference attendance_windows.
var replaceCleanupTables = []string{
	"event_roles",
	"registration_windows",
	"attendance_windows",
	"organizations_in_events",
}

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(
	ctx context.Context,
	e *domain.Event,
	roles []domain.EventRole,
	registrationWindows []domain.RegistrationWindow,
	attendanceWindows []domain.AttendanceWindow,
	organizations []domain.OrganizationInEvent,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := insertEvent(ctx, tx, e); err != nil {
		return err
	}
	if err := insertSubCollections(ctx, tx, roles, registrationWindows, attendanceWindows, organizations); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *EventRepository) Replace(
	ctx context.Context,
	e *domain.Event,
	roles []domain.EventRole,
	registrationWindows []domain.RegistrationWindow,
	attendanceWindows []domain.AttendanceWindow,
	organizations []domain.OrganizationInEvent,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE events
			  SET name = $2, introduction = $3, description = $4, image_url = $5,
			      start_at = $6, end_at = $7, full_address = $8, latitude = $9, longitude = $10,
			      representative_org_id = $11, updated_at = $12
			  WHERE id = $1`
	res, err := tx.ExecContext(
		ctx, query,
		e.ID, e.Name, e.Introduction, e.Description, e.ImageURL,
		e.StartAt, e.EndAt, e.FullAddress, e.Latitude, e.Longitude,
		nullable(e.RepresentativeOrgID), e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return domain.ErrEventNotFound
	}

	// Destructive replace: drop every sub-collection before recreating it.
	for _, table := range replaceCleanupTables {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE event_id = $1`, table), e.ID); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := insertSubCollections(ctx, tx, roles, registrationWindows, attendanceWindows, organizations); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	return e, nil
}

func (r *EventRepository) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.details(ctx, event)
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.EventDetails, error) {
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY start_at DESC`, eventColumns)
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	res := make([]*domain.EventDetails, 0, len(events))
	for _, e := range events {
		details, err := r.details(ctx, e)
		if err != nil {
			return nil, err
		}
		res = append(res, details)
	}
	return res, nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error {
	query := `UPDATE events SET status = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) details(ctx context.Context, event *domain.Event) (*domain.EventDetails, error) {
	details := &domain.EventDetails{Event: *event}

	roleQuery := `SELECT r.id, r.event_id, r.name, r.description, r.quantity, r.score, r.is_need_approve,
						 COUNT(g.id),
						 COUNT(g.id) FILTER (WHERE g.status = 'Approved')
				  FROM event_roles r
				  LEFT JOIN registrations g ON g.event_role_id = r.id
				  WHERE r.event_id = $1
				  GROUP BY r.id
				  ORDER BY r.name`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, roleQuery, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var role domain.RoleStats
		if err := rows.Scan(
			&role.ID, &role.EventID, &role.Name, &role.Description,
			&role.Quantity, &role.Score, &role.IsNeedApprove,
			&role.Registered, &role.ApprovedRegistered,
		); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		details.Roles = append(details.Roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	regQuery := `SELECT id, event_id, start_at, end_at
				 FROM registration_windows WHERE event_id = $1 ORDER BY start_at`
	regRows, err := r.db.QueryWithRetry(ctx, r.strategy, regQuery, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list registration windows: %w", err)
	}
	defer regRows.Close()

	for regRows.Next() {
		var w domain.RegistrationWindow
		if err := regRows.Scan(&w.ID, &w.EventID, &w.StartAt, &w.EndAt); err != nil {
			return nil, fmt.Errorf("scan registration window: %w", err)
		}
		details.RegistrationWindows = append(details.RegistrationWindows, w)
	}
	if err := regRows.Err(); err != nil {
		return nil, err
	}

	attQuery := `SELECT id, event_id, start_at, end_at, code, qr_payload
				 FROM attendance_windows WHERE event_id = $1 ORDER BY start_at`
	attRows, err := r.db.QueryWithRetry(ctx, r.strategy, attQuery, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list attendance windows: %w", err)
	}
	defer attRows.Close()

	for attRows.Next() {
		var w domain.AttendanceWindow
		if err := attRows.Scan(&w.ID, &w.EventID, &w.StartAt, &w.EndAt, &w.Code, &w.QRPayload); err != nil {
			return nil, fmt.Errorf("scan attendance window: %w", err)
		}
		details.AttendanceWindows = append(details.AttendanceWindows, w)
	}
	if err := attRows.Err(); err != nil {
		return nil, err
	}

	orgQuery := `SELECT id, event_id, organization_id, role
				 FROM organizations_in_events WHERE event_id = $1`
	orgRows, err := r.db.QueryWithRetry(ctx, r.strategy, orgQuery, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list event organizations: %w", err)
	}
	defer orgRows.Close()

	for orgRows.Next() {
		var o domain.OrganizationInEvent
		if err := orgRows.Scan(&o.ID, &o.EventID, &o.OrganizationID, &o.Role); err != nil {
			return nil, fmt.Errorf("scan event organization: %w", err)
		}
		details.Organizations = append(details.Organizations, o)
	}
	if err := orgRows.Err(); err != nil {
		return nil, err
	}

	countQuery := `SELECT COUNT(*)
				   FROM attendances a
				   JOIN registrations g ON g.id = a.registration_id
				   WHERE g.event_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery, event.ID)
	if err != nil {
		return nil, fmt.Errorf("count attendances: %w", err)
	}
	if err := row.Scan(&details.Attended); err != nil {
		return nil, fmt.Errorf("scan attendance count: %w", err)
	}

	return details, nil
}

func insertEvent(ctx context.Context, tx *sql.Tx, e *domain.Event) error {
	query := `INSERT INTO events (id, name, introduction, description, image_url, start_at, end_at,
				full_address, latitude, longitude, status, representative_org_id, created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := tx.ExecContext(
		ctx, query,
		e.ID, e.Name, e.Introduction, e.Description, e.ImageURL, e.StartAt, e.EndAt,
		e.FullAddress, e.Latitude, e.Longitude, e.Status, nullable(e.RepresentativeOrgID),
		e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func insertSubCollections(
	ctx context.Context,
	tx *sql.Tx,
	roles []domain.EventRole,
	registrationWindows []domain.RegistrationWindow,
	attendanceWindows []domain.AttendanceWindow,
	organizations []domain.OrganizationInEvent,
) error {
	for _, role := range roles {
		query := `INSERT INTO event_roles (id, event_id, name, description, quantity, score, is_need_approve)
				  VALUES ($1, $2, $3, $4, $5, $6, $7)`
		if _, err := tx.ExecContext(
			ctx, query,
			role.ID, role.EventID, role.Name, role.Description,
			role.Quantity, role.Score, role.IsNeedApprove,
		); err != nil {
			return fmt.Errorf("insert event role: %w", err)
		}
	}

	for _, w := range registrationWindows {
		query := `INSERT INTO registration_windows (id, event_id, start_at, end_at)
				  VALUES ($1, $2, $3, $4)`
		if _, err := tx.ExecContext(ctx, query, w.ID, w.EventID, w.StartAt, w.EndAt); err != nil {
			return fmt.Errorf("insert registration window: %w", err)
		}
	}

	for _, w := range attendanceWindows {
		query := `INSERT INTO attendance_windows (id, event_id, start_at, end_at, code, qr_payload)
				  VALUES ($1, $2, $3, $4, $5, $6)`
		if _, err := tx.ExecContext(ctx, query, w.ID, w.EventID, w.StartAt, w.EndAt, w.Code, w.QRPayload); err != nil {
			return fmt.Errorf("insert attendance window: %w", err)
		}
	}

	for _, o := range organizations {
		query := `INSERT INTO organizations_in_events (id, event_id, organization_id, role)
				  VALUES ($1, $2, $3, $4)`
		if _, err := tx.ExecContext(ctx, query, o.ID, o.EventID, o.OrganizationID, o.Role); err != nil {
			return fmt.Errorf("insert event organization: %w", err)
		}
	}

	return nil
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	var e domain.Event
	var repOrg sql.NullString
	if err := scan(
		&e.ID, &e.Name, &e.Introduction, &e.Description, &e.ImageURL, &e.StartAt, &e.EndAt,
		&e.FullAddress, &e.Latitude, &e.Longitude, &e.Status, &repOrg, &e.CreatedBy,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.RepresentativeOrgID = repOrg.String
	return &e, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
