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

type AttendanceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAttendanceRepo(db *dbpg.DB) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AttendanceRepository) GetCheckInContext(ctx context.Context, code string) (*domain.CheckInContext, error) {
	query := `SELECT w.id, w.event_id, w.start_at, w.end_at, w.code, w.qr_payload,
					 e.id, e.name, e.introduction, e.description, e.image_url, e.start_at, e.end_at,
					 e.full_address, e.latitude, e.longitude, e.status, e.representative_org_id,
					 e.created_by, e.created_at, e.updated_at
			  FROM attendance_windows w
			  JOIN events e ON e.id = w.event_id
			  WHERE w.code = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code)
	if err != nil {
		return nil, fmt.Errorf("get check-in context: %w", err)
	}

	var cc domain.CheckInContext
	var repOrg sql.NullString
	if err := row.Scan(
		&cc.Window.ID, &cc.Window.EventID, &cc.Window.StartAt, &cc.Window.EndAt,
		&cc.Window.Code, &cc.Window.QRPayload,
		&cc.Event.ID, &cc.Event.Name, &cc.Event.Introduction, &cc.Event.Description,
		&cc.Event.ImageURL, &cc.Event.StartAt, &cc.Event.EndAt,
		&cc.Event.FullAddress, &cc.Event.Latitude, &cc.Event.Longitude,
		&cc.Event.Status, &repOrg, &cc.Event.CreatedBy,
		&cc.Event.CreatedAt, &cc.Event.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttendanceWindowNotFound
		}
		return nil, fmt.Errorf("scan check-in context: %w", err)
	}
	cc.Event.RepresentativeOrgID = repOrg.String

	windowsQuery := `SELECT id, event_id, start_at, end_at, code, qr_payload
					 FROM attendance_windows
					 WHERE event_id = $1
					 ORDER BY start_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, windowsQuery, cc.Event.ID)
	if err != nil {
		return nil, fmt.Errorf("list attendance windows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var w domain.AttendanceWindow
		if err := rows.Scan(&w.ID, &w.EventID, &w.StartAt, &w.EndAt, &w.Code, &w.QRPayload); err != nil {
			return nil, fmt.Errorf("scan attendance window: %w", err)
		}
		cc.Windows = append(cc.Windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &cc, nil
}

func (r *AttendanceRepository) GetApprovedRegistration(ctx context.Context, eventID, studentID string) (*domain.Registration, error) {
	query := `SELECT id, event_id, event_role_id, student_id, description, status, reject_reason, created_at, updated_at
			  FROM registrations
			  WHERE event_id = $1 AND student_id = $2 AND status = 'Approved'`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, studentID)
	if err != nil {
		return nil, fmt.Errorf("get approved registration: %w", err)
	}

	var g domain.Registration
	if err := row.Scan(
		&g.ID, &g.EventID, &g.EventRoleID, &g.StudentID,
		&g.Description, &g.Status, &g.RejectReason, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotRegistered
		}
		return nil, fmt.Errorf("scan approved registration: %w", err)
	}
	return &g, nil
}

func (r *AttendanceRepository) Exists(ctx context.Context, registrationID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM attendances WHERE registration_id = $1)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, registrationID)
	if err != nil {
		return false, fmt.Errorf("check attendance: %w", err)
	}

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan attendance check: %w", err)
	}
	return exists, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, a *domain.Attendance) error {
	query := `INSERT INTO attendances (id, registration_id, attendance_window_id, created_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, a.ID, a.RegistrationID, a.AttendanceWindowID, a.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyAttended
		}
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

func (r *AttendanceRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.AttendedStudent, error) {
	query := `SELECT a.id, a.registration_id, a.attendance_window_id, a.created_at,
					 s.id, s.fullname, s.code, r.name
			  FROM attendances a
			  JOIN registrations g ON g.id = a.registration_id
			  JOIN students s ON s.id = g.student_id
			  JOIN event_roles r ON r.id = g.event_role_id
			  WHERE g.event_id = $1
			  ORDER BY a.created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendances by event: %w", err)
	}
	defer rows.Close()

	var res []*domain.AttendedStudent
	for rows.Next() {
		var as domain.AttendedStudent
		if err := rows.Scan(
			&as.Attendance.ID, &as.Attendance.RegistrationID,
			&as.Attendance.AttendanceWindowID, &as.Attendance.CreatedAt,
			&as.StudentID, &as.StudentName, &as.StudentCode, &as.RoleName,
		); err != nil {
			return nil, fmt.Errorf("scan attended student: %w", err)
		}
		res = append(res, &as)
	}
	return res, rows.Err()
}

func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID string) ([]*domain.AttendedEvent, error) {
	query := `SELECT a.id, a.registration_id, a.attendance_window_id, a.created_at,
					 e.id, e.name, e.introduction, e.description, e.image_url, e.start_at, e.end_at,
					 e.full_address, e.latitude, e.longitude, e.status, e.representative_org_id,
					 e.created_by, e.created_at, e.updated_at,
					 r.name
			  FROM attendances a
			  JOIN registrations g ON g.id = a.registration_id
			  JOIN events e ON e.id = g.event_id
			  JOIN event_roles r ON r.id = g.event_role_id
			  WHERE g.student_id = $1
			  ORDER BY a.created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("list attendances by student: %w", err)
	}
	defer rows.Close()

	var res []*domain.AttendedEvent
	for rows.Next() {
		var ae domain.AttendedEvent
		var repOrg sql.NullString
		if err := rows.Scan(
			&ae.Attendance.ID, &ae.Attendance.RegistrationID,
			&ae.Attendance.AttendanceWindowID, &ae.Attendance.CreatedAt,
			&ae.Event.ID, &ae.Event.Name, &ae.Event.Introduction, &ae.Event.Description,
			&ae.Event.ImageURL, &ae.Event.StartAt, &ae.Event.EndAt,
			&ae.Event.FullAddress, &ae.Event.Latitude, &ae.Event.Longitude,
			&ae.Event.Status, &repOrg, &ae.Event.CreatedBy,
			&ae.Event.CreatedAt, &ae.Event.UpdatedAt,
			&ae.RoleName,
		); err != nil {
			return nil, fmt.Errorf("scan attended event: %w", err)
		}
		ae.Event.RepresentativeOrgID = repOrg.String
		res = append(res, &ae)
	}
	return res, rows.Err()
}
