package domain

import "time"

type RegisterStatus string

const (
	RegisterStatusPending  RegisterStatus = "Pending"
	RegisterStatusApproved RegisterStatus = "Approved"
	RegisterStatusRejected RegisterStatus = "Rejected"
)

// Registration is a student's claim on one EventRole. EventID is denormalized
// from the role so the store can enforce at most one approved registration per
// (event, student) pair.
type Registration struct {
	ID           string         `json:"id"`
	EventID      string         `json:"event_id"`
	EventRoleID  string         `json:"event_role_id"`
	StudentID    string         `json:"student_id"`
	Description  string         `json:"description"`
	Status       RegisterStatus `json:"status"`
	RejectReason string         `json:"reject_reason,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type Attendance struct {
	ID                 string    `json:"id"`
	RegistrationID     string    `json:"registration_id"`
	AttendanceWindowID string    `json:"attendance_window_id"`
	CreatedAt          time.Time `json:"created_at"`
}

// RoleAdmission is everything the registration flow needs about a role in one
// load: the role, its parent event, the approved-registration count and the
// event's registration windows.
type RoleAdmission struct {
	Role          EventRole
	Event         Event
	ApprovedCount int
	Windows       []RegistrationWindow
}

// CheckInContext is everything the attendance flow needs once a window code
// has been resolved: the window itself, the parent event and all attendance
// windows belonging to it.
type CheckInContext struct {
	Window  AttendanceWindow
	Event   Event
	Windows []AttendanceWindow
}

type RegisterInput struct {
	EventRoleID string
	Description string
}

type AttendInput struct {
	Code      string
	Latitude  float64
	Longitude float64
}

// RegisteredStudent is a row of the per-event registration listing.
type RegisteredStudent struct {
	Registration Registration `json:"registration"`
	StudentName  string       `json:"student_name"`
	StudentCode  string       `json:"student_code"`
	RoleName     string       `json:"role_name"`
}

// AttendedStudent is a row of the per-event attendance listing.
type AttendedStudent struct {
	Attendance  Attendance `json:"attendance"`
	StudentID   string     `json:"student_id"`
	StudentName string     `json:"student_name"`
	StudentCode string     `json:"student_code"`
	RoleName    string     `json:"role_name"`
}

// AttendedEvent is a row of the per-student attendance history.
type AttendedEvent struct {
	Attendance Attendance `json:"attendance"`
	Event      Event      `json:"event"`
	RoleName   string     `json:"role_name"`
}
