package domain

import "time"

type EventStatus string

const (
	EventStatusPending   EventStatus = "Pending"
	EventStatusApproved  EventStatus = "Approved"
	EventStatusRejected  EventStatus = "Rejected"
	EventStatusCancelled EventStatus = "Cancelled"
)

// DerivedStatus is the time-dependent lifecycle label computed from the stored
// status, the clock and the event's sub-windows. It is never persisted.
type DerivedStatus string

const (
	DerivedPending            DerivedStatus = "Pending"
	DerivedApproved           DerivedStatus = "Approved"
	DerivedRejected           DerivedStatus = "Rejected"
	DerivedCancelled          DerivedStatus = "Cancelled"
	DerivedUpcoming           DerivedStatus = "Upcoming"
	DerivedRegistration       DerivedStatus = "Registration"
	DerivedClosedRegistration DerivedStatus = "ClosedRegistration"
	DerivedHappening          DerivedStatus = "Happening"
	DerivedAttendance         DerivedStatus = "Attendance"
	DerivedDone               DerivedStatus = "Done"
	DerivedExpired            DerivedStatus = "Expired"
)

// WindowStatus classifies a single sub-window relative to the clock.
type WindowStatus string

const (
	WindowUpcoming  WindowStatus = "Upcoming"
	WindowHappening WindowStatus = "Happening"
	WindowDone      WindowStatus = "Done"
)

type Event struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Introduction        string      `json:"introduction"`
	Description         string      `json:"description"`
	ImageURL            string      `json:"image_url"`
	StartAt             time.Time   `json:"start_at"`
	EndAt               time.Time   `json:"end_at"`
	FullAddress         string      `json:"full_address"`
	Latitude            float64     `json:"latitude"`
	Longitude           float64     `json:"longitude"`
	Status              EventStatus `json:"status"`
	RepresentativeOrgID string      `json:"representative_organization_id"`
	CreatedBy           string      `json:"created_by"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

type EventRole struct {
	ID            string  `json:"id"`
	EventID       string  `json:"event_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Quantity      int     `json:"quantity"`
	Score         float64 `json:"score"`
	IsNeedApprove bool    `json:"is_need_approve"`
}

type RegistrationWindow struct {
	ID      string    `json:"id"`
	EventID string    `json:"event_id"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

// AttendanceWindow carries a unique check-in code and the QR payload derived
// from it at creation time.
type AttendanceWindow struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Code      string    `json:"code"`
	QRPayload string    `json:"qr_payload"`
}

type OrganizationInEvent struct {
	ID             string `json:"id"`
	EventID        string `json:"event_id"`
	OrganizationID string `json:"organization_id"`
	Role           string `json:"role"`
}

// RoleStats is an EventRole together with its registration counters, used by
// the event detail view.
type RoleStats struct {
	EventRole
	Registered         int `json:"registered"`
	ApprovedRegistered int `json:"approved_registered"`
}

// EventDetails is the full aggregate served by the event read views.
type EventDetails struct {
	Event               Event
	Roles               []RoleStats
	RegistrationWindows []RegistrationWindow
	AttendanceWindows   []AttendanceWindow
	Organizations       []OrganizationInEvent
	Attended            int
}

func (d *EventDetails) Capacity() int {
	total := 0
	for _, r := range d.Roles {
		total += r.Quantity
	}
	return total
}

func (d *EventDetails) Registered() int {
	total := 0
	for _, r := range d.Roles {
		total += r.Registered
	}
	return total
}

func (d *EventDetails) ApprovedRegistered() int {
	total := 0
	for _, r := range d.Roles {
		total += r.ApprovedRegistered
	}
	return total
}

type WindowInput struct {
	StartAt time.Time
	EndAt   time.Time
}

type RoleInput struct {
	Name          string
	Description   string
	Quantity      int
	Score         float64
	IsNeedApprove bool
}

type OrganizationInput struct {
	OrganizationID string
	Role           string
}

type CreateEventInput struct {
	Name                string
	Introduction        string
	Description         string
	ImageURL            string
	StartAt             time.Time
	EndAt               time.Time
	FullAddress         string
	Latitude            float64
	Longitude           float64
	Roles               []RoleInput
	RegistrationWindows []WindowInput
	AttendanceWindows   []WindowInput
	Organizations       []OrganizationInput
	RepresentativeOrgID string
}
