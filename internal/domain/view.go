package domain

// RegistrationWindowView decorates a registration window with its derived
// status for display.
type RegistrationWindowView struct {
	RegistrationWindow
	Status WindowStatus `json:"status"`
}

type AttendanceWindowView struct {
	AttendanceWindow
	Status WindowStatus `json:"status"`
}

// EventView is an event aggregate with every time-derived field already
// computed against a single clock reading.
type EventView struct {
	Details                  EventDetails             `json:"details"`
	CalculatedStatus         DerivedStatus            `json:"calculated_status"`
	RegistrationWindows      []RegistrationWindowView `json:"registration_windows"`
	AttendanceWindows        []AttendanceWindowView   `json:"attendance_windows"`
	HasOrganizedRegistration bool                     `json:"has_organized_registration"`
}
