package domain

import "errors"

var (
	ErrEventNotFound            = errors.New("event not found")
	ErrRoleNotFound             = errors.New("event role not found")
	ErrAttendanceWindowNotFound = errors.New("attendance window not found")
	ErrRegistrationNotFound     = errors.New("registration not found")
	ErrStudentNotFound          = errors.New("student not found")
	ErrProgramNotFound          = errors.New("education program not found")
	ErrProofNotFound            = errors.New("proof not found")
)

var (
	ErrCapacityExceeded     = errors.New("role capacity exceeded")
	ErrAlreadyRegistered    = errors.New("student already holds an approved registration for this event")
	ErrRegistrationClosed   = errors.New("registration window is closed")
	ErrAttendanceClosed     = errors.New("attendance window is closed")
	ErrAlreadyAttended      = errors.New("student already attended this event")
	ErrNotRegistered        = errors.New("student has no approved registration for this event")
	ErrOutOfRange           = errors.New("reported location is outside the allowed radius")
	ErrRegistrationResolved = errors.New("registration has already been resolved")
	ErrInvalidTransition    = errors.New("event status transition is not allowed")
)

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("actor lacks the required capability")
)
