package dto

import (
	"time"

	"github.com/Tannang0903/campus-events/internal/domain"
)

type EventResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Introduction        string  `json:"introduction"`
	Description         string  `json:"description"`
	ImageURL            string  `json:"image_url"`
	StartAt             string  `json:"start_at"`
	EndAt               string  `json:"end_at"`
	FullAddress         string  `json:"full_address"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	Status              string  `json:"status"`
	RepresentativeOrgID string  `json:"representative_organization_id,omitempty"`
	CreatedBy           string  `json:"created_by"`
	CreatedAt           string  `json:"created_at"`
}

type RoleResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Quantity           int     `json:"quantity"`
	Score              float64 `json:"score"`
	IsNeedApprove      bool    `json:"is_need_approve"`
	Registered         int     `json:"registered"`
	ApprovedRegistered int     `json:"approved_registered"`
}

type WindowResponse struct {
	ID      string `json:"id"`
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
	Status  string `json:"status"`
}

type AttendanceWindowResponse struct {
	WindowResponse
	Code      string `json:"code"`
	QRPayload string `json:"qr_payload"`
}

type OrganizationInEventResponse struct {
	OrganizationID string `json:"organization_id"`
	Role           string `json:"role"`
}

type EventViewResponse struct {
	Event                    EventResponse                 `json:"event"`
	CalculatedStatus         string                        `json:"calculated_status"`
	Capacity                 int                           `json:"capacity"`
	Registered               int                           `json:"registered"`
	ApprovedRegistered       int                           `json:"approved_registered"`
	Attended                 int                           `json:"attended"`
	Roles                    []RoleResponse                `json:"roles"`
	RegistrationWindows      []WindowResponse              `json:"registration_windows"`
	AttendanceWindows        []AttendanceWindowResponse    `json:"attendance_windows"`
	Organizations            []OrganizationInEventResponse `json:"organizations"`
	HasOrganizedRegistration bool                          `json:"has_organized_registration"`
}

type RegistrationResponse struct {
	ID           string `json:"id"`
	EventID      string `json:"event_id"`
	EventRoleID  string `json:"event_role_id"`
	StudentID    string `json:"student_id"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status"`
	RejectReason string `json:"reject_reason,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type RegisteredStudentResponse struct {
	RegistrationResponse
	StudentName string `json:"student_name"`
	StudentCode string `json:"student_code"`
	RoleName    string `json:"role_name"`
}

type AttendanceResponse struct {
	ID                 string `json:"id"`
	RegistrationID     string `json:"registration_id"`
	AttendanceWindowID string `json:"attendance_window_id"`
	CreatedAt          string `json:"created_at"`
}

type AttendedStudentResponse struct {
	Attendance  AttendanceResponse `json:"attendance"`
	StudentID   string             `json:"student_id"`
	StudentName string             `json:"student_name"`
	StudentCode string             `json:"student_code"`
	RoleName    string             `json:"role_name"`
}

type AttendedEventResponse struct {
	Attendance AttendanceResponse `json:"attendance"`
	Event      EventResponse      `json:"event"`
	RoleName   string             `json:"role_name"`
}

type ProofResponse struct {
	ID           string  `json:"id"`
	StudentID    string  `json:"student_id"`
	Kind         string  `json:"kind"`
	Status       string  `json:"status"`
	Description  string  `json:"description,omitempty"`
	ImageURL     string  `json:"image_url,omitempty"`
	RejectReason string  `json:"reject_reason,omitempty"`
	AttendanceAt string  `json:"attendance_at,omitempty"`
	Score        float64 `json:"score"`
	CreatedAt    string  `json:"created_at"`

	Internal *domain.InternalProof `json:"internal,omitempty"`
	External *domain.ExternalProof `json:"external,omitempty"`
	Special  *domain.SpecialProof  `json:"special,omitempty"`
}

type ScoreBreakdownResponse struct {
	EventScore             float64 `json:"event_score"`
	ProofScore             float64 `json:"proof_score"`
	Total                  float64 `json:"total"`
	NumberOfEvents         int     `json:"number_of_events"`
	NumberOfProofs         int     `json:"number_of_proofs"`
	NumberOfApprovedProofs int     `json:"number_of_approved_proofs"`
}

type EducationProgramResultResponse struct {
	ProgramID             string                 `json:"program_id"`
	ProgramName           string                 `json:"program_name"`
	RequiredActivityScore float64                `json:"required_activity_score"`
	Breakdown             ScoreBreakdownResponse `json:"breakdown"`
	Completed             bool                   `json:"completed"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                  e.ID,
		Name:                e.Name,
		Introduction:        e.Introduction,
		Description:         e.Description,
		ImageURL:            e.ImageURL,
		StartAt:             e.StartAt.Format(time.RFC3339),
		EndAt:               e.EndAt.Format(time.RFC3339),
		FullAddress:         e.FullAddress,
		Latitude:            e.Latitude,
		Longitude:           e.Longitude,
		Status:              string(e.Status),
		RepresentativeOrgID: e.RepresentativeOrgID,
		CreatedBy:           e.CreatedBy,
		CreatedAt:           e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventViewResponse(v *domain.EventView) EventViewResponse {
	roles := make([]RoleResponse, 0, len(v.Details.Roles))
	for _, r := range v.Details.Roles {
		roles = append(roles, RoleResponse{
			ID:                 r.ID,
			Name:               r.Name,
			Description:        r.Description,
			Quantity:           r.Quantity,
			Score:              r.Score,
			IsNeedApprove:      r.IsNeedApprove,
			Registered:         r.Registered,
			ApprovedRegistered: r.ApprovedRegistered,
		})
	}

	regWindows := make([]WindowResponse, 0, len(v.RegistrationWindows))
	for _, w := range v.RegistrationWindows {
		regWindows = append(regWindows, WindowResponse{
			ID:      w.ID,
			StartAt: w.StartAt.Format(time.RFC3339),
			EndAt:   w.EndAt.Format(time.RFC3339),
			Status:  string(w.Status),
		})
	}

	attWindows := make([]AttendanceWindowResponse, 0, len(v.AttendanceWindows))
	for _, w := range v.AttendanceWindows {
		attWindows = append(attWindows, AttendanceWindowResponse{
			WindowResponse: WindowResponse{
				ID:      w.ID,
				StartAt: w.StartAt.Format(time.RFC3339),
				EndAt:   w.EndAt.Format(time.RFC3339),
				Status:  string(w.Status),
			},
			Code:      w.Code,
			QRPayload: w.QRPayload,
		})
	}

	orgs := make([]OrganizationInEventResponse, 0, len(v.Details.Organizations))
	for _, o := range v.Details.Organizations {
		orgs = append(orgs, OrganizationInEventResponse{
			OrganizationID: o.OrganizationID,
			Role:           o.Role,
		})
	}

	return EventViewResponse{
		Event:                    ToEventResponse(&v.Details.Event),
		CalculatedStatus:         string(v.CalculatedStatus),
		Capacity:                 v.Details.Capacity(),
		Registered:               v.Details.Registered(),
		ApprovedRegistered:       v.Details.ApprovedRegistered(),
		Attended:                 v.Details.Attended,
		Roles:                    roles,
		RegistrationWindows:      regWindows,
		AttendanceWindows:        attWindows,
		Organizations:            orgs,
		HasOrganizedRegistration: v.HasOrganizedRegistration,
	}
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:           r.ID,
		EventID:      r.EventID,
		EventRoleID:  r.EventRoleID,
		StudentID:    r.StudentID,
		Description:  r.Description,
		Status:       string(r.Status),
		RejectReason: r.RejectReason,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}

func ToRegisteredStudentResponse(rs *domain.RegisteredStudent) RegisteredStudentResponse {
	return RegisteredStudentResponse{
		RegistrationResponse: ToRegistrationResponse(&rs.Registration),
		StudentName:          rs.StudentName,
		StudentCode:          rs.StudentCode,
		RoleName:             rs.RoleName,
	}
}

func ToAttendanceResponse(a *domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                 a.ID,
		RegistrationID:     a.RegistrationID,
		AttendanceWindowID: a.AttendanceWindowID,
		CreatedAt:          a.CreatedAt.Format(time.RFC3339),
	}
}

func ToAttendedStudentResponse(as *domain.AttendedStudent) AttendedStudentResponse {
	return AttendedStudentResponse{
		Attendance:  ToAttendanceResponse(&as.Attendance),
		StudentID:   as.StudentID,
		StudentName: as.StudentName,
		StudentCode: as.StudentCode,
		RoleName:    as.RoleName,
	}
}

func ToAttendedEventResponse(ae *domain.AttendedEvent) AttendedEventResponse {
	return AttendedEventResponse{
		Attendance: ToAttendanceResponse(&ae.Attendance),
		Event:      ToEventResponse(&ae.Event),
		RoleName:   ae.RoleName,
	}
}

func ToProofResponse(p *domain.Proof) ProofResponse {
	resp := ProofResponse{
		ID:           p.ID,
		StudentID:    p.StudentID,
		Kind:         string(p.Kind),
		Status:       string(p.Status),
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		RejectReason: p.RejectReason,
		Score:        p.Score(),
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		Internal:     p.Internal,
		External:     p.External,
		Special:      p.Special,
	}
	if !p.AttendanceAt.IsZero() {
		resp.AttendanceAt = p.AttendanceAt.Format(time.RFC3339)
	}
	return resp
}

func ToScoreBreakdownResponse(b *domain.ScoreBreakdown) ScoreBreakdownResponse {
	return ScoreBreakdownResponse{
		EventScore:             b.EventScore,
		ProofScore:             b.ProofScore,
		Total:                  b.Total(),
		NumberOfEvents:         b.NumberOfEvents,
		NumberOfProofs:         b.NumberOfProofs,
		NumberOfApprovedProofs: b.NumberOfApprovedProofs,
	}
}

func ToEducationProgramResultResponse(r *domain.EducationProgramResult) EducationProgramResultResponse {
	return EducationProgramResultResponse{
		ProgramID:             r.Program.ID,
		ProgramName:           r.Program.Name,
		RequiredActivityScore: r.Program.RequiredActivityScore,
		Breakdown:             ToScoreBreakdownResponse(&r.Breakdown),
		Completed:             r.Completed,
	}
}
