package dto

type WindowRequest struct {
	StartAt string `json:"start_at" binding:"required"`
	EndAt   string `json:"end_at" binding:"required"`
}

type RoleRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Quantity      int     `json:"quantity" binding:"required,gt=0"`
	Score         float64 `json:"score" binding:"gte=0"`
	IsNeedApprove bool    `json:"is_need_approve"`
}

type OrganizationRequest struct {
	OrganizationID string `json:"organization_id" binding:"required,uuid"`
	Role           string `json:"role"`
}

type CreateEventRequest struct {
	Name                string                `json:"name" binding:"required"`
	Introduction        string                `json:"introduction"`
	Description         string                `json:"description"`
	ImageURL            string                `json:"image_url"`
	StartAt             string                `json:"start_at" binding:"required"`
	EndAt               string                `json:"end_at" binding:"required"`
	FullAddress         string                `json:"full_address"`
	Latitude            float64               `json:"latitude" binding:"latitude"`
	Longitude           float64               `json:"longitude" binding:"longitude"`
	Roles               []RoleRequest         `json:"roles" binding:"required,min=1,dive"`
	RegistrationWindows []WindowRequest       `json:"registration_windows" binding:"dive"`
	AttendanceWindows   []WindowRequest       `json:"attendance_windows" binding:"dive"`
	Organizations       []OrganizationRequest `json:"organizations" binding:"dive"`
	RepresentativeOrgID string                `json:"representative_organization_id"`
}

type RegisterRequest struct {
	EventRoleID string `json:"event_role_id" binding:"required,uuid"`
	Description string `json:"description"`
}

type AttendRequest struct {
	Code      string  `json:"code" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"latitude"`
	Longitude float64 `json:"longitude" binding:"longitude"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type InternalProofRequest struct {
	EventID      string `json:"event_id" binding:"required,uuid"`
	EventRoleID  string `json:"event_role_id" binding:"required,uuid"`
	AttendanceAt string `json:"attendance_at" binding:"required"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
}

type ExternalProofRequest struct {
	EventName        string  `json:"event_name" binding:"required"`
	OrganizationName string  `json:"organization_name" binding:"required"`
	Address          string  `json:"address"`
	StartAt          string  `json:"start_at" binding:"required"`
	EndAt            string  `json:"end_at" binding:"required"`
	Role             string  `json:"role" binding:"required"`
	Score            float64 `json:"score" binding:"gte=0"`
	AttendanceAt     string  `json:"attendance_at" binding:"required"`
	Description      string  `json:"description"`
	ImageURL         string  `json:"image_url"`
}

type SpecialProofRequest struct {
	Title       string  `json:"title" binding:"required"`
	StartAt     string  `json:"start_at" binding:"required"`
	EndAt       string  `json:"end_at" binding:"required"`
	Role        string  `json:"role" binding:"required"`
	Score       float64 `json:"score" binding:"gte=0"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}
