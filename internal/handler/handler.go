package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/Tannang0903/campus-events/internal/handler/dto"
	"github.com/Tannang0903/campus-events/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, actor domain.Actor, input domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, id string, actor domain.Actor, input domain.CreateEventInput) (*domain.Event, error)
	Cancel(ctx context.Context, id string, actor domain.Actor) error
	Approve(ctx context.Context, id string, actor domain.Actor) error
	Reject(ctx context.Context, id string, actor domain.Actor) error
	GetByID(ctx context.Context, id string) (*domain.EventView, error)
	List(ctx context.Context) ([]*domain.EventView, error)
}

type RegistrationSvc interface {
	Register(ctx context.Context, studentID string, input domain.RegisterInput) (*domain.Registration, error)
	Approve(ctx context.Context, studentID, registrationID string) error
	Reject(ctx context.Context, studentID, registrationID, reason string) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.RegisteredStudent, error)
}

type AttendanceSvc interface {
	Attend(ctx context.Context, studentID string, input domain.AttendInput) (*domain.Attendance, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.AttendedStudent, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.AttendedEvent, error)
}

type ScoreSvc interface {
	EducationProgramResult(ctx context.Context, studentID string) (*domain.EducationProgramResult, error)
}

type ProofSvc interface {
	SubmitInternal(ctx context.Context, studentID string, input domain.InternalProofInput) (*domain.Proof, error)
	SubmitExternal(ctx context.Context, studentID string, input domain.ExternalProofInput) (*domain.Proof, error)
	SubmitSpecial(ctx context.Context, studentID string, input domain.SpecialProofInput) (*domain.Proof, error)
	EditInternal(ctx context.Context, id, studentID string, input domain.InternalProofInput) (*domain.Proof, error)
	EditExternal(ctx context.Context, id, studentID string, input domain.ExternalProofInput) (*domain.Proof, error)
	EditSpecial(ctx context.Context, id, studentID string, input domain.SpecialProofInput) (*domain.Proof, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id, reason string) error
	GetByID(ctx context.Context, id string) (*domain.Proof, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.Proof, error)
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	attendanceService   AttendanceSvc
	scoreService        ScoreSvc
	proofService        ProofSvc
}

func NewHandler(
	eventService EventSvc,
	registrationService RegistrationSvc,
	attendanceService AttendanceSvc,
	scoreService ScoreSvc,
	proofService ProofSvc,
) *Handler {
	return &Handler{
		eventService:        eventService,
		registrationService: registrationService,
		attendanceService:   attendanceService,
		scoreService:        scoreService,
		proofService:        proofService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	input, ok := h.bindEventInput(c)
	if !ok {
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), middleware.ActorFrom(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	input, ok := h.bindEventInput(c)
	if !ok {
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), id, middleware.ActorFrom(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) CancelEvent(c *ginext.Context) {
	h.transitionEvent(c, h.eventService.Cancel, "cancelled")
}

func (h *Handler) ApproveEvent(c *ginext.Context) {
	h.transitionEvent(c, h.eventService.Approve, "approved")
}

func (h *Handler) RejectEvent(c *ginext.Context) {
	h.transitionEvent(c, h.eventService.Reject, "rejected")
}

func (h *Handler) transitionEvent(c *ginext.Context, op func(context.Context, string, domain.Actor) error, status string) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := op(c.Request.Context(), id, middleware.ActorFrom(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": status})
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	view, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventViewResponse(view))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	views, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventViewResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, dto.ToEventViewResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

// Registrations

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	registration, err := h.registrationService.Register(c.Request.Context(), middleware.ActorFrom(c).ID, domain.RegisterInput{
		EventRoleID: req.EventRoleID,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(registration))
}

func (h *Handler) ApproveRegistration(c *ginext.Context) {
	studentID, registrationID, ok := h.registrationParams(c)
	if !ok {
		return
	}

	if err := h.registrationService.Approve(c.Request.Context(), studentID, registrationID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "approved"})
}

func (h *Handler) RejectRegistration(c *ginext.Context) {
	studentID, registrationID, ok := h.registrationParams(c)
	if !ok {
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.registrationService.Reject(c.Request.Context(), studentID, registrationID, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "rejected"})
}

func (h *Handler) registrationParams(c *ginext.Context) (studentID, registrationID string, ok bool) {
	studentID = c.Param("id")
	registrationID = c.Param("registerId")
	if _, err := uuid.Parse(studentID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid student id"})
		return "", "", false
	}
	if _, err := uuid.Parse(registrationID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return "", "", false
	}
	return studentID, registrationID, true
}

func (h *Handler) ListRegisteredStudents(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	registrations, err := h.registrationService.ListByEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RegisteredStudentResponse, 0, len(registrations))
	for _, r := range registrations {
		resp = append(resp, dto.ToRegisteredStudentResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Attendance

func (h *Handler) Attend(c *ginext.Context) {
	var req dto.AttendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	attendance, err := h.attendanceService.Attend(c.Request.Context(), middleware.ActorFrom(c).ID, domain.AttendInput{
		Code:      req.Code,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(attendance))
}

func (h *Handler) ListAttendedStudents(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	attendances, err := h.attendanceService.ListByEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttendedStudentResponse, 0, len(attendances))
	for _, a := range attendances {
		resp = append(resp, dto.ToAttendedStudentResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListStudentAttendance(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid student id"})
		return
	}

	attended, err := h.attendanceService.ListByStudent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttendedEventResponse, 0, len(attended))
	for _, a := range attended {
		resp = append(resp, dto.ToAttendedEventResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

// Scores

func (h *Handler) GetEducationProgram(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid student id"})
		return
	}

	result, err := h.scoreService.EducationProgramResult(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEducationProgramResultResponse(result))
}

// Proofs

func (h *Handler) SubmitInternalProof(c *ginext.Context) {
	input, ok := h.bindInternalProof(c)
	if !ok {
		return
	}

	proof, err := h.proofService.SubmitInternal(c.Request.Context(), middleware.ActorFrom(c).ID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProofResponse(proof))
}

func (h *Handler) SubmitExternalProof(c *ginext.Context) {
	input, ok := h.bindExternalProof(c)
	if !ok {
		return
	}

	proof, err := h.proofService.SubmitExternal(c.Request.Context(), middleware.ActorFrom(c).ID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProofResponse(proof))
}

func (h *Handler) SubmitSpecialProof(c *ginext.Context) {
	input, ok := h.bindSpecialProof(c)
	if !ok {
		return
	}

	proof, err := h.proofService.SubmitSpecial(c.Request.Context(), middleware.ActorFrom(c).ID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProofResponse(proof))
}

func (h *Handler) EditInternalProof(c *ginext.Context) {
	id, ok := h.proofID(c)
	if !ok {
		return
	}
	input, ok := h.bindInternalProof(c)
	if !ok {
		return
	}

	proof, err := h.proofService.EditInternal(c.Request.Context(), id, middleware.ActorFrom(c).ID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProofResponse(proof))
}

func (h *Handler) EditExternalProof(c *ginext.Context) {
	id, ok := h.proofID(c)
	if !ok {
		return
	}
	input, ok := h.bindExternalProof(c)
	if !ok {
		return
	}

	proof, err := h.proofService.EditExternal(c.Request.Context(), id, middleware.ActorFrom(c).ID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProofResponse(proof))
}

func (h *Handler) EditSpecialProof(c *ginext.Context) {
	id, ok := h.proofID(c)
	if !ok {
		return
	}
	input, ok := h.bindSpecialProof(c)
	if !ok {
		return
	}

	proof, err := h.proofService.EditSpecial(c.Request.Context(), id, middleware.ActorFrom(c).ID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProofResponse(proof))
}

func (h *Handler) GetProof(c *ginext.Context) {
	id, ok := h.proofID(c)
	if !ok {
		return
	}

	proof, err := h.proofService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProofResponse(proof))
}

func (h *Handler) ListMyProofs(c *ginext.Context) {
	proofs, err := h.proofService.ListByStudent(c.Request.Context(), middleware.ActorFrom(c).ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ProofResponse, 0, len(proofs))
	for _, p := range proofs {
		resp = append(resp, dto.ToProofResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteProof(c *ginext.Context) {
	id, ok := h.proofID(c)
	if !ok {
		return
	}

	if err := h.proofService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ApproveProof(c *ginext.Context) {
	id, ok := h.proofID(c)
	if !ok {
		return
	}

	if err := h.proofService.Approve(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "approved"})
}

func (h *Handler) RejectProof(c *ginext.Context) {
	id, ok := h.proofID(c)
	if !ok {
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.proofService.Reject(c.Request.Context(), id, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "rejected"})
}

func (h *Handler) proofID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid proof id"})
		return "", false
	}
	return id, true
}

// Binding helpers

func (h *Handler) bindEventInput(c *ginext.Context) (domain.CreateEventInput, bool) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.CreateEventInput{}, false
	}

	startAt, ok := h.parseTime(c, "start_at", req.StartAt)
	if !ok {
		return domain.CreateEventInput{}, false
	}
	endAt, ok := h.parseTime(c, "end_at", req.EndAt)
	if !ok {
		return domain.CreateEventInput{}, false
	}

	roles := make([]domain.RoleInput, 0, len(req.Roles))
	for _, r := range req.Roles {
		roles = append(roles, domain.RoleInput{
			Name:          r.Name,
			Description:   r.Description,
			Quantity:      r.Quantity,
			Score:         r.Score,
			IsNeedApprove: r.IsNeedApprove,
		})
	}

	regWindows, ok := h.parseWindows(c, req.RegistrationWindows)
	if !ok {
		return domain.CreateEventInput{}, false
	}
	attWindows, ok := h.parseWindows(c, req.AttendanceWindows)
	if !ok {
		return domain.CreateEventInput{}, false
	}

	orgs := make([]domain.OrganizationInput, 0, len(req.Organizations))
	for _, o := range req.Organizations {
		orgs = append(orgs, domain.OrganizationInput{
			OrganizationID: o.OrganizationID,
			Role:           o.Role,
		})
	}

	return domain.CreateEventInput{
		Name:                req.Name,
		Introduction:        req.Introduction,
		Description:         req.Description,
		ImageURL:            req.ImageURL,
		StartAt:             startAt,
		EndAt:               endAt,
		FullAddress:         req.FullAddress,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		Roles:               roles,
		RegistrationWindows: regWindows,
		AttendanceWindows:   attWindows,
		Organizations:       orgs,
		RepresentativeOrgID: req.RepresentativeOrgID,
	}, true
}

func (h *Handler) bindInternalProof(c *ginext.Context) (domain.InternalProofInput, bool) {
	var req dto.InternalProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.InternalProofInput{}, false
	}

	attendanceAt, ok := h.parseTime(c, "attendance_at", req.AttendanceAt)
	if !ok {
		return domain.InternalProofInput{}, false
	}

	return domain.InternalProofInput{
		EventID:      req.EventID,
		EventRoleID:  req.EventRoleID,
		AttendanceAt: attendanceAt,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
	}, true
}

func (h *Handler) bindExternalProof(c *ginext.Context) (domain.ExternalProofInput, bool) {
	var req dto.ExternalProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.ExternalProofInput{}, false
	}

	startAt, ok := h.parseTime(c, "start_at", req.StartAt)
	if !ok {
		return domain.ExternalProofInput{}, false
	}
	endAt, ok := h.parseTime(c, "end_at", req.EndAt)
	if !ok {
		return domain.ExternalProofInput{}, false
	}
	attendanceAt, ok := h.parseTime(c, "attendance_at", req.AttendanceAt)
	if !ok {
		return domain.ExternalProofInput{}, false
	}

	return domain.ExternalProofInput{
		EventName:        req.EventName,
		OrganizationName: req.OrganizationName,
		Address:          req.Address,
		StartAt:          startAt,
		EndAt:            endAt,
		Role:             req.Role,
		Score:            req.Score,
		AttendanceAt:     attendanceAt,
		Description:      req.Description,
		ImageURL:         req.ImageURL,
	}, true
}

func (h *Handler) bindSpecialProof(c *ginext.Context) (domain.SpecialProofInput, bool) {
	var req dto.SpecialProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.SpecialProofInput{}, false
	}

	startAt, ok := h.parseTime(c, "start_at", req.StartAt)
	if !ok {
		return domain.SpecialProofInput{}, false
	}
	endAt, ok := h.parseTime(c, "end_at", req.EndAt)
	if !ok {
		return domain.SpecialProofInput{}, false
	}

	return domain.SpecialProofInput{
		Title:       req.Title,
		StartAt:     startAt,
		EndAt:       endAt,
		Role:        req.Role,
		Score:       req.Score,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}, true
}

func (h *Handler) parseTime(c *ginext.Context, field, value string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid " + field + " format, expected RFC3339",
		})
		return time.Time{}, false
	}
	return t, true
}

func (h *Handler) parseWindows(c *ginext.Context, windows []dto.WindowRequest) ([]domain.WindowInput, bool) {
	res := make([]domain.WindowInput, 0, len(windows))
	for _, w := range windows {
		startAt, ok := h.parseTime(c, "start_at", w.StartAt)
		if !ok {
			return nil, false
		}
		endAt, ok := h.parseTime(c, "end_at", w.EndAt)
		if !ok {
			return nil, false
		}
		res = append(res, domain.WindowInput{StartAt: startAt, EndAt: endAt})
	}
	return res, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrRoleNotFound),
		errors.Is(err, domain.ErrAttendanceWindowNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrStudentNotFound),
		errors.Is(err, domain.ErrProgramNotFound),
		errors.Is(err, domain.ErrProofNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Code: "not_found"})

	case errors.Is(err, domain.ErrCapacityExceeded):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "capacity_exceeded"})
	case errors.Is(err, domain.ErrAlreadyRegistered):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "already_registered"})
	case errors.Is(err, domain.ErrRegistrationClosed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "registration_closed"})
	case errors.Is(err, domain.ErrAttendanceClosed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "attendance_closed"})
	case errors.Is(err, domain.ErrAlreadyAttended):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "already_attended"})
	case errors.Is(err, domain.ErrNotRegistered):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "not_registered"})
	case errors.Is(err, domain.ErrOutOfRange):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "out_of_range"})
	case errors.Is(err, domain.ErrRegistrationResolved):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "registration_resolved"})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "invalid_transition"})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation"})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error(), Code: "forbidden"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
