package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/Tannang0903/campus-events/internal/handler/dto"
	hmocks "github.com/Tannang0903/campus-events/internal/handler/mocks"
)

var testActor = domain.Actor{
	ID:    "6f1b24fd-9c3a-4f5e-8b15-2d8e46a9c310",
	Roles: []string{domain.RoleStudent},
}

type testMocks struct {
	eventSvc        *hmocks.MockEventSvc
	registrationSvc *hmocks.MockRegistrationSvc
	attendanceSvc   *hmocks.MockAttendanceSvc
	scoreSvc        *hmocks.MockScoreSvc
	proofSvc        *hmocks.MockProofSvc
}

func setupRouter(t *testing.T) (testMocks, http.Handler) {
	t.Helper()

	m := testMocks{
		eventSvc:        hmocks.NewMockEventSvc(t),
		registrationSvc: hmocks.NewMockRegistrationSvc(t),
		attendanceSvc:   hmocks.NewMockAttendanceSvc(t),
		scoreSvc:        hmocks.NewMockScoreSvc(t),
		proofSvc:        hmocks.NewMockProofSvc(t),
	}

	h := NewHandler(m.eventSvc, m.registrationSvc, m.attendanceSvc, m.scoreSvc, m.proofSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	api.Use(func(c *ginext.Context) {
		c.Set("actor", testActor)
		c.Next()
	})
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.POST("/events/:id/cancel", h.CancelEvent)
		api.POST("/events/:id/approve", h.ApproveEvent)
		api.POST("/events/:id/reject", h.RejectEvent)

		api.POST("/events/register", h.Register)
		api.POST("/events/event-attendances", h.Attend)
		api.GET("/events/:id/registered-students", h.ListRegisteredStudents)
		api.GET("/events/:id/attendance-students", h.ListAttendedStudents)

		api.GET("/students/:id/attendance-events", h.ListStudentAttendance)
		api.POST("/students/:id/event-registers/:registerId/approve", h.ApproveRegistration)
		api.POST("/students/:id/event-registers/:registerId/reject", h.RejectRegistration)
		api.GET("/students/:id/education-program", h.GetEducationProgram)

		api.POST("/proofs/internal", h.SubmitInternalProof)
		api.POST("/proofs/external", h.SubmitExternalProof)
		api.POST("/proofs/special", h.SubmitSpecialProof)
		api.PUT("/proofs/:id/external", h.EditExternalProof)
		api.GET("/proofs/my", h.ListMyProofs)
		api.GET("/proofs/:id", h.GetProof)
		api.DELETE("/proofs/:id", h.DeleteProof)
		api.POST("/proofs/:id/approve", h.ApproveProof)
		api.POST("/proofs/:id/reject", h.RejectProof)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func validCreateEventRequest() dto.CreateEventRequest {
	start := time.Date(2026, 10, 10, 8, 0, 0, 0, time.UTC)
	return dto.CreateEventRequest{
		Name:      "Blood Donation Day",
		StartAt:   start.Format(time.RFC3339),
		EndAt:     start.Add(4 * time.Hour).Format(time.RFC3339),
		Latitude:  16.074160,
		Longitude: 108.150782,
		Roles: []dto.RoleRequest{
			{Name: "Volunteer", Quantity: 40, Score: 2.5},
		},
		RegistrationWindows: []dto.WindowRequest{
			{
				StartAt: start.Add(-72 * time.Hour).Format(time.RFC3339),
				EndAt:   start.Add(-24 * time.Hour).Format(time.RFC3339),
			},
		},
		AttendanceWindows: []dto.WindowRequest{
			{
				StartAt: start.Format(time.RFC3339),
				EndAt:   start.Add(time.Hour).Format(time.RFC3339),
			},
		},
	}
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := &domain.Event{
		ID:     uuid.New().String(),
		Name:   "Blood Donation Day",
		Status: domain.EventStatusApproved,
	}
	m.eventSvc.EXPECT().Create(mock.Anything, testActor, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", validCreateEventRequest())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Blood Donation Day", resp.Name)
}

func TestHandler_CreateEvent_NoRoles(t *testing.T) {
	_, r := setupRouter(t)

	req := validCreateEventRequest()
	req.Roles = nil

	w := doJSON(t, r, http.MethodPost, "/api/events", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_BadTimestamp(t *testing.T) {
	_, r := setupRouter(t)

	req := validCreateEventRequest()
	req.StartAt = "october 10th"

	w := doJSON(t, r, http.MethodPost, "/api/events", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "start_at")
}

func TestHandler_CreateEvent_ValidationError(t *testing.T) {
	m, r := setupRouter(t)

	m.eventSvc.EXPECT().Create(mock.Anything, testActor, mock.Anything).
		Return(nil, domain.ErrValidation)

	w := doJSON(t, r, http.MethodPost, "/api/events", validCreateEventRequest())

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation", resp.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.eventSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Code)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	m, r := setupRouter(t)

	views := []*domain.EventView{
		{Details: domain.EventDetails{Event: domain.Event{ID: uuid.New().String(), Name: "Spring Fair"}}},
		{Details: domain.EventDetails{Event: domain.Event{ID: uuid.New().String(), Name: "Career Talk"}}},
	}
	m.eventSvc.EXPECT().List(mock.Anything).Return(views, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventViewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Spring Fair", resp[0].Event.Name)
}

func TestHandler_ApproveEvent_InvalidTransition(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.eventSvc.EXPECT().Approve(mock.Anything, id, testActor).
		Return(domain.ErrInvalidTransition)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+id+"/approve", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelEvent_Forbidden(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.eventSvc.EXPECT().Cancel(mock.Anything, id, testActor).
		Return(domain.ErrForbidden)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+id+"/cancel", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Registrations ---

func TestHandler_Register_Success(t *testing.T) {
	m, r := setupRouter(t)

	roleID := uuid.New().String()
	registration := &domain.Registration{
		ID:          uuid.New().String(),
		EventRoleID: roleID,
		StudentID:   testActor.ID,
		Status:      domain.RegisterStatusApproved,
	}
	m.registrationSvc.EXPECT().
		Register(mock.Anything, testActor.ID, domain.RegisterInput{EventRoleID: roleID}).
		Return(registration, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/register", dto.RegisterRequest{EventRoleID: roleID})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.RegisterStatusApproved), resp.Status)
}

func TestHandler_Register_CapacityExceeded(t *testing.T) {
	m, r := setupRouter(t)

	m.registrationSvc.EXPECT().Register(mock.Anything, testActor.ID, mock.Anything).
		Return(nil, domain.ErrCapacityExceeded)

	w := doJSON(t, r, http.MethodPost, "/api/events/register", dto.RegisterRequest{
		EventRoleID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "capacity_exceeded", resp.Code)
}

func TestHandler_ApproveRegistration_Success(t *testing.T) {
	m, r := setupRouter(t)

	studentID := uuid.New().String()
	registrationID := uuid.New().String()
	m.registrationSvc.EXPECT().Approve(mock.Anything, studentID, registrationID).Return(nil)

	path := "/api/students/" + studentID + "/event-registers/" + registrationID + "/approve"
	w := doJSON(t, r, http.MethodPost, path, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RejectRegistration_MissingReason(t *testing.T) {
	_, r := setupRouter(t)

	path := "/api/students/" + uuid.New().String() + "/event-registers/" + uuid.New().String() + "/reject"
	w := doJSON(t, r, http.MethodPost, path, map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListRegisteredStudents_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	rows := []*domain.RegisteredStudent{
		{
			Registration: domain.Registration{
				ID:      uuid.New().String(),
				EventID: eventID,
				Status:  domain.RegisterStatusApproved,
			},
			StudentName: "Nguyen Van A",
			StudentCode: "102210001",
			RoleName:    "Volunteer",
		},
	}
	m.registrationSvc.EXPECT().ListByEvent(mock.Anything, eventID).Return(rows, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/registered-students", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RegisteredStudentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Nguyen Van A", resp[0].StudentName)
	assert.Equal(t, "Volunteer", resp[0].RoleName)
}

// --- Attendance ---

func TestHandler_Attend_Success(t *testing.T) {
	m, r := setupRouter(t)

	input := domain.AttendInput{Code: "A1B2C3", Latitude: 16.074160, Longitude: 108.150782}
	attendance := &domain.Attendance{
		ID:             uuid.New().String(),
		RegistrationID: uuid.New().String(),
	}
	m.attendanceSvc.EXPECT().Attend(mock.Anything, testActor.ID, input).Return(attendance, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/event-attendances", dto.AttendRequest{
		Code:      "A1B2C3",
		Latitude:  16.074160,
		Longitude: 108.150782,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AttendanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, attendance.ID, resp.ID)
}

func TestHandler_Attend_OutOfRange(t *testing.T) {
	m, r := setupRouter(t)

	m.attendanceSvc.EXPECT().Attend(mock.Anything, testActor.ID, mock.Anything).
		Return(nil, domain.ErrOutOfRange)

	w := doJSON(t, r, http.MethodPost, "/api/events/event-attendances", dto.AttendRequest{
		Code:      "A1B2C3",
		Latitude:  16.1,
		Longitude: 108.2,
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "out_of_range", resp.Code)
}

func TestHandler_ListStudentAttendance_Success(t *testing.T) {
	m, r := setupRouter(t)

	studentID := uuid.New().String()
	rows := []*domain.AttendedEvent{
		{
			Attendance: domain.Attendance{ID: uuid.New().String()},
			Event:      domain.Event{ID: uuid.New().String(), Name: "Open Day"},
			RoleName:   "Participant",
		},
	}
	m.attendanceSvc.EXPECT().ListByStudent(mock.Anything, studentID).Return(rows, nil)

	w := doJSON(t, r, http.MethodGet, "/api/students/"+studentID+"/attendance-events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AttendedEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Open Day", resp[0].Event.Name)
}

// --- Scores ---

func TestHandler_GetEducationProgram_Success(t *testing.T) {
	m, r := setupRouter(t)

	studentID := uuid.New().String()
	result := &domain.EducationProgramResult{
		Program: domain.EducationProgram{
			ID:                    uuid.New().String(),
			Name:                  "Citizenship Program",
			RequiredActivityScore: 10,
		},
		Breakdown: domain.ScoreBreakdown{EventScore: 6, ProofScore: 4, NumberOfEvents: 2},
		Total:     10,
		Completed: true,
	}
	m.scoreSvc.EXPECT().EducationProgramResult(mock.Anything, studentID).Return(result, nil)

	w := doJSON(t, r, http.MethodGet, "/api/students/"+studentID+"/education-program", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EducationProgramResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Completed)
	assert.InDelta(t, 10.0, resp.Breakdown.Total, 1e-9)
}

func TestHandler_GetEducationProgram_ProgramMissing(t *testing.T) {
	m, r := setupRouter(t)

	studentID := uuid.New().String()
	m.scoreSvc.EXPECT().EducationProgramResult(mock.Anything, studentID).
		Return(nil, domain.ErrProgramNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/students/"+studentID+"/education-program", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Proofs ---

func TestHandler_SubmitExternalProof_Success(t *testing.T) {
	m, r := setupRouter(t)

	start := time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)
	proof := &domain.Proof{
		ID:        uuid.New().String(),
		StudentID: testActor.ID,
		Kind:      domain.ProofKindExternal,
		Status:    domain.ProofStatusPending,
		External: &domain.ExternalProof{
			EventName: "City Marathon",
			Role:      "Volunteer",
			Score:     5,
		},
	}
	m.proofSvc.EXPECT().SubmitExternal(mock.Anything, testActor.ID, mock.Anything).Return(proof, nil)

	w := doJSON(t, r, http.MethodPost, "/api/proofs/external", dto.ExternalProofRequest{
		EventName:        "City Marathon",
		OrganizationName: "City Youth Union",
		StartAt:          start.Format(time.RFC3339),
		EndAt:            start.Add(6 * time.Hour).Format(time.RFC3339),
		Role:             "Volunteer",
		Score:            5,
		AttendanceAt:     start.Add(time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ProofResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.ProofKindExternal), resp.Kind)
	assert.InDelta(t, 5.0, resp.Score, 1e-9)
}

func TestHandler_SubmitInternalProof_BadTimestamp(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/proofs/internal", dto.InternalProofRequest{
		EventID:      uuid.New().String(),
		EventRoleID:  uuid.New().String(),
		AttendanceAt: "yesterday",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_EditExternalProof_WrongStudent(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.proofSvc.EXPECT().EditExternal(mock.Anything, id, testActor.ID, mock.Anything).
		Return(nil, domain.ErrProofNotFound)

	start := time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)
	w := doJSON(t, r, http.MethodPut, "/api/proofs/"+id+"/external", dto.ExternalProofRequest{
		EventName:        "City Marathon",
		OrganizationName: "City Youth Union",
		StartAt:          start.Format(time.RFC3339),
		EndAt:            start.Add(6 * time.Hour).Format(time.RFC3339),
		Role:             "Volunteer",
		Score:            5,
		AttendanceAt:     start.Add(time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListMyProofs_Success(t *testing.T) {
	m, r := setupRouter(t)

	proofs := []*domain.Proof{
		{ID: uuid.New().String(), StudentID: testActor.ID, Kind: domain.ProofKindSpecial},
	}
	m.proofSvc.EXPECT().ListByStudent(mock.Anything, testActor.ID).Return(proofs, nil)

	w := doJSON(t, r, http.MethodGet, "/api/proofs/my", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ProofResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
}

func TestHandler_DeleteProof_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.proofSvc.EXPECT().Delete(mock.Anything, id).Return(domain.ErrProofNotFound)

	w := doJSON(t, r, http.MethodDelete, "/api/proofs/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RejectProof_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.proofSvc.EXPECT().Reject(mock.Anything, id, "illegible photo").Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/proofs/"+id+"/reject", dto.RejectRequest{
		Reason: "illegible photo",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_InternalErrorIsMasked(t *testing.T) {
	m, r := setupRouter(t)

	m.eventSvc.EXPECT().List(mock.Anything).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
