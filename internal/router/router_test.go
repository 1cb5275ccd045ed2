package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

const (
	adminID   = "0d4e3f9b-6a1c-4f2e-9b7d-5c8a2e1f6d30"
	orgID     = "7b2c9e41-3f8d-4a6b-8c1e-9d5f2a7b4e18"
	studentID = "6f1b24fd-9c3a-4f5e-8b15-2d8e46a9c310"
	otherID   = "a3e8d1c7-5b29-4f64-9e0a-1c7d3b8f5a42"
)

type stubHandler struct{}

func (stubHandler) ok(c *ginext.Context) { c.JSON(http.StatusOK, ginext.H{"status": "ok"}) }

func (s stubHandler) CreateEvent(c *ginext.Context)            { s.ok(c) }
func (s stubHandler) UpdateEvent(c *ginext.Context)            { s.ok(c) }
func (s stubHandler) CancelEvent(c *ginext.Context)            { s.ok(c) }
func (s stubHandler) ApproveEvent(c *ginext.Context)           { s.ok(c) }
func (s stubHandler) RejectEvent(c *ginext.Context)            { s.ok(c) }
func (s stubHandler) GetEvent(c *ginext.Context)               { s.ok(c) }
func (s stubHandler) ListEvents(c *ginext.Context)             { s.ok(c) }
func (s stubHandler) Register(c *ginext.Context)               { s.ok(c) }
func (s stubHandler) ApproveRegistration(c *ginext.Context)    { s.ok(c) }
func (s stubHandler) RejectRegistration(c *ginext.Context)     { s.ok(c) }
func (s stubHandler) ListRegisteredStudents(c *ginext.Context) { s.ok(c) }
func (s stubHandler) Attend(c *ginext.Context)                 { s.ok(c) }
func (s stubHandler) ListAttendedStudents(c *ginext.Context)   { s.ok(c) }
func (s stubHandler) ListStudentAttendance(c *ginext.Context)  { s.ok(c) }
func (s stubHandler) GetEducationProgram(c *ginext.Context)    { s.ok(c) }
func (s stubHandler) SubmitInternalProof(c *ginext.Context)    { s.ok(c) }
func (s stubHandler) SubmitExternalProof(c *ginext.Context)    { s.ok(c) }
func (s stubHandler) SubmitSpecialProof(c *ginext.Context)     { s.ok(c) }
func (s stubHandler) EditInternalProof(c *ginext.Context)      { s.ok(c) }
func (s stubHandler) EditExternalProof(c *ginext.Context)      { s.ok(c) }
func (s stubHandler) EditSpecialProof(c *ginext.Context)       { s.ok(c) }
func (s stubHandler) GetProof(c *ginext.Context)               { s.ok(c) }
func (s stubHandler) ListMyProofs(c *ginext.Context)           { s.ok(c) }
func (s stubHandler) DeleteProof(c *ginext.Context)            { s.ok(c) }
func (s stubHandler) ApproveProof(c *ginext.Context)           { s.ok(c) }
func (s stubHandler) RejectProof(c *ginext.Context)            { s.ok(c) }

func actorAuth(actor domain.Actor) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set("actor", actor)
		c.Next()
	}
}

func doAs(t *testing.T, actor domain.Actor, method, path string) int {
	t.Helper()

	r := InitRouter("test", stubHandler{}, actorAuth(actor))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestRouter_RegistrationModeration_AdminOnly(t *testing.T) {
	path := "/api/students/" + studentID + "/event-registers/" + otherID + "/approve"

	admin := domain.Actor{ID: adminID, Roles: []string{domain.RoleAdmin}}
	org := domain.Actor{ID: orgID, Roles: []string{domain.RoleOrganization}}

	assert.Equal(t, http.StatusOK, doAs(t, admin, http.MethodPost, path))
	assert.Equal(t, http.StatusForbidden, doAs(t, org, http.MethodPost, path))

	reject := "/api/students/" + studentID + "/event-registers/" + otherID + "/reject"
	assert.Equal(t, http.StatusForbidden, doAs(t, org, http.MethodPost, reject))
}

func TestRouter_EventTransitions_AdminOrOrganization(t *testing.T) {
	path := "/api/events/" + otherID + "/approve"

	admin := domain.Actor{ID: adminID, Roles: []string{domain.RoleAdmin}}
	org := domain.Actor{ID: orgID, Roles: []string{domain.RoleOrganization}}
	student := domain.Actor{ID: studentID, Roles: []string{domain.RoleStudent}}

	assert.Equal(t, http.StatusOK, doAs(t, admin, http.MethodPost, path))
	assert.Equal(t, http.StatusOK, doAs(t, org, http.MethodPost, path))
	assert.Equal(t, http.StatusForbidden, doAs(t, student, http.MethodPost, path))

	reject := "/api/events/" + otherID + "/reject"
	assert.Equal(t, http.StatusOK, doAs(t, org, http.MethodPost, reject))
}

func TestRouter_StudentReads_SelfOrAdmin(t *testing.T) {
	student := domain.Actor{ID: studentID, Roles: []string{domain.RoleStudent}}
	admin := domain.Actor{ID: adminID, Roles: []string{domain.RoleAdmin}}

	own := "/api/students/" + studentID + "/attendance-events"
	foreign := "/api/students/" + otherID + "/attendance-events"

	assert.Equal(t, http.StatusOK, doAs(t, student, http.MethodGet, own))
	assert.Equal(t, http.StatusForbidden, doAs(t, student, http.MethodGet, foreign))
	assert.Equal(t, http.StatusOK, doAs(t, admin, http.MethodGet, foreign))

	program := "/api/students/" + otherID + "/education-program"
	assert.Equal(t, http.StatusForbidden, doAs(t, student, http.MethodGet, program))
	assert.Equal(t, http.StatusOK, doAs(t, admin, http.MethodGet, program))
}
