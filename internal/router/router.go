package router

import (
	"net/http"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/Tannang0903/campus-events/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	CancelEvent(c *ginext.Context)
	ApproveEvent(c *ginext.Context)
	RejectEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)

	Register(c *ginext.Context)
	ApproveRegistration(c *ginext.Context)
	RejectRegistration(c *ginext.Context)
	ListRegisteredStudents(c *ginext.Context)

	Attend(c *ginext.Context)
	ListAttendedStudents(c *ginext.Context)
	ListStudentAttendance(c *ginext.Context)

	GetEducationProgram(c *ginext.Context)

	SubmitInternalProof(c *ginext.Context)
	SubmitExternalProof(c *ginext.Context)
	SubmitSpecialProof(c *ginext.Context)
	EditInternalProof(c *ginext.Context)
	EditExternalProof(c *ginext.Context)
	EditSpecialProof(c *ginext.Context)
	GetProof(c *ginext.Context)
	ListMyProofs(c *ginext.Context)
	DeleteProof(c *ginext.Context)
	ApproveProof(c *ginext.Context)
	RejectProof(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	moderator := middleware.RequireRoles(domain.RoleAdmin, domain.RoleOrganization)
	admin := middleware.RequireRoles(domain.RoleAdmin)
	student := middleware.RequireRoles(domain.RoleStudent)
	selfOrAdmin := middleware.SelfOrRoles("id", domain.RoleAdmin)

	api := router.Group("/api")
	api.Use(auth)
	{
		// Events
		api.POST("/events", moderator, h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", moderator, h.UpdateEvent)
		api.POST("/events/:id/cancel", moderator, h.CancelEvent)
		api.POST("/events/:id/approve", moderator, h.ApproveEvent)
		api.POST("/events/:id/reject", moderator, h.RejectEvent)

		// Registrations and attendance
		api.POST("/events/register", student, h.Register)
		api.POST("/events/event-attendances", student, h.Attend)
		api.GET("/events/:id/registered-students", moderator, h.ListRegisteredStudents)
		api.GET("/events/:id/attendance-students", moderator, h.ListAttendedStudents)

		// Students
		api.GET("/students/:id/attendance-events", selfOrAdmin, h.ListStudentAttendance)
		api.POST("/students/:id/event-registers/:registerId/approve", admin, h.ApproveRegistration)
		api.POST("/students/:id/event-registers/:registerId/reject", admin, h.RejectRegistration)
		api.GET("/students/:id/education-program", selfOrAdmin, h.GetEducationProgram)

		// Proofs
		api.POST("/proofs/internal", student, h.SubmitInternalProof)
		api.POST("/proofs/external", student, h.SubmitExternalProof)
		api.POST("/proofs/special", student, h.SubmitSpecialProof)
		api.PUT("/proofs/:id/internal", student, h.EditInternalProof)
		api.PUT("/proofs/:id/external", student, h.EditExternalProof)
		api.PUT("/proofs/:id/special", student, h.EditSpecialProof)
		api.GET("/proofs/my", h.ListMyProofs)
		api.GET("/proofs/:id", h.GetProof)
		api.DELETE("/proofs/:id", student, h.DeleteProof)
		api.POST("/proofs/:id/approve", admin, h.ApproveProof)
		api.POST("/proofs/:id/reject", admin, h.RejectProof)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
