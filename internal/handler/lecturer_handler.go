package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-nexus-api/internal/service"
	appErrors "github.com/noah-isme/campus-nexus-api/pkg/errors"
	"github.com/noah-isme/campus-nexus-api/pkg/response"
)

// LecturerHandler exposes the faculty roster and lecturer assignment endpoints.
type LecturerHandler struct {
	service     *service.LecturerService
	assignments *service.AssignmentService
	dashboard   *service.DashboardService
}

// NewLecturerHandler constructs a lecturer handler.
func NewLecturerHandler(svc *service.LecturerService, assignments *service.AssignmentService, dashboard *service.DashboardService) *LecturerHandler {
	return &LecturerHandler{service: svc, assignments: assignments, dashboard: dashboard}
}

// List godoc
// @Summary List lecturers with workload classifications
// @Tags Lecturers
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /lecturers [get]
func (h *LecturerHandler) List(c *gin.Context) {
	lecturers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lecturers, map[string]interface{}{"count": len(lecturers)})
}

// Get godoc
// @Summary Get one lecturer
// @Tags Lecturers
// @Produce json
// @Param id path string true "Lecturer ID"
// @Success 200 {object} response.Envelope
// @Router /lecturers/{id} [get]
func (h *LecturerHandler) Get(c *gin.Context) {
	lecturer, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lecturer, nil)
}

// Summary godoc
// @Summary Summarize the faculty roster
// @Tags Lecturers
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /lecturers/summary [get]
func (h *LecturerHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}

// Assign godoc
// @Summary Assign a lecturer to a course
// @Tags Lecturers
// @Accept json
// @Produce json
// @Param id path string true "Lecturer ID"
// @Param payload body service.AssignmentRequest true "Assignment payload"
// @Success 201 {object} response.Envelope
// @Router /lecturers/{id}/assignments [post]
func (h *LecturerHandler) Assign(c *gin.Context) {
	var req service.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.assignments.AssignLecturer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.dashboard != nil {
		h.dashboard.InvalidateOverview(c.Request.Context())
	}
	response.Notified(c, http.StatusCreated, result, result.Notification)
}

// Unassign godoc
// @Summary Remove a lecturer from a course
// @Tags Lecturers
// @Produce json
// @Param id path string true "Lecturer ID"
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /lecturers/{id}/assignments/{courseId} [delete]
func (h *LecturerHandler) Unassign(c *gin.Context) {
	result, err := h.assignments.UnassignLecturer(c.Request.Context(), c.Param("id"), c.Param("courseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.dashboard != nil {
		h.dashboard.InvalidateOverview(c.Request.Context())
	}
	response.Notified(c, http.StatusOK, result, result.Notification)
}
