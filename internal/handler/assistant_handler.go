package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-nexus-api/internal/service"
	appErrors "github.com/noah-isme/campus-nexus-api/pkg/errors"
	"github.com/noah-isme/campus-nexus-api/pkg/response"
)

// AssistantHandler exposes the TA roster and staffing endpoints.
type AssistantHandler struct {
	service     *service.AssistantService
	assignments *service.AssignmentService
	dashboard   *service.DashboardService
}

// NewAssistantHandler constructs an assistant handler.
func NewAssistantHandler(svc *service.AssistantService, assignments *service.AssignmentService, dashboard *service.DashboardService) *AssistantHandler {
	return &AssistantHandler{service: svc, assignments: assignments, dashboard: dashboard}
}

// List godoc
// @Summary List teaching assistants with workload classifications
// @Tags Assistants
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /assistants [get]
func (h *AssistantHandler) List(c *gin.Context) {
	assistants, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assistants, map[string]interface{}{"count": len(assistants)})
}

// Get godoc
// @Summary Get one teaching assistant
// @Tags Assistants
// @Produce json
// @Param id path string true "Assistant ID"
// @Success 200 {object} response.Envelope
// @Router /assistants/{id} [get]
func (h *AssistantHandler) Get(c *gin.Context) {
	assistant, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assistant, nil)
}

// Staffing godoc
// @Summary List course staffing requirements with derived statuses
// @Tags Assistants
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /assistants/staffing [get]
func (h *AssistantHandler) Staffing(c *gin.Context) {
	staffing, err := h.service.Staffing(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, staffing, nil)
}

// Summary godoc
// @Summary Summarize the TA roster
// @Tags Assistants
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /assistants/summary [get]
func (h *AssistantHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}

// Assign godoc
// @Summary Assign a teaching assistant to a course
// @Tags Assistants
// @Accept json
// @Produce json
// @Param id path string true "Assistant ID"
// @Param payload body service.AssignmentRequest true "Assignment payload"
// @Success 201 {object} response.Envelope
// @Router /assistants/{id}/assignments [post]
func (h *AssistantHandler) Assign(c *gin.Context) {
	var req service.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.assignments.AssignAssistant(c.Request.Context(), c.Param("id"), req)
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
// @Summary Remove a teaching assistant from a course
// @Tags Assistants
// @Produce json
// @Param id path string true "Assistant ID"
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /assistants/{id}/assignments/{courseId} [delete]
func (h *AssistantHandler) Unassign(c *gin.Context) {
	result, err := h.assignments.UnassignAssistant(c.Request.Context(), c.Param("id"), c.Param("courseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.dashboard != nil {
		h.dashboard.InvalidateOverview(c.Request.Context())
	}
	response.Notified(c, http.StatusOK, result, result.Notification)
}
