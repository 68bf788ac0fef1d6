package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-nexus-api/internal/service"
	"github.com/noah-isme/campus-nexus-api/pkg/response"
)

// FeeHandler exposes the fee ledger endpoints.
type FeeHandler struct {
	service *service.FeeService
	exports *service.ExportService
}

// NewFeeHandler constructs a fee handler.
func NewFeeHandler(svc *service.FeeService, exports *service.ExportService) *FeeHandler {
	return &FeeHandler{service: svc, exports: exports}
}

// List godoc
// @Summary List fee lines with derived statuses
// @Tags Fees
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /fees [get]
func (h *FeeHandler) List(c *gin.Context) {
	fees, summary, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, fees, map[string]interface{}{"summary": summary})
}

// Summary godoc
// @Summary Summarize the fee ledger
// @Tags Fees
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /fees/summary [get]
func (h *FeeHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}

// Statement godoc
// @Summary Download the fee statement
// @Tags Fees
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /fees/statement [get]
func (h *FeeHandler) Statement(c *gin.Context) {
	format := service.ReportFormat(c.DefaultQuery("format", "csv"))
	result, err := h.exports.Statement(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+result.Filename)
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}
