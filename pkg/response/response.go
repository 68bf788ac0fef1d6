package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-nexus-api/internal/models"
	appErrors "github.com/noah-isme/campus-nexus-api/pkg/errors"
)

// Envelope represents the common response contract.
type Envelope struct {
	Data         interface{}            `json:"data,omitempty"`
	Error        *appErrors.Error       `json:"error,omitempty"`
	Notification *models.Notification   `json:"notification,omitempty"`
	Meta         map[string]interface{} `json:"meta,omitempty"`
}

// JSON sends a success response with optional envelope metadata.
func JSON(c *gin.Context, status int, data interface{}, meta ...map[string]interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	envelope := Envelope{Data: data}
	if len(meta) > 0 && meta[0] != nil {
		envelope.Meta = meta[0]
	}
	c.JSON(status, envelope)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Notified sends a success response together with the notification event the
// caller may surface. Delivery is the UI shell's concern.
func Notified(c *gin.Context, status int, data interface{}, note models.Notification) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, Envelope{Data: data, Notification: &note})
}

// Error sends an error response converting the error to the common structure.
// The failure notification mirrors the error so the shell can surface it.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	note := models.FailureNotification(appErr.Message)
	c.JSON(appErr.Status, Envelope{Error: appErr, Notification: &note})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
