package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-nexus-api/internal/repository"
	"github.com/noah-isme/campus-nexus-api/internal/service"
	"github.com/noah-isme/campus-nexus-api/pkg/response"
)

func newCourseRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	db := repository.Seed()
	svc := service.NewCourseService(repository.NewCourseRepository(db), service.DefaultSeatBands, zap.NewNop())
	h := NewCourseHandler(svc)

	r := gin.New()
	r.GET("/courses", h.List)
	r.GET("/courses/summary", h.Summary)
	r.GET("/courses/:id", h.Get)
	return r
}

func TestCourseHandlerListFiltered(t *testing.T) {
	r := newCourseRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/courses?q=machine&department=Computer%20Science", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	courses, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, courses, 1)
	assert.EqualValues(t, 1, envelope.Meta["count"])
}

func TestCourseHandlerGetNotFound(t *testing.T) {
	r := newCourseRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/courses/CS999", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
	require.NotNil(t, envelope.Notification)
	assert.Equal(t, "Action Failed", envelope.Notification.Title)
}

func TestCourseHandlerSummary(t *testing.T) {
	r := newCourseRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/courses/summary", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	summary, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 4, summary["total"])
	assert.EqualValues(t, 1, summary["assigned"])
}
