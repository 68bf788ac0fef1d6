package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-nexus-api/internal/models"
	"github.com/noah-isme/campus-nexus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-nexus-api/pkg/errors"
)

func newEnrollmentFixture() (*EnrollmentService, *repository.CourseRepository) {
	db := repository.Seed()
	courses := repository.NewCourseRepository(db)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db), courses, nil, zap.NewNop())
	return svc, courses
}

func TestEnrollmentServiceList(t *testing.T) {
	svc, _ := newEnrollmentFixture()

	courses, summary, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 3)
	assert.Equal(t, 3, summary.Courses)
	assert.Equal(t, 10, summary.TotalCredits)
}

func TestEnrollmentServiceEnroll(t *testing.T) {
	svc, courses := newEnrollmentFixture()

	result, err := svc.Enroll(context.Background(), EnrollRequest{CourseID: "CS402"})
	require.NoError(t, err)
	assert.Equal(t, "CS402", result.Course.CourseID)
	assert.Equal(t, "Software Engineering", result.Course.Name)
	assert.Equal(t, models.SeveritySuccess, result.Notification.Severity)

	// seat counter moved with the enrollment
	course, err := courses.FindByID(context.Background(), "CS402")
	require.NoError(t, err)
	assert.Equal(t, 39, course.Enrolled)

	_, summary, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Courses)
}

func TestEnrollmentServiceEnrollTwiceConflicts(t *testing.T) {
	svc, _ := newEnrollmentFixture()

	_, err := svc.Enroll(context.Background(), EnrollRequest{CourseID: "CS402"})
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), EnrollRequest{CourseID: "CS402"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestEnrollmentServiceEnrollUnknownCourse(t *testing.T) {
	svc, _ := newEnrollmentFixture()

	_, err := svc.Enroll(context.Background(), EnrollRequest{CourseID: "CS999"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestEnrollmentServiceEnrollFullCourse(t *testing.T) {
	courses := &mockCourseReader{courses: []models.Course{
		{ID: "CS500", Name: "Capstone", Enrolled: 20, Capacity: 20, Status: models.CourseStatusUnassigned},
	}}
	db := repository.Seed()
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db), courses, nil, zap.NewNop())

	_, err := svc.Enroll(context.Background(), EnrollRequest{CourseID: "CS500"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrCapacityExceeded.Code, appErrors.FromError(err).Code)
}

func TestEnrollmentServiceDrop(t *testing.T) {
	svc, _ := newEnrollmentFixture()

	result, err := svc.Drop(context.Background(), "CS301")
	require.NoError(t, err)
	assert.Equal(t, "CS301", result.Course.CourseID)
	assert.Equal(t, models.SeverityWarning, result.Notification.Severity)

	_, summary, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Courses)
	assert.Equal(t, 6, summary.TotalCredits)
}

func TestEnrollmentServiceDropUnknown(t *testing.T) {
	svc, _ := newEnrollmentFixture()

	_, err := svc.Drop(context.Background(), "CS999")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestEnrollmentServiceEnrollValidation(t *testing.T) {
	svc, _ := newEnrollmentFixture()

	_, err := svc.Enroll(context.Background(), EnrollRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
