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

type dispatcherFixture struct {
	svc        *AssignmentService
	courses    *repository.CourseRepository
	lecturers  *repository.LecturerRepository
	assistants *repository.AssistantRepository
}

func newDispatcherFixture() *dispatcherFixture {
	db := repository.Seed()
	courses := repository.NewCourseRepository(db)
	lecturers := repository.NewLecturerRepository(db)
	assistants := repository.NewAssistantRepository(db)
	svc := NewAssignmentService(
		repository.NewAssignmentRepository(db),
		courses, lecturers, assistants, assistants,
		nil, zap.NewNop(),
	)
	return &dispatcherFixture{svc: svc, courses: courses, lecturers: lecturers, assistants: assistants}
}

func TestAssignLecturerSuccess(t *testing.T) {
	f := newDispatcherFixture()

	result, err := f.svc.AssignLecturer(context.Background(), "LEC004", AssignmentRequest{CourseID: "CS402"})
	require.NoError(t, err)
	assert.Equal(t, models.CourseStatusAssigned, result.Course.Status)
	assert.Equal(t, "Dr. Alex Kumar", result.Course.Instructor)
	assert.Equal(t, 1, result.Lecturer.Load())
	assert.Equal(t, models.SeveritySuccess, result.Notification.Severity)

	// both sides persisted
	course, err := f.courses.FindByID(context.Background(), "CS402")
	require.NoError(t, err)
	require.NotNil(t, course.LecturerID)
	assert.Equal(t, "LEC004", *course.LecturerID)

	lecturer, err := f.lecturers.FindByID(context.Background(), "LEC004")
	require.NoError(t, err)
	assert.Contains(t, lecturer.CourseIDs, "CS402")
}

func TestAssignLecturerCourseAlreadyAssigned(t *testing.T) {
	f := newDispatcherFixture()

	_, err := f.svc.AssignLecturer(context.Background(), "LEC001", AssignmentRequest{CourseID: "CS401"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)

	// the rejected request must not touch the lecturer
	lecturer, err := f.lecturers.FindByID(context.Background(), "LEC001")
	require.NoError(t, err)
	assert.Equal(t, 2, lecturer.Load())
}

func TestAssignLecturerAtCapacity(t *testing.T) {
	f := newDispatcherFixture()

	// LEC002 teaches 2 of 3; one more fills it
	_, err := f.svc.AssignLecturer(context.Background(), "LEC002", AssignmentRequest{CourseID: "CS402"})
	require.NoError(t, err)

	_, err = f.svc.AssignLecturer(context.Background(), "LEC002", AssignmentRequest{CourseID: "CS403"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrCapacityExceeded.Code, appErrors.FromError(err).Code)

	// neither side mutated by the rejection
	course, err := f.courses.FindByID(context.Background(), "CS403")
	require.NoError(t, err)
	assert.Equal(t, models.CourseStatusUnassigned, course.Status)
	assert.Nil(t, course.LecturerID)

	lecturer, err := f.lecturers.FindByID(context.Background(), "LEC002")
	require.NoError(t, err)
	assert.Equal(t, 3, lecturer.Load())
}

func TestAssignLecturerUnknownIDs(t *testing.T) {
	f := newDispatcherFixture()

	_, err := f.svc.AssignLecturer(context.Background(), "LEC999", AssignmentRequest{CourseID: "CS402"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	_, err = f.svc.AssignLecturer(context.Background(), "LEC004", AssignmentRequest{CourseID: "CS999"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestAssignLecturerMissingPayload(t *testing.T) {
	f := newDispatcherFixture()

	_, err := f.svc.AssignLecturer(context.Background(), "LEC004", AssignmentRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

type inactiveLecturerReader struct{}

func (inactiveLecturerReader) FindByID(ctx context.Context, id string) (*models.Lecturer, error) {
	return &models.Lecturer{ID: id, Name: "On Leave", Status: models.LecturerStatusInactive, MaxCourses: 3}, nil
}

func TestAssignLecturerInactive(t *testing.T) {
	db := repository.Seed()
	svc := NewAssignmentService(
		repository.NewAssignmentRepository(db),
		repository.NewCourseRepository(db),
		inactiveLecturerReader{},
		repository.NewAssistantRepository(db),
		repository.NewAssistantRepository(db),
		nil, zap.NewNop(),
	)

	_, err := svc.AssignLecturer(context.Background(), "LEC001", AssignmentRequest{CourseID: "CS402"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestUnassignLecturerReleasesBothSides(t *testing.T) {
	f := newDispatcherFixture()

	_, err := f.svc.AssignLecturer(context.Background(), "LEC004", AssignmentRequest{CourseID: "CS402"})
	require.NoError(t, err)

	result, err := f.svc.UnassignLecturer(context.Background(), "LEC004", "CS402")
	require.NoError(t, err)
	assert.Equal(t, models.CourseStatusUnassigned, result.Course.Status)
	assert.Nil(t, result.Course.LecturerID)
	assert.Equal(t, 0, result.Lecturer.Load())
	assert.Equal(t, models.SeverityWarning, result.Notification.Severity)

	// released capacity is usable again
	_, err = f.svc.AssignLecturer(context.Background(), "LEC004", AssignmentRequest{CourseID: "CS402"})
	require.NoError(t, err)
}

func TestUnassignLecturerWithoutAssignment(t *testing.T) {
	f := newDispatcherFixture()

	_, err := f.svc.UnassignLecturer(context.Background(), "LEC004", "CS402")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestAssignAssistantSuccess(t *testing.T) {
	f := newDispatcherFixture()

	result, err := f.svc.AssignAssistant(context.Background(), "TA002", AssignmentRequest{CourseID: "CS302"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Requirement.CurrentTAs)
	assert.Equal(t, models.AssistantStatusBusy, result.Assistant.Status)
	assert.Contains(t, result.Assistant.CourseIDs, "CS302")
	assert.Equal(t, models.SeveritySuccess, result.Notification.Severity)
}

func TestAssignAssistantDuplicateCourse(t *testing.T) {
	f := newDispatcherFixture()

	_, err := f.svc.AssignAssistant(context.Background(), "TA001", AssignmentRequest{CourseID: "CS301"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestAssignAssistantAtCapacity(t *testing.T) {
	f := newDispatcherFixture()

	// TA004 already supports 2 of 2 courses
	_, err := f.svc.AssignAssistant(context.Background(), "TA004", AssignmentRequest{CourseID: "CS302"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrCapacityExceeded.Code, appErrors.FromError(err).Code)

	// the open requirement stays open
	req, err := f.assistants.FindStaffingByCourse(context.Background(), "CS302")
	require.NoError(t, err)
	assert.Equal(t, 0, req.CurrentTAs)

	assistant, err := f.assistants.FindByID(context.Background(), "TA004")
	require.NoError(t, err)
	assert.Equal(t, 2, assistant.Load())
}

func TestAssignAssistantRequirementAlreadyMet(t *testing.T) {
	f := newDispatcherFixture()

	// CS401 already has its single required TA
	_, err := f.svc.AssignAssistant(context.Background(), "TA002", AssignmentRequest{CourseID: "CS401"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestAssignAssistantUnknownCourse(t *testing.T) {
	f := newDispatcherFixture()

	_, err := f.svc.AssignAssistant(context.Background(), "TA002", AssignmentRequest{CourseID: "CS999"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestUnassignAssistantReleasesBothSides(t *testing.T) {
	f := newDispatcherFixture()

	_, err := f.svc.AssignAssistant(context.Background(), "TA002", AssignmentRequest{CourseID: "CS302"})
	require.NoError(t, err)

	result, err := f.svc.UnassignAssistant(context.Background(), "TA002", "CS302")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Requirement.CurrentTAs)
	assert.Equal(t, models.AssistantStatusAvailable, result.Assistant.Status)
	assert.NotContains(t, result.Assistant.CourseIDs, "CS302")
}

func TestAssignmentInFlightGuard(t *testing.T) {
	f := newDispatcherFixture()

	release, err := f.svc.acquire("lecturer", "CS402", "LEC004")
	require.NoError(t, err)
	defer release()

	_, err = f.svc.AssignLecturer(context.Background(), "LEC004", AssignmentRequest{CourseID: "CS402"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}
