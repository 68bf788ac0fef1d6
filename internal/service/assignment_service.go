package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-nexus-api/internal/models"
	"github.com/noah-isme/campus-nexus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-nexus-api/pkg/errors"
)

type assignmentRepo interface {
	AssignLecturer(ctx context.Context, courseID, lecturerID string) (*models.Course, *models.Lecturer, error)
	ReleaseLecturer(ctx context.Context, courseID, lecturerID string) (*models.Course, *models.Lecturer, error)
	AssignAssistant(ctx context.Context, courseID, assistantID string) (*models.StaffingRequirement, *models.TeachingAssistant, error)
	ReleaseAssistant(ctx context.Context, courseID, assistantID string) (*models.StaffingRequirement, *models.TeachingAssistant, error)
}

type lecturerReader interface {
	FindByID(ctx context.Context, id string) (*models.Lecturer, error)
}

type assistantReader interface {
	FindByID(ctx context.Context, id string) (*models.TeachingAssistant, error)
}

type staffingReader interface {
	FindStaffingByCourse(ctx context.Context, courseID string) (*models.StaffingRequirement, error)
}

type assignmentObserver interface {
	ObserveAssignment(kind, outcome string)
}

// AssignmentRequest names the course a staff member is dispatched to.
type AssignmentRequest struct {
	CourseID string `json:"course_id" validate:"required"`
}

// LecturerAssignmentResult reports a lecturer transition along with the
// notification event the caller should surface.
type LecturerAssignmentResult struct {
	Course       models.Course       `json:"course"`
	Lecturer     models.Lecturer     `json:"lecturer"`
	Notification models.Notification `json:"notification"`
}

// AssistantAssignmentResult reports a TA transition.
type AssistantAssignmentResult struct {
	Requirement  models.StaffingRequirement `json:"requirement"`
	Assistant    models.TeachingAssistant   `json:"assistant"`
	Notification models.Notification        `json:"notification"`
}

// AssignmentService validates and applies staffing transitions. State never
// mutates on a rejected request: every guard is re-checked by the repository
// under its lock, and the service layer only adds friendlier error mapping
// plus an in-flight guard so double-submits of the same pair collapse into a
// single conflict instead of racing.
type AssignmentService struct {
	assignments assignmentRepo
	courses     courseReader
	lecturers   lecturerReader
	assistants  assistantReader
	staffing    staffingReader
	validator   *validator.Validate
	logger      *zap.Logger
	observer    assignmentObserver

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewAssignmentService constructs the dispatcher.
func NewAssignmentService(
	assignments assignmentRepo,
	courses courseReader,
	lecturers lecturerReader,
	assistants assistantReader,
	staffing staffingReader,
	validate *validator.Validate,
	logger *zap.Logger,
) *AssignmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{
		assignments: assignments,
		courses:     courses,
		lecturers:   lecturers,
		assistants:  assistants,
		staffing:    staffing,
		validator:   validate,
		logger:      logger,
		inFlight:    make(map[string]struct{}),
	}
}

// WithObserver attaches an outcome observer, typically the metrics service.
func (s *AssignmentService) WithObserver(observer assignmentObserver) *AssignmentService {
	s.observer = observer
	return s
}

// AssignLecturer dispatches a lecturer onto an unassigned course.
func (s *AssignmentService) AssignLecturer(ctx context.Context, lecturerID string, req AssignmentRequest) (*LecturerAssignmentResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	release, err := s.acquire("lecturer", req.CourseID, lecturerID)
	if err != nil {
		return nil, err
	}
	defer release()

	lecturer, err := s.lecturers.FindByID(ctx, lecturerID)
	if err != nil {
		return nil, s.mapLookupErr(err, "lecturer not found")
	}
	if lecturer.Status != models.LecturerStatusActive {
		return nil, s.reject("lecturer", appErrors.Clone(appErrors.ErrConflict, "lecturer is not active"))
	}
	course, err := s.courses.FindByID(ctx, req.CourseID)
	if err != nil {
		return nil, s.mapLookupErr(err, "course not found")
	}
	if course.Status == models.CourseStatusAssigned {
		return nil, s.reject("lecturer", appErrors.Clone(appErrors.ErrConflict, "course already has a lecturer assigned"))
	}
	if lecturer.AtCapacity() {
		return nil, s.reject("lecturer", appErrors.Clone(appErrors.ErrCapacityExceeded,
			fmt.Sprintf("%s already teaches %d of %d courses", lecturer.Name, lecturer.Load(), lecturer.MaxCourses)))
	}

	updatedCourse, updatedLecturer, err := s.assignments.AssignLecturer(ctx, req.CourseID, lecturerID)
	if err != nil {
		return nil, s.mapApplyErr("lecturer", err)
	}

	s.observe("lecturer", "assigned")
	s.logger.Info("lecturer assigned",
		zap.String("course_id", updatedCourse.ID),
		zap.String("lecturer_id", updatedLecturer.ID),
		zap.Int("load", updatedLecturer.Load()))

	return &LecturerAssignmentResult{
		Course:   *updatedCourse,
		Lecturer: *updatedLecturer,
		Notification: models.SuccessNotification(
			"Lecturer Assigned",
			fmt.Sprintf("%s has been assigned to %s.", updatedLecturer.Name, updatedCourse.Name),
		),
	}, nil
}

// UnassignLecturer reverts an assignment and frees the lecturer's slot.
func (s *AssignmentService) UnassignLecturer(ctx context.Context, lecturerID, courseID string) (*LecturerAssignmentResult, error) {
	release, err := s.acquire("lecturer", courseID, lecturerID)
	if err != nil {
		return nil, err
	}
	defer release()

	course, lecturer, err := s.assignments.ReleaseLecturer(ctx, courseID, lecturerID)
	if err != nil {
		return nil, s.mapApplyErr("lecturer", err)
	}

	s.observe("lecturer", "released")
	s.logger.Info("lecturer unassigned",
		zap.String("course_id", course.ID),
		zap.String("lecturer_id", lecturer.ID))

	return &LecturerAssignmentResult{
		Course:   *course,
		Lecturer: *lecturer,
		Notification: models.Notification{
			Title:    "Lecturer Unassigned",
			Message:  fmt.Sprintf("%s no longer teaches %s.", lecturer.Name, course.Name),
			Severity: models.SeverityWarning,
		},
	}, nil
}

// AssignAssistant dispatches a TA onto a course with open requirement slots.
func (s *AssignmentService) AssignAssistant(ctx context.Context, assistantID string, req AssignmentRequest) (*AssistantAssignmentResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	release, err := s.acquire("assistant", req.CourseID, assistantID)
	if err != nil {
		return nil, err
	}
	defer release()

	assistant, err := s.assistants.FindByID(ctx, assistantID)
	if err != nil {
		return nil, s.mapLookupErr(err, "teaching assistant not found")
	}
	requirement, err := s.staffing.FindStaffingByCourse(ctx, req.CourseID)
	if err != nil {
		return nil, s.mapLookupErr(err, "course has no staffing requirement")
	}
	for _, id := range assistant.CourseIDs {
		if id == req.CourseID {
			return nil, s.reject("assistant", appErrors.Clone(appErrors.ErrConflict, "assistant already supports this course"))
		}
	}
	if assistant.AtCapacity() {
		return nil, s.reject("assistant", appErrors.Clone(appErrors.ErrCapacityExceeded,
			fmt.Sprintf("%s already supports %d of %d courses", assistant.Name, assistant.Load(), assistant.MaxCourses)))
	}
	if requirement.CurrentTAs >= requirement.RequiredTAs {
		return nil, s.reject("assistant", appErrors.Clone(appErrors.ErrConflict,
			fmt.Sprintf("%s already has its required %d assistants", requirement.CourseName, requirement.RequiredTAs)))
	}

	updatedReq, updatedAssistant, err := s.assignments.AssignAssistant(ctx, req.CourseID, assistantID)
	if err != nil {
		return nil, s.mapApplyErr("assistant", err)
	}

	s.observe("assistant", "assigned")
	s.logger.Info("assistant assigned",
		zap.String("course_id", updatedReq.CourseID),
		zap.String("assistant_id", updatedAssistant.ID),
		zap.Int("current_tas", updatedReq.CurrentTAs))

	return &AssistantAssignmentResult{
		Requirement: *updatedReq,
		Assistant:   *updatedAssistant,
		Notification: models.SuccessNotification(
			"TA Assigned",
			fmt.Sprintf("%s has been assigned to %s.", updatedAssistant.Name, updatedReq.CourseName),
		),
	}, nil
}

// UnassignAssistant reverts a TA assignment, freeing both sides.
func (s *AssignmentService) UnassignAssistant(ctx context.Context, assistantID, courseID string) (*AssistantAssignmentResult, error) {
	release, err := s.acquire("assistant", courseID, assistantID)
	if err != nil {
		return nil, err
	}
	defer release()

	requirement, assistant, err := s.assignments.ReleaseAssistant(ctx, courseID, assistantID)
	if err != nil {
		return nil, s.mapApplyErr("assistant", err)
	}

	s.observe("assistant", "released")
	s.logger.Info("assistant unassigned",
		zap.String("course_id", requirement.CourseID),
		zap.String("assistant_id", assistant.ID))

	return &AssistantAssignmentResult{
		Requirement: *requirement,
		Assistant:   *assistant,
		Notification: models.Notification{
			Title:    "TA Unassigned",
			Message:  fmt.Sprintf("%s no longer supports %s.", assistant.Name, requirement.CourseName),
			Severity: models.SeverityWarning,
		},
	}, nil
}

// acquire marks the (kind, course, staff) pair in flight. A second dispatch
// for the same pair fails fast with a conflict rather than racing the first.
func (s *AssignmentService) acquire(kind, courseID, staffID string) (func(), error) {
	key := kind + ":" + courseID + ":" + staffID
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return nil, appErrors.Clone(appErrors.ErrConflict, "an identical assignment request is already being processed")
	}
	s.inFlight[key] = struct{}{}
	return func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}, nil
}

func (s *AssignmentService) mapLookupErr(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return appErrors.Clone(appErrors.ErrNotFound, message)
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "lookup failed")
}

func (s *AssignmentService) mapApplyErr(kind string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	case errors.Is(err, repository.ErrConflict):
		return s.reject(kind, appErrors.Clone(appErrors.ErrConflict, "assignment state changed, please retry"))
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to apply assignment")
	}
}

func (s *AssignmentService) reject(kind string, err *appErrors.Error) *appErrors.Error {
	s.observe(kind, "rejected")
	return err
}

func (s *AssignmentService) observe(kind, outcome string) {
	if s.observer != nil {
		s.observer.ObserveAssignment(kind, outcome)
	}
}
