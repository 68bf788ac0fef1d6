package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-nexus-api/internal/models"
	"github.com/noah-isme/campus-nexus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-nexus-api/pkg/errors"
)

type enrollmentRepo interface {
	List(ctx context.Context) ([]models.EnrolledCourse, error)
	FindByCourse(ctx context.Context, courseID string) (*models.EnrolledCourse, error)
	Enroll(ctx context.Context, courseID string) (*models.EnrolledCourse, error)
	Drop(ctx context.Context, courseID string) (*models.EnrolledCourse, error)
}

// EnrollRequest describes the enrollment payload.
type EnrollRequest struct {
	CourseID string `json:"course_id" validate:"required"`
}

// EnrollmentResult pairs the updated enrollment with the event the shell may
// surface.
type EnrollmentResult struct {
	Course       models.EnrolledCourse `json:"course"`
	Notification models.Notification   `json:"notification"`
}

// EnrollmentService manages the student's course registration.
type EnrollmentService struct {
	enrollments enrollmentRepo
	courses     courseReader
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewEnrollmentService creates a service instance.
func NewEnrollmentService(enrollments enrollmentRepo, courses courseReader, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{enrollments: enrollments, courses: courses, validator: validate, logger: logger}
}

// List returns the enrolled courses plus their credit summary.
func (s *EnrollmentService) List(ctx context.Context) ([]models.EnrolledCourse, *models.EnrollmentSummary, error) {
	enrolled, err := s.enrollments.List(ctx)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}
	summary := SummarizeEnrollment(enrolled)
	return enrolled, &summary, nil
}

// Enroll joins an open course.
func (s *EnrollmentService) Enroll(ctx context.Context, req EnrollRequest) (*EnrollmentResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}

	course, err := s.courses.FindByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	if course.Full() {
		return nil, appErrors.Clone(appErrors.ErrCapacityExceeded, "course is full")
	}

	enrolled, err := s.enrollments.Enroll(ctx, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return nil, appErrors.Clone(appErrors.ErrConflict, "already enrolled in this course")
		case errors.Is(err, repository.ErrNotFound):
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		default:
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enroll")
		}
	}

	s.logger.Info("student enrolled", zap.String("course_id", enrolled.CourseID))
	return &EnrollmentResult{
		Course: *enrolled,
		Notification: models.SuccessNotification(
			"Enrollment Successful",
			fmt.Sprintf("You have successfully enrolled in %s (%s).", enrolled.Name, enrolled.CourseID),
		),
	}, nil
}

// Drop leaves a course. Staffing counters of lecturers and TAs are
// deliberately unaffected; only the seat is released.
func (s *EnrollmentService) Drop(ctx context.Context, courseID string) (*EnrollmentResult, error) {
	dropped, err := s.enrollments.Drop(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "enrollment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to drop course")
	}

	s.logger.Info("student dropped course", zap.String("course_id", dropped.CourseID))
	return &EnrollmentResult{
		Course: *dropped,
		Notification: models.Notification{
			Title:    "Course Dropped",
			Message:  fmt.Sprintf("You have dropped %s (%s).", dropped.Name, dropped.CourseID),
			Severity: models.SeverityWarning,
		},
	}, nil
}
