package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-nexus-api/internal/models"
	"github.com/noah-isme/campus-nexus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-nexus-api/pkg/errors"
)

type courseReader interface {
	List(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
}

// CourseService implements catalog search and course summaries.
type CourseService struct {
	courses   courseReader
	seatBands models.Bands
	logger    *zap.Logger
}

// NewCourseService creates a service instance.
func NewCourseService(courses courseReader, seatBands models.Bands, logger *zap.Logger) *CourseService {
	if seatBands.High <= 0 {
		seatBands = DefaultSeatBands
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{courses: courses, seatBands: seatBands, logger: logger}
}

// List returns catalog courses matching the filter, in catalog order, each
// decorated with its seat-fill classification.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) ([]models.CourseView, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}

	views := make([]models.CourseView, 0, len(courses))
	for _, course := range courses {
		if !MatchCourse(course, filter) {
			continue
		}
		view := models.CourseView{Course: course}
		if cls, err := Classify(course.Enrolled, course.Capacity, s.seatBands); err == nil {
			view.SeatFill = cls
		} else {
			s.logger.Warn("course has invalid capacity", zap.String("course_id", course.ID), zap.Int("capacity", course.Capacity))
		}
		views = append(views, view)
	}
	return views, nil
}

// Get returns a single catalog course.
func (s *CourseService) Get(ctx context.Context, id string) (*models.CourseView, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	view := models.CourseView{Course: *course}
	if cls, err := Classify(course.Enrolled, course.Capacity, s.seatBands); err == nil {
		view.SeatFill = cls
	}
	return &view, nil
}

// Summary counts catalog courses by assignment status.
func (s *CourseService) Summary(ctx context.Context) (*models.CourseSummary, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	summary := &models.CourseSummary{Total: len(courses)}
	for _, course := range courses {
		if course.Status == models.CourseStatusAssigned {
			summary.Assigned++
		} else {
			summary.Unassigned++
		}
	}
	return summary, nil
}

// MatchCourse applies the catalog search criteria: case-insensitive substring
// match against name, id and instructor, ANDed with exact department and term
// matches. Empty text matches everything; "all" (or empty) department/term
// act as wildcards.
func MatchCourse(course models.Course, filter models.CourseFilter) bool {
	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		if !strings.Contains(strings.ToLower(course.Name), q) &&
			!strings.Contains(strings.ToLower(course.ID), q) &&
			!strings.Contains(strings.ToLower(course.Instructor), q) {
			return false
		}
	}
	if !matchesExact(course.Department, filter.Department) {
		return false
	}
	return matchesExact(course.Term, filter.Term)
}

func matchesExact(value, criterion string) bool {
	if criterion == "" || strings.EqualFold(criterion, "all") {
		return true
	}
	return value == criterion
}
