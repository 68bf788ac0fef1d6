package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-nexus-api/internal/models"
	"github.com/noah-isme/campus-nexus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-nexus-api/pkg/errors"
)

type lecturerLister interface {
	List(ctx context.Context) ([]models.Lecturer, error)
	FindByID(ctx context.Context, id string) (*models.Lecturer, error)
}

// LecturerService derives workload views over the faculty roster.
type LecturerService struct {
	lecturers lecturerLister
	courses   courseReader
	loadBands models.Bands
	logger    *zap.Logger
}

// NewLecturerService constructs a LecturerService.
func NewLecturerService(lecturers lecturerLister, courses courseReader, loadBands models.Bands, logger *zap.Logger) *LecturerService {
	if loadBands.High <= 0 {
		loadBands = DefaultLoadBands
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LecturerService{lecturers: lecturers, courses: courses, loadBands: loadBands, logger: logger}
}

// List returns every lecturer decorated with a workload classification,
// roster order preserved.
func (s *LecturerService) List(ctx context.Context) ([]models.LecturerView, error) {
	lecturers, err := s.lecturers.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list lecturers")
	}
	views := make([]models.LecturerView, 0, len(lecturers))
	for _, l := range lecturers {
		workload, err := Classify(l.Load(), l.MaxCourses, s.loadBands)
		if err != nil {
			return nil, err
		}
		views = append(views, models.LecturerView{Lecturer: l, Workload: workload})
	}
	return views, nil
}

// Get returns one lecturer with its classification.
func (s *LecturerService) Get(ctx context.Context, id string) (*models.LecturerView, error) {
	lecturer, err := s.lecturers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "lecturer not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load lecturer")
	}
	workload, err := Classify(lecturer.Load(), lecturer.MaxCourses, s.loadBands)
	if err != nil {
		return nil, err
	}
	return &models.LecturerView{Lecturer: *lecturer, Workload: workload}, nil
}

// Summary aggregates the roster alongside course assignment counts.
func (s *LecturerService) Summary(ctx context.Context) (*models.LecturerSummary, error) {
	lecturers, err := s.lecturers.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list lecturers")
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}

	summary := models.LecturerSummary{
		TotalLecturers: len(lecturers),
		TotalCourses:   len(courses),
	}
	for _, l := range lecturers {
		if l.Status == models.LecturerStatusActive {
			summary.ActiveLecturers++
		}
	}
	for _, c := range courses {
		if c.Status == models.CourseStatusAssigned {
			summary.AssignedCourses++
		} else {
			summary.UnassignedCourses++
		}
	}
	return &summary, nil
}
