package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-nexus-api/internal/models"
	"github.com/noah-isme/campus-nexus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-nexus-api/pkg/errors"
)

type assistantLister interface {
	List(ctx context.Context) ([]models.TeachingAssistant, error)
	FindByID(ctx context.Context, id string) (*models.TeachingAssistant, error)
	ListStaffing(ctx context.Context) ([]models.StaffingRequirement, error)
}

// AssistantService derives workload and staffing views over the TA roster.
type AssistantService struct {
	assistants assistantLister
	loadBands  models.Bands
	logger     *zap.Logger
}

// NewAssistantService constructs an AssistantService.
func NewAssistantService(assistants assistantLister, loadBands models.Bands, logger *zap.Logger) *AssistantService {
	if loadBands.High <= 0 {
		loadBands = DefaultLoadBands
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssistantService{assistants: assistants, loadBands: loadBands, logger: logger}
}

// List returns every assistant decorated with a workload classification.
func (s *AssistantService) List(ctx context.Context) ([]models.AssistantView, error) {
	assistants, err := s.assistants.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assistants")
	}
	views := make([]models.AssistantView, 0, len(assistants))
	for _, a := range assistants {
		workload, err := Classify(a.Load(), a.MaxCourses, s.loadBands)
		if err != nil {
			return nil, err
		}
		views = append(views, models.AssistantView{TeachingAssistant: a, Workload: workload})
	}
	return views, nil
}

// Get returns one assistant with its classification.
func (s *AssistantService) Get(ctx context.Context, id string) (*models.AssistantView, error) {
	assistant, err := s.assistants.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teaching assistant not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assistant")
	}
	workload, err := Classify(assistant.Load(), assistant.MaxCourses, s.loadBands)
	if err != nil {
		return nil, err
	}
	return &models.AssistantView{TeachingAssistant: *assistant, Workload: workload}, nil
}

// Staffing returns each course requirement with its derived status, catalog
// order preserved.
func (s *AssistantService) Staffing(ctx context.Context) ([]models.StaffingView, error) {
	requirements, err := s.assistants.ListStaffing(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list staffing requirements")
	}
	views := make([]models.StaffingView, 0, len(requirements))
	for _, r := range requirements {
		views = append(views, models.StaffingView{
			StaffingRequirement: r,
			Status:              StaffingStatusFor(r.CurrentTAs, r.RequiredTAs),
		})
	}
	return views, nil
}

// Summary aggregates the TA roster and open staffing gaps.
func (s *AssistantService) Summary(ctx context.Context) (*models.AssistantSummary, error) {
	assistants, err := s.assistants.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assistants")
	}
	requirements, err := s.assistants.ListStaffing(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list staffing requirements")
	}

	summary := models.AssistantSummary{TotalAssistants: len(assistants)}
	for _, a := range assistants {
		summary.TotalHoursPerWeek += a.HoursPerWeek
		if a.Status == models.AssistantStatusAvailable {
			summary.AvailableAssistants++
		}
	}
	for _, r := range requirements {
		if r.Gap() > 0 {
			summary.CoursesNeedingTAs++
		}
	}
	return &summary, nil
}
