package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-nexus-api/internal/dto"
	"github.com/noah-isme/campus-nexus-api/internal/models"
)

const dashboardCacheKey = "dashboard:overview"

type courseSummarizer interface {
	Summary(ctx context.Context) (*models.CourseSummary, error)
}

type enrollmentSummarizer interface {
	List(ctx context.Context) ([]models.EnrolledCourse, *models.EnrollmentSummary, error)
}

type feeSummarizer interface {
	Summary(ctx context.Context) (*models.FeeSummary, error)
}

type lecturerSummarizer interface {
	Summary(ctx context.Context) (*models.LecturerSummary, error)
}

type assistantSummarizer interface {
	Summary(ctx context.Context) (*models.AssistantSummary, error)
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Courses     courseSummarizer
	Enrollments enrollmentSummarizer
	Fees        feeSummarizer
	Lecturers   lecturerSummarizer
	Assistants  assistantSummarizer
	Cache       *CacheService
	Logger      *zap.Logger
	CacheTTL    time.Duration
}

// DashboardService composes per-module summaries into the landing payload.
type DashboardService struct {
	courses     courseSummarizer
	enrollments enrollmentSummarizer
	fees        feeSummarizer
	lecturers   lecturerSummarizer
	assistants  assistantSummarizer
	cache       *CacheService
	logger      *zap.Logger
	now         func() time.Time
	cacheTTL    time.Duration
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	ttl := params.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		courses:     params.Courses,
		enrollments: params.Enrollments,
		fees:        params.Fees,
		lecturers:   params.Lecturers,
		assistants:  params.Assistants,
		cache:       params.Cache,
		logger:      logger,
		now:         time.Now,
		cacheTTL:    ttl,
	}
}

// Overview returns the composed dashboard summary and indicates cache
// utilisation.
func (s *DashboardService) Overview(ctx context.Context) (*dto.DashboardOverviewResponse, bool, error) {
	if s.cache.Enabled() {
		var cached dto.DashboardOverviewResponse
		if hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	courses, err := s.courses.Summary(ctx)
	if err != nil {
		return nil, false, err
	}
	_, enrollment, err := s.enrollments.List(ctx)
	if err != nil {
		return nil, false, err
	}
	fees, err := s.fees.Summary(ctx)
	if err != nil {
		return nil, false, err
	}
	lecturers, err := s.lecturers.Summary(ctx)
	if err != nil {
		return nil, false, err
	}
	assistants, err := s.assistants.Summary(ctx)
	if err != nil {
		return nil, false, err
	}

	resp := &dto.DashboardOverviewResponse{
		Courses:     *courses,
		Enrollment:  *enrollment,
		Fees:        *fees,
		Lecturers:   *lecturers,
		Assistants:  *assistants,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
	}

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, dashboardCacheKey, resp, s.cacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return resp, false, nil
}

// InvalidateOverview drops the cached dashboard payload. Called after any
// mutation that changes a summary.
func (s *DashboardService) InvalidateOverview(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, dashboardCacheKey); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}
