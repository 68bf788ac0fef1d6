package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-nexus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-nexus-api/pkg/errors"
)

type memoryCacheRepo struct {
	entries map[string][]byte
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.entries == nil {
		m.entries = make(map[string][]byte)
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	m.entries = make(map[string][]byte)
	return nil
}

func newDashboardFixture(cache *CacheService) *DashboardService {
	db := repository.Seed()
	courses := repository.NewCourseRepository(db)
	assistants := repository.NewAssistantRepository(db)
	return NewDashboardService(DashboardServiceParams{
		Courses:     NewCourseService(courses, DefaultSeatBands, zap.NewNop()),
		Enrollments: NewEnrollmentService(repository.NewEnrollmentRepository(db), courses, nil, zap.NewNop()),
		Fees:        NewFeeService(repository.NewFeeRepository(db), 0, zap.NewNop()),
		Lecturers:   NewLecturerService(repository.NewLecturerRepository(db), courses, DefaultLoadBands, zap.NewNop()),
		Assistants:  NewAssistantService(assistants, DefaultLoadBands, zap.NewNop()),
		Cache:       cache,
		Logger:      zap.NewNop(),
	})
}

func TestDashboardOverviewComposesSummaries(t *testing.T) {
	svc := newDashboardFixture(nil)

	overview, cached, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)

	assert.Equal(t, 4, overview.Courses.Total)
	assert.Equal(t, 1, overview.Courses.Assigned)
	assert.Equal(t, 3, overview.Courses.Unassigned)
	assert.Equal(t, 3, overview.Enrollment.Courses)
	assert.Equal(t, 10, overview.Enrollment.TotalCredits)
	assert.Equal(t, 89, overview.Fees.PercentPaid)
	assert.Equal(t, 4, overview.Lecturers.TotalLecturers)
	assert.Equal(t, 4, overview.Lecturers.ActiveLecturers)
	assert.Equal(t, 4, overview.Assistants.TotalAssistants)
	assert.Equal(t, 3, overview.Assistants.AvailableAssistants)
	assert.Equal(t, 2, overview.Assistants.CoursesNeedingTAs)
	assert.NotEmpty(t, overview.GeneratedAt)
}

func TestDashboardOverviewUsesCache(t *testing.T) {
	cache := NewCacheService(&memoryCacheRepo{}, nil, time.Minute, zap.NewNop(), true)
	svc := newDashboardFixture(cache)

	_, cached, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)

	overview, cached, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, 4, overview.Courses.Total)

	svc.InvalidateOverview(context.Background())
	_, cached, err = svc.Overview(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
}
