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

func newLecturerFixture() *LecturerService {
	db := repository.Seed()
	return NewLecturerService(
		repository.NewLecturerRepository(db),
		repository.NewCourseRepository(db),
		DefaultLoadBands,
		zap.NewNop(),
	)
}

func TestLecturerServiceListClassifiesWorkload(t *testing.T) {
	svc := newLecturerFixture()

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 4)

	byID := make(map[string]models.LecturerView, len(views))
	for _, v := range views {
		byID[v.ID] = v
	}
	// 2 of 4 courses is low, 2 of 3 is medium, 0 of 3 is low
	assert.Equal(t, models.BandLow, byID["LEC001"].Workload.Band)
	assert.Equal(t, models.BandMedium, byID["LEC002"].Workload.Band)
	assert.Equal(t, models.BandLow, byID["LEC004"].Workload.Band)
}

func TestLecturerServiceGetNotFound(t *testing.T) {
	svc := newLecturerFixture()

	_, err := svc.Get(context.Background(), "LEC999")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestLecturerServiceSummary(t *testing.T) {
	svc := newLecturerFixture()

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalLecturers)
	assert.Equal(t, 4, summary.ActiveLecturers)
	assert.Equal(t, 4, summary.TotalCourses)
	assert.Equal(t, 1, summary.AssignedCourses)
	assert.Equal(t, 3, summary.UnassignedCourses)
}
