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

type mockCourseReader struct {
	courses []models.Course
}

func (m *mockCourseReader) List(ctx context.Context) ([]models.Course, error) {
	return m.courses, nil
}

func (m *mockCourseReader) FindByID(ctx context.Context, id string) (*models.Course, error) {
	for _, c := range m.courses {
		if c.ID == id {
			course := c
			return &course, nil
		}
	}
	return nil, repository.ErrNotFound
}

func catalogFixture() *mockCourseReader {
	return &mockCourseReader{courses: []models.Course{
		{ID: "CS401", Name: "Machine Learning", Instructor: "Dr. Alex Kumar", Enrolled: 45, Capacity: 50, Department: "Computer Science", Term: "Fall 2024", Status: models.CourseStatusAssigned},
		{ID: "CS402", Name: "Software Engineering", Instructor: "Prof. Lisa Wang", Enrolled: 38, Capacity: 40, Department: "Computer Science", Term: "Fall 2024", Status: models.CourseStatusUnassigned},
		{ID: "MATH301", Name: "Linear Algebra", Instructor: "Dr. Jennifer Taylor", Enrolled: 30, Capacity: 45, Department: "Mathematics", Term: "Fall 2024", Status: models.CourseStatusUnassigned},
	}}
}

func TestCourseServiceListNoFilterReturnsAllInOrder(t *testing.T) {
	svc := NewCourseService(catalogFixture(), DefaultSeatBands, zap.NewNop())

	views, err := svc.List(context.Background(), models.CourseFilter{})
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "CS401", views[0].ID)
	assert.Equal(t, "CS402", views[1].ID)
	assert.Equal(t, "MATH301", views[2].ID)
}

func TestCourseServiceListTextFilter(t *testing.T) {
	svc := NewCourseService(catalogFixture(), DefaultSeatBands, zap.NewNop())

	views, err := svc.List(context.Background(), models.CourseFilter{Query: "machine"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "CS401", views[0].ID)

	// substring of the instructor name, mixed case
	views, err = svc.List(context.Background(), models.CourseFilter{Query: "WANG"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "CS402", views[0].ID)

	// substring of the id
	views, err = svc.List(context.Background(), models.CourseFilter{Query: "math3"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "MATH301", views[0].ID)
}

func TestCourseServiceListCategoricalFilter(t *testing.T) {
	svc := NewCourseService(catalogFixture(), DefaultSeatBands, zap.NewNop())

	views, err := svc.List(context.Background(), models.CourseFilter{Department: "Mathematics"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "MATH301", views[0].ID)

	// "all" is a wildcard regardless of case
	views, err = svc.List(context.Background(), models.CourseFilter{Department: "All", Term: "all"})
	require.NoError(t, err)
	assert.Len(t, views, 3)

	// criteria are ANDed
	views, err = svc.List(context.Background(), models.CourseFilter{Query: "engineering", Department: "Mathematics"})
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestCourseServiceListNoMatchIsEmptyNotError(t *testing.T) {
	svc := NewCourseService(catalogFixture(), DefaultSeatBands, zap.NewNop())

	views, err := svc.List(context.Background(), models.CourseFilter{Query: "quantum basket weaving"})
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestCourseServiceListSeatFill(t *testing.T) {
	svc := NewCourseService(catalogFixture(), DefaultSeatBands, zap.NewNop())

	views, err := svc.List(context.Background(), models.CourseFilter{})
	require.NoError(t, err)
	require.Len(t, views, 3)
	// 45/50 = 0.9 is high, 38/40 = 0.95 is high, 30/45 is low
	assert.Equal(t, models.BandHigh, views[0].SeatFill.Band)
	assert.Equal(t, models.BandHigh, views[1].SeatFill.Band)
	assert.Equal(t, models.BandLow, views[2].SeatFill.Band)
}

func TestCourseServiceGetNotFound(t *testing.T) {
	svc := NewCourseService(catalogFixture(), DefaultSeatBands, zap.NewNop())

	_, err := svc.Get(context.Background(), "CS999")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestCourseServiceSummary(t *testing.T) {
	svc := NewCourseService(catalogFixture(), DefaultSeatBands, zap.NewNop())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Assigned)
	assert.Equal(t, 2, summary.Unassigned)
}
