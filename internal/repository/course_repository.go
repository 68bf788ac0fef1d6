package repository

import (
	"context"

	"github.com/noah-isme/campus-nexus-api/internal/models"
)

// CourseRepository reads the course catalog.
type CourseRepository struct {
	db *DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns every catalog course in seeded order.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.Course, 0, len(r.db.courses))
	for _, c := range r.db.courses {
		out = append(out, copyCourse(c))
	}
	return out, nil
}

// FindByID returns a single course.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	idx := r.db.courseIndex(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	c := copyCourse(r.db.courses[idx])
	return &c, nil
}
