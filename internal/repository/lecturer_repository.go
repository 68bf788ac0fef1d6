package repository

import (
	"context"

	"github.com/noah-isme/campus-nexus-api/internal/models"
)

// LecturerRepository reads the faculty roster.
type LecturerRepository struct {
	db *DB
}

// NewLecturerRepository constructs a LecturerRepository.
func NewLecturerRepository(db *DB) *LecturerRepository {
	return &LecturerRepository{db: db}
}

// List returns every lecturer in seeded order.
func (r *LecturerRepository) List(ctx context.Context) ([]models.Lecturer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.Lecturer, 0, len(r.db.lecturers))
	for _, l := range r.db.lecturers {
		out = append(out, copyLecturer(l))
	}
	return out, nil
}

// FindByID returns a single lecturer.
func (r *LecturerRepository) FindByID(ctx context.Context, id string) (*models.Lecturer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	idx := r.db.lecturerIndex(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	l := copyLecturer(r.db.lecturers[idx])
	return &l, nil
}
