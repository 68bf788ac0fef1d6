package repository

import (
	"context"

	"github.com/noah-isme/campus-nexus-api/internal/models"
)

// StudentRepository manages the student profile records.
type StudentRepository struct {
	db *DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByID returns a student profile.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	idx := r.db.studentIndex(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	s := r.db.students[idx]
	return &s, nil
}

// Update replaces the stored record with the given one.
func (r *StudentRepository) Update(ctx context.Context, student models.Student) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	idx := r.db.studentIndex(student.ID)
	if idx < 0 {
		return ErrNotFound
	}
	r.db.students[idx] = student
	return nil
}
