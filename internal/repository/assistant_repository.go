package repository

import (
	"context"

	"github.com/noah-isme/campus-nexus-api/internal/models"
)

// AssistantRepository reads the TA roster and the per-course staffing
// requirements.
type AssistantRepository struct {
	db *DB
}

// NewAssistantRepository constructs an AssistantRepository.
func NewAssistantRepository(db *DB) *AssistantRepository {
	return &AssistantRepository{db: db}
}

// List returns every teaching assistant in seeded order.
func (r *AssistantRepository) List(ctx context.Context) ([]models.TeachingAssistant, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.TeachingAssistant, 0, len(r.db.assistants))
	for _, a := range r.db.assistants {
		out = append(out, copyAssistant(a))
	}
	return out, nil
}

// FindByID returns a single teaching assistant.
func (r *AssistantRepository) FindByID(ctx context.Context, id string) (*models.TeachingAssistant, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	idx := r.db.assistantIndex(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	a := copyAssistant(r.db.assistants[idx])
	return &a, nil
}

// ListStaffing returns the staffing requirements in seeded order.
func (r *AssistantRepository) ListStaffing(ctx context.Context) ([]models.StaffingRequirement, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.StaffingRequirement, len(r.db.staffing))
	copy(out, r.db.staffing)
	return out, nil
}

// FindStaffingByCourse returns the requirement record for the course.
func (r *AssistantRepository) FindStaffingByCourse(ctx context.Context, courseID string) (*models.StaffingRequirement, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	idx := r.db.staffingIndex(courseID)
	if idx < 0 {
		return nil, ErrNotFound
	}
	req := r.db.staffing[idx]
	return &req, nil
}
