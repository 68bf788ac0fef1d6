package repository

import (
	"context"

	"github.com/noah-isme/campus-nexus-api/internal/models"
)

// FeeRepository reads the fee ledger.
type FeeRepository struct {
	db *DB
}

// NewFeeRepository constructs a FeeRepository.
func NewFeeRepository(db *DB) *FeeRepository {
	return &FeeRepository{db: db}
}

// List returns every fee line in seeded order.
func (r *FeeRepository) List(ctx context.Context) ([]models.Fee, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.Fee, len(r.db.fees))
	copy(out, r.db.fees)
	return out, nil
}

// FindByCategory returns the fee line for the category.
func (r *FeeRepository) FindByCategory(ctx context.Context, category string) (*models.Fee, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	idx := r.db.feeIndex(category)
	if idx < 0 {
		return nil, ErrNotFound
	}
	fee := r.db.fees[idx]
	return &fee, nil
}
