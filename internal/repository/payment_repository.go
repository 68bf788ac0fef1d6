package repository

import (
	"context"

	"github.com/noah-isme/campus-nexus-api/internal/models"
)

// PaymentRepository manages the payment history ledger. Settlement applies
// the paid amount to the matching fee line in the same locked section, and is
// idempotent per payment id so a retried settlement job can never credit a
// fee twice.
type PaymentRepository struct {
	db *DB
}

// NewPaymentRepository constructs a PaymentRepository.
func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// List returns the payment history in seeded order.
func (r *PaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.Payment, len(r.db.payments))
	copy(out, r.db.payments)
	return out, nil
}

// FindByID returns a single payment.
func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	idx := r.db.paymentIndex(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	p := r.db.payments[idx]
	return &p, nil
}

// Create appends a new payment record. The id must be unique.
func (r *PaymentRepository) Create(ctx context.Context, payment models.Payment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.db.paymentIndex(payment.ID) >= 0 {
		return ErrConflict
	}
	r.db.payments = append(r.db.payments, payment)
	return nil
}

// Settle marks the payment COMPLETED with the receipt reference and credits
// the paid amount to its fee category, capped at the fee's total. Settling an
// already-completed payment is a no-op.
func (r *PaymentRepository) Settle(ctx context.Context, paymentID, receipt string) (*models.Payment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	pi := r.db.paymentIndex(paymentID)
	if pi < 0 {
		return nil, ErrNotFound
	}
	payment := r.db.payments[pi]
	if payment.Status == models.PaymentStatusCompleted {
		return &payment, nil
	}

	if fi := r.db.feeIndex(payment.Category); fi >= 0 {
		fee := r.db.fees[fi]
		fee.Paid += payment.Amount
		if fee.Paid > fee.Amount {
			fee.Paid = fee.Amount
		}
		r.db.fees[fi] = fee
	}

	payment.Status = models.PaymentStatusCompleted
	payment.Receipt = receipt
	r.db.payments[pi] = payment
	return &payment, nil
}
