package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-nexus-api/internal/models"
	"github.com/noah-isme/campus-nexus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-nexus-api/pkg/errors"
	"github.com/noah-isme/campus-nexus-api/pkg/jobs"
)

type paymentRepo interface {
	List(ctx context.Context) ([]models.Payment, error)
	FindByID(ctx context.Context, id string) (*models.Payment, error)
	Create(ctx context.Context, payment models.Payment) error
	Settle(ctx context.Context, paymentID, receipt string) (*models.Payment, error)
}

type settlementQueue interface {
	Enqueue(job jobs.Job) error
}

// RecordPaymentRequest describes a payment submission.
type RecordPaymentRequest struct {
	Category string  `json:"category" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Method   string  `json:"method" validate:"required"`
}

// PaymentResult pairs the recorded payment with its notification event.
type PaymentResult struct {
	Payment      models.Payment      `json:"payment"`
	Notification models.Notification `json:"notification"`
}

// PaymentService records payments and settles them through the background
// queue. Settlement is idempotent per payment id.
type PaymentService struct {
	payments  paymentRepo
	fees      feeReader
	queue     settlementQueue
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

// NewPaymentService creates a service instance. queue may be nil, in which
// case recorded payments stay PENDING until settled explicitly.
func NewPaymentService(payments paymentRepo, fees feeReader, queue settlementQueue, validate *validator.Validate, logger *zap.Logger) *PaymentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{
		payments:  payments,
		fees:      fees,
		queue:     queue,
		validator: validate,
		logger:    logger,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

// AttachQueue wires the settlement queue after construction. The queue's
// handler needs the service, so the two are linked in two steps.
func (s *PaymentService) AttachQueue(queue settlementQueue) {
	s.queue = queue
}

// List returns the payment history.
func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list payments")
	}
	return payments, nil
}

// Get returns a single payment.
func (s *PaymentService) Get(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "payment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load payment")
	}
	return payment, nil
}

// Record validates the submission against the fee ledger, stores the payment
// as PENDING and enqueues its settlement.
func (s *PaymentService) Record(ctx context.Context, req RecordPaymentRequest) (*PaymentResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payment payload")
	}

	fee, err := s.fees.FindByCategory(ctx, req.Category)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "fee category not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load fee")
	}
	if req.Amount > fee.Outstanding() {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("amount exceeds outstanding balance of %.2f", fee.Outstanding()))
	}

	payment := models.Payment{
		ID:       "PAY-" + strings.ToUpper(s.newID()[:8]),
		Date:     s.now().UTC().Format("2006-01-02"),
		Category: req.Category,
		Amount:   req.Amount,
		Method:   req.Method,
		Status:   models.PaymentStatusPending,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record payment")
	}

	if s.queue != nil {
		job := jobs.Job{ID: payment.ID, Type: "payment.settle", Payload: payment.ID}
		if err := s.queue.Enqueue(job); err != nil {
			s.logger.Warn("settlement enqueue failed", zap.String("payment_id", payment.ID), zap.Error(err))
		}
	}

	s.logger.Info("payment recorded", zap.String("payment_id", payment.ID), zap.String("category", payment.Category))
	return &PaymentResult{
		Payment: payment,
		Notification: models.SuccessNotification(
			"Payment Initiated",
			fmt.Sprintf("Processing payment for %s. You will be notified once it settles.", req.Category),
		),
	}, nil
}

// Settle completes the payment and credits its fee line. Safe to retry: a
// completed payment settles to itself.
func (s *PaymentService) Settle(ctx context.Context, paymentID string) (*models.Payment, error) {
	receipt := "REC-" + strings.ToUpper(s.newID()[:8])
	payment, err := s.payments.Settle(ctx, paymentID, receipt)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "payment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to settle payment")
	}
	s.logger.Info("payment settled", zap.String("payment_id", payment.ID), zap.String("receipt", payment.Receipt))
	return payment, nil
}

// SettlementHandler adapts Settle to the jobs queue.
func (s *PaymentService) SettlementHandler() jobs.Handler {
	return func(ctx context.Context, job jobs.Job) error {
		paymentID, ok := job.Payload.(string)
		if !ok {
			return fmt.Errorf("settlement job %s carries unexpected payload", job.ID)
		}
		_, err := s.Settle(ctx, paymentID)
		return err
	}
}
