package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-nexus-api/internal/models"
	appErrors "github.com/noah-isme/campus-nexus-api/pkg/errors"
)

type feeReader interface {
	List(ctx context.Context) ([]models.Fee, error)
	FindByCategory(ctx context.Context, category string) (*models.Fee, error)
}

// FeeService exposes the fee ledger with derived statuses and totals.
type FeeService struct {
	fees         feeReader
	partialFloor float64
	logger       *zap.Logger
}

// NewFeeService creates a service instance. partialFloor is the minimum paid
// amount for a fee to count as PARTIAL.
func NewFeeService(fees feeReader, partialFloor float64, logger *zap.Logger) *FeeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeeService{fees: fees, partialFloor: partialFloor, logger: logger}
}

// List returns every fee line with its derived status, plus the ledger
// summary.
func (s *FeeService) List(ctx context.Context) ([]models.FeeView, *models.FeeSummary, error) {
	fees, err := s.fees.List(ctx)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list fees")
	}

	views := make([]models.FeeView, 0, len(fees))
	for _, fee := range fees {
		views = append(views, models.FeeView{Fee: fee, Status: fee.StatusWith(s.partialFloor)})
	}
	summary := SummarizeFees(fees)
	return views, &summary, nil
}

// Summary folds the ledger into its totals.
func (s *FeeService) Summary(ctx context.Context) (*models.FeeSummary, error) {
	fees, err := s.fees.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list fees")
	}
	summary := SummarizeFees(fees)
	return &summary, nil
}
