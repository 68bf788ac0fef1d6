package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-nexus-api/internal/models"
	"github.com/noah-isme/campus-nexus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-nexus-api/pkg/errors"
	"github.com/noah-isme/campus-nexus-api/pkg/export"
)

// ReportFormat selects statement output encoding.
type ReportFormat string

// Supported formats.
const (
	FormatCSV ReportFormat = "csv"
	FormatPDF ReportFormat = "pdf"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
	RenderDocument(title string, fields []export.Field) ([]byte, error)
}

// ExportResult carries a rendered document and its download metadata.
type ExportResult struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders fee statements and payment receipts for download.
// Statements are generated on demand and streamed straight to the caller.
type ExportService struct {
	fees         feeReader
	payments     paymentRepo
	csv          csvRenderer
	pdf          pdfRenderer
	partialFloor float64
	logger       *zap.Logger
	now          func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(fees feeReader, payments paymentRepo, partialFloor float64, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		fees:         fees,
		payments:     payments,
		csv:          csv,
		pdf:          pdf,
		partialFloor: partialFloor,
		logger:       logger,
		now:          time.Now,
	}
}

// Statement renders the fee ledger with derived statuses and the summary row.
func (s *ExportService) Statement(ctx context.Context, format ReportFormat) (*ExportResult, error) {
	fees, err := s.fees.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load fee ledger")
	}

	summary := SummarizeFees(fees)
	dataset := export.Dataset{
		Headers: []string{"Category", "Amount", "Paid", "Outstanding", "Due Date", "Status"},
	}
	for _, f := range fees {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Category":    f.Category,
			"Amount":      fmt.Sprintf("%.2f", f.Amount),
			"Paid":        fmt.Sprintf("%.2f", f.Paid),
			"Outstanding": fmt.Sprintf("%.2f", f.Outstanding()),
			"Due Date":    f.DueDate,
			"Status":      string(f.StatusWith(s.partialFloor)),
		})
	}
	dataset.Rows = append(dataset.Rows, map[string]string{
		"Category":    "TOTAL",
		"Amount":      fmt.Sprintf("%.2f", summary.TotalAmount),
		"Paid":        fmt.Sprintf("%.2f", summary.TotalPaid),
		"Outstanding": fmt.Sprintf("%.2f", summary.TotalOutstanding),
		"Status":      fmt.Sprintf("%d%% paid", summary.PercentPaid),
	})

	stamp := s.now().UTC().Format("20060102")
	switch format {
	case FormatPDF:
		payload, err := s.pdf.Render(dataset, "Fee Statement")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render statement")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("fee-statement-%s.pdf", stamp),
			ContentType: "application/pdf",
			Payload:     payload,
		}, nil
	case FormatCSV, "":
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render statement")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("fee-statement-%s.csv", stamp),
			ContentType: "text/csv",
			Payload:     payload,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported format %q", format))
	}
}

// Receipt renders the receipt document for a settled payment.
func (s *ExportService) Receipt(ctx context.Context, paymentID string) (*ExportResult, error) {
	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "payment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load payment")
	}
	if payment.Status != models.PaymentStatusCompleted || payment.Receipt == "" {
		return nil, appErrors.Clone(appErrors.ErrConflict, "payment has not settled yet")
	}

	fields := []export.Field{
		{Label: "Receipt No", Value: payment.Receipt},
		{Label: "Payment ID", Value: payment.ID},
		{Label: "Date", Value: payment.Date},
		{Label: "Category", Value: payment.Category},
		{Label: "Amount", Value: fmt.Sprintf("%.2f", payment.Amount)},
		{Label: "Method", Value: payment.Method},
		{Label: "Status", Value: string(payment.Status)},
	}
	payload, err := s.pdf.RenderDocument("Payment Receipt", fields)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render receipt")
	}

	s.logger.Info("receipt rendered", zap.String("payment_id", payment.ID))
	return &ExportResult{
		Filename:    fmt.Sprintf("receipt-%s.pdf", strings.ToLower(payment.Receipt)),
		ContentType: "application/pdf",
		Payload:     payload,
	}, nil
}
