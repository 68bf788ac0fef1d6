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
	"github.com/noah-isme/campus-nexus-api/pkg/jobs"
)

type recordingQueue struct {
	jobs []jobs.Job
}

func (q *recordingQueue) Enqueue(job jobs.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

type paymentFixture struct {
	svc   *PaymentService
	fees  *repository.FeeRepository
	queue *recordingQueue
}

func newPaymentFixture() *paymentFixture {
	db := repository.Seed()
	fees := repository.NewFeeRepository(db)
	queue := &recordingQueue{}
	svc := NewPaymentService(repository.NewPaymentRepository(db), fees, queue, nil, zap.NewNop())
	return &paymentFixture{svc: svc, fees: fees, queue: queue}
}

func TestPaymentServiceList(t *testing.T) {
	f := newPaymentFixture()

	payments, err := f.svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, payments, 3)
	assert.Equal(t, "PAY-001", payments[0].ID)
}

func TestPaymentServiceRecordEnqueuesSettlement(t *testing.T) {
	f := newPaymentFixture()

	result, err := f.svc.Record(context.Background(), RecordPaymentRequest{
		Category: "Sports Fee",
		Amount:   500,
		Method:   "Credit Card",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, result.Payment.Status)
	assert.Empty(t, result.Payment.Receipt)
	assert.Equal(t, models.SeveritySuccess, result.Notification.Severity)

	require.Len(t, f.queue.jobs, 1)
	assert.Equal(t, "payment.settle", f.queue.jobs[0].Type)
	assert.Equal(t, result.Payment.ID, f.queue.jobs[0].Payload)
}

func TestPaymentServiceRecordExceedsOutstanding(t *testing.T) {
	f := newPaymentFixture()

	// Sports Fee has 1000 outstanding
	_, err := f.svc.Record(context.Background(), RecordPaymentRequest{
		Category: "Sports Fee",
		Amount:   1500,
		Method:   "Credit Card",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, f.queue.jobs)
}

func TestPaymentServiceRecordUnknownCategory(t *testing.T) {
	f := newPaymentFixture()

	_, err := f.svc.Record(context.Background(), RecordPaymentRequest{
		Category: "Parking Fee",
		Amount:   100,
		Method:   "Cash",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestPaymentServiceSettleCreditsFee(t *testing.T) {
	f := newPaymentFixture()

	result, err := f.svc.Record(context.Background(), RecordPaymentRequest{
		Category: "Sports Fee",
		Amount:   500,
		Method:   "Credit Card",
	})
	require.NoError(t, err)

	settled, err := f.svc.Settle(context.Background(), result.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, settled.Status)
	assert.NotEmpty(t, settled.Receipt)

	fee, err := f.fees.FindByCategory(context.Background(), "Sports Fee")
	require.NoError(t, err)
	assert.Equal(t, float64(500), fee.Paid)
}

func TestPaymentServiceSettleIsIdempotent(t *testing.T) {
	f := newPaymentFixture()

	first, err := f.svc.Settle(context.Background(), "PAY-003")
	require.NoError(t, err)
	second, err := f.svc.Settle(context.Background(), "PAY-003")
	require.NoError(t, err)
	assert.Equal(t, first.Receipt, second.Receipt)

	// the laboratory fee was already fully paid; crediting stays capped
	fee, err := f.fees.FindByCategory(context.Background(), "Laboratory Fee")
	require.NoError(t, err)
	assert.Equal(t, fee.Amount, fee.Paid)
}

func TestPaymentServiceSettlementHandler(t *testing.T) {
	f := newPaymentFixture()

	handler := f.svc.SettlementHandler()
	err := handler(context.Background(), jobs.Job{ID: "PAY-003", Type: "payment.settle", Payload: "PAY-003"})
	require.NoError(t, err)

	payment, err := f.svc.Get(context.Background(), "PAY-003")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, payment.Status)

	// malformed payloads fail permanently instead of retrying forever
	err = handler(context.Background(), jobs.Job{ID: "bad", Payload: 42})
	require.Error(t, err)
}
