package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-fleetpay/internal/payroll"
	payrollerrors "go-fleetpay/internal/payroll/errors"
	payrollMock "go-fleetpay/internal/payroll/mock"
	"go-fleetpay/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// fakeReader hands out queued messages and then cancels the consumer.
type fakeReader struct {
	queue     []kafkago.Message
	cancel    context.CancelFunc
	committed []int64
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.queue) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func batchMessage(offset int64, value string) kafkago.Message {
	return kafkago.Message{Offset: offset, Value: []byte(value)}
}

func shortRetryDelay(t *testing.T) {
	prev := retryDelay
	retryDelay = time.Millisecond
	t.Cleanup(func() { retryDelay = prev })
}

func TestConsumePayrollBatchRequested(t *testing.T) {
	shortRetryDelay(t)
	ctrl := gomock.NewController(t)
	svc := payrollMock.NewMockService(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		queue: []kafkago.Message{
			batchMessage(1, `{"event_type":"payroll_batch_requested","request_id":"req-9","month":2,"year":2026,"requested_by":"scheduler"}`),
			batchMessage(2, `not json`),
			batchMessage(3, `{"month":13,"year":2026}`),
			batchMessage(4, `{"month":3,"year":2026}`),
			batchMessage(5, `{"month":4,"year":2026}`),
		},
	}

	gomock.InOrder(
		svc.EXPECT().
			BatchRecompute(gomock.Any(), "scheduler", payroll.BatchRecomputeRequest{Month: 2, Year: 2026}).
			DoAndReturn(func(ctx context.Context, actorID string, req payroll.BatchRecomputeRequest) (payroll.BatchRecomputeResponse, error) {
				assert.Equal(t, "req-9", contextutil.GetRequestID(ctx))
				return payroll.BatchRecomputeResponse{Month: 2, Year: 2026, Processed: 3, Created: 3}, nil
			}),
		svc.EXPECT().
			BatchRecompute(gomock.Any(), "", payroll.BatchRecomputeRequest{Month: 13, Year: 2026}).
			Return(payroll.BatchRecomputeResponse{}, payrollerrors.ErrInvalidPeriod),
		svc.EXPECT().
			BatchRecompute(gomock.Any(), "", payroll.BatchRecomputeRequest{Month: 3, Year: 2026}).
			Return(payroll.BatchRecomputeResponse{}, errors.New("connection refused")),
		svc.EXPECT().
			BatchRecompute(gomock.Any(), "", payroll.BatchRecomputeRequest{Month: 3, Year: 2026}).
			Return(payroll.BatchRecomputeResponse{Month: 3, Year: 2026, Processed: 1}, nil),
		svc.EXPECT().
			BatchRecompute(gomock.Any(), "", payroll.BatchRecomputeRequest{Month: 4, Year: 2026}).
			DoAndReturn(func(ctx context.Context, actorID string, req payroll.BatchRecomputeRequest) (payroll.BatchRecomputeResponse, error) {
				cancel()
				return payroll.BatchRecomputeResponse{Month: 4, Year: 2026, Interrupted: true}, nil
			}),
	)

	ConsumePayrollBatchRequested(ctx, reader, svc, zap.NewNop())

	// 4 is committed only after its retry succeeds; 5 was interrupted by
	// shutdown and stays uncommitted.
	assert.Equal(t, []int64{1, 2, 3, 4}, reader.committed)
}

func TestSettlePayrollBatchMessage_DoesNotMoveOnWhileFailing(t *testing.T) {
	shortRetryDelay(t)
	ctrl := gomock.NewController(t)
	svc := payrollMock.NewMockService(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	attempts := 0
	svc.EXPECT().
		BatchRecompute(gomock.Any(), "", payroll.BatchRecomputeRequest{Month: 3, Year: 2026}).
		DoAndReturn(func(ctx context.Context, actorID string, req payroll.BatchRecomputeRequest) (payroll.BatchRecomputeResponse, error) {
			attempts++
			if attempts == 3 {
				cancel()
			}
			return payroll.BatchRecomputeResponse{}, errors.New("connection refused")
		}).
		Times(3)

	done := settlePayrollBatchMessage(ctx, batchMessage(7, `{"month":3,"year":2026}`), svc, zap.NewNop())

	assert.False(t, done)
	assert.Equal(t, 3, attempts)
}
