package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-fleetpay/internal/payroll"
	payrollMock "go-fleetpay/internal/payroll/mock"
	"go-fleetpay/internal/shared/contextutil"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestRequestPreviousMonthBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := payrollMock.NewMockService(ctrl)

	t.Run("january run queues december", func(t *testing.T) {
		svc.EXPECT().
			RequestBatch(gomock.Any(), schedulerActor, payroll.BatchRecomputeRequest{Month: 12, Year: 2025}).
			DoAndReturn(func(ctx context.Context, actorID string, req payroll.BatchRecomputeRequest) (payroll.BatchRequestedResponse, error) {
				assert.NotEmpty(t, contextutil.GetRequestID(ctx))
				return payroll.BatchRequestedResponse{Month: 12, Year: 2025}, nil
			})

		requestPreviousMonthBatch(context.Background(), svc, time.Date(2026, 1, 1, 3, 0, 0, 0, time.UTC), zap.NewNop())
	})

	t.Run("queue failure is logged only", func(t *testing.T) {
		svc.EXPECT().
			RequestBatch(gomock.Any(), schedulerActor, payroll.BatchRecomputeRequest{Month: 2, Year: 2026}).
			Return(payroll.BatchRequestedResponse{}, errors.New("outbox down"))

		requestPreviousMonthBatch(context.Background(), svc, time.Date(2026, 3, 1, 3, 0, 0, 0, time.UTC), zap.NewNop())
	})
}

func TestDefaultBatchCronParses(t *testing.T) {
	schedule, err := cron.ParseStandard("0 3 1 * *")
	assert.NoError(t, err)

	next := schedule.Next(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 4, 1, 3, 0, 0, 0, time.UTC), next)
}

func TestOutboxPurgeCronParses(t *testing.T) {
	schedule, err := cron.ParseStandard(outboxPurgeCron)
	assert.NoError(t, err)

	next := schedule.Next(time.Date(2026, 3, 15, 5, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 16, 4, 30, 0, 0, time.UTC), next)
}
