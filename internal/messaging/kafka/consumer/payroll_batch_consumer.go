package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go-fleetpay/internal/events"
	"go-fleetpay/internal/payroll"
	"go-fleetpay/internal/shared/apperror"
	"go-fleetpay/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Transient failures are retried in place, starting at retryDelay and
// doubling up to maxRetryDelay.
var (
	retryDelay    = 5 * time.Second
	maxRetryDelay = 2 * time.Minute
)

// ConsumePayrollBatchRequested runs a batch recompute for every
// payroll_batch_requested event. The offset is committed once the batch has
// run or can never run. A transient failure or interrupted batch is retried
// before the next message is fetched, since a group commit of a later offset
// would also cover the failed one. On shutdown the message stays uncommitted
// and the group resumes from it.
func ConsumePayrollBatchRequested(
	ctx context.Context,
	reader MessageReader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_batch")
	log.Info("payroll batch consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll batch consumer stopped")
				return
			}
			log.Error("fetch payroll batch message failed", zap.Error(err))
			continue
		}

		if !settlePayrollBatchMessage(ctx, msg, payrollService, log) {
			log.Info("payroll batch consumer stopped", zap.Int64("uncommitted_offset", msg.Offset))
			return
		}
		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll batch message failed", zap.Error(err))
		}
	}
}

// settlePayrollBatchMessage handles msg until it is done with. It reports
// false when ctx ends first.
func settlePayrollBatchMessage(
	ctx context.Context,
	msg kafkago.Message,
	payrollService payroll.Service,
	log *zap.Logger,
) bool {
	delay := retryDelay
	for !handlePayrollBatchMessage(ctx, msg, payrollService, log) {
		if ctx.Err() != nil {
			return false
		}
		log.Warn("retrying payroll batch message",
			zap.Int64("offset", msg.Offset),
			zap.Duration("delay", delay),
		)
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}
		delay = min(delay*2, maxRetryDelay)
	}
	return true
}

// handlePayrollBatchMessage reports whether the message is done with.
func handlePayrollBatchMessage(
	ctx context.Context,
	msg kafkago.Message,
	payrollService payroll.Service,
	log *zap.Logger,
) bool {
	var event events.PayrollBatchRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode payroll_batch_requested event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return true
	}

	if event.RequestID != "" {
		ctx = contextutil.WithRequestID(ctx, event.RequestID)
	}

	resp, err := payrollService.BatchRecompute(ctx, event.RequestedBy, payroll.BatchRecomputeRequest{
		Month: event.Month,
		Year:  event.Year,
	})
	if err != nil {
		if isPermanent(err) {
			log.Warn("payroll batch rejected, dropping event",
				zap.Int("month", event.Month),
				zap.Int("year", event.Year),
				zap.Error(err),
			)
			return true
		}
		log.Error("payroll batch failed",
			zap.Int("month", event.Month),
			zap.Int("year", event.Year),
			zap.Error(err),
		)
		return false
	}

	if resp.Interrupted {
		log.Warn("payroll batch interrupted",
			zap.Int("month", event.Month),
			zap.Int("year", event.Year),
			zap.Int("processed", resp.Processed),
		)
		return false
	}

	log.Info("payroll batch processed",
		zap.String("request_id", event.RequestID),
		zap.Int("month", resp.Month),
		zap.Int("year", resp.Year),
		zap.Int("created", resp.Created),
		zap.Int("recalculated", resp.Recalculated),
		zap.Int("skipped", resp.Skipped),
		zap.Int("failed", resp.Failed),
	)
	return true
}

// isPermanent treats client-side app errors (bad period and the like) as
// never going to succeed on retry.
func isPermanent(err error) bool {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus >= http.StatusBadRequest && appErr.HTTPStatus < http.StatusInternalServerError
	}
	return false
}
