package producer

import (
	"context"
	"errors"
	"time"

	"go-fleetpay/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	batchSize    = 50
	claimLease   = 30 * time.Second
	defaultPoll  = 3 * time.Second
	sentRetained = 7 * 24 * time.Hour
)

// Relay moves committed outbox rows onto Kafka. Several relays may run
// against the same table; ClaimPending keeps them from double-sending a row
// while its lease is live.
type Relay struct {
	repo         kafka.OutboxRepository
	writer       MessageWriter
	logger       *zap.Logger
	pollInterval time.Duration
}

func NewRelay(repo kafka.OutboxRepository, writer MessageWriter, logger *zap.Logger, pollInterval time.Duration) *Relay {
	if pollInterval <= 0 {
		pollInterval = defaultPoll
	}
	return &Relay{
		repo:         repo,
		writer:       writer,
		logger:       logger.Named("kafka.producer.relay"),
		pollInterval: pollInterval,
	}
}

// Run polls until ctx is cancelled. A full batch is followed immediately by
// another claim instead of waiting for the next tick.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	r.logger.Info("outbox relay started", zap.Duration("poll_interval", r.pollInterval))
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return
		case <-ticker.C:
		}

		for {
			n, err := r.Flush(ctx)
			if err != nil {
				r.logger.Error("outbox flush failed", zap.Error(err))
				break
			}
			if n < batchSize || ctx.Err() != nil {
				break
			}
		}
	}
}

// Flush claims one batch, publishes it and settles every row. It returns the
// number of rows claimed.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	events, err := r.repo.ClaimPending(ctx, batchSize, claimLease)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	msgs := make([]kafkago.Message, len(events))
	for i, e := range events {
		msgs[i] = buildMessage(e)
	}

	writeErr := r.writer.WriteMessages(ctx, msgs...)
	var perMessage kafkago.WriteErrors
	perMessageKnown := errors.As(writeErr, &perMessage) && len(perMessage) == len(events)

	sent := 0
	for i, e := range events {
		err := writeErr
		if perMessageKnown {
			err = perMessage[i]
		}
		if err != nil {
			r.logger.Warn("publish outbox event failed",
				zap.String("outbox_id", e.ID),
				zap.String("event_type", e.EventType),
				zap.Int("retry_count", e.RetryCount),
				zap.Error(err),
			)
			if markErr := r.repo.MarkFailed(ctx, e.ID, err.Error()); markErr != nil {
				r.logger.Error("mark outbox failed", zap.String("outbox_id", e.ID), zap.Error(markErr))
			}
			continue
		}
		if err := r.repo.MarkSent(ctx, e.ID); err != nil {
			r.logger.Error("mark outbox sent", zap.String("outbox_id", e.ID), zap.Error(err))
			continue
		}
		sent++
	}

	r.logger.Debug("outbox batch flushed", zap.Int("claimed", len(events)), zap.Int("sent", sent))
	return len(events), nil
}

// Purge drops delivered rows older than a week.
func (r *Relay) Purge(ctx context.Context) {
	n, err := r.repo.PurgeSent(ctx, sentRetained)
	if err != nil {
		r.logger.Error("purge sent outbox events failed", zap.Error(err))
		return
	}
	r.logger.Info("purged sent outbox events", zap.Int64("deleted", n))
}
