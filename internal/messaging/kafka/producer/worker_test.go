package producer

import (
	"context"
	"errors"
	"testing"

	"go-fleetpay/internal/messaging/kafka"
	kafkaMock "go-fleetpay/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// fakeWriter fails the messages whose key is in failFor and reports them the
// way kafka-go does for a batch.
type fakeWriter struct {
	written []kafkago.Message
	failFor map[string]error
	err     error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	var errs kafkago.WriteErrors
	failed := false
	for _, m := range msgs {
		err := w.failFor[string(m.Key)]
		errs = append(errs, err)
		if err != nil {
			failed = true
			continue
		}
		w.written = append(w.written, m)
	}
	if failed {
		return errs
	}
	return nil
}

func paidEvent(id, aggregateID string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            id,
		RequestID:     "req-1",
		AggregateType: "payroll",
		AggregateID:   aggregateID,
		EventType:     "payroll_paid",
		Topic:         "fleet.payroll.paid.v1",
		Payload:       []byte(`{"payroll_id":"` + aggregateID + `"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestRelay_Flush(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ClaimPending(gomock.Any(), batchSize, claimLease).Return([]kafka.OutboxEvent{paidEvent("o-1", "p-1")}, nil)
		repo.EXPECT().MarkSent(gomock.Any(), "o-1").Return(nil)

		n, err := NewRelay(repo, writer, zap.NewNop(), 0).Flush(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, n)
		if assert.Len(t, writer.written, 1) {
			msg := writer.written[0]
			assert.Equal(t, "fleet.payroll.paid.v1", msg.Topic)
			assert.Equal(t, "p-1", string(msg.Key))
			assert.Len(t, msg.Headers, 4)
		}
	})

	t.Run("per message failure only fails that row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failFor: map[string]error{"p-1": errors.New("leader not available")}}

		repo.EXPECT().ClaimPending(gomock.Any(), batchSize, claimLease).Return([]kafka.OutboxEvent{
			paidEvent("o-1", "p-1"),
			paidEvent("o-2", "p-2"),
		}, nil)
		repo.EXPECT().MarkFailed(gomock.Any(), "o-1", "leader not available").Return(nil)
		repo.EXPECT().MarkSent(gomock.Any(), "o-2").Return(nil)

		n, err := NewRelay(repo, writer, zap.NewNop(), 0).Flush(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Len(t, writer.written, 1)
	})

	t.Run("whole batch failure fails every row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{err: errors.New("broker unreachable")}

		repo.EXPECT().ClaimPending(gomock.Any(), batchSize, claimLease).Return([]kafka.OutboxEvent{
			paidEvent("o-1", "p-1"),
			paidEvent("o-2", "p-2"),
		}, nil)
		repo.EXPECT().MarkFailed(gomock.Any(), "o-1", "broker unreachable").Return(nil)
		repo.EXPECT().MarkFailed(gomock.Any(), "o-2", "broker unreachable").Return(nil)

		_, err := NewRelay(repo, writer, zap.NewNop(), 0).Flush(ctx)

		assert.NoError(t, err)
	})

	t.Run("claim error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ClaimPending(gomock.Any(), batchSize, claimLease).Return(nil, errors.New("db down"))

		_, err := NewRelay(repo, &fakeWriter{}, zap.NewNop(), 0).Flush(ctx)

		assert.Error(t, err)
	})
}

func TestRelay_Purge(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	repo.EXPECT().PurgeSent(gomock.Any(), sentRetained).Return(int64(3), nil)

	NewRelay(repo, &fakeWriter{}, zap.NewNop(), 0).Purge(context.Background())
}

func TestBuildMessage_WithoutRequestID(t *testing.T) {
	event := paidEvent("o-1", "2026-02")
	event.RequestID = ""

	msg := buildMessage(event)

	assert.Len(t, msg.Headers, 3)
	assert.Equal(t, "2026-02", string(msg.Key))
}
