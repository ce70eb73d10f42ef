package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// MaxRetries caps redelivery of a failed event; past it the row stays failed
// for manual inspection.
const MaxRetries = 10

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	CreatedAt     time.Time
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ClaimPending(ctx context.Context, limit int, lease time.Duration) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
	PurgeSent(ctx context.Context, olderThan time.Duration) (int64, error)
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

// Create stores the event in the caller's transaction when bound with WithTx,
// so the event commits or rolls back together with the state change.
func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if event.Status == "" {
		event.Status = OutboxStatusPending
	}
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	_, err := r.execer().ExecContext(ctx, `
INSERT INTO outbox_events (id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status)
VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)`,
		event.ID, event.RequestID, event.AggregateType,
		event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
	)
	return err
}

// ClaimPending leases up to limit deliverable events to the caller. Rows
// locked by another worker are skipped, and a lease that is never settled
// with MarkSent or MarkFailed expires so the row becomes claimable again.
func (r *outboxRepository) ClaimPending(ctx context.Context, limit int, lease time.Duration) ([]OutboxEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
UPDATE outbox_events o
SET locked_until = NOW() + make_interval(secs => $5)
WHERE o.id IN (
	SELECT id FROM outbox_events
	WHERE (status = $1 OR (status = $2 AND retry_count < $4))
		AND (next_retry_at IS NULL OR next_retry_at <= NOW())
		AND (locked_until IS NULL OR locked_until <= NOW())
	ORDER BY created_at
	LIMIT $3
	FOR UPDATE SKIP LOCKED
)
RETURNING o.id::text, COALESCE(o.request_id, ''), o.aggregate_type, o.aggregate_id,
	o.event_type, o.topic, o.payload, o.status, o.retry_count, o.created_at`,
		OutboxStatusPending, OutboxStatusFailed, limit, MaxRetries, lease.Seconds())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []OutboxEvent
	for rows.Next() {
		var e OutboxEvent
		if err := rows.Scan(&e.ID, &e.RequestID, &e.AggregateType, &e.AggregateID,
			&e.EventType, &e.Topic, &e.Payload, &e.Status, &e.RetryCount, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	query := `
UPDATE outbox_events
SET
	status = $2,
	processed_at = NOW(),
	locked_until = NULL,
	error_message = NULL,
	updated_at = NOW()
WHERE id = $1
`
	_, err := r.db.ExecContext(ctx, query, id, OutboxStatusSent)
	return err
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	query := `
UPDATE outbox_events
SET
	status = $2,
	retry_count = retry_count + 1,
	locked_until = NULL,
	error_message = LEFT($3, 500),
	next_retry_at = NOW() + (LEAST(retry_count + 1, 10) * INTERVAL '15 seconds'),
	updated_at = NOW()
WHERE id = $1
`
	_, err := r.db.ExecContext(ctx, query, id, OutboxStatusFailed, reason)
	return err
}

// PurgeSent deletes delivered events processed more than olderThan ago.
func (r *outboxRepository) PurgeSent(ctx context.Context, olderThan time.Duration) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM outbox_events
WHERE status = $1 AND processed_at < NOW() - make_interval(secs => $2)`,
		OutboxStatusSent, olderThan.Seconds())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *outboxRepository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if event.EventType == "" {
		return errors.New("outbox event type is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
