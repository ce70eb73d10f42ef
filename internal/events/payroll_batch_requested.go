package events

import "time"

const PayrollBatchRequestedTopic = "fleet.payroll.batch.requested.v1"

const PayrollBatchRequestedEventType = "payroll_batch_requested"

// PayrollBatchRequestedEvent asks the consumer to recompute every partner
// driver's payroll of one month.
type PayrollBatchRequestedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
