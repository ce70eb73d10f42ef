package events

import "time"

const PayrollPaidTopic = "fleet.payroll.paid.v1"

const PayrollPaidEventType = "payroll_paid"

type PayrollPaidEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	PayrollID     string    `json:"payroll_id"`
	DriverID      string    `json:"driver_id"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	NetTotal      string    `json:"net_total"`
	LedgerEntryID string    `json:"ledger_entry_id"`
	LedgerNumber  string    `json:"ledger_number"`
	PaidBy        string    `json:"paid_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
