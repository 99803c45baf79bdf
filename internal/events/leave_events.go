package events

import "time"

const (
	LeaveRequestedTopic = "hr.leave.requested.v1"
	LeaveDecidedTopic   = "hr.leave.decided.v1"

	EventLeaveRequested = "leave.requested"
	EventLeaveDecided   = "leave.decided"
)

type LeaveRequestedEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	LeaveID         string    `json:"leave_id"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	CompanyID       string    `json:"company_id"`
	EmployeeID      string    `json:"employee_id"`
	LeaveType       string    `json:"leave_type"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	TotalDays       int       `json:"total_days"`
	RequestedBy     string    `json:"requested_by"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// LeaveDecidedEvent is emitted when a pending request is approved, rejected
// or cancelled. Status carries the new status.
type LeaveDecidedEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	LeaveID         string    `json:"leave_id"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	CompanyID       string    `json:"company_id"`
	EmployeeID      string    `json:"employee_id"`
	Status          string    `json:"status"`
	DecidedBy       string    `json:"decided_by"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	OccurredAt      time.Time `json:"occurred_at"`
}
