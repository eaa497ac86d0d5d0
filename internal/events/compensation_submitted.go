package events

import "time"

const CompensationLifecycleTopic = "directory.compensation.lifecycle.v1"

const CompensationSubmitted = "compensation_submitted"

type CompensationSubmittedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	EmployeeID    string    `json:"employee_id"`
	Salary        string    `json:"salary"`
	EffectiveDate string    `json:"effective_date,omitempty"`
	Replaced      bool      `json:"replaced"`
	OccurredAt    time.Time `json:"occurred_at"`
}
