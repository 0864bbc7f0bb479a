// Package domain holds the pure domain models for the task tracker, free of
// database and transport concerns.
package domain

import (
	"strings"
	"time"
)

// TaskFields carries every client-mutable field of a task. All fields are
// optional at this level; which ones a request must carry depends on the
// active schema generation and is decided by the validation layer.
//
// JSON names match the database columns so API payloads mirror the stored
// rows, the way the original front end expects them.
type TaskFields struct {
	Name            *string `json:"name"`
	Resource        *string `json:"resource"`
	EntityGroup     *string `json:"entity_group"`
	Entity          *string `json:"entity"`
	State           *string `json:"state"`
	TaskDescription *string `json:"task_description"`
	DueDate         *string `json:"due_date"`
	Stage           *string `json:"stage"`
	Status          *string `json:"status"`

	LitigationDetails *string `json:"litigation_details"`
	TribunalDetails   *string `json:"tribunal_details"`
	BillingStatus     *string `json:"billing_status"`
	BillingInv        *string `json:"billing_inv"`
	BillingReal       *string `json:"billing_real"`
	ReminderDays      *int64  `json:"reminder_days"`
	ReminderStatus    *string `json:"reminder_status"`
	ReminderRemaining *int64  `json:"reminder_remaining"`
	OthersPOC         *string `json:"others_poc"`
	OthersPending     *string `json:"others_pending"`
	FeesAgreed        *string `json:"fees_agreed"`
	FeesRealised      *string `json:"fees_realised"`
	FeesCounsel       *string `json:"fees_counsel"`
	Misc              *string `json:"misc"`
}

// Task is one tracked compliance work item. ID and the timestamps are
// server-assigned and immutable from the client's point of view.
type Task struct {
	ID int64 `json:"id"`
	TaskFields
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasName reports whether the task carries a non-blank name.
func (f TaskFields) HasName() bool {
	return f.Name != nil && strings.TrimSpace(*f.Name) != ""
}

// HasDueDate reports whether the task carries a non-empty due date.
func (f TaskFields) HasDueDate() bool {
	return f.DueDate != nil && *f.DueDate != ""
}
