package sqlite

import "time"

// Task is the database representation of one tracked compliance task.
//
// The table is the superset of two schema generations: the original
// client/entity columns (name, resource, entity_group, entity, state) and the
// later litigation/billing/reminder columns. Every non-identity column is
// nullable, so optional fields use pointers.
type Task struct {
	ID int64

	Name            *string
	Resource        *string
	EntityGroup     *string
	Entity          *string
	State           *string
	TaskDescription *string
	DueDate         *string // calendar date, YYYY-MM-DD
	Stage           *string
	Status          *string

	LitigationDetails *string
	TribunalDetails   *string
	BillingStatus     *string
	BillingInv        *string
	BillingReal       *string
	ReminderDays      *int64
	ReminderStatus    *string
	ReminderRemaining *int64
	OthersPOC         *string
	OthersPending     *string
	FeesAgreed        *string
	FeesRealised      *string
	FeesCounsel       *string
	Misc              *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
