package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// taskColumns is the column list every task SELECT uses, in scan order.
const taskColumns = `id, name, resource, entity_group, entity, state,
	task_description, due_date, stage, status,
	litigation_details, tribunal_details, billing_status, billing_inv, billing_real,
	reminder_days, reminder_status, reminder_remaining,
	others_poc, others_pending, fees_agreed, fees_realised, fees_counsel, misc,
	created_at, updated_at`

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var (
		name, resource, entityGroup, entity, state           sql.NullString
		taskDescription, dueDate, stage, status              sql.NullString
		litigationDetails, tribunalDetails                   sql.NullString
		billingStatus, billingInv, billingReal               sql.NullString
		reminderDays, reminderRemaining                      sql.NullInt64
		reminderStatus                                       sql.NullString
		othersPOC, othersPending                             sql.NullString
		feesAgreed, feesRealised, feesCounsel, miscellaneous sql.NullString
	)

	err := scanner.Scan(
		&task.ID,
		&name, &resource, &entityGroup, &entity, &state,
		&taskDescription, &dueDate, &stage, &status,
		&litigationDetails, &tribunalDetails,
		&billingStatus, &billingInv, &billingReal,
		&reminderDays, &reminderStatus, &reminderRemaining,
		&othersPOC, &othersPending,
		&feesAgreed, &feesRealised, &feesCounsel, &miscellaneous,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Name = stringPtr(name)
	task.Resource = stringPtr(resource)
	task.EntityGroup = stringPtr(entityGroup)
	task.Entity = stringPtr(entity)
	task.State = stringPtr(state)
	task.TaskDescription = stringPtr(taskDescription)
	task.DueDate = stringPtr(dueDate)
	task.Stage = stringPtr(stage)
	task.Status = stringPtr(status)
	task.LitigationDetails = stringPtr(litigationDetails)
	task.TribunalDetails = stringPtr(tribunalDetails)
	task.BillingStatus = stringPtr(billingStatus)
	task.BillingInv = stringPtr(billingInv)
	task.BillingReal = stringPtr(billingReal)
	task.ReminderDays = intPtr(reminderDays)
	task.ReminderStatus = stringPtr(reminderStatus)
	task.ReminderRemaining = intPtr(reminderRemaining)
	task.OthersPOC = stringPtr(othersPOC)
	task.OthersPending = stringPtr(othersPending)
	task.FeesAgreed = stringPtr(feesAgreed)
	task.FeesRealised = stringPtr(feesRealised)
	task.FeesCounsel = stringPtr(feesCounsel)
	task.Misc = stringPtr(miscellaneous)

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func intPtr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	return &ni.Int64
}
