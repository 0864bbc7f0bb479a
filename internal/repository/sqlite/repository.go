// Package sqlite persists compliance tasks in a single SQLite table and
// serves the aggregate count queries behind the stats endpoint.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"compliance-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Task CRUD
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error

	// Stats counts. Dates are YYYY-MM-DD strings; comparison relies on the
	// zero-padded ISO format ordering the same way as calendar dates.
	CountTasksDueOn(ctx context.Context, date string) (int, error)
	CountTasksDueBetween(ctx context.Context, from, to string) (int, error)
	CountTasksOverdue(ctx context.Context, today, excludedStatus string) (int, error)
	CountTasks(ctx context.Context) (int, error)
	CountTasksWithStatus(ctx context.Context, status string) (int, error)

	// Maintenance sweeps
	MarkOverdue(ctx context.Context, today string) (int64, error)
	RefreshReminderCountdown(ctx context.Context, today string) (int64, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance and runs pending migrations.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, HandleDatabaseError("open database", err)
	}
	db.SetMaxOpenConns(1) // prevent SQLITE_BUSY

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, HandleDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// mutableColumns lists every column a client write may set, in bind order.
const mutableColumns = `name, resource, entity_group, entity, state,
	task_description, due_date, stage, status,
	litigation_details, tribunal_details, billing_status, billing_inv, billing_real,
	reminder_days, reminder_status, reminder_remaining,
	others_poc, others_pending, fees_agreed, fees_realised, fees_counsel, misc`

func mutableArgs(t *Task) []interface{} {
	return []interface{}{
		t.Name, t.Resource, t.EntityGroup, t.Entity, t.State,
		t.TaskDescription, t.DueDate, t.Stage, t.Status,
		t.LitigationDetails, t.TribunalDetails, t.BillingStatus, t.BillingInv, t.BillingReal,
		t.ReminderDays, t.ReminderStatus, t.ReminderRemaining,
		t.OthersPOC, t.OthersPending, t.FeesAgreed, t.FeesRealised, t.FeesCounsel, t.Misc,
	}
}

// CreateTask inserts a new task and sets its ID, CreatedAt and UpdatedAt.
// Timestamps are always server-assigned.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	query := `
	INSERT INTO tasks (` + mutableColumns + `, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	args := append(mutableArgs(task), FormatTimeForDB(now), FormatTimeForDB(now))
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, args...)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks, newest created first. The id tiebreak keeps
// the order deterministic when several rows share one timestamp granule.
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC, id DESC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// UpdateTask replaces every mutable field of the task in one statement and
// bumps UpdatedAt. Updating an id that does not exist is not an error.
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	task.UpdatedAt = time.Now().UTC()

	query := `
	UPDATE tasks SET
		name = ?, resource = ?, entity_group = ?, entity = ?, state = ?,
		task_description = ?, due_date = ?, stage = ?, status = ?,
		litigation_details = ?, tribunal_details = ?, billing_status = ?, billing_inv = ?, billing_real = ?,
		reminder_days = ?, reminder_status = ?, reminder_remaining = ?,
		others_poc = ?, others_pending = ?, fees_agreed = ?, fees_realised = ?, fees_counsel = ?, misc = ?,
		updated_at = ?
	WHERE id = ?`

	args := append(mutableArgs(task), FormatTimeForDB(task.UpdatedAt), task.ID)
	_, err := ExecuteWithRowsAffected(ctx, r.db, query, args...)
	return err
}

// DeleteTask removes a task by ID. Deleting an id that does not exist is not
// an error, which makes the operation idempotent.
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	_, err := ExecuteWithRowsAffected(ctx, r.db, query, id)
	return err
}

// Rows with a NULL or empty due_date never participate in a date bucket. The
// empty-string guard matters for the < comparison: '' sorts before any date.

// CountTasksDueOn counts tasks due exactly on the given date.
func (r *SQLiteRepository) CountTasksDueOn(ctx context.Context, date string) (int, error) {
	query := `SELECT COUNT(*) FROM tasks WHERE due_date = ?`
	return QueryCount(ctx, r.db, query, date)
}

// CountTasksDueBetween counts tasks due in the inclusive [from, to] window.
func (r *SQLiteRepository) CountTasksDueBetween(ctx context.Context, from, to string) (int, error) {
	query := `SELECT COUNT(*) FROM tasks WHERE due_date <> '' AND due_date BETWEEN ? AND ?`
	return QueryCount(ctx, r.db, query, from, to)
}

// CountTasksOverdue counts tasks due before today whose status is not the
// excluded terminal status. NULL statuses are excluded by SQL comparison
// semantics, matching the original query's behavior.
func (r *SQLiteRepository) CountTasksOverdue(ctx context.Context, today, excludedStatus string) (int, error) {
	query := `
	SELECT COUNT(*) FROM tasks
	WHERE due_date IS NOT NULL AND due_date <> '' AND due_date < ? AND status <> ?`
	return QueryCount(ctx, r.db, query, today, excludedStatus)
}

// CountTasks counts all tasks.
func (r *SQLiteRepository) CountTasks(ctx context.Context) (int, error) {
	return QueryCount(ctx, r.db, `SELECT COUNT(*) FROM tasks`)
}

// CountTasksWithStatus counts tasks with exactly the given status label.
func (r *SQLiteRepository) CountTasksWithStatus(ctx context.Context, status string) (int, error) {
	query := `SELECT COUNT(*) FROM tasks WHERE status = ?`
	return QueryCount(ctx, r.db, query, status)
}

// MarkOverdue flips pending tasks whose due date has passed to overdue and
// returns how many rows changed.
func (r *SQLiteRepository) MarkOverdue(ctx context.Context, today string) (int64, error) {
	query := `
	UPDATE tasks SET status = 'overdue', updated_at = ?
	WHERE due_date IS NOT NULL AND due_date <> '' AND due_date < ? AND status = 'pending'`
	return ExecuteWithRowsAffected(ctx, r.db, query, FormatTimeForDB(time.Now().UTC()), today)
}

// RefreshReminderCountdown recomputes reminder_remaining as whole days until
// the due date for every task that carries a reminder.
func (r *SQLiteRepository) RefreshReminderCountdown(ctx context.Context, today string) (int64, error) {
	query := `
	UPDATE tasks
	SET reminder_remaining = CAST(julianday(due_date) - julianday(?) AS INTEGER), updated_at = ?
	WHERE due_date IS NOT NULL AND due_date <> '' AND reminder_days IS NOT NULL`
	return ExecuteWithRowsAffected(ctx, r.db, query, today, FormatTimeForDB(time.Now().UTC()))
}
