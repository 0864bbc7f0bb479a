// Package api is the facade between the transport layer and the task store:
// it validates payloads, maps between domain and database models, and
// assembles the stats snapshots.
package api

import (
	"context"
	"time"

	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/errors"
	"compliance-tracker/internal/repository/sqlite"
	"compliance-tracker/internal/validation"
)

// API defines the interface for all task and stats operations.
type API interface {
	// Task operations
	CreateTask(ctx context.Context, fields domain.TaskFields) (int64, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, fields domain.TaskFields) error
	DeleteTask(ctx context.Context, id int64) error

	// Stats returns the counts for the configured profile: DueWindowStats or
	// StatusStats from package domain.
	Stats(ctx context.Context) (any, error)

	// Maintenance operations used by the sweeper
	SweepOverdue(ctx context.Context) (int64, error)
	RefreshReminders(ctx context.Context) (int64, error)
}

type apiImpl struct {
	repo          sqlite.Repository
	profile       domain.StatsProfile
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// New creates a new API instance over the given repository.
func New(repo sqlite.Repository, profile domain.StatsProfile) API {
	return &apiImpl{
		repo:          repo,
		profile:       profile,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(profile),
	}
}

// CreateTask validates the payload and inserts a new task, returning its id.
// An absent status defaults to "pending", mirroring the table's column
// default from the original schema.
func (a *apiImpl) CreateTask(ctx context.Context, fields domain.TaskFields) (int64, error) {
	if err := a.taskValidator.ValidateForCreate(fields); err != nil {
		return 0, errors.NewValidationError("invalid task", err)
	}

	if fields.Status == nil {
		pending := "pending"
		fields.Status = &pending
	}

	dbTask := a.mapper.Task.ToDatabase(domain.Task{TaskFields: fields})
	if err := a.repo.CreateTask(ctx, &dbTask); err != nil {
		return 0, err
	}
	return dbTask.ID, nil
}

// GetTask retrieves a single task by id.
func (a *apiImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := a.taskValidator.ValidateID(id); err != nil {
		return nil, errors.NewValidationError("invalid task id", err)
	}

	dbTask, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	domainTask := a.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// ListTasks retrieves all tasks, newest created first.
func (a *apiImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := a.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// UpdateTask replaces every mutable field of the task. Updating an id that
// does not exist reports success, preserving the contract the front end was
// built against.
func (a *apiImpl) UpdateTask(ctx context.Context, id int64, fields domain.TaskFields) error {
	if err := a.taskValidator.ValidateForUpdate(id, fields); err != nil {
		return errors.NewValidationError("invalid task", err)
	}

	dbTask := a.mapper.Task.ToDatabase(domain.Task{ID: id, TaskFields: fields})
	return a.repo.UpdateTask(ctx, &dbTask)
}

// DeleteTask removes a task. Deleting an unknown id reports success.
func (a *apiImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := a.taskValidator.ValidateID(id); err != nil {
		return errors.NewValidationError("invalid task id", err)
	}
	return a.repo.DeleteTask(ctx, id)
}

// Stats computes the configured profile's counts. The date window is taken
// once per call so every sub-count shares the same "today"; the first query
// error aborts the remaining sub-counts.
func (a *apiImpl) Stats(ctx context.Context) (any, error) {
	window := domain.NewDateWindow(time.Now())
	if a.profile == domain.ProfileStatusCounts {
		return a.statusStats(ctx, window)
	}
	return a.dueWindowStats(ctx, window)
}

func (a *apiImpl) dueWindowStats(ctx context.Context, w domain.DateWindow) (*domain.DueWindowStats, error) {
	stats := &domain.DueWindowStats{}
	var err error

	if stats.DueToday, err = a.repo.CountTasksDueOn(ctx, w.Today); err != nil {
		return nil, err
	}
	if stats.DueThisWeek, err = a.repo.CountTasksDueBetween(ctx, w.Today, w.Plus7); err != nil {
		return nil, err
	}
	if stats.DueNextWeek, err = a.repo.CountTasksDueBetween(ctx, w.Plus7, w.Plus14); err != nil {
		return nil, err
	}
	if stats.Next15Days, err = a.repo.CountTasksDueBetween(ctx, w.Today, w.Plus15); err != nil {
		return nil, err
	}
	if stats.Overdue, err = a.repo.CountTasksOverdue(ctx, w.Today, "completed"); err != nil {
		return nil, err
	}
	return stats, nil
}

func (a *apiImpl) statusStats(ctx context.Context, w domain.DateWindow) (*domain.StatusStats, error) {
	stats := &domain.StatusStats{}
	var err error

	if stats.TotalTasks, err = a.repo.CountTasks(ctx); err != nil {
		return nil, err
	}
	if stats.OpenTasks, err = a.repo.CountTasksWithStatus(ctx, "Open"); err != nil {
		return nil, err
	}
	if stats.InProgressTasks, err = a.repo.CountTasksWithStatus(ctx, "In-Progress"); err != nil {
		return nil, err
	}
	if stats.CompletedTasks, err = a.repo.CountTasksWithStatus(ctx, "Close"); err != nil {
		return nil, err
	}
	if stats.OverdueTasks, err = a.repo.CountTasksOverdue(ctx, w.Today, "Close"); err != nil {
		return nil, err
	}
	return stats, nil
}

// SweepOverdue flips pending tasks past their due date to overdue.
func (a *apiImpl) SweepOverdue(ctx context.Context) (int64, error) {
	return a.repo.MarkOverdue(ctx, domain.FormatDate(time.Now()))
}

// RefreshReminders recomputes the reminder countdown for reminder-bearing tasks.
func (a *apiImpl) RefreshReminders(ctx context.Context) (int64, error) {
	return a.repo.RefreshReminderCountdown(ctx, domain.FormatDate(time.Now()))
}
