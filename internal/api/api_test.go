package api

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/errors"
	"compliance-tracker/internal/repository/sqlite"
)

func setupAPI(t *testing.T, profile domain.StatsProfile) API {
	t.Helper()

	repo, err := sqlite.New(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
	})

	return New(repo, profile)
}

func strPtr(s string) *string { return &s }

func dateFromToday(days int) *string {
	d := domain.FormatDate(time.Now().AddDate(0, 0, days))
	return &d
}

func TestCreateTaskRequiresNameForDueWindows(t *testing.T) {
	a := setupAPI(t, domain.ProfileDueWindows)

	_, err := a.CreateTask(context.Background(), domain.TaskFields{
		TaskDescription: strPtr("missing name"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestCreateTaskNameOptionalForStatusCounts(t *testing.T) {
	a := setupAPI(t, domain.ProfileStatusCounts)

	id, err := a.CreateTask(context.Background(), domain.TaskFields{
		TaskDescription: strPtr("File GST return"),
		Status:          strPtr("Open"),
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))
}

func TestCreateTaskDefaultsStatusToPending(t *testing.T) {
	a := setupAPI(t, domain.ProfileDueWindows)

	id, err := a.CreateTask(context.Background(), domain.TaskFields{
		Name: strPtr("Anita Rao"),
	})
	require.NoError(t, err)

	task, err := a.GetTask(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, task.Status)
	assert.Equal(t, "pending", *task.Status)
}

func TestCreateTaskRejectsMalformedDueDate(t *testing.T) {
	a := setupAPI(t, domain.ProfileDueWindows)

	_, err := a.CreateTask(context.Background(), domain.TaskFields{
		Name:    strPtr("Anita Rao"),
		DueDate: strPtr("2026-1-5"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestGetTaskNotFound(t *testing.T) {
	a := setupAPI(t, domain.ProfileDueWindows)

	_, err := a.GetTask(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestGetTaskRejectsNonPositiveID(t *testing.T) {
	a := setupAPI(t, domain.ProfileDueWindows)

	_, err := a.GetTask(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestListTasksNewestFirst(t *testing.T) {
	a := setupAPI(t, domain.ProfileDueWindows)

	for _, name := range []string{"first", "second"} {
		_, err := a.CreateTask(context.Background(), domain.TaskFields{Name: strPtr(name)})
		require.NoError(t, err)
	}

	tasks, err := a.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "second", *tasks[0].Name)
	assert.Equal(t, "first", *tasks[1].Name)
}

func TestUpdateTaskUnknownIDSucceeds(t *testing.T) {
	a := setupAPI(t, domain.ProfileDueWindows)

	err := a.UpdateTask(context.Background(), 9999, domain.TaskFields{Name: strPtr("ghost")})
	assert.NoError(t, err)
}

func TestUpdateTaskRejectsNonPositiveID(t *testing.T) {
	a := setupAPI(t, domain.ProfileDueWindows)

	err := a.UpdateTask(context.Background(), -1, domain.TaskFields{Name: strPtr("ghost")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestDeleteTaskUnknownIDSucceeds(t *testing.T) {
	a := setupAPI(t, domain.ProfileDueWindows)

	assert.NoError(t, a.DeleteTask(context.Background(), 9999))
}

func TestStatsDueWindows(t *testing.T) {
	a := setupAPI(t, domain.ProfileDueWindows)
	ctx := context.Background()

	fixtures := []domain.TaskFields{
		{Name: strPtr("due today"), DueDate: dateFromToday(0)},
		{Name: strPtr("due in 3"), DueDate: dateFromToday(3)},
		{Name: strPtr("due in 10"), DueDate: dateFromToday(10)},
		{Name: strPtr("late"), DueDate: dateFromToday(-2)},
		{Name: strPtr("late but done"), DueDate: dateFromToday(-5), Status: strPtr("completed")},
	}
	for _, fields := range fixtures {
		_, err := a.CreateTask(ctx, fields)
		require.NoError(t, err)
	}

	raw, err := a.Stats(ctx)
	require.NoError(t, err)
	stats, ok := raw.(*domain.DueWindowStats)
	require.True(t, ok)

	assert.Equal(t, 1, stats.DueToday)
	assert.Equal(t, 2, stats.DueThisWeek)
	assert.Equal(t, 1, stats.DueNextWeek)
	assert.Equal(t, 3, stats.Next15Days)
	assert.Equal(t, 1, stats.Overdue)
}

func TestStatsDueWindowsCountPlusSevenInBothWeeks(t *testing.T) {
	a := setupAPI(t, domain.ProfileDueWindows)
	ctx := context.Background()

	_, err := a.CreateTask(ctx, domain.TaskFields{
		Name:    strPtr("boundary"),
		DueDate: dateFromToday(7),
	})
	require.NoError(t, err)

	raw, err := a.Stats(ctx)
	require.NoError(t, err)
	stats, ok := raw.(*domain.DueWindowStats)
	require.True(t, ok)

	// A task due exactly a week out sits on the shared edge of both inclusive
	// windows and is counted twice.
	assert.Equal(t, 1, stats.DueThisWeek)
	assert.Equal(t, 1, stats.DueNextWeek)
	assert.Equal(t, 1, stats.Next15Days)
	assert.Equal(t, 0, stats.DueToday)
}

func TestStatsStatusCounts(t *testing.T) {
	a := setupAPI(t, domain.ProfileStatusCounts)
	ctx := context.Background()

	fixtures := []domain.TaskFields{
		{TaskDescription: strPtr("open 1"), Status: strPtr("Open")},
		{TaskDescription: strPtr("open 2"), Status: strPtr("Open")},
		{TaskDescription: strPtr("open late"), Status: strPtr("Open"), DueDate: dateFromToday(-1)},
		{TaskDescription: strPtr("closed"), Status: strPtr("Close")},
		{TaskDescription: strPtr("working"), Status: strPtr("In-Progress")},
	}
	for _, fields := range fixtures {
		_, err := a.CreateTask(ctx, fields)
		require.NoError(t, err)
	}

	raw, err := a.Stats(ctx)
	require.NoError(t, err)
	stats, ok := raw.(*domain.StatusStats)
	require.True(t, ok)

	assert.Equal(t, 5, stats.TotalTasks)
	assert.Equal(t, 3, stats.OpenTasks)
	assert.Equal(t, 1, stats.InProgressTasks)
	assert.Equal(t, 1, stats.CompletedTasks)
	assert.Equal(t, 1, stats.OverdueTasks)
}

func TestSweepOverdue(t *testing.T) {
	a := setupAPI(t, domain.ProfileDueWindows)
	ctx := context.Background()

	id, err := a.CreateTask(ctx, domain.TaskFields{
		Name:    strPtr("late filing"),
		DueDate: dateFromToday(-1),
	})
	require.NoError(t, err)

	changed, err := a.SweepOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	task, err := a.GetTask(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, task.Status)
	assert.Equal(t, "overdue", *task.Status)
}

func TestRefreshReminders(t *testing.T) {
	a := setupAPI(t, domain.ProfileStatusCounts)
	ctx := context.Background()

	days := int64(10)
	id, err := a.CreateTask(ctx, domain.TaskFields{
		TaskDescription: strPtr("hearing prep"),
		DueDate:         dateFromToday(4),
		ReminderDays:    &days,
	})
	require.NoError(t, err)

	changed, err := a.RefreshReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	task, err := a.GetTask(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, task.ReminderRemaining)
	assert.Equal(t, int64(4), *task.ReminderRemaining)
}
