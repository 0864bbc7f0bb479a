package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliance-tracker/internal/repository/sqlite"
)

func strPtr(s string) *string { return &s }
func intPtr(n int64) *int64   { return &n }

func TestTaskMapperRoundTrip(t *testing.T) {
	mapper := NewTaskMapper()
	now := time.Now().UTC().Truncate(time.Second)

	original := Task{
		ID: 7,
		TaskFields: TaskFields{
			Name:              strPtr("John Smith"),
			Resource:          strPtr("Neha Singh"),
			EntityGroup:       strPtr("Smith Group"),
			Entity:            strPtr("Smith Exports Pvt Ltd"),
			State:             strPtr("Maharashtra"),
			TaskDescription:   strPtr("Annual GST audit"),
			DueDate:           strPtr("2026-09-15"),
			Stage:             strPtr("review"),
			Status:            strPtr("pending"),
			LitigationDetails: strPtr("appeal pending"),
			ReminderDays:      intPtr(7),
			FeesAgreed:        strPtr("50000"),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	dbTask := mapper.ToDatabase(original)
	assert.Equal(t, int64(7), dbTask.ID)
	assert.Equal(t, "John Smith", *dbTask.Name)
	assert.Equal(t, "2026-09-15", *dbTask.DueDate)
	assert.Equal(t, int64(7), *dbTask.ReminderDays)
	assert.Nil(t, dbTask.TribunalDetails)

	roundTripped := mapper.FromDatabase(dbTask)
	assert.Equal(t, original, roundTripped)
}

func TestFromDatabaseSlice(t *testing.T) {
	mapper := NewTaskMapper()

	dbTasks := []*sqlite.Task{
		{ID: 1, Name: strPtr("first")},
		{ID: 2, Name: strPtr("second")},
	}

	domainTasks := mapper.FromDatabaseSlice(dbTasks)
	require.Len(t, domainTasks, 2)
	assert.Equal(t, int64(1), domainTasks[0].ID)
	assert.Equal(t, "second", *domainTasks[1].Name)
}

func TestHasName(t *testing.T) {
	assert.False(t, TaskFields{}.HasName())
	assert.False(t, TaskFields{Name: strPtr("")}.HasName())
	assert.False(t, TaskFields{Name: strPtr("  ")}.HasName())
	assert.True(t, TaskFields{Name: strPtr("Anita Rao")}.HasName())
}

func TestHasDueDate(t *testing.T) {
	assert.False(t, TaskFields{}.HasDueDate())
	assert.False(t, TaskFields{DueDate: strPtr("")}.HasDueDate())
	assert.True(t, TaskFields{DueDate: strPtr("2026-09-15")}.HasDueDate())
}
