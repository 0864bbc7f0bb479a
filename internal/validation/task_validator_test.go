package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliance-tracker/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(n int64) *int64   { return &n }

func TestValidateForCreateRequiresNameForDueWindows(t *testing.T) {
	validator := NewTaskValidator(domain.ProfileDueWindows)

	err := validator.ValidateForCreate(domain.TaskFields{})
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	fieldErrors := validationErr.GetFieldErrors("name")
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, ErrorTypeRequired, fieldErrors[0].Type)
}

func TestValidateForCreateBlankNameIsMissing(t *testing.T) {
	validator := NewTaskValidator(domain.ProfileDueWindows)

	err := validator.ValidateForCreate(domain.TaskFields{Name: strPtr("   ")})
	assert.Error(t, err)
}

func TestValidateForCreateNameOptionalForStatusCounts(t *testing.T) {
	validator := NewTaskValidator(domain.ProfileStatusCounts)

	err := validator.ValidateForCreate(domain.TaskFields{
		TaskDescription: strPtr("File GST return"),
	})
	assert.NoError(t, err)
}

func TestValidateForCreateDueDateFormat(t *testing.T) {
	validator := NewTaskValidator(domain.ProfileDueWindows)

	tests := []struct {
		name    string
		dueDate string
		wantErr bool
	}{
		{"valid date", "2026-09-15", false},
		{"unpadded month", "2026-9-15", true},
		{"unpadded day", "2026-09-5", true},
		{"not a date", "next tuesday", true},
		{"wrong order", "15-09-2026", true},
		{"impossible day", "2026-02-30", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateForCreate(domain.TaskFields{
				Name:    strPtr("Anita Rao"),
				DueDate: strPtr(tt.dueDate),
			})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateForCreateEmptyDueDateAllowed(t *testing.T) {
	validator := NewTaskValidator(domain.ProfileDueWindows)

	err := validator.ValidateForCreate(domain.TaskFields{
		Name:    strPtr("Anita Rao"),
		DueDate: strPtr(""),
	})
	assert.NoError(t, err)
}

func TestValidateForCreateNegativeReminderDays(t *testing.T) {
	validator := NewTaskValidator(domain.ProfileStatusCounts)

	err := validator.ValidateForCreate(domain.TaskFields{
		ReminderDays: intPtr(-3),
	})
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, validationErr.GetFieldErrors("reminder_days"), 1)
}

func TestValidateForUpdateRejectsNonPositiveID(t *testing.T) {
	validator := NewTaskValidator(domain.ProfileStatusCounts)

	err := validator.ValidateForUpdate(0, domain.TaskFields{})
	require.Error(t, err)

	err = validator.ValidateForUpdate(-5, domain.TaskFields{})
	require.Error(t, err)

	err = validator.ValidateForUpdate(1, domain.TaskFields{})
	assert.NoError(t, err)
}

func TestValidateForUpdateAggregatesErrors(t *testing.T) {
	validator := NewTaskValidator(domain.ProfileDueWindows)

	err := validator.ValidateForUpdate(0, domain.TaskFields{
		DueDate: strPtr("bad"),
	})
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, validationErr.Errors, 3, "id, name and due_date should all be reported")
}

func TestValidateID(t *testing.T) {
	validator := NewTaskValidator(domain.ProfileDueWindows)

	assert.NoError(t, validator.ValidateID(1))
	assert.Error(t, validator.ValidateID(0))
	assert.Error(t, validator.ValidateID(-1))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2026-08-31"))
	assert.False(t, IsValidDate("2026-8-31"))
	assert.False(t, IsValidDate(""))
	assert.False(t, IsValidDate("2026-08-31T00:00:00Z"))
}
