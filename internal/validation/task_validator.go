// Package validation checks incoming task payloads before they reach the
// store. The store itself enforces nothing beyond the primary key; required
// fields depend on which schema generation the deployment runs.
package validation

import (
	"strings"
	"time"

	"compliance-tracker/internal/domain"
)

// TaskValidator validates task payloads for create and update operations.
type TaskValidator struct {
	profile domain.StatsProfile
}

// NewTaskValidator creates a validator for the given stats profile. The
// profile doubles as the schema-generation switch: the due-windows profile is
// the generation that requires a client name on every task.
func NewTaskValidator(profile domain.StatsProfile) *TaskValidator {
	return &TaskValidator{profile: profile}
}

// ValidateForCreate validates a task payload for creation.
func (tv *TaskValidator) ValidateForCreate(fields domain.TaskFields) error {
	validationError := NewValidationError()

	if tv.profile == domain.ProfileDueWindows && !fields.HasName() {
		validationError.AddRequiredError("name")
	}

	tv.validateDueDate(fields, validationError)
	tv.validateReminders(fields, validationError)

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateForUpdate validates a task payload for a full-replace update.
func (tv *TaskValidator) ValidateForUpdate(id int64, fields domain.TaskFields) error {
	validationError := NewValidationError()

	if id <= 0 {
		validationError.AddInvalidValueError("id", id, "must be a positive integer")
	}
	if tv.profile == domain.ProfileDueWindows && !fields.HasName() {
		validationError.AddRequiredError("name")
	}

	tv.validateDueDate(fields, validationError)
	tv.validateReminders(fields, validationError)

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateID validates a task id from the request path.
func (tv *TaskValidator) ValidateID(id int64) error {
	if id <= 0 {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

func (tv *TaskValidator) validateDueDate(fields domain.TaskFields, validationError *ValidationError) {
	if !fields.HasDueDate() {
		return
	}
	if !IsValidDate(*fields.DueDate) {
		validationError.AddInvalidFormatError("due_date", *fields.DueDate, domain.DateLayout)
	}
}

func (tv *TaskValidator) validateReminders(fields domain.TaskFields, validationError *ValidationError) {
	if fields.ReminderDays != nil && *fields.ReminderDays < 0 {
		validationError.AddInvalidValueError("reminder_days", *fields.ReminderDays, "must not be negative")
	}
}

// IsValidDate reports whether s is a calendar date in zero-padded ISO form.
// The zero-padding requirement is load-bearing: the stats queries compare
// dates as strings.
func IsValidDate(s string) bool {
	if len(s) != len(domain.DateLayout) {
		return false
	}
	_, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	return err == nil
}
