package domain

import (
	"compliance-tracker/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	f := domainTask.TaskFields
	return sqlite.Task{
		ID:                domainTask.ID,
		Name:              f.Name,
		Resource:          f.Resource,
		EntityGroup:       f.EntityGroup,
		Entity:            f.Entity,
		State:             f.State,
		TaskDescription:   f.TaskDescription,
		DueDate:           f.DueDate,
		Stage:             f.Stage,
		Status:            f.Status,
		LitigationDetails: f.LitigationDetails,
		TribunalDetails:   f.TribunalDetails,
		BillingStatus:     f.BillingStatus,
		BillingInv:        f.BillingInv,
		BillingReal:       f.BillingReal,
		ReminderDays:      f.ReminderDays,
		ReminderStatus:    f.ReminderStatus,
		ReminderRemaining: f.ReminderRemaining,
		OthersPOC:         f.OthersPOC,
		OthersPending:     f.OthersPending,
		FeesAgreed:        f.FeesAgreed,
		FeesRealised:      f.FeesRealised,
		FeesCounsel:       f.FeesCounsel,
		Misc:              f.Misc,
		CreatedAt:         domainTask.CreatedAt,
		UpdatedAt:         domainTask.UpdatedAt,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID: dbTask.ID,
		TaskFields: TaskFields{
			Name:              dbTask.Name,
			Resource:          dbTask.Resource,
			EntityGroup:       dbTask.EntityGroup,
			Entity:            dbTask.Entity,
			State:             dbTask.State,
			TaskDescription:   dbTask.TaskDescription,
			DueDate:           dbTask.DueDate,
			Stage:             dbTask.Stage,
			Status:            dbTask.Status,
			LitigationDetails: dbTask.LitigationDetails,
			TribunalDetails:   dbTask.TribunalDetails,
			BillingStatus:     dbTask.BillingStatus,
			BillingInv:        dbTask.BillingInv,
			BillingReal:       dbTask.BillingReal,
			ReminderDays:      dbTask.ReminderDays,
			ReminderStatus:    dbTask.ReminderStatus,
			ReminderRemaining: dbTask.ReminderRemaining,
			OthersPOC:         dbTask.OthersPOC,
			OthersPending:     dbTask.OthersPending,
			FeesAgreed:        dbTask.FeesAgreed,
			FeesRealised:      dbTask.FeesRealised,
			FeesCounsel:       dbTask.FeesCounsel,
			Misc:              dbTask.Misc,
		},
		CreatedAt: dbTask.CreatedAt,
		UpdatedAt: dbTask.UpdatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []*Task {
	domainTasks := make([]*Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTask := m.FromDatabase(*task)
		domainTasks[i] = &domainTask
	}
	return domainTasks
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
