// Package sweep runs the scheduled maintenance job over the task table.
//
// The request path never changes a task's status on its own, yet the data
// model carries derived state: generation-1 deployments expect pending tasks
// to become "overdue" once their due date passes, and generation-2
// deployments expect reminder_remaining to track the days left until the due
// date. The sweep maintains both.
package sweep

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"compliance-tracker/internal/api"
	"compliance-tracker/internal/domain"
)

// Sweeper periodically refreshes derived task state.
type Sweeper struct {
	api     api.API
	profile domain.StatsProfile
	logger  *slog.Logger
	timeout time.Duration
	cron    *cron.Cron
}

// New creates a Sweeper that runs on the given cron schedule.
func New(apiInstance api.API, profile domain.StatsProfile, schedule string, timeout time.Duration, logger *slog.Logger) (*Sweeper, error) {
	s := &Sweeper{
		api:     apiInstance,
		profile: profile,
		logger:  logger,
		timeout: timeout,
		cron:    cron.New(),
	}
	if _, err := s.cron.AddFunc(schedule, s.Run); err != nil {
		return nil, err
	}
	return s, nil
}

// Start runs one sweep immediately, then starts the schedule.
func (s *Sweeper) Start() {
	s.Run()
	s.cron.Start()
}

// Stop stops the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

// Run executes a single sweep for the active profile.
func (s *Sweeper) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	var (
		changed int64
		err     error
		action  string
	)
	if s.profile == domain.ProfileStatusCounts {
		action = "refresh reminders"
		changed, err = s.api.RefreshReminders(ctx)
	} else {
		action = "mark overdue"
		changed, err = s.api.SweepOverdue(ctx)
	}

	if err != nil {
		s.logger.Error("sweep failed", slog.String("action", action), slog.String("error", err.Error()))
		return
	}
	s.logger.Info("sweep completed", slog.String("action", action), slog.Int64("tasks_changed", changed))
}
