// Package jobs runs background maintenance on a cron schedule.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultCleanupSchedule runs the status cleanup nightly at 03:00. Schedules
// carry a leading seconds field.
const DefaultCleanupSchedule = "0 0 3 * * *"

// cleanupTimeout bounds a single cleanup run.
const cleanupTimeout = 2 * time.Minute

// StatusCleaner deletes status checks older than the given number of days.
type StatusCleaner interface {
	CleanupOlderThan(ctx context.Context, days int) (int64, error)
}

type Scheduler struct {
	cron *cron.Cron
	log  *logrus.Entry
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		log:  logrus.WithField("component", "scheduler"),
	}
}

// AddStatusCleanup registers the status check retention job.
func (s *Scheduler) AddStatusCleanup(schedule string, retentionDays int, cleaner StatusCleaner) error {
	if schedule == "" {
		schedule = DefaultCleanupSchedule
	}
	_, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
		defer cancel()
		if _, err := RunStatusCleanup(ctx, cleaner, retentionDays); err != nil {
			s.log.WithError(err).Error("status cleanup failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid cleanup schedule %q: %w", schedule, err)
	}
	s.log.WithFields(logrus.Fields{"schedule": schedule, "retention_days": retentionDays}).
		Info("status cleanup scheduled")
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.WithField("jobs", len(s.cron.Entries())).Info("Cron scheduler started")
}

// Stop halts scheduling and returns a context that is done once running jobs
// finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// RunStatusCleanup deletes checks older than retentionDays once.
func RunStatusCleanup(ctx context.Context, cleaner StatusCleaner, retentionDays int) (int64, error) {
	start := time.Now()
	n, err := cleaner.CleanupOlderThan(ctx, retentionDays)
	if err != nil {
		return 0, err
	}
	logrus.WithFields(logrus.Fields{
		"deleted":        n,
		"retention_days": retentionDays,
		"elapsed":        time.Since(start).String(),
	}).Info("Status cleanup completed")
	return n, nil
}
