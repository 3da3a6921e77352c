package jobs

import (
	"context"
	"log/slog"
	"time"

	"garments/internal/sessions"

	"github.com/robfig/cron/v3"
)

// SessionCleanupJob manages the scheduled pruning of idle user sessions.
// Runs every minute to drop sessions whose owners have gone quiet, so the
// registry does not grow without bound.
type SessionCleanupJob struct {
	registry *sessions.Registry
	maxAge   time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionCleanupJob creates a new job for pruning idle sessions.
// Sessions idle for longer than maxAge are removed on each run.
func NewSessionCleanupJob(registry *sessions.Registry, maxAge time.Duration, logger *slog.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		registry: registry,
		maxAge:   maxAge,
		cron:     cron.New(),
		logger:   logger.With("component", "session_cleanup_job"),
	}
}

// Start begins the session cleanup job to run every minute.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.registry.PruneStale(j.maxAge)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running every minute)",
		"max_age", j.maxAge.String())
	return nil
}

// Stop stops the session cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
