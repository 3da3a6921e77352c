// Package jobs provides scheduled background tasks for the checkout engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the engine needs.
//
// # Available Jobs
//
// 1. SessionCleanupJob - Runs every minute to prune user sessions idle past a configured age
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the session registry
//	jobManager := jobs.NewJobManager(registry, sessionMaxAge, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup job uses the cron expression "* * * * *" which means it runs
// every minute. Sessions hold only in-memory cart and checkout state, so
// pruning an active user merely costs one cart reload on their next request.
package jobs
