// Package jobs provides scheduled background tasks.
//
// Jobs are built on github.com/robfig/cron/v3 with the seconds field enabled.
//
// # Available Jobs
//
// TokenCleanupJob deletes API tokens whose expiry has passed. It runs every
// five minutes unless TOKEN_CLEANUP_SCHEDULE says otherwise.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(deleteExpiredTokensHandler, cfg.TokenCleanupSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed cleanup pass is logged and retried on the next tick. A job that
// fails to start stops the jobs already running.
package jobs
