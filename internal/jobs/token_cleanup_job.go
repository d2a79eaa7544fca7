package jobs

import (
	"context"
	"log/slog"
	"time"

	"littlelemon/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultTokenCleanupSchedule runs the cleanup every five minutes.
const DefaultTokenCleanupSchedule = "0 */5 * * * *"

// ExpiredTokenDeleter is satisfied by commands.DeleteExpiredTokensCommandHandler.
type ExpiredTokenDeleter interface {
	Handle(ctx context.Context, cmd commands.DeleteExpiredTokensCommand) (int64, error)
}

// TokenCleanupJob deletes expired API tokens on a cron schedule.
type TokenCleanupJob struct {
	handler  ExpiredTokenDeleter
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewTokenCleanupJob creates the job. The schedule uses the six field cron
// format with seconds; an empty schedule selects DefaultTokenCleanupSchedule.
func NewTokenCleanupJob(handler ExpiredTokenDeleter, schedule string, logger *slog.Logger) *TokenCleanupJob {
	if schedule == "" {
		schedule = DefaultTokenCleanupSchedule
	}
	return &TokenCleanupJob{
		handler:  handler,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "token_cleanup_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *TokenCleanupJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Token cleanup job started", "schedule", j.schedule)
	return nil
}

// Run performs one cleanup pass.
func (j *TokenCleanupJob) Run(ctx context.Context) {
	deleted, err := j.handler.Handle(ctx, commands.NewDeleteExpiredTokensCommand(j.now().UTC()))
	if err != nil {
		j.logger.ErrorContext(ctx, "Token cleanup job failed", "error", err)
		return
	}
	if deleted > 0 {
		j.logger.InfoContext(ctx, "Expired tokens deleted", "count", deleted)
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *TokenCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Token cleanup job stopped")
}
