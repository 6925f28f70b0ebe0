// Package job contains scheduled maintenance tasks run by the web server's
// cron scheduler.
package job

import (
	"quote-ui/database"
	"quote-ui/logger"
)

// CheckpointJob flushes the sqlite WAL into the main database file.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run implements cron.Job.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
