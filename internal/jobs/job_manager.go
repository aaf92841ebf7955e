package jobs

import (
	"fmt"
	"log/slog"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	autoBackupJob *AutoBackupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	orders backupSource,
	backups ports.BackupService,
	backupSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		autoBackupJob: NewAutoBackupJob(orders, backups, backupSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.autoBackupJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto backup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.autoBackupJob.Stop()
}
