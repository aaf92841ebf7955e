package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// backupSource is the slice of the order store the job needs: the current
// snapshots and a revision counter to detect changes.
type backupSource interface {
	Snapshots() []order.Snapshot
	Revision() uint64
	Len() int
}

// AutoBackupJob periodically captures a backup of the order collection.
// A run is skipped when nothing changed since the last captured backup or
// when the collection is empty.
type AutoBackupJob struct {
	orders   backupSource
	backups  ports.BackupService
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	lastRevision uint64
}

// NewAutoBackupJob creates a job that backs up the collection on the given
// cron schedule.
func NewAutoBackupJob(orders backupSource, backups ports.BackupService, schedule string, logger *slog.Logger) *AutoBackupJob {
	return &AutoBackupJob{
		orders:   orders,
		backups:  backups,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "auto_backup_job"),
	}
}

// Start begins the periodic backup runs.
func (j *AutoBackupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto backup job started", "schedule", j.schedule)
	return nil
}

// Stop stops the periodic backup runs.
func (j *AutoBackupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto backup job stopped")
}

func (j *AutoBackupJob) run() {
	ctx := context.Background()

	revision := j.orders.Revision()
	if revision == j.lastRevision || j.orders.Len() == 0 {
		return
	}

	label := fmt.Sprintf("Auto_%d_items", j.orders.Len())
	if _, err := j.backups.Create(ctx, j.orders.Snapshots(), label); err != nil {
		j.logger.ErrorContext(ctx, "Auto backup failed", "error", err)
		return
	}

	j.lastRevision = revision
	j.logger.InfoContext(ctx, "Auto backup captured", "label", label)
}
