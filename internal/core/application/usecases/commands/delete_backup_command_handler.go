package commands

import (
	"context"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/ports"
)

// DeleteBackupCommandHandler removes stored backups.
type DeleteBackupCommandHandler struct {
	backups ports.BackupService
}

// NewDeleteBackupCommandHandler creates a handler for backup deletion.
func NewDeleteBackupCommandHandler(backups ports.BackupService) DeleteBackupCommandHandler {
	return DeleteBackupCommandHandler{
		backups: backups,
	}
}

// Handle validates the command and deletes the backup. An id that resolves
// to nothing is a successful no-op.
func (h *DeleteBackupCommandHandler) Handle(ctx context.Context, cmd DeleteBackupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.backups.Delete(ctx, cmd.BackupID())
}
