package commands

import (
	"context"
	"fmt"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/ports"
)

// RestoreBackupCommandHandler loads a stored backup and swaps the order
// collection for its contents.
type RestoreBackupCommandHandler struct {
	orders  OrderLedger
	backups ports.BackupService
}

// NewRestoreBackupCommandHandler creates a handler for backup restoration.
func NewRestoreBackupCommandHandler(orders OrderLedger, backups ports.BackupService) RestoreBackupCommandHandler {
	return RestoreBackupCommandHandler{
		orders:  orders,
		backups: backups,
	}
}

// Handle validates the command, loads the backup and replaces the
// collection. Fails with an object not found error when the backup id does
// not resolve.
func (h *RestoreBackupCommandHandler) Handle(ctx context.Context, cmd RestoreBackupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	snapshots, err := h.backups.Restore(ctx, cmd.BackupID())
	if err != nil {
		return err
	}

	label := fmt.Sprintf("Before_restore_%d_items", h.orders.Len())
	return h.orders.ReplaceAll(ctx, snapshots, label)
}
