package queries

import (
	"context"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/ports"
)

// ListBackupsQueryHandler reads the stored backups through the backup
// service.
type ListBackupsQueryHandler struct {
	backups ports.BackupService
}

// NewListBackupsQueryHandler creates a handler for backup listing.
func NewListBackupsQueryHandler(backups ports.BackupService) ListBackupsQueryHandler {
	return ListBackupsQueryHandler{backups: backups}
}

// Handle returns the stored backups, oldest first.
func (h ListBackupsQueryHandler) Handle(ctx context.Context, query ListBackupsQuery) ([]ports.BackupRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.backups.List(ctx)
}
