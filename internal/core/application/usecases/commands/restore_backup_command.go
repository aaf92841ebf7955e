package commands

import (
	"errors"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/guard"
)

var (
	ErrRestoreBackupCommandIsNotConstructed = errors.New(
		"RestoreBackupCommand must be created via NewRestoreBackupCommand constructor",
	)
	ErrBackupIDIsRequired = errors.New("backup id is required")
)

// RestoreBackupCommand replaces the whole collection with the contents of a
// stored backup. The current state is backed up before the swap.
type RestoreBackupCommand struct { //nolint:recvcheck //using for validation
	backupID string

	guard guard.ConstructorGuard
}

// NewRestoreBackupCommand creates a command to restore the backup with the
// given id.
func NewRestoreBackupCommand(backupID string) (RestoreBackupCommand, error) {
	command := RestoreBackupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setBackupID(backupID); err != nil {
		return RestoreBackupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RestoreBackupCommand) Validate() error {
	return c.guard.Validate(ErrRestoreBackupCommandIsNotConstructed)
}

// BackupID returns the id of the backup to restore.
func (c RestoreBackupCommand) BackupID() string {
	return c.backupID
}

func (c *RestoreBackupCommand) setBackupID(backupID string) error {
	if backupID == "" {
		return ErrBackupIDIsRequired
	}

	c.backupID = backupID
	return nil
}
