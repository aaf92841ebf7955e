package commands

import (
	"errors"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/guard"
)

var ErrDeleteBackupCommandIsNotConstructed = errors.New(
	"DeleteBackupCommand must be created via NewDeleteBackupCommand constructor",
)

// DeleteBackupCommand removes a stored backup. Deleting a backup that no
// longer exists is not an error.
type DeleteBackupCommand struct { //nolint:recvcheck //using for validation
	backupID string

	guard guard.ConstructorGuard
}

// NewDeleteBackupCommand creates a command to delete the backup with the
// given id.
func NewDeleteBackupCommand(backupID string) (DeleteBackupCommand, error) {
	command := DeleteBackupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setBackupID(backupID); err != nil {
		return DeleteBackupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteBackupCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBackupCommandIsNotConstructed)
}

// BackupID returns the id of the backup to delete.
func (c DeleteBackupCommand) BackupID() string {
	return c.backupID
}

func (c *DeleteBackupCommand) setBackupID(backupID string) error {
	if backupID == "" {
		return ErrBackupIDIsRequired
	}

	c.backupID = backupID
	return nil
}
