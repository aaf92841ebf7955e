package commands

import (
	"errors"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/guard"
)

var (
	ErrImportOrdersCommandIsNotConstructed = errors.New(
		"ImportOrdersCommand must be created via NewImportOrdersCommand constructor",
	)
	ErrSnapshotsAreRequired = errors.New("at least one order snapshot is required")
)

// ImportOrdersCommand replaces the whole collection with orders from an
// exported file. The current state is backed up before the swap.
type ImportOrdersCommand struct { //nolint:recvcheck //using for validation
	snapshots []order.Snapshot

	guard guard.ConstructorGuard
}

// NewImportOrdersCommand creates a command to import the given snapshots.
func NewImportOrdersCommand(snapshots []order.Snapshot) (ImportOrdersCommand, error) {
	command := ImportOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSnapshots(snapshots); err != nil {
		return ImportOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportOrdersCommand) Validate() error {
	return c.guard.Validate(ErrImportOrdersCommandIsNotConstructed)
}

// Snapshots returns the orders to import.
func (c ImportOrdersCommand) Snapshots() []order.Snapshot {
	return c.snapshots
}

func (c *ImportOrdersCommand) setSnapshots(snapshots []order.Snapshot) error {
	if len(snapshots) == 0 {
		return ErrSnapshotsAreRequired
	}

	c.snapshots = snapshots
	return nil
}
