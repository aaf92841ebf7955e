package commands_test

import (
	"context"
	"testing"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/application/usecases/commands"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewDeleteOrderCommand(id)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
	})

	t.Run("should reject empty uuid", func(t *testing.T) {
		_, err := commands.NewDeleteOrderCommand(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestDeleteOrderCommandHandler(t *testing.T) {
	t.Run("should delete through ledger", func(t *testing.T) {
		orders := &OrderLedgerMock{}
		id := kernel.NewUUID()
		orders.On("DeleteOrder", mock.Anything, id).Return(nil)

		handler := commands.NewDeleteOrderCommandHandler(orders)
		cmd, err := commands.NewDeleteOrderCommand(id)
		require.NoError(t, err)

		require.NoError(t, handler.Handle(context.Background(), cmd))
		orders.AssertExpectations(t)
	})

	t.Run("should reject unconstructed command", func(t *testing.T) {
		handler := commands.NewDeleteOrderCommandHandler(&OrderLedgerMock{})

		err := handler.Handle(context.Background(), commands.DeleteOrderCommand{})
		assert.ErrorIs(t, err, commands.ErrDeleteOrderCommandIsNotConstructed)
	})
}
