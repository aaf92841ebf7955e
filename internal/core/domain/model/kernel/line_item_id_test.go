package kernel_test

import (
	"testing"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItemID(t *testing.T) {
	orderID := kernel.NewUUID()
	productID := kernel.NewUUID()

	t.Run("should compose from valid parts", func(t *testing.T) {
		id, err := kernel.NewLineItemID(orderID, "مها رباح", productID)

		require.NoError(t, err)
		assert.True(t, id.OrderID().IsEqual(orderID))
		assert.Equal(t, "مها رباح", id.Employee())
		assert.True(t, id.ProductID().IsEqual(productID))
	})

	t.Run("should reject empty employee name", func(t *testing.T) {
		_, err := kernel.NewLineItemID(orderID, "", productID)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrEmployeeNameIsRequired, err)
	})

	t.Run("should reject control characters in employee name", func(t *testing.T) {
		_, err := kernel.NewLineItemID(orderID, "name\x1fwith separator", productID)
		require.Error(t, err)
	})

	t.Run("should reject zero value ids", func(t *testing.T) {
		var zero kernel.UUID

		_, err := kernel.NewLineItemID(zero, "someone", productID)
		require.Error(t, err)

		_, err = kernel.NewLineItemID(orderID, "someone", zero)
		require.Error(t, err)
	})
}

func TestParseLineItemID(t *testing.T) {
	t.Run("compose then decompose round trips", func(t *testing.T) {
		// Names with spaces and underscores are legitimate and must survive the
		// string form intact.
		names := []string{"Amy", "بيان السد اللحام", "name_with_underscores", "  padded  "}

		for _, name := range names {
			orderID := kernel.NewUUID()
			productID := kernel.NewUUID()

			id, err := kernel.NewLineItemID(orderID, name, productID)
			require.NoError(t, err)

			parsed, err := kernel.ParseLineItemID(id.String())
			require.NoError(t, err, "round trip failed for %q", name)
			assert.True(t, parsed.IsEqual(id))
			assert.Equal(t, name, parsed.Employee())
		}
	})

	t.Run("should fail when part count is wrong", func(t *testing.T) {
		for _, malformed := range []string{
			"",
			"just-one-part",
			"a\x1fb",
			"a\x1fb\x1fc\x1fd",
		} {
			_, err := kernel.ParseLineItemID(malformed)
			require.Error(t, err, "expected error for %q", malformed)
		}
	})

	t.Run("underscores in names do not confuse parsing", func(t *testing.T) {
		orderID := kernel.NewUUID()
		productID := kernel.NewUUID()

		id, err := kernel.NewLineItemID(orderID, "order_1_employee_2", productID)
		require.NoError(t, err)

		parsed, err := kernel.ParseLineItemID(id.String())
		require.NoError(t, err)
		assert.Equal(t, "order_1_employee_2", parsed.Employee())
	})

	t.Run("should fail when an id part is not a UUID", func(t *testing.T) {
		orderID := kernel.NewUUID()

		_, err := kernel.ParseLineItemID("not-a-uuid\x1fAmy\x1f" + kernel.NewUUID().String())
		require.Error(t, err)

		_, err = kernel.ParseLineItemID(orderID.String() + "\x1fAmy\x1fnot-a-uuid")
		require.Error(t, err)
	})
}
