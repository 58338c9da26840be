package order_test

import (
	"testing"

	"paybook/internal/core/domain/model/order"
	"paybook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemSpec(t *testing.T) {
	t.Run("should create a valid spec", func(t *testing.T) {
		spec, err := order.NewItemSpec("PROD-001", 2)

		require.NoError(t, err)
		require.NoError(t, spec.Validate())
		assert.Equal(t, "PROD-001", spec.ProductID())
		assert.Equal(t, 2, spec.Quantity())
	})

	t.Run("should reject blank product identifiers", func(t *testing.T) {
		for _, productID := range []string{"", "   ", "\t"} {
			_, err := order.NewItemSpec(productID, 1)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Contains(t, err.Error(), "productId")
		}
	})

	t.Run("should reject quantities below 1", func(t *testing.T) {
		for _, quantity := range []int{0, -1, -999} {
			_, err := order.NewItemSpec("PROD-001", quantity)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "quantity")
		}
	})

	t.Run("should reject a zero value spec", func(t *testing.T) {
		var spec order.ItemSpec

		err := spec.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemSpecIsNotConstructed, err)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should price a spec and compute the subtotal", func(t *testing.T) {
		spec, _ := order.NewItemSpec("PROD-001", 3)

		item, err := order.NewItem(spec, 10000)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "PROD-001", item.ProductID())
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, 10000, item.Price())
		assert.Equal(t, 30000, item.Subtotal())
	})

	t.Run("should reject a non-positive price", func(t *testing.T) {
		spec, _ := order.NewItemSpec("PROD-001", 1)

		for _, price := range []int{0, -1} {
			_, err := order.NewItem(spec, price)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "price")
		}
	})

	t.Run("should reject an unconstructed spec", func(t *testing.T) {
		var spec order.ItemSpec

		_, err := order.NewItem(spec, 10000)

		require.Error(t, err)
		assert.Equal(t, order.ErrItemSpecIsNotConstructed, err)
	})
}
