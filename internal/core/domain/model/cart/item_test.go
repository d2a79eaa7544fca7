package cart_test

import (
	"testing"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	userID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()

	t.Run("should compute line price", func(t *testing.T) {
		item, err := cart.NewItem(kernel.NewUUID(), userID, menuItemID, 3, kernel.MustMoney("4.20"))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, "4.20", item.UnitPrice().String())
		assert.Equal(t, "12.60", item.Price().String())
		assert.True(t, item.IsOwnedBy(userID))
		assert.False(t, item.IsOwnedBy(kernel.NewUUID()))
	})

	t.Run("should reject zero quantity", func(t *testing.T) {
		_, err := cart.NewItem(kernel.NewUUID(), userID, menuItemID, 0, kernel.MustMoney("1"))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject quantity over limit", func(t *testing.T) {
		_, err := cart.NewItem(kernel.NewUUID(), userID, menuItemID, cart.MaxQuantity+1, kernel.MustMoney("1"))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should require owner and menu item", func(t *testing.T) {
		_, err := cart.NewItem(kernel.NewUUID(), kernel.UUID{}, kernel.UUID{}, 1, kernel.MustMoney("1"))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "user")
		assert.Contains(t, err.Error(), "menuitem")
	})

	t.Run("should reject free unit price", func(t *testing.T) {
		_, err := cart.NewItem(kernel.NewUUID(), userID, menuItemID, 1, kernel.Money{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestItem_Increase(t *testing.T) {
	item, err := cart.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2, kernel.MustMoney("3"))
	require.NoError(t, err)

	require.NoError(t, item.Increase(5))
	assert.Equal(t, 7, item.Quantity())
	assert.Equal(t, "21.00", item.Price().String())

	require.ErrorIs(t, item.Increase(0), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, item.Increase(cart.MaxQuantity), errs.ErrValueIsOutOfRange)
	assert.Equal(t, 7, item.Quantity())
}

func TestTotal(t *testing.T) {
	userID := kernel.NewUUID()
	a, _ := cart.NewItem(kernel.NewUUID(), userID, kernel.NewUUID(), 2, kernel.MustMoney("2.50"))
	b, _ := cart.NewItem(kernel.NewUUID(), userID, kernel.NewUUID(), 1, kernel.MustMoney("10"))

	assert.Equal(t, "15.00", cart.Total([]*cart.Item{a, b}).String())
	assert.True(t, cart.Total(nil).IsZero())
}
