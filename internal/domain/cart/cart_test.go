//go:build unit

package cart_test

import (
	"testing"

	"gocery/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(name string, priceCents int64, discount float64) cart.Line {
	return cart.Line{
		ProductID:       uuid.New(),
		Name:            name,
		UnitPriceCents:  priceCents,
		DiscountPercent: discount,
	}
}

func TestCartAddItem(t *testing.T) {
	t.Run("adds new product at quantity 1", func(t *testing.T) {
		c := cart.NewCart()
		l := line("Bananas", 250, 0)
		l.Quantity = 99 // caller-supplied quantity must be ignored

		c.AddItem(l)

		require.Len(t, c.Items, 1)
		assert.Equal(t, int32(1), c.Items[0].Quantity)
	})

	t.Run("adding a product already in the cart is a no-op", func(t *testing.T) {
		c := cart.NewCart()
		l := line("Bananas", 250, 0)

		c.AddItem(l)
		c.UpdateQuantity(l.ProductID, 3)
		c.AddItem(l)

		require.Len(t, c.Items, 1)
		assert.Equal(t, int32(3), c.Items[0].Quantity, "re-add must not reset quantity")
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		c := cart.NewCart()
		first := line("Milk", 180, 0)
		second := line("Bread", 120, 0)

		c.AddItem(first)
		c.AddItem(second)

		require.Len(t, c.Items, 2)
		assert.Equal(t, first.ProductID, c.Items[0].ProductID)
		assert.Equal(t, second.ProductID, c.Items[1].ProductID)
	})
}

func TestCartUpdateQuantity(t *testing.T) {
	t.Run("sets quantity for an existing line", func(t *testing.T) {
		c := cart.NewCart()
		l := line("Milk", 180, 0)
		c.AddItem(l)

		c.UpdateQuantity(l.ProductID, 5)

		assert.Equal(t, int32(5), c.Items[0].Quantity)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		c := cart.NewCart()
		l := line("Milk", 180, 0)
		c.AddItem(l)

		c.UpdateQuantity(l.ProductID, 0)

		assert.True(t, c.IsEmpty())
	})

	t.Run("negative quantity removes the line", func(t *testing.T) {
		c := cart.NewCart()
		l := line("Milk", 180, 0)
		c.AddItem(l)

		c.UpdateQuantity(l.ProductID, -2)

		assert.True(t, c.IsEmpty())
	})

	t.Run("unknown product is ignored", func(t *testing.T) {
		c := cart.NewCart()
		l := line("Milk", 180, 0)
		c.AddItem(l)

		c.UpdateQuantity(uuid.New(), 7)

		require.Len(t, c.Items, 1)
		assert.Equal(t, int32(1), c.Items[0].Quantity)
	})
}

func TestCartRemoveItem(t *testing.T) {
	c := cart.NewCart()
	keep := line("Milk", 180, 0)
	drop := line("Bread", 120, 0)
	c.AddItem(keep)
	c.AddItem(drop)

	c.RemoveItem(drop.ProductID)
	c.RemoveItem(uuid.New()) // unknown id is a no-op

	require.Len(t, c.Items, 1)
	assert.Equal(t, keep.ProductID, c.Items[0].ProductID)
}

func TestCartTotals(t *testing.T) {
	t.Run("totals are derived from lines", func(t *testing.T) {
		c := cart.NewCart()
		discounted := line("Olive oil", 10000, 10)
		plain := line("Salt", 5000, 0)

		c.AddItem(discounted)
		c.UpdateQuantity(discounted.ProductID, 2)
		c.AddItem(plain)

		// 2 x 10000 at 10% off = 18000, plus 5000
		assert.Equal(t, int64(23000), c.TotalPriceCents())
		assert.Equal(t, int32(3), c.TotalItems())
	})

	t.Run("empty cart totals are zero", func(t *testing.T) {
		c := cart.NewCart()
		assert.Equal(t, int64(0), c.TotalPriceCents())
		assert.Equal(t, int32(0), c.TotalItems())
		assert.True(t, c.IsEmpty())
	})

	t.Run("totals follow quantity changes", func(t *testing.T) {
		c := cart.NewCart()
		l := line("Eggs", 300, 0)
		c.AddItem(l)
		c.UpdateQuantity(l.ProductID, 4)
		assert.Equal(t, int64(1200), c.TotalPriceCents())

		c.UpdateQuantity(l.ProductID, 1)
		assert.Equal(t, int64(300), c.TotalPriceCents())
	})
}

func TestLineTotalCents(t *testing.T) {
	cases := []struct {
		name     string
		price    int64
		discount float64
		quantity int32
		expected int64
	}{
		{name: "no discount", price: 250, discount: 0, quantity: 2, expected: 500},
		{name: "half off", price: 1000, discount: 50, quantity: 1, expected: 500},
		{name: "full discount", price: 1000, discount: 100, quantity: 3, expected: 0},
		{name: "discount truncates toward zero", price: 999, discount: 10, quantity: 1, expected: 899},
		{name: "zero quantity", price: 1000, discount: 0, quantity: 0, expected: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := cart.Line{UnitPriceCents: tc.price, DiscountPercent: tc.discount, Quantity: tc.quantity}
			assert.Equal(t, tc.expected, l.LineTotalCents())
		})
	}
}

func TestCartSnapshot(t *testing.T) {
	c := cart.NewCart()
	l := line("Milk", 180, 0)
	c.AddItem(l)

	snap := c.Snapshot()
	c.Clear()

	require.Len(t, snap, 1, "snapshot must be decoupled from later mutations")
	assert.True(t, c.IsEmpty())
}
