//go:build unit

package order_test

import (
	"testing"

	"gocery/internal/domain/cart"
	"gocery/internal/domain/coupon"
	"gocery/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot() []cart.Line {
	return []cart.Line{
		{ProductID: uuid.New(), Name: "Olive oil", UnitPriceCents: 10000, DiscountPercent: 10, Quantity: 2},
		{ProductID: uuid.New(), Name: "Salt", UnitPriceCents: 5000, Quantity: 1},
	}
}

func mustAddress(t *testing.T) order.ShippingAddress {
	t.Helper()
	a, err := order.NewShippingAddress("12 Rue des Oliviers, Algiers")
	require.NoError(t, err)
	return a
}

func mustPhone(t *testing.T) order.Phone {
	t.Helper()
	p, err := order.NewPhone("+213 555 123 456")
	require.NoError(t, err)
	return p
}

func TestNewOrder(t *testing.T) {
	t.Run("derives totals from the snapshot", func(t *testing.T) {
		o, err := order.NewOrder(uuid.New(), mustAddress(t), mustPhone(t), snapshot(), nil)
		require.NoError(t, err)

		// 2 x 10000 at 10% off = 18000, plus 5000
		assert.Equal(t, int64(23000), o.SubtotalCents())
		assert.Equal(t, int64(23000), o.TotalCents())
		assert.Nil(t, o.CouponID())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, int32(3), o.TotalItems())
	})

	t.Run("coupon applies multiplicatively to the subtotal", func(t *testing.T) {
		coup, err := coupon.NewCoupon(uuid.New(), "FRESH10", 10, nil, true)
		require.NoError(t, err)

		o, err := order.NewOrder(uuid.New(), mustAddress(t), mustPhone(t), snapshot(), coup)
		require.NoError(t, err)

		assert.Equal(t, int64(23000), o.SubtotalCents())
		assert.Equal(t, int64(20700), o.TotalCents())
		require.NotNil(t, o.CouponID())
		assert.Equal(t, coup.ID(), *o.CouponID())
	})

	t.Run("rejects an empty snapshot", func(t *testing.T) {
		_, err := order.NewOrder(uuid.New(), mustAddress(t), mustPhone(t), nil, nil)
		assert.ErrorIs(t, err, order.ErrEmptyCart)
	})

	t.Run("rejects non-positive line quantities", func(t *testing.T) {
		lines := snapshot()
		lines[0].Quantity = 0
		_, err := order.NewOrder(uuid.New(), mustAddress(t), mustPhone(t), lines, nil)
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)
	})

	t.Run("copies the snapshot", func(t *testing.T) {
		lines := snapshot()
		o, err := order.NewOrder(uuid.New(), mustAddress(t), mustPhone(t), lines, nil)
		require.NoError(t, err)

		lines[0].Quantity = 99
		assert.Equal(t, int32(2), o.Lines()[0].Quantity)
	})
}

func TestChangeStatus(t *testing.T) {
	newPending := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(uuid.New(), mustAddress(t), mustPhone(t), snapshot(), nil)
		require.NoError(t, err)
		return o
	}

	t.Run("walks the full delivery lifecycle", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.ChangeStatus(order.StatusConfirmed))
		require.NoError(t, o.ChangeStatus(order.StatusDelivering))
		require.NoError(t, o.ChangeStatus(order.StatusDelivered))
		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("pending can be canceled", func(t *testing.T) {
		o := newPending(t)
		assert.NoError(t, o.ChangeStatus(order.StatusCanceled))
	})

	t.Run("skipping a stage is rejected", func(t *testing.T) {
		o := newPending(t)
		assert.ErrorIs(t, o.ChangeStatus(order.StatusDelivered), order.ErrStatusTransition)
	})

	t.Run("terminal states are frozen", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.ChangeStatus(order.StatusCanceled))
		assert.ErrorIs(t, o.ChangeStatus(order.StatusConfirmed), order.ErrStatusTransition)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		o := newPending(t)
		assert.ErrorIs(t, o.ChangeStatus(order.Status("shipped")), order.ErrInvalidStatus)
	})
}

func TestShippingAddress(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		a, err := order.NewShippingAddress("  5 Market Street  ")
		require.NoError(t, err)
		assert.Equal(t, "5 Market Street", a.String())
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := order.NewShippingAddress("   ")
		assert.ErrorIs(t, err, order.ErrEmptyAddress)
	})

	t.Run("rejects over-long", func(t *testing.T) {
		long := make([]byte, order.MaxAddressLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := order.NewShippingAddress(string(long))
		assert.ErrorIs(t, err, order.ErrAddressTooLong)
	})
}

func TestPhone(t *testing.T) {
	valid := []string{"+213555123456", "0555 123 456", "+33 6-12-34-56-78"}
	for _, v := range valid {
		t.Run("accepts "+v, func(t *testing.T) {
			p, err := order.NewPhone(v)
			require.NoError(t, err)
			assert.NotEmpty(t, p.String())
		})
	}

	invalid := []string{"", "abc", "12345", "+"}
	for _, v := range invalid {
		t.Run("rejects "+v, func(t *testing.T) {
			_, err := order.NewPhone(v)
			assert.ErrorIs(t, err, order.ErrInvalidPhone)
		})
	}
}
