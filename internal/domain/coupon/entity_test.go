//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"gocery/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoupon(t *testing.T) {
	t.Run("normalizes code to upper case", func(t *testing.T) {
		c, err := coupon.NewCoupon(uuid.Nil, "  fresh10  ", 10, nil, true)
		require.NoError(t, err)
		assert.Equal(t, "FRESH10", c.Code())
		assert.NotEqual(t, uuid.Nil, c.ID())
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := coupon.NewCoupon(uuid.Nil, "   ", 10, nil, true)
		assert.ErrorIs(t, err, coupon.ErrEmptyCode)
	})

	t.Run("percentage bounds", func(t *testing.T) {
		cases := []struct {
			name    string
			percent float64
			errIs   error
		}{
			{name: "zero percent", percent: 0},
			{name: "full percent", percent: 100},
			{name: "negative", percent: -1, errIs: coupon.ErrInvalidPercent},
			{name: "over hundred", percent: 101, errIs: coupon.ErrInvalidPercent},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := coupon.NewCoupon(uuid.Nil, "CODE", tc.percent, nil, true)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})
}

func TestCouponValidateUsage(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("active without expiry is usable", func(t *testing.T) {
		c, err := coupon.NewCoupon(uuid.Nil, "CODE", 10, nil, true)
		require.NoError(t, err)
		assert.NoError(t, c.ValidateUsage(now))
		assert.True(t, c.IsValidAt(now))
	})

	t.Run("inactive coupon is rejected", func(t *testing.T) {
		c, err := coupon.NewCoupon(uuid.Nil, "CODE", 10, nil, false)
		require.NoError(t, err)
		assert.ErrorIs(t, c.ValidateUsage(now), coupon.ErrCouponInactive)
	})

	t.Run("expired coupon is rejected", func(t *testing.T) {
		expired := now.Add(-time.Hour)
		c, err := coupon.NewCoupon(uuid.Nil, "CODE", 10, &expired, true)
		require.NoError(t, err)
		assert.ErrorIs(t, c.ValidateUsage(now), coupon.ErrCouponExpired)
	})

	t.Run("expiry boundary is inclusive", func(t *testing.T) {
		c, err := coupon.NewCoupon(uuid.Nil, "CODE", 10, &now, true)
		require.NoError(t, err)
		assert.NoError(t, c.ValidateUsage(now))
		assert.ErrorIs(t, c.ValidateUsage(now.Add(time.Nanosecond)), coupon.ErrCouponExpired)
	})
}

func TestCouponApplyDiscount(t *testing.T) {
	cases := []struct {
		name     string
		percent  float64
		subtotal int64
		expected int64
	}{
		{name: "ten percent off", percent: 10, subtotal: 25000, expected: 22500},
		{name: "truncates toward zero", percent: 10, subtotal: 999, expected: 899},
		{name: "zero percent keeps subtotal", percent: 0, subtotal: 25000, expected: 25000},
		{name: "hundred percent zeroes subtotal", percent: 100, subtotal: 25000, expected: 0},
		{name: "zero subtotal stays zero", percent: 50, subtotal: 0, expected: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := coupon.NewCoupon(uuid.Nil, "CODE", tc.percent, nil, true)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, c.ApplyDiscount(tc.subtotal))
		})
	}
}
