//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gocery/internal/domain/coupon"
	"gocery/internal/pkg/clock"
	"gocery/internal/usecase/commands"
	"gocery/internal/usecase/shared"
	"gocery/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponValidate(t *testing.T) {
	ctx := context.Background()
	code := "FRESH10"

	newCmds := func(uow *fakes.UnitOfWork) commands.CouponCommands {
		return commands.NewCouponCommands(uow, clock.NewMockClock(testTime))
	}

	t.Run("quotes the discounted total without persisting anything", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		uow.State.Coupons[code] = shared.CouponSnapshot{
			ID: uuid.New(), Code: code, DiscountPercentage: 10, IsActive: true,
		}

		quote, err := newCmds(uow).Validate(ctx, code, 25000)
		require.NoError(t, err)

		assert.Equal(t, code, quote.Code)
		assert.Equal(t, float64(10), quote.DiscountPercentage)
		assert.Equal(t, int64(25000), quote.SubtotalCents)
		assert.Equal(t, int64(22500), quote.TotalCents)
		assert.Empty(t, uow.State.Orders)
	})

	t.Run("unknown code", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		_, err := newCmds(uow).Validate(ctx, code, 25000)
		assert.ErrorIs(t, err, commands.ErrCouponNotFound)
	})

	t.Run("inactive coupon", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		uow.State.Coupons[code] = shared.CouponSnapshot{
			ID: uuid.New(), Code: code, DiscountPercentage: 10, IsActive: false,
		}
		_, err := newCmds(uow).Validate(ctx, code, 25000)
		assert.ErrorIs(t, err, coupon.ErrCouponInactive)
	})

	t.Run("expired coupon", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		expired := testTime.Add(-time.Hour)
		uow.State.Coupons[code] = shared.CouponSnapshot{
			ID: uuid.New(), Code: code, DiscountPercentage: 10, ExpiresAt: &expired, IsActive: true,
		}
		_, err := newCmds(uow).Validate(ctx, code, 25000)
		assert.ErrorIs(t, err, coupon.ErrCouponExpired)
	})
}
