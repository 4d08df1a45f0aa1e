//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gocery/internal/domain/cart"
	"gocery/internal/domain/coupon"
	"gocery/internal/domain/order"
	"gocery/internal/infra/clientstate"
	"gocery/internal/pkg/clock"
	"gocery/internal/usecase/commands"
	"gocery/internal/usecase/shared"
	"gocery/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type orderFixture struct {
	uow    *fakes.UnitOfWork
	clk    *clock.MockClock
	cmds   commands.OrderCommands
	userID uuid.UUID
	oil    shared.ProductSnapshot
	salt   shared.ProductSnapshot
}

// newOrderFixture seeds a user cart with 2x olive oil (10% off) and 1x salt,
// giving a known subtotal of 23000 cents.
func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	f := &orderFixture{
		uow:    fakes.NewUnitOfWork(),
		clk:    clock.NewMockClock(testTime),
		userID: uuid.New(),
	}
	f.cmds = commands.NewOrderCommands(f.uow, f.clk)
	f.oil = seedProduct(f.uow, "Olive oil", 10000, 10, 5)
	f.salt = seedProduct(f.uow, "Salt", 5000, 0, 5)

	ct := cart.NewCart()
	ct.AddItem(cart.Line{ProductID: f.oil.ID, Name: f.oil.Name, UnitPriceCents: f.oil.PriceCents, DiscountPercent: f.oil.DiscountPercent})
	ct.UpdateQuantity(f.oil.ID, 2)
	ct.AddItem(cart.Line{ProductID: f.salt.ID, Name: f.salt.Name, UnitPriceCents: f.salt.PriceCents})

	payload, err := clientstate.Encode(ct)
	require.NoError(t, err)
	f.uow.State.SeedClientState(f.userID.String(), clientstate.ScopeCart, payload)
	return f
}

func (f *orderFixture) input() commands.PlaceOrderInput {
	return commands.PlaceOrderInput{
		UserID:          f.userID,
		ShippingAddress: "12 Rue des Oliviers, Algiers",
		Phone:           "+213 555 123 456",
		IdempotencyKey:  uuid.New(),
		RequestHash:     "hash-1",
	}
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the order and clears the cart", func(t *testing.T) {
		f := newOrderFixture(t)

		orderID, err := f.cmds.PlaceOrder(ctx, f.input())
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, orderID)

		require.Len(t, f.uow.State.Orders, 1)
		o := f.uow.State.Orders[0]
		assert.Equal(t, int64(23000), o.SubtotalCents())
		assert.Equal(t, int64(23000), o.TotalCents())
		assert.Equal(t, order.StatusPending, o.Status())

		assert.Nil(t, f.uow.State.ClientState(f.userID.String(), clientstate.ScopeCart),
			"cart must be cleared after a successful placement")

		assert.Equal(t, int32(3), f.uow.State.Products[f.oil.ID].Stock)
		assert.Equal(t, int32(4), f.uow.State.Products[f.salt.ID].Stock)

		require.Len(t, f.uow.State.Notifs, 1)
		assert.Equal(t, "order.placed", f.uow.State.Notifs[0].Topic)
		assert.Equal(t, f.userID, f.uow.State.Notifs[0].UserID)
	})

	t.Run("stock shortfall on any line rolls everything back", func(t *testing.T) {
		f := newOrderFixture(t)
		short := f.uow.State.Products[f.salt.ID]
		short.Stock = 0
		f.uow.State.Products[f.salt.ID] = short

		_, err := f.cmds.PlaceOrder(ctx, f.input())
		assert.ErrorIs(t, err, commands.ErrInsufficientStock)

		assert.Empty(t, f.uow.State.Orders, "no order may be created")
		assert.Equal(t, int32(5), f.uow.State.Products[f.oil.ID].Stock,
			"already decremented lines must be rolled back")
		assert.NotNil(t, f.uow.State.ClientState(f.userID.String(), clientstate.ScopeCart),
			"cart must survive a failed placement")
		assert.Empty(t, f.uow.State.Notifs)
	})

	t.Run("failed notification write rolls the placement back", func(t *testing.T) {
		f := newOrderFixture(t)
		f.uow.State.NotifyErr = errors.New("notifications table unavailable")

		_, err := f.cmds.PlaceOrder(ctx, f.input())
		require.Error(t, err)

		assert.Empty(t, f.uow.State.Orders, "no order may exist without its placed notification")
		assert.Equal(t, int32(5), f.uow.State.Products[f.oil.ID].Stock)
		assert.NotNil(t, f.uow.State.ClientState(f.userID.String(), clientstate.ScopeCart))
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		f := newOrderFixture(t)
		f.uow.State.SeedClientState(f.userID.String(), clientstate.ScopeCart, nil)

		_, err := f.cmds.PlaceOrder(ctx, f.input())
		assert.ErrorIs(t, err, order.ErrEmptyCart)
	})

	t.Run("invalid address fails before any write", func(t *testing.T) {
		f := newOrderFixture(t)
		in := f.input()
		in.ShippingAddress = "   "

		_, err := f.cmds.PlaceOrder(ctx, in)
		assert.ErrorIs(t, err, order.ErrEmptyAddress)
		assert.Empty(t, f.uow.State.Idempotency)
	})
}

func TestPlaceOrderCoupon(t *testing.T) {
	ctx := context.Background()
	code := "FRESH10"

	t.Run("valid coupon discounts the total, not the lines", func(t *testing.T) {
		f := newOrderFixture(t)
		f.uow.State.Coupons[code] = shared.CouponSnapshot{
			ID: uuid.New(), Code: code, DiscountPercentage: 10, IsActive: true,
		}
		in := f.input()
		in.CouponCode = &code

		_, err := f.cmds.PlaceOrder(ctx, in)
		require.NoError(t, err)

		o := f.uow.State.Orders[0]
		assert.Equal(t, int64(23000), o.SubtotalCents())
		assert.Equal(t, int64(20700), o.TotalCents())
		require.NotNil(t, o.CouponID())
	})

	t.Run("unknown code aborts the placement", func(t *testing.T) {
		f := newOrderFixture(t)
		in := f.input()
		in.CouponCode = &code

		_, err := f.cmds.PlaceOrder(ctx, in)
		assert.ErrorIs(t, err, commands.ErrCouponNotFound)
		assert.Empty(t, f.uow.State.Orders)
		assert.NotNil(t, f.uow.State.ClientState(f.userID.String(), clientstate.ScopeCart))
	})

	t.Run("expired coupon aborts the placement", func(t *testing.T) {
		f := newOrderFixture(t)
		expired := testTime.Add(-time.Hour)
		f.uow.State.Coupons[code] = shared.CouponSnapshot{
			ID: uuid.New(), Code: code, DiscountPercentage: 10, ExpiresAt: &expired, IsActive: true,
		}
		in := f.input()
		in.CouponCode = &code

		_, err := f.cmds.PlaceOrder(ctx, in)
		assert.ErrorIs(t, err, coupon.ErrCouponExpired)
		assert.Empty(t, f.uow.State.Orders)
	})
}

func TestPlaceOrderIdempotency(t *testing.T) {
	ctx := context.Background()

	t.Run("same key and request replays the completed order", func(t *testing.T) {
		f := newOrderFixture(t)
		in := f.input()

		first, err := f.cmds.PlaceOrder(ctx, in)
		require.NoError(t, err)

		second, err := f.cmds.PlaceOrder(ctx, in)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, f.uow.State.Orders, 1, "replay must not create a second order")
	})

	t.Run("same key with a different request is rejected", func(t *testing.T) {
		f := newOrderFixture(t)
		in := f.input()

		_, err := f.cmds.PlaceOrder(ctx, in)
		require.NoError(t, err)

		in.RequestHash = "hash-2"
		_, err = f.cmds.PlaceOrder(ctx, in)
		assert.ErrorIs(t, err, commands.ErrIdempotencyKeyReused)
	})

	t.Run("key still processing is reported as in progress", func(t *testing.T) {
		f := newOrderFixture(t)
		in := f.input()
		f.uow.State.Idempotency[in.IdempotencyKey.String()+"/"+f.userID.String()] = shared.IdempotencyRecord{
			Key:         in.IdempotencyKey,
			UserID:      f.userID,
			Status:      shared.IdempotencyStatusProcessing,
			RequestHash: in.RequestHash,
			ExpiresAt:   testTime.Add(time.Hour),
		}

		_, err := f.cmds.PlaceOrder(ctx, in)
		assert.ErrorIs(t, err, commands.ErrOrderInProgress)
	})

	t.Run("completed record is marked with the order id", func(t *testing.T) {
		f := newOrderFixture(t)
		in := f.input()

		orderID, err := f.cmds.PlaceOrder(ctx, in)
		require.NoError(t, err)

		rec, err := f.uow.CommandReads().IdempotencyByKey(ctx, in.IdempotencyKey, f.userID)
		require.NoError(t, err)
		assert.Equal(t, shared.IdempotencyStatusCompleted, rec.Status)
		require.NotNil(t, rec.ResultOrderID)
		assert.Equal(t, orderID, *rec.ResultOrderID)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	place := func(t *testing.T) (*orderFixture, uuid.UUID) {
		t.Helper()
		f := newOrderFixture(t)
		id, err := f.cmds.PlaceOrder(ctx, f.input())
		require.NoError(t, err)
		return f, id
	}

	t.Run("valid transition updates and notifies", func(t *testing.T) {
		f, id := place(t)

		require.NoError(t, f.cmds.UpdateStatus(ctx, id, "confirmed"))

		assert.Equal(t, order.StatusConfirmed, f.uow.State.OrderStatus[id])
		last := f.uow.State.Notifs[len(f.uow.State.Notifs)-1]
		assert.Equal(t, "order.status", last.Topic)
	})

	t.Run("failed notification write keeps the previous status", func(t *testing.T) {
		f, id := place(t)
		f.uow.State.NotifyErr = errors.New("notifications table unavailable")

		err := f.cmds.UpdateStatus(ctx, id, "confirmed")
		require.Error(t, err)
		assert.Equal(t, order.StatusPending, f.uow.State.OrderStatus[id])
	})

	t.Run("skipping a stage is rejected", func(t *testing.T) {
		f, id := place(t)
		err := f.cmds.UpdateStatus(ctx, id, "delivered")
		assert.ErrorIs(t, err, order.ErrStatusTransition)
		assert.Equal(t, order.StatusPending, f.uow.State.OrderStatus[id])
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		f, id := place(t)
		err := f.cmds.UpdateStatus(ctx, id, "shipped")
		assert.ErrorIs(t, err, order.ErrInvalidStatus)
	})
}
