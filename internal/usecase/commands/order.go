package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gocery/internal/domain/cart"
	"gocery/internal/domain/coupon"
	"gocery/internal/domain/order"
	"gocery/internal/infra"
	"gocery/internal/infra/clientstate"
	"gocery/internal/pkg/clock"
	"gocery/internal/pkg/errs"
	"gocery/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInsufficientStock    = errs.New("not enough stock for one or more cart items")
	ErrCouponNotFound       = errs.New("coupon code not found")
	ErrOrderInProgress      = errs.New("an order with this idempotency key is being processed")
	ErrIdempotencyKeyReused = errs.New("idempotency key was used with a different request")
)

const idempotencyTTL = 24 * time.Hour

type PlaceOrderInput struct {
	UserID          uuid.UUID
	ShippingAddress string
	Phone           string
	CouponCode      *string
	IdempotencyKey  uuid.UUID
	RequestHash     string
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, nextStatus string) error
}

type orderCommandsImpl struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{uow: uow, clk: clk}
}

// PlaceOrder turns the user's cart into a durable order. Stock is checked
// and decremented for every line inside one transaction; a shortfall on any
// line rolls the whole placement back and leaves the cart untouched. The
// cart is cleared only after everything else has succeeded.
func (c *orderCommandsImpl) PlaceOrder(ctx context.Context, input PlaceOrderInput) (uuid.UUID, error) {
	address, err := order.NewShippingAddress(input.ShippingAddress)
	if err != nil {
		return uuid.Nil, err
	}
	phone, err := order.NewPhone(input.Phone)
	if err != nil {
		return uuid.Nil, err
	}

	if input.IdempotencyKey != uuid.Nil {
		if orderID, done, err := c.checkIdempotency(ctx, input); done || err != nil {
			return orderID, err
		}
	}

	var orderID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if input.IdempotencyKey != uuid.Nil {
			err := tx.Idempotency().TryInsert(ctx, tx.DB(),
				input.IdempotencyKey, input.UserID, "orders.place", input.RequestHash, c.clk.Now().Add(idempotencyTTL))
			if err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return errs.Mark(err, ErrOrderInProgress)
				}
				return err
			}
		}

		raw, err := tx.Reads().ClientState(ctx, input.UserID.String(), clientstate.ScopeCart)
		if err != nil {
			return err
		}
		ct := cart.NewCart()
		clientstate.Decode(raw, ct)
		if ct.IsEmpty() {
			return order.ErrEmptyCart
		}

		coup, err := c.resolveCoupon(ctx, tx, input.CouponCode)
		if err != nil {
			return err
		}

		for _, line := range ct.Items {
			ok, err := tx.Products().DecrementStock(ctx, tx.DB(), line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return errs.Mark(errs.New(fmt.Sprintf("insufficient stock for %q", line.Name)), ErrInsufficientStock)
			}
		}

		o, err := order.NewOrder(input.UserID, address, phone, ct.Snapshot(), coup)
		if err != nil {
			return err
		}
		if _, err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
			return err
		}

		// The notification rides the placement transaction. A write
		// failure rolls the whole placement back; an order must never
		// exist without its "order.placed" record.
		payload, _ := json.Marshal(map[string]any{
			"order_id":    o.ID(),
			"total_cents": o.TotalCents(),
		})
		if err := tx.Notifications().Create(ctx, tx.DB(),
			input.UserID, "order.placed", "Your order has been placed", payload); err != nil {
			return err
		}

		if err := tx.ClientStates().Delete(ctx, tx.DB(), input.UserID.String(), clientstate.ScopeCart); err != nil {
			return err
		}

		if input.IdempotencyKey != uuid.Nil {
			if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(),
				input.IdempotencyKey, input.UserID, o.ID()); err != nil {
				return err
			}
		}

		orderID = o.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return orderID, nil
}

// checkIdempotency replays a completed placement for the same key and
// request, and rejects key reuse across different requests.
func (c *orderCommandsImpl) checkIdempotency(ctx context.Context, input PlaceOrderInput) (uuid.UUID, bool, error) {
	rec, err := c.uow.CommandReads().IdempotencyByKey(ctx, input.IdempotencyKey, input.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, err
	}
	if c.clk.Now().After(rec.ExpiresAt) {
		return uuid.Nil, false, nil
	}
	if rec.RequestHash != input.RequestHash {
		return uuid.Nil, false, ErrIdempotencyKeyReused
	}
	if rec.Status == shared.IdempotencyStatusCompleted && rec.ResultOrderID != nil {
		return *rec.ResultOrderID, true, nil
	}
	return uuid.Nil, false, ErrOrderInProgress
}

func (c *orderCommandsImpl) resolveCoupon(ctx context.Context, tx shared.Tx, code *string) (*coupon.Coupon, error) {
	if code == nil || *code == "" {
		return nil, nil
	}

	snap, err := tx.Reads().CouponByCode(ctx, *code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCouponNotFound)
		}
		return nil, err
	}

	coup, err := coupon.NewCoupon(snap.ID, snap.Code, snap.DiscountPercentage, snap.ExpiresAt, snap.IsActive)
	if err != nil {
		return nil, err
	}
	if err := coup.ValidateUsage(c.clk.Now()); err != nil {
		return nil, err
	}
	return coup, nil
}

func (c *orderCommandsImpl) UpdateStatus(ctx context.Context, orderID uuid.UUID, nextStatus string) error {
	next, err := order.NewStatus(nextStatus)
	if err != nil {
		return err
	}

	snap, err := c.uow.CommandReads().OrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	current := order.Status(snap.Status)
	if !current.CanTransitionTo(next) {
		return order.ErrStatusTransition
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Orders().UpdateStatus(ctx, tx.DB(), orderID, next); err != nil {
			return err
		}

		// Same contract as PlaceOrder: the status change and its
		// notification commit together or not at all.
		payload, _ := json.Marshal(map[string]any{
			"order_id": orderID,
			"status":   next.String(),
		})
		return tx.Notifications().Create(ctx, tx.DB(),
			snap.UserID, "order.status", fmt.Sprintf("Your order is now %s", next), payload)
	})
}
