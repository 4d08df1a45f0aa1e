package commands

import (
	"context"

	"gocery/internal/domain/coupon"
	"gocery/internal/infra"
	"gocery/internal/pkg/clock"
	"gocery/internal/pkg/errs"
	"gocery/internal/usecase/shared"
)

// CouponQuote previews what a coupon would do to a checkout subtotal.
// Nothing is persisted; coupons only take effect at order placement.
type CouponQuote struct {
	Code               string
	DiscountPercentage float64
	SubtotalCents      int64
	TotalCents         int64
}

type CouponCommands interface {
	Validate(ctx context.Context, code string, subtotalCents int64) (*CouponQuote, error)
}

type couponCommandsImpl struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{uow: uow, clk: clk}
}

func (c *couponCommandsImpl) Validate(ctx context.Context, code string, subtotalCents int64) (*CouponQuote, error) {
	snap, err := c.uow.CommandReads().CouponByCode(ctx, code)
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

	return &CouponQuote{
		Code:               coup.Code(),
		DiscountPercentage: coup.DiscountPercentage(),
		SubtotalCents:      subtotalCents,
		TotalCents:         coup.ApplyDiscount(subtotalCents),
	}, nil
}
