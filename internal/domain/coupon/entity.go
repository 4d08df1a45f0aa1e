package coupon

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCode      = errors.New("coupon code cannot be empty")
	ErrInvalidPercent = errors.New("discount percentage must be between 0 and 100")
	ErrCouponExpired  = errors.New("coupon has expired")
	ErrCouponInactive = errors.New("coupon is not active")
)

// Coupon is read-only to the commerce-state layer: it is applied
// multiplicatively to the cart subtotal at checkout time and never
// persisted into the cart itself.
type Coupon struct {
	id                 uuid.UUID
	code               string
	discountPercentage float64
	expiresAt          *time.Time
	isActive           bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	discountPercentage float64,
	expiresAt *time.Time,
	isActive bool,
) (*Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrEmptyCode
	}
	if discountPercentage < 0 || discountPercentage > 100 {
		return nil, ErrInvalidPercent
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Coupon{
		id:                 id,
		code:               code,
		discountPercentage: discountPercentage,
		expiresAt:          expiresAt,
		isActive:           isActive,
	}, nil
}

func (c *Coupon) IsValidAt(t time.Time) bool {
	if !c.isActive {
		return false
	}
	if c.expiresAt != nil && t.After(*c.expiresAt) {
		return false
	}
	return true
}

func (c *Coupon) ValidateUsage(t time.Time) error {
	if !c.isActive {
		return ErrCouponInactive
	}
	if c.expiresAt != nil && t.After(*c.expiresAt) {
		return ErrCouponExpired
	}
	return nil
}

// ApplyDiscount reduces a subtotal by the coupon percentage.
func (c *Coupon) ApplyDiscount(subtotalCents int64) int64 {
	result := int64(float64(subtotalCents) * (100.0 - c.discountPercentage) / 100.0)
	if result < 0 {
		return 0
	}
	return result
}

func (c *Coupon) ID() uuid.UUID               { return c.id }
func (c *Coupon) Code() string                { return c.code }
func (c *Coupon) DiscountPercentage() float64 { return c.discountPercentage }
func (c *Coupon) ExpiresAt() *time.Time       { return c.expiresAt }
func (c *Coupon) IsActive() bool              { return c.isActive }
func (c *Coupon) CreatedAt() time.Time        { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time        { return c.updatedAt }
