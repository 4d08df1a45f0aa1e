package order

import (
	"errors"
	"time"

	"gocery/internal/domain/cart"
	"gocery/internal/domain/coupon"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart        = errors.New("cannot place an order from an empty cart")
	ErrInvalidQuantity  = errors.New("order line quantity must be at least 1")
	ErrEmptyAddress     = errors.New("shipping address cannot be empty")
	ErrAddressTooLong   = errors.New("shipping address is too long")
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrStatusTransition = errors.New("invalid order status transition")
)

// Order is the durable record created from a cart snapshot. Ownership of the
// lines transfers here at placement; the cart is cleared only after the
// placement transaction commits.
type Order struct {
	id              uuid.UUID
	userID          uuid.UUID
	shippingAddress ShippingAddress
	phone           Phone
	lines           []cart.Line
	subtotalCents   int64
	totalCents      int64
	couponID        *uuid.UUID
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// NewOrder builds a pending order from a cart snapshot. The coupon, when
// present, has already been validated by the caller and is applied
// multiplicatively to the subtotal.
func NewOrder(
	userID uuid.UUID,
	address ShippingAddress,
	phone Phone,
	snapshot []cart.Line,
	coup *coupon.Coupon,
) (*Order, error) {
	if len(snapshot) == 0 {
		return nil, ErrEmptyCart
	}
	for _, l := range snapshot {
		if l.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	var subtotal int64
	for _, l := range snapshot {
		subtotal += l.LineTotalCents()
	}

	total := subtotal
	var couponID *uuid.UUID
	if coup != nil {
		total = coup.ApplyDiscount(subtotal)
		id := coup.ID()
		couponID = &id
	}

	lines := make([]cart.Line, len(snapshot))
	copy(lines, snapshot)

	return &Order{
		id:              uuid.New(),
		userID:          userID,
		shippingAddress: address,
		phone:           phone,
		lines:           lines,
		subtotalCents:   subtotal,
		totalCents:      total,
		couponID:        couponID,
		status:          StatusPending,
	}, nil
}

func ReconstructOrder(
	id, userID uuid.UUID,
	address ShippingAddress,
	phone Phone,
	lines []cart.Line,
	subtotalCents, totalCents int64,
	couponID *uuid.UUID,
	status Status,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:              id,
		userID:          userID,
		shippingAddress: address,
		phone:           phone,
		lines:           lines,
		subtotalCents:   subtotalCents,
		totalCents:      totalCents,
		couponID:        couponID,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ChangeStatus advances the order along the delivery lifecycle.
func (o *Order) ChangeStatus(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !o.status.CanTransitionTo(next) {
		return ErrStatusTransition
	}
	o.status = next
	return nil
}

func (o *Order) TotalItems() int32 {
	var n int32
	for _, l := range o.lines {
		n += l.Quantity
	}
	return n
}

func (o *Order) ID() uuid.UUID                    { return o.id }
func (o *Order) UserID() uuid.UUID                { return o.userID }
func (o *Order) ShippingAddress() ShippingAddress { return o.shippingAddress }
func (o *Order) Phone() Phone                     { return o.phone }
func (o *Order) Lines() []cart.Line               { return o.lines }
func (o *Order) SubtotalCents() int64             { return o.subtotalCents }
func (o *Order) TotalCents() int64                { return o.totalCents }
func (o *Order) CouponID() *uuid.UUID             { return o.couponID }
func (o *Order) Status() Status                   { return o.status }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() time.Time             { return o.updatedAt }
