package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ProductView struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	PriceCents           int64     `json:"price_cents"`
	DiscountPercent      float64   `json:"discount_percent"`
	DiscountedPriceCents int64     `json:"discounted_price_cents"`
	Stock                int32     `json:"stock"`
	Images               []string  `json:"images"`
	CategoryID           uuid.UUID `json:"category_id"`
	Kind                 string    `json:"kind"`
	AverageRating        float64   `json:"average_rating"`
	ReviewCount          int32     `json:"review_count"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type ProductListItem struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	PriceCents           int64     `json:"price_cents"`
	DiscountPercent      float64   `json:"discount_percent"`
	DiscountedPriceCents int64     `json:"discounted_price_cents"`
	Stock                int32     `json:"stock"`
	ImageURL             string    `json:"image_url,omitempty"`
	CategoryID           uuid.UUID `json:"category_id"`
	Kind                 string    `json:"kind"`
}

type CartLineView struct {
	ProductID       uuid.UUID `json:"product_id"`
	Name            string    `json:"name"`
	UnitPriceCents  int64     `json:"unit_price_cents"`
	DiscountPercent float64   `json:"discount_percent"`
	Quantity        int32     `json:"quantity"`
	LineTotalCents  int64     `json:"line_total_cents"`
	ImageURL        string    `json:"image_url,omitempty"`
}

// CartView carries the derived totals next to the lines; totals are always
// recomputed from the lines, never stored.
type CartView struct {
	Lines           []CartLineView `json:"lines"`
	TotalItems      int32          `json:"total_items"`
	TotalPriceCents int64          `json:"total_price_cents"`
}

type WishlistView struct {
	ProductIDs []uuid.UUID `json:"product_ids"`
}

type ComparisonItemView struct {
	ProductID       uuid.UUID `json:"product_id"`
	Name            string    `json:"name"`
	UnitPriceCents  int64     `json:"unit_price_cents"`
	DiscountPercent float64   `json:"discount_percent"`
	CategoryID      uuid.UUID `json:"category_id"`
	ImageURL        string    `json:"image_url,omitempty"`
}

type ComparisonView struct {
	Items []ComparisonItemView `json:"items"`
}

type OrderLineView struct {
	ProductID       uuid.UUID `json:"product_id"`
	Name            string    `json:"name"`
	UnitPriceCents  int64     `json:"unit_price_cents"`
	DiscountPercent float64   `json:"discount_percent"`
	Quantity        int32     `json:"quantity"`
	LineTotalCents  int64     `json:"line_total_cents"`
}

type OrderView struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	ShippingAddress string          `json:"shipping_address"`
	Phone           string          `json:"phone"`
	Lines           []OrderLineView `json:"lines"`
	SubtotalCents   int64           `json:"subtotal_cents"`
	TotalCents      int64           `json:"total_cents"`
	CouponID        *uuid.UUID      `json:"coupon_id,omitempty"`
	CouponCode      *string         `json:"coupon_code,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderListItem struct {
	ID         uuid.UUID `json:"id"`
	TotalCents int64     `json:"total_cents"`
	TotalItems int32     `json:"total_items"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type CouponView struct {
	ID                 uuid.UUID  `json:"id"`
	Code               string     `json:"code"`
	DiscountPercentage float64    `json:"discount_percentage"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
	IsActive           bool       `json:"is_active"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Topic     string    `json:"topic"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"user_email"`
	ProductID uuid.UUID `json:"product_id"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
