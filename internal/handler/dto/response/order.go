package response

import (
	"time"

	"gocery/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderLineResponse struct {
	ProductID       uuid.UUID `json:"productId"`
	Name            string    `json:"name"`
	UnitPriceCents  int64     `json:"unitPriceCents"`
	DiscountPercent float64   `json:"discountPercent"`
	Quantity        int32     `json:"quantity"`
	LineTotalCents  int64     `json:"lineTotalCents"`
}

type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	UserID          uuid.UUID           `json:"userId"`
	ShippingAddress string              `json:"shippingAddress"`
	Phone           string              `json:"phone"`
	Lines           []OrderLineResponse `json:"lines"`
	SubtotalCents   int64               `json:"subtotalCents"`
	TotalCents      int64               `json:"totalCents"`
	CouponID        *uuid.UUID          `json:"couponId,omitempty"`
	CouponCode      *string             `json:"couponCode,omitempty"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

type OrderListResponse struct {
	ID         uuid.UUID `json:"id"`
	TotalCents int64     `json:"totalCents"`
	TotalItems int32     `json:"totalItems"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromOrderListItems(items []*queries.OrderListItem) []*OrderListResponse {
	resp := make([]*OrderListResponse, len(items))
	for i, it := range items {
		var r OrderListResponse
		_ = copier.Copy(&r, it)
		resp[i] = &r
	}
	return resp
}
