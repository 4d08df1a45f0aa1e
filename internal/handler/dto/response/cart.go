package response

import (
	"gocery/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CartLineResponse struct {
	ProductID       uuid.UUID `json:"productId"`
	Name            string    `json:"name"`
	UnitPriceCents  int64     `json:"unitPriceCents"`
	DiscountPercent float64   `json:"discountPercent"`
	Quantity        int32     `json:"quantity"`
	LineTotalCents  int64     `json:"lineTotalCents"`
	ImageURL        string    `json:"imageUrl,omitempty"`
}

type CartResponse struct {
	Lines           []CartLineResponse `json:"lines"`
	TotalItems      int32              `json:"totalItems"`
	TotalPriceCents int64              `json:"totalPriceCents"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	var resp CartResponse
	_ = copier.Copy(&resp, v)
	if resp.Lines == nil {
		resp.Lines = []CartLineResponse{}
	}
	return &resp
}
