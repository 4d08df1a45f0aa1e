package response

import (
	"gocery/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type WishlistResponse struct {
	ProductIDs []uuid.UUID `json:"productIds"`
}

// WishlistToggleResponse tells the client the post-toggle membership so the
// heart icon can flip without a follow-up fetch.
type WishlistToggleResponse struct {
	InWishlist bool        `json:"inWishlist"`
	ProductIDs []uuid.UUID `json:"productIds"`
}

type ComparisonItemResponse struct {
	ProductID       uuid.UUID `json:"productId"`
	Name            string    `json:"name"`
	UnitPriceCents  int64     `json:"unitPriceCents"`
	DiscountPercent float64   `json:"discountPercent"`
	CategoryID      uuid.UUID `json:"categoryId"`
	ImageURL        string    `json:"imageUrl,omitempty"`
}

type ComparisonResponse struct {
	Items []ComparisonItemResponse `json:"items"`
}

// ComparisonToggleResponse reports a rejected add (full set) as changed=false.
type ComparisonToggleResponse struct {
	Changed bool                     `json:"changed"`
	Items   []ComparisonItemResponse `json:"items"`
}

func FromWishlistView(v *queries.WishlistView) *WishlistResponse {
	ids := v.ProductIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return &WishlistResponse{ProductIDs: ids}
}

func FromComparisonView(v *queries.ComparisonView) *ComparisonResponse {
	var resp ComparisonResponse
	_ = copier.Copy(&resp, v)
	if resp.Items == nil {
		resp.Items = []ComparisonItemResponse{}
	}
	return &resp
}
