package response

import (
	"time"

	"gocery/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProductResponse struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	PriceCents           int64     `json:"priceCents"`
	DiscountPercent      float64   `json:"discountPercent"`
	DiscountedPriceCents int64     `json:"discountedPriceCents"`
	Stock                int32     `json:"stock"`
	Images               []string  `json:"images"`
	CategoryID           uuid.UUID `json:"categoryId"`
	Kind                 string    `json:"kind"`
	AverageRating        float64   `json:"averageRating"`
	ReviewCount          int32     `json:"reviewCount"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

type ProductListResponse struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	PriceCents           int64     `json:"priceCents"`
	DiscountPercent      float64   `json:"discountPercent"`
	DiscountedPriceCents int64     `json:"discountedPriceCents"`
	Stock                int32     `json:"stock"`
	ImageURL             string    `json:"imageUrl,omitempty"`
	CategoryID           uuid.UUID `json:"categoryId"`
	Kind                 string    `json:"kind"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	var resp ProductResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromProductListItems(items []*queries.ProductListItem) []*ProductListResponse {
	resp := make([]*ProductListResponse, len(items))
	for i, it := range items {
		var r ProductListResponse
		_ = copier.Copy(&r, it)
		resp[i] = &r
	}
	return resp
}
