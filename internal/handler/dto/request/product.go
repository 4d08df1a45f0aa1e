package request

import "github.com/google/uuid"

type CreateProductRequest struct {
	Name            string    `json:"name" binding:"required"`
	PriceCents      int64     `json:"priceCents" binding:"required,min=0"`
	DiscountPercent float64   `json:"discountPercent" binding:"min=0,max=100"`
	Stock           int32     `json:"stock" binding:"min=0"`
	Images          []string  `json:"images"`
	CategoryID      uuid.UUID `json:"categoryId" binding:"required"`
	Kind            string    `json:"kind" binding:"required,oneof=standard bundle"`
}

type UpdateProductRequest struct {
	Name            string    `json:"name" binding:"required"`
	PriceCents      int64     `json:"priceCents" binding:"required,min=0"`
	DiscountPercent float64   `json:"discountPercent" binding:"min=0,max=100"`
	Stock           int32     `json:"stock" binding:"min=0"`
	Images          []string  `json:"images"`
	CategoryID      uuid.UUID `json:"categoryId" binding:"required"`
	Kind            string    `json:"kind" binding:"required,oneof=standard bundle"`
}
