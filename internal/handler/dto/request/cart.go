package request

import "github.com/google/uuid"

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int32 `json:"quantity"`
}
