package request

import "github.com/google/uuid"

// ToggleRequest serves both the wishlist and comparison toggle endpoints.
type ToggleRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
}
