package request

import "github.com/google/uuid"

type DescribeProductRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
}
