package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ProductSnapshot struct {
	ID              uuid.UUID
	Name            string
	PriceCents      int64
	DiscountPercent float64
	Stock           int32
	ImageURL        string
	CategoryID      uuid.UUID
	Kind            string
}

type CouponSnapshot struct {
	ID                 uuid.UUID
	Code               string
	DiscountPercentage float64
	ExpiresAt          *time.Time
	IsActive           bool
}

type OrderSnapshot struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Status string
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key           uuid.UUID
	UserID        uuid.UUID
	Status        string
	RequestHash   string
	ResultOrderID *uuid.UUID
	ExpiresAt     time.Time
}

type UserCredential struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type ReviewSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Rating    int
	Comment   string
}
