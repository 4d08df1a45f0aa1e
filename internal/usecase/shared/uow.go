package shared

import (
	"context"
	"time"

	"gocery/internal/domain/order"
	"gocery/internal/domain/product"
	"gocery/internal/domain/review"
	"gocery/internal/domain/user"
	"gocery/internal/infra/clientstate"
	"gocery/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Products() ProductRepository
	ClientStates() ClientStateRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reviews() ReviewRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	CouponByCode(ctx context.Context, code string) (*CouponSnapshot, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserCredential, error)
	ClientState(ctx context.Context, ownerID string, scope clientstate.Scope) ([]byte, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, orderID uuid.UUID, status order.Status) error
}

type ProductRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *product.Product) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, p *product.Product) error
	// DecrementStock reduces stock by quantity only when enough remains,
	// reporting whether the decrement happened.
	DecrementStock(ctx context.Context, tx db.DBTX, productID uuid.UUID, quantity int32) (bool, error)
	RecalcRatingStats(ctx context.Context, tx db.DBTX, productID uuid.UUID) error
}

type ClientStateRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, ownerID string, scope clientstate.Scope, payload []byte) error
	Delete(ctx context.Context, tx db.DBTX, ownerID string, scope clientstate.Scope) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, resultOrderID uuid.UUID) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, topic, message string, payload []byte) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, rev *review.Review) error
	Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error
}
