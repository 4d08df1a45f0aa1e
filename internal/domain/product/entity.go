package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrNegativePrice   = errors.New("product price cannot be negative")
	ErrInvalidDiscount = errors.New("discount percent must be between 0 and 100")
	ErrNegativeStock   = errors.New("product stock cannot be negative")
	ErrInvalidKind     = errors.New("invalid product kind")
)

type Product struct {
	id              uuid.UUID
	name            string
	priceCents      int64
	discountPercent float64
	stock           int32
	images          []string
	categoryID      uuid.UUID
	kind            Kind
	createdAt       time.Time
	updatedAt       time.Time
}

func NewProduct(
	id uuid.UUID,
	name string,
	priceCents int64,
	discountPercent float64,
	stock int32,
	images []string,
	categoryID uuid.UUID,
	kind Kind,
) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if discountPercent < 0 || discountPercent > 100 {
		return nil, ErrInvalidDiscount
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Product{
		id:              id,
		name:            name,
		priceCents:      priceCents,
		discountPercent: discountPercent,
		stock:           stock,
		images:          images,
		categoryID:      categoryID,
		kind:            kind,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	name string,
	priceCents int64,
	discountPercent float64,
	stock int32,
	images []string,
	categoryID uuid.UUID,
	kind Kind,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:              id,
		name:            name,
		priceCents:      priceCents,
		discountPercent: discountPercent,
		stock:           stock,
		images:          images,
		categoryID:      categoryID,
		kind:            kind,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// DiscountedPriceCents is the effective unit price after the product's own
// discount, rounded down to whole cents.
func (p *Product) DiscountedPriceCents() int64 {
	price := int64(float64(p.priceCents) * (100.0 - p.discountPercent) / 100.0)
	if price < 0 {
		return 0
	}
	return price
}

func (p *Product) HasStock(quantity int32) bool {
	return p.stock >= quantity
}

func (p *Product) ID() uuid.UUID           { return p.id }
func (p *Product) Name() string            { return p.name }
func (p *Product) PriceCents() int64       { return p.priceCents }
func (p *Product) DiscountPercent() float64 { return p.discountPercent }
func (p *Product) Stock() int32            { return p.stock }
func (p *Product) Images() []string        { return p.images }
func (p *Product) CategoryID() uuid.UUID   { return p.categoryID }
func (p *Product) Kind() Kind              { return p.kind }
func (p *Product) CreatedAt() time.Time    { return p.createdAt }
func (p *Product) UpdatedAt() time.Time    { return p.updatedAt }
