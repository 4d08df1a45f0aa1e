package comparison

import (
	"github.com/google/uuid"
)

// MaxItems is the ceiling on products compared side by side.
const MaxItems = 4

// Item is the product snapshot held for comparison.
type Item struct {
	ProductID       uuid.UUID `json:"product_id"`
	Name            string    `json:"name"`
	UnitPriceCents  int64     `json:"unit_price_cents"`
	DiscountPercent float64   `json:"discount_percent"`
	CategoryID      uuid.UUID `json:"category_id"`
	ImageURL        string    `json:"image_url,omitempty"`
}

// Set is an ordered comparison set, unique by product ID. Toggling a new
// product when the set is full is a rejected no-op; nothing is evicted.
type Set struct {
	Items []Item `json:"items"`
}

func NewSet() *Set {
	return &Set{Items: []Item{}}
}

// Toggle removes the product if present, adds it otherwise. It reports
// whether the set changed.
func (s *Set) Toggle(item Item) bool {
	for i, it := range s.Items {
		if it.ProductID == item.ProductID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return true
		}
	}
	if len(s.Items) >= MaxItems {
		return false
	}
	s.Items = append(s.Items, item)
	return true
}

func (s *Set) Contains(productID uuid.UUID) bool {
	for _, it := range s.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

func (s *Set) Clear() {
	s.Items = s.Items[:0]
}

func (s *Set) IsFull() bool {
	return len(s.Items) >= MaxItems
}
