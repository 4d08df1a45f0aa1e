package wishlist

import (
	"github.com/google/uuid"
)

// Wishlist is the set of product IDs a user has saved. Order of insertion
// is kept so the persisted form is stable.
type Wishlist struct {
	ProductIDs []uuid.UUID `json:"product_ids"`
}

func NewWishlist() *Wishlist {
	return &Wishlist{ProductIDs: []uuid.UUID{}}
}

// Toggle removes the product if present, adds it otherwise. It reports
// whether the product is in the wishlist after the call.
func (w *Wishlist) Toggle(productID uuid.UUID) bool {
	for i, id := range w.ProductIDs {
		if id == productID {
			w.ProductIDs = append(w.ProductIDs[:i], w.ProductIDs[i+1:]...)
			return false
		}
	}
	w.ProductIDs = append(w.ProductIDs, productID)
	return true
}

func (w *Wishlist) Contains(productID uuid.UUID) bool {
	for _, id := range w.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

func (w *Wishlist) Clear() {
	w.ProductIDs = w.ProductIDs[:0]
}
