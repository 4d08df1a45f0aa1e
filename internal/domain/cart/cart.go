package cart

import (
	"github.com/google/uuid"
)

// Line is one product entry in the cart, carrying its own quantity
// independent of catalog stock.
type Line struct {
	ProductID       uuid.UUID `json:"product_id"`
	Name            string    `json:"name"`
	UnitPriceCents  int64     `json:"unit_price_cents"`
	DiscountPercent float64   `json:"discount_percent"`
	Quantity        int32     `json:"quantity"`
	ImageURL        string    `json:"image_url,omitempty"`
}

// LineTotalCents is the discounted unit price times quantity.
func (l Line) LineTotalCents() int64 {
	discounted := int64(float64(l.UnitPriceCents) * (100.0 - l.DiscountPercent) / 100.0)
	if discounted < 0 {
		discounted = 0
	}
	return discounted * int64(l.Quantity)
}

// Cart holds the line items of a single shopper. All operations are total:
// invalid input degrades to a no-op rather than returning an error, because
// callers are UIs that only expose valid transitions. Totals are derived on
// demand and never stored.
type Cart struct {
	Items []Line `json:"items"`
}

func NewCart() *Cart {
	return &Cart{Items: []Line{}}
}

// AddItem inserts a new line at quantity 1 if the product is absent.
// Adding a product already in the cart is a no-op: quantity changes go
// through UpdateQuantity ("view cart to adjust" semantics).
func (c *Cart) AddItem(line Line) {
	if c.indexOf(line.ProductID) >= 0 {
		return
	}
	line.Quantity = 1
	c.Items = append(c.Items, line)
}

// UpdateQuantity sets the quantity for a line. A quantity of zero or less
// removes the line. Unknown product IDs are ignored.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int32) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return
	}
	c.Items[i].Quantity = quantity
}

func (c *Cart) RemoveItem(productID uuid.UUID) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

func (c *Cart) Clear() {
	c.Items = c.Items[:0]
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) TotalItems() int32 {
	var n int32
	for _, l := range c.Items {
		n += l.Quantity
	}
	return n
}

func (c *Cart) TotalPriceCents() int64 {
	var total int64
	for _, l := range c.Items {
		total += l.LineTotalCents()
	}
	return total
}

// Snapshot returns an immutable copy of the current lines, decoupled from
// subsequent cart mutations. Order placement works on snapshots only.
func (c *Cart) Snapshot() []Line {
	out := make([]Line, len(c.Items))
	copy(out, c.Items)
	return out
}

func (c *Cart) indexOf(productID uuid.UUID) int {
	for i, l := range c.Items {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}
