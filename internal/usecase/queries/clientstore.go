package queries

import (
	"context"

	"gocery/internal/domain/cart"
	"gocery/internal/domain/comparison"
	"gocery/internal/domain/wishlist"
	"gocery/internal/infra/clientstate"
)

// ClientStateReader loads the raw persisted envelope for one shopper scope.
// A missing row yields a nil payload, not an error.
type ClientStateReader interface {
	FindPayload(ctx context.Context, ownerID string, scope clientstate.Scope) ([]byte, error)
}

type ClientStoreQueries interface {
	GetCart(ctx context.Context, ownerID string) (*CartView, error)
	GetWishlist(ctx context.Context, ownerID string) (*WishlistView, error)
	GetComparison(ctx context.Context, ownerID string) (*ComparisonView, error)
}

type clientStoreQueriesImpl struct {
	reader ClientStateReader
}

func NewClientStoreQueries(reader ClientStateReader) ClientStoreQueries {
	return &clientStoreQueriesImpl{reader: reader}
}

func (q *clientStoreQueriesImpl) GetCart(ctx context.Context, ownerID string) (*CartView, error) {
	raw, err := q.reader.FindPayload(ctx, ownerID, clientstate.ScopeCart)
	if err != nil {
		return nil, err
	}

	c := cart.NewCart()
	clientstate.Decode(raw, c) // corrupt or missing state rehydrates as empty
	return ToCartView(c), nil
}

func (q *clientStoreQueriesImpl) GetWishlist(ctx context.Context, ownerID string) (*WishlistView, error) {
	raw, err := q.reader.FindPayload(ctx, ownerID, clientstate.ScopeWishlist)
	if err != nil {
		return nil, err
	}

	w := wishlist.NewWishlist()
	clientstate.Decode(raw, w)
	return &WishlistView{ProductIDs: w.ProductIDs}, nil
}

func (q *clientStoreQueriesImpl) GetComparison(ctx context.Context, ownerID string) (*ComparisonView, error) {
	raw, err := q.reader.FindPayload(ctx, ownerID, clientstate.ScopeComparison)
	if err != nil {
		return nil, err
	}

	s := comparison.NewSet()
	clientstate.Decode(raw, s)
	return ToComparisonView(s), nil
}

func ToCartView(c *cart.Cart) *CartView {
	lines := make([]CartLineView, len(c.Items))
	for i, l := range c.Items {
		lines[i] = CartLineView{
			ProductID:       l.ProductID,
			Name:            l.Name,
			UnitPriceCents:  l.UnitPriceCents,
			DiscountPercent: l.DiscountPercent,
			Quantity:        l.Quantity,
			LineTotalCents:  l.LineTotalCents(),
			ImageURL:        l.ImageURL,
		}
	}
	return &CartView{
		Lines:           lines,
		TotalItems:      c.TotalItems(),
		TotalPriceCents: c.TotalPriceCents(),
	}
}

func ToComparisonView(s *comparison.Set) *ComparisonView {
	items := make([]ComparisonItemView, len(s.Items))
	for i, it := range s.Items {
		items[i] = ComparisonItemView{
			ProductID:       it.ProductID,
			Name:            it.Name,
			UnitPriceCents:  it.UnitPriceCents,
			DiscountPercent: it.DiscountPercent,
			CategoryID:      it.CategoryID,
			ImageURL:        it.ImageURL,
		}
	}
	return &ComparisonView{Items: items}
}
