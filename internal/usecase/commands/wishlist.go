package commands

import (
	"context"

	"gocery/internal/domain/wishlist"
	"gocery/internal/infra/clientstate"
	"gocery/internal/pkg/errs"
	"gocery/internal/usecase/queries"
	"gocery/internal/usecase/shared"

	"github.com/google/uuid"
)

// ErrLoginRequired signals that a wishlist action was attempted without an
// authenticated user. Handlers translate it into a login prompt rather than
// a plain authorization failure.
var ErrLoginRequired = errs.New("login required to use the wishlist")

type WishlistToggleResult struct {
	InWishlist bool
	View       *queries.WishlistView
}

type WishlistCommands interface {
	Toggle(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*WishlistToggleResult, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type wishlistCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewWishlistCommands(uow shared.UnitOfWork) WishlistCommands {
	return &wishlistCommandsImpl{uow: uow}
}

func (c *wishlistCommandsImpl) Toggle(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*WishlistToggleResult, error) {
	if userID == uuid.Nil {
		return nil, ErrLoginRequired
	}

	// Verify the product exists before saving its ID.
	if _, err := c.uow.CommandReads().ProductByID(ctx, productID); err != nil {
		return nil, err
	}

	var result *WishlistToggleResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ownerID := userID.String()

		raw, err := tx.Reads().ClientState(ctx, ownerID, clientstate.ScopeWishlist)
		if err != nil {
			return err
		}

		w := wishlist.NewWishlist()
		clientstate.Decode(raw, w)

		in := w.Toggle(productID)

		payload, err := clientstate.Encode(w)
		if err != nil {
			return errs.Wrap(err, "failed to encode wishlist state")
		}
		if err := tx.ClientStates().Upsert(ctx, tx.DB(), ownerID, clientstate.ScopeWishlist, payload); err != nil {
			return err
		}

		result = &WishlistToggleResult{
			InWishlist: in,
			View:       &queries.WishlistView{ProductIDs: w.ProductIDs},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *wishlistCommandsImpl) Clear(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrLoginRequired
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.ClientStates().Delete(ctx, tx.DB(), userID.String(), clientstate.ScopeWishlist)
	})
}
