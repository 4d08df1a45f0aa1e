package commands

import (
	"context"

	"gocery/internal/domain/cart"
	"gocery/internal/infra/clientstate"
	"gocery/internal/pkg/errs"
	"gocery/internal/usecase/queries"
	"gocery/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartCommands interface {
	AddItem(ctx context.Context, ownerID string, productID uuid.UUID) (*queries.CartView, error)
	UpdateQuantity(ctx context.Context, ownerID string, productID uuid.UUID, quantity int32) (*queries.CartView, error)
	RemoveItem(ctx context.Context, ownerID string, productID uuid.UUID) (*queries.CartView, error)
	Clear(ctx context.Context, ownerID string) (*queries.CartView, error)
}

type cartCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCartCommands(uow shared.UnitOfWork) CartCommands {
	return &cartCommandsImpl{uow: uow}
}

// AddItem snapshots the product into a new line at quantity 1. A product
// already in the cart leaves the cart untouched; quantity changes go
// through UpdateQuantity.
func (c *cartCommandsImpl) AddItem(ctx context.Context, ownerID string, productID uuid.UUID) (*queries.CartView, error) {
	snap, err := c.uow.CommandReads().ProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	return c.mutate(ctx, ownerID, func(ct *cart.Cart) {
		ct.AddItem(cart.Line{
			ProductID:       snap.ID,
			Name:            snap.Name,
			UnitPriceCents:  snap.PriceCents,
			DiscountPercent: snap.DiscountPercent,
			ImageURL:        snap.ImageURL,
		})
	})
}

func (c *cartCommandsImpl) UpdateQuantity(ctx context.Context, ownerID string, productID uuid.UUID, quantity int32) (*queries.CartView, error) {
	return c.mutate(ctx, ownerID, func(ct *cart.Cart) {
		ct.UpdateQuantity(productID, quantity)
	})
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, ownerID string, productID uuid.UUID) (*queries.CartView, error) {
	return c.mutate(ctx, ownerID, func(ct *cart.Cart) {
		ct.RemoveItem(productID)
	})
}

func (c *cartCommandsImpl) Clear(ctx context.Context, ownerID string) (*queries.CartView, error) {
	return c.mutate(ctx, ownerID, func(ct *cart.Cart) {
		ct.Clear()
	})
}

// mutate loads the owner's cart, applies fn, and writes the new envelope
// back in one transaction.
func (c *cartCommandsImpl) mutate(ctx context.Context, ownerID string, fn func(*cart.Cart)) (*queries.CartView, error) {
	var view *queries.CartView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		raw, err := tx.Reads().ClientState(ctx, ownerID, clientstate.ScopeCart)
		if err != nil {
			return err
		}

		ct := cart.NewCart()
		clientstate.Decode(raw, ct)

		fn(ct)

		payload, err := clientstate.Encode(ct)
		if err != nil {
			return errs.Wrap(err, "failed to encode cart state")
		}
		if err := tx.ClientStates().Upsert(ctx, tx.DB(), ownerID, clientstate.ScopeCart, payload); err != nil {
			return err
		}

		view = queries.ToCartView(ct)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
