package commands

import (
	"context"

	"gocery/internal/domain/product"
	"gocery/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateProductInput struct {
	Name            string
	PriceCents      int64
	DiscountPercent float64
	Stock           int32
	Images          []string
	CategoryID      uuid.UUID
	Kind            string
}

type UpdateProductInput struct {
	ProductID       uuid.UUID
	Name            string
	PriceCents      int64
	DiscountPercent float64
	Stock           int32
	Images          []string
	CategoryID      uuid.UUID
	Kind            string
}

type ProductCommands interface {
	Create(ctx context.Context, input CreateProductInput) (uuid.UUID, error)
	Update(ctx context.Context, input UpdateProductInput) error
}

type productCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProductCommands(uow shared.UnitOfWork) ProductCommands {
	return &productCommandsImpl{uow: uow}
}

func (c *productCommandsImpl) Create(ctx context.Context, input CreateProductInput) (uuid.UUID, error) {
	kind, err := product.NewKind(input.Kind)
	if err != nil {
		return uuid.Nil, err
	}

	p, err := product.NewProduct(uuid.Nil, input.Name, input.PriceCents, input.DiscountPercent, input.Stock, input.Images, input.CategoryID, kind)
	if err != nil {
		return uuid.Nil, err
	}

	var productID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Products().Create(ctx, tx.DB(), p)
		if err != nil {
			return err
		}
		productID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return productID, nil
}

func (c *productCommandsImpl) Update(ctx context.Context, input UpdateProductInput) error {
	// Existence check keeps the not-found path out of the write transaction.
	if _, err := c.uow.CommandReads().ProductByID(ctx, input.ProductID); err != nil {
		return err
	}

	kind, err := product.NewKind(input.Kind)
	if err != nil {
		return err
	}

	p, err := product.NewProduct(input.ProductID, input.Name, input.PriceCents, input.DiscountPercent, input.Stock, input.Images, input.CategoryID, kind)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().Update(ctx, tx.DB(), p)
	})
}
