package commands

import (
	"context"

	"gocery/internal/domain/comparison"
	"gocery/internal/infra/clientstate"
	"gocery/internal/pkg/errs"
	"gocery/internal/usecase/queries"
	"gocery/internal/usecase/shared"

	"github.com/google/uuid"
)

type ComparisonToggleResult struct {
	// Changed is false when an add was rejected because the set was full.
	Changed bool
	View    *queries.ComparisonView
}

type ComparisonCommands interface {
	Toggle(ctx context.Context, ownerID string, productID uuid.UUID) (*ComparisonToggleResult, error)
	Clear(ctx context.Context, ownerID string) error
}

type comparisonCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewComparisonCommands(uow shared.UnitOfWork) ComparisonCommands {
	return &comparisonCommandsImpl{uow: uow}
}

func (c *comparisonCommandsImpl) Toggle(ctx context.Context, ownerID string, productID uuid.UUID) (*ComparisonToggleResult, error) {
	snap, err := c.uow.CommandReads().ProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	var result *ComparisonToggleResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		raw, err := tx.Reads().ClientState(ctx, ownerID, clientstate.ScopeComparison)
		if err != nil {
			return err
		}

		s := comparison.NewSet()
		clientstate.Decode(raw, s)

		changed := s.Toggle(comparison.Item{
			ProductID:       snap.ID,
			Name:            snap.Name,
			UnitPriceCents:  snap.PriceCents,
			DiscountPercent: snap.DiscountPercent,
			CategoryID:      snap.CategoryID,
			ImageURL:        snap.ImageURL,
		})

		if changed {
			payload, err := clientstate.Encode(s)
			if err != nil {
				return errs.Wrap(err, "failed to encode comparison state")
			}
			if err := tx.ClientStates().Upsert(ctx, tx.DB(), ownerID, clientstate.ScopeComparison, payload); err != nil {
				return err
			}
		}

		result = &ComparisonToggleResult{
			Changed: changed,
			View:    queries.ToComparisonView(s),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *comparisonCommandsImpl) Clear(ctx context.Context, ownerID string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.ClientStates().Delete(ctx, tx.DB(), ownerID, clientstate.ScopeComparison)
	})
}
