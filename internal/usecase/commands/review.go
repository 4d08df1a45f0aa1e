package commands

import (
	"context"

	"gocery/internal/domain/review"
	"gocery/internal/pkg/clock"
	"gocery/internal/pkg/errs"
	"gocery/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReviewAccessDenied = errs.New("review does not belong to the requesting user")

type CreateReviewInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Rating    int
	Comment   string
}

type UpdateReviewInput struct {
	ReviewID uuid.UUID
	UserID   uuid.UUID
	Rating   int
	Comment  string
}

type ReviewCommands interface {
	Create(ctx context.Context, input CreateReviewInput) (uuid.UUID, error)
	Update(ctx context.Context, input UpdateReviewInput) error
	Delete(ctx context.Context, reviewID, userID uuid.UUID) error
}

type reviewCommandsImpl struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clk: clk}
}

func (c *reviewCommandsImpl) Create(ctx context.Context, input CreateReviewInput) (uuid.UUID, error) {
	if _, err := c.uow.CommandReads().ProductByID(ctx, input.ProductID); err != nil {
		return uuid.Nil, err
	}

	rev, err := review.NewReview(uuid.Nil, input.UserID, input.ProductID, input.Rating, input.Comment, c.clk.Now())
	if err != nil {
		return uuid.Nil, err
	}

	var reviewID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Reviews().Create(ctx, tx.DB(), rev)
		if err != nil {
			return err
		}
		reviewID = id
		return tx.Products().RecalcRatingStats(ctx, tx.DB(), input.ProductID)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reviewID, nil
}

func (c *reviewCommandsImpl) Update(ctx context.Context, input UpdateReviewInput) error {
	snap, err := c.uow.CommandReads().ReviewByID(ctx, input.ReviewID)
	if err != nil {
		return err
	}
	if snap.UserID != input.UserID {
		return ErrReviewAccessDenied
	}

	rev, err := review.NewReview(snap.ID, snap.UserID, snap.ProductID, input.Rating, input.Comment, c.clk.Now())
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reviews().Update(ctx, tx.DB(), snap.ID, rev); err != nil {
			return err
		}
		return tx.Products().RecalcRatingStats(ctx, tx.DB(), snap.ProductID)
	})
}

func (c *reviewCommandsImpl) Delete(ctx context.Context, reviewID, userID uuid.UUID) error {
	snap, err := c.uow.CommandReads().ReviewByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if snap.UserID != userID {
		return ErrReviewAccessDenied
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reviews().Delete(ctx, tx.DB(), reviewID); err != nil {
			return err
		}
		return tx.Products().RecalcRatingStats(ctx, tx.DB(), snap.ProductID)
	})
}
