package review

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyComment   = errors.New("comment cannot be empty")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
)

type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	productID uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(id, userID, productID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:        id,
		userID:    userID,
		productID: productID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReview(id, userID, productID uuid.UUID, rating Rating, comment Comment, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:        id,
		userID:    userID,
		productID: productID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) ProductID() uuid.UUID { return r.productID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
