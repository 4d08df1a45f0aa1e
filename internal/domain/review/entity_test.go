//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"gocery/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		r, err := review.NewReview(uuid.Nil, uuid.New(), uuid.New(), 5, "Very fresh produce", now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, 5, r.Rating().Value())
		assert.Equal(t, "Very fresh produce", r.Comment().String())
		assert.Equal(t, now, r.CreatedAt())
		assert.Equal(t, now, r.UpdatedAt())
	})

	t.Run("rating validation", func(t *testing.T) {
		cases := []struct {
			name   string
			rating int
			errIs  error
		}{
			{name: "below minimum", rating: 0, errIs: review.ErrInvalidRating},
			{name: "minimum valid", rating: 1},
			{name: "maximum valid", rating: 5},
			{name: "above maximum", rating: 6, errIs: review.ErrInvalidRating},
			{name: "negative", rating: -1, errIs: review.ErrInvalidRating},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := review.NewReview(uuid.Nil, uuid.New(), uuid.New(), tc.rating, "ok", now)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})

	t.Run("comment validation", func(t *testing.T) {
		cases := []struct {
			name    string
			comment string
			errIs   error
		}{
			{name: "minimum length", comment: "a"},
			{name: "maximum length", comment: strings.Repeat("a", review.MaxCommentLength)},
			{name: "empty", comment: "", errIs: review.ErrEmptyComment},
			{name: "whitespace only", comment: "   ", errIs: review.ErrEmptyComment},
			{name: "too long", comment: strings.Repeat("a", review.MaxCommentLength+1), errIs: review.ErrCommentTooLong},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := review.NewReview(uuid.Nil, uuid.New(), uuid.New(), 4, tc.comment, now)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})

	t.Run("comment is trimmed", func(t *testing.T) {
		r, err := review.NewReview(uuid.Nil, uuid.New(), uuid.New(), 4, "  Trimmed comment  ", now)
		require.NoError(t, err)
		assert.Equal(t, "Trimmed comment", r.Comment().String())
	})

	t.Run("explicit id is kept", func(t *testing.T) {
		id := uuid.New()
		r, err := review.NewReview(id, uuid.New(), uuid.New(), 4, "ok", now)
		require.NoError(t, err)
		assert.Equal(t, id, r.ID())
	})
}
