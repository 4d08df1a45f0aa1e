//go:build unit

package wishlist_test

import (
	"testing"

	"gocery/internal/domain/wishlist"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistToggle(t *testing.T) {
	t.Run("first toggle adds and reports membership", func(t *testing.T) {
		w := wishlist.NewWishlist()
		id := uuid.New()

		in := w.Toggle(id)

		assert.True(t, in)
		assert.True(t, w.Contains(id))
	})

	t.Run("second toggle removes", func(t *testing.T) {
		w := wishlist.NewWishlist()
		id := uuid.New()
		w.Toggle(id)

		in := w.Toggle(id)

		assert.False(t, in)
		assert.False(t, w.Contains(id))
		assert.Empty(t, w.ProductIDs)
	})

	t.Run("keeps insertion order across removals", func(t *testing.T) {
		w := wishlist.NewWishlist()
		a, b, c := uuid.New(), uuid.New(), uuid.New()
		w.Toggle(a)
		w.Toggle(b)
		w.Toggle(c)

		w.Toggle(b)

		require.Len(t, w.ProductIDs, 2)
		assert.Equal(t, a, w.ProductIDs[0])
		assert.Equal(t, c, w.ProductIDs[1])
	})
}

func TestWishlistClear(t *testing.T) {
	w := wishlist.NewWishlist()
	w.Toggle(uuid.New())
	w.Toggle(uuid.New())

	w.Clear()

	assert.Empty(t, w.ProductIDs)
}
