//go:build unit

package comparison_test

import (
	"testing"

	"gocery/internal/domain/comparison"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(name string) comparison.Item {
	return comparison.Item{
		ProductID:      uuid.New(),
		Name:           name,
		UnitPriceCents: 1000,
		CategoryID:     uuid.New(),
	}
}

func TestSetToggle(t *testing.T) {
	t.Run("adds an absent product", func(t *testing.T) {
		s := comparison.NewSet()
		it := item("Tomatoes")

		changed := s.Toggle(it)

		assert.True(t, changed)
		assert.True(t, s.Contains(it.ProductID))
	})

	t.Run("removes a present product", func(t *testing.T) {
		s := comparison.NewSet()
		it := item("Tomatoes")
		s.Toggle(it)

		changed := s.Toggle(it)

		assert.True(t, changed)
		assert.False(t, s.Contains(it.ProductID))
		assert.Empty(t, s.Items)
	})

	t.Run("rejects a fifth product without evicting", func(t *testing.T) {
		s := comparison.NewSet()
		kept := make([]comparison.Item, comparison.MaxItems)
		for i := range kept {
			kept[i] = item("Product")
			require.True(t, s.Toggle(kept[i]))
		}
		require.True(t, s.IsFull())

		changed := s.Toggle(item("One too many"))

		assert.False(t, changed)
		require.Len(t, s.Items, comparison.MaxItems)
		for i, it := range kept {
			assert.Equal(t, it.ProductID, s.Items[i].ProductID, "existing items must keep their order")
		}
	})

	t.Run("removal from a full set frees a slot", func(t *testing.T) {
		s := comparison.NewSet()
		first := item("First")
		s.Toggle(first)
		for i := 1; i < comparison.MaxItems; i++ {
			s.Toggle(item("Filler"))
		}
		require.True(t, s.IsFull())

		s.Toggle(first)
		assert.False(t, s.IsFull())

		replacement := item("Replacement")
		assert.True(t, s.Toggle(replacement))
		assert.True(t, s.Contains(replacement.ProductID))
	})
}

func TestSetClear(t *testing.T) {
	s := comparison.NewSet()
	s.Toggle(item("Tomatoes"))
	s.Toggle(item("Cucumbers"))

	s.Clear()

	assert.Empty(t, s.Items)
	assert.False(t, s.IsFull())
}
