//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"gocery/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	// Postgres stores timestamps at microsecond precision.
	ts := time.Date(2026, 3, 1, 12, 0, 0, 123456000, time.UTC)

	encoded := queries.EncodeAfterCursor(ts, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursorRejectsGarbage(t *testing.T) {
	testCases := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64url", cursor: "%%%"},
		{name: "wrong version", cursor: "djI6MTIzLWFiYw=="}, // "v2:123-abc"
		{name: "missing uuid", cursor: "djE6MTIz"},          // "v1:123"
		{name: "bad timestamp", cursor: "djE6YWJjLWFiYw=="}, // "v1:abc-abc"
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 35, queries.ValidateLimit(35))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}

// stubOrderStore answers list calls from a fixed, newest-first slice the
// way the keyset readstore would.
type stubOrderStore struct {
	items []*queries.OrderListItem

	keysetCalls int
	lastAfterID uuid.UUID
}

func (s *stubOrderStore) FindByID(context.Context, uuid.UUID) (*queries.OrderView, error) {
	panic("not used")
}

func (s *stubOrderStore) FindByUserFirstPage(_ context.Context, _ uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	return s.page(s.items, limit), nil
}

func (s *stubOrderStore) FindByUserKeyset(_ context.Context, _ uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	s.keysetCalls++
	s.lastAfterID = lastID
	rest := []*queries.OrderListItem{}
	for _, it := range s.items {
		if it.CreatedAt.Before(lastCreatedAt) || (it.CreatedAt.Equal(lastCreatedAt) && it.ID.String() < lastID.String()) {
			rest = append(rest, it)
		}
	}
	return s.page(rest, limit), nil
}

func (s *stubOrderStore) page(items []*queries.OrderListItem, limit int32) []*queries.OrderListItem {
	if int32(len(items)) > limit {
		return items[:limit]
	}
	return items
}

func TestOrderListByUserPagination(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items := make([]*queries.OrderListItem, 5)
	for i := range items {
		items[i] = &queries.OrderListItem{
			ID:         uuid.New(),
			TotalCents: int64(1000 * (i + 1)),
			Status:     "pending",
			CreatedAt:  base.Add(-time.Duration(i) * time.Minute),
		}
	}

	t.Run("full page hands back a cursor pointing at its last row", func(t *testing.T) {
		store := &stubOrderStore{items: items}
		q := queries.NewOrderQueries(store)

		rows, next, err := q.ListByUser(ctx, userID, nil, 2)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.NotNil(t, next)

		cursorTime, cursorID, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, cursorID)
		assert.True(t, rows[1].CreatedAt.Equal(cursorTime))
	})

	t.Run("following the cursor continues after the last row", func(t *testing.T) {
		store := &stubOrderStore{items: items}
		q := queries.NewOrderQueries(store)

		first, next, err := q.ListByUser(ctx, userID, nil, 2)
		require.NoError(t, err)
		require.NotNil(t, next)

		second, _, err := q.ListByUser(ctx, userID, next, 2)
		require.NoError(t, err)
		require.Len(t, second, 2)
		assert.Equal(t, 1, store.keysetCalls)
		assert.Equal(t, first[1].ID, store.lastAfterID)
		assert.Equal(t, items[2].ID, second[0].ID)
	})

	t.Run("short final page carries no cursor", func(t *testing.T) {
		store := &stubOrderStore{items: items}
		q := queries.NewOrderQueries(store)

		rows, next, err := q.ListByUser(ctx, userID, nil, 10)
		require.NoError(t, err)
		assert.Len(t, rows, 5)
		assert.Nil(t, next)
	})

	t.Run("malformed cursor is rejected", func(t *testing.T) {
		store := &stubOrderStore{items: items}
		q := queries.NewOrderQueries(store)

		_, _, err := q.ListByUser(ctx, userID, &queries.Cursor{After: "garbage"}, 2)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}
