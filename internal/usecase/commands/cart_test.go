//go:build unit

package commands_test

import (
	"context"
	"testing"

	"gocery/internal/domain/cart"
	"gocery/internal/infra"
	"gocery/internal/infra/clientstate"
	"gocery/internal/usecase/commands"
	"gocery/internal/usecase/shared"
	"gocery/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(uow *fakes.UnitOfWork, name string, priceCents int64, discount float64, stock int32) shared.ProductSnapshot {
	snap := shared.ProductSnapshot{
		ID:              uuid.New(),
		Name:            name,
		PriceCents:      priceCents,
		DiscountPercent: discount,
		Stock:           stock,
		CategoryID:      uuid.New(),
		Kind:            "standard",
	}
	uow.State.Products[snap.ID] = snap
	return snap
}

func storedCart(t *testing.T, uow *fakes.UnitOfWork, ownerID string) *cart.Cart {
	t.Helper()
	ct := cart.NewCart()
	raw := uow.State.ClientState(ownerID, clientstate.ScopeCart)
	if raw != nil {
		require.True(t, clientstate.Decode(raw, ct))
	}
	return ct
}

func TestCartCommandsAddItem(t *testing.T) {
	ctx := context.Background()
	const owner = "anon:session-1"

	t.Run("snapshots the product into a new line", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		snap := seedProduct(uow, "Olive oil", 10000, 10, 50)
		cmds := commands.NewCartCommands(uow)

		view, err := cmds.AddItem(ctx, owner, snap.ID)
		require.NoError(t, err)

		require.Len(t, view.Lines, 1)
		assert.Equal(t, snap.Name, view.Lines[0].Name)
		assert.Equal(t, int32(1), view.Lines[0].Quantity)
		assert.Equal(t, int64(9000), view.Lines[0].LineTotalCents)
		assert.Equal(t, int64(9000), view.TotalPriceCents)

		persisted := storedCart(t, uow, owner)
		require.Len(t, persisted.Items, 1)
		assert.Equal(t, snap.ID, persisted.Items[0].ProductID)
	})

	t.Run("duplicate add keeps the adjusted quantity", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		snap := seedProduct(uow, "Olive oil", 10000, 0, 50)
		cmds := commands.NewCartCommands(uow)

		_, err := cmds.AddItem(ctx, owner, snap.ID)
		require.NoError(t, err)
		_, err = cmds.UpdateQuantity(ctx, owner, snap.ID, 3)
		require.NoError(t, err)

		view, err := cmds.AddItem(ctx, owner, snap.ID)
		require.NoError(t, err)

		require.Len(t, view.Lines, 1)
		assert.Equal(t, int32(3), view.Lines[0].Quantity)
	})

	t.Run("unknown product is rejected", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		cmds := commands.NewCartCommands(uow)

		_, err := cmds.AddItem(ctx, owner, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("corrupt stored state rehydrates as empty", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		uow.State.SeedClientState(owner, clientstate.ScopeCart, []byte("garbage{{"))
		snap := seedProduct(uow, "Milk", 180, 0, 10)
		cmds := commands.NewCartCommands(uow)

		view, err := cmds.AddItem(ctx, owner, snap.ID)
		require.NoError(t, err)
		require.Len(t, view.Lines, 1)
	})
}

func TestCartCommandsUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	const owner = "anon:session-1"

	t.Run("zero removes the line", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		snap := seedProduct(uow, "Milk", 180, 0, 10)
		cmds := commands.NewCartCommands(uow)
		_, err := cmds.AddItem(ctx, owner, snap.ID)
		require.NoError(t, err)

		view, err := cmds.UpdateQuantity(ctx, owner, snap.ID, 0)
		require.NoError(t, err)

		assert.Empty(t, view.Lines)
		assert.True(t, storedCart(t, uow, owner).IsEmpty())
	})

	t.Run("unknown product id is a no-op, not an error", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		snap := seedProduct(uow, "Milk", 180, 0, 10)
		cmds := commands.NewCartCommands(uow)
		_, err := cmds.AddItem(ctx, owner, snap.ID)
		require.NoError(t, err)

		view, err := cmds.UpdateQuantity(ctx, owner, uuid.New(), 5)
		require.NoError(t, err)

		require.Len(t, view.Lines, 1)
		assert.Equal(t, int32(1), view.Lines[0].Quantity)
	})

	t.Run("totals are recomputed per mutation", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		snap := seedProduct(uow, "Eggs", 300, 0, 10)
		cmds := commands.NewCartCommands(uow)
		_, err := cmds.AddItem(ctx, owner, snap.ID)
		require.NoError(t, err)

		view, err := cmds.UpdateQuantity(ctx, owner, snap.ID, 4)
		require.NoError(t, err)

		assert.Equal(t, int64(1200), view.TotalPriceCents)
		assert.Equal(t, int32(4), view.TotalItems)
	})
}

func TestCartCommandsClear(t *testing.T) {
	ctx := context.Background()
	const owner = "anon:session-1"

	uow := fakes.NewUnitOfWork()
	a := seedProduct(uow, "Milk", 180, 0, 10)
	b := seedProduct(uow, "Bread", 120, 0, 10)
	cmds := commands.NewCartCommands(uow)

	_, err := cmds.AddItem(ctx, owner, a.ID)
	require.NoError(t, err)
	_, err = cmds.AddItem(ctx, owner, b.ID)
	require.NoError(t, err)

	view, err := cmds.Clear(ctx, owner)
	require.NoError(t, err)

	assert.Empty(t, view.Lines)
	assert.Equal(t, int64(0), view.TotalPriceCents)
	assert.True(t, storedCart(t, uow, owner).IsEmpty())
}
