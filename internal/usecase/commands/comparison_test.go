//go:build unit

package commands_test

import (
	"context"
	"testing"

	"gocery/internal/domain/comparison"
	"gocery/internal/infra/clientstate"
	"gocery/internal/usecase/commands"
	"gocery/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonToggle(t *testing.T) {
	ctx := context.Background()
	const owner = "anon:session-1"

	t.Run("adds the product snapshot to the set", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		snap := seedProduct(uow, "Tomatoes", 400, 0, 10)
		cmds := commands.NewComparisonCommands(uow)

		result, err := cmds.Toggle(ctx, owner, snap.ID)
		require.NoError(t, err)

		assert.True(t, result.Changed)
		require.Len(t, result.View.Items, 1)
		assert.Equal(t, snap.Name, result.View.Items[0].Name)
		assert.Equal(t, snap.CategoryID, result.View.Items[0].CategoryID)
	})

	t.Run("fifth product is a rejected no-op", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		cmds := commands.NewComparisonCommands(uow)

		var seeded []uuid.UUID
		for i := 0; i < comparison.MaxItems; i++ {
			snap := seedProduct(uow, "Product", 400, 0, 10)
			seeded = append(seeded, snap.ID)
			result, err := cmds.Toggle(ctx, owner, snap.ID)
			require.NoError(t, err)
			require.True(t, result.Changed)
		}

		before := uow.State.ClientState(owner, clientstate.ScopeComparison)
		extra := seedProduct(uow, "One too many", 400, 0, 10)

		result, err := cmds.Toggle(ctx, owner, extra.ID)
		require.NoError(t, err, "a full set is feedback, not a failure")

		assert.False(t, result.Changed)
		require.Len(t, result.View.Items, comparison.MaxItems)
		for i, id := range seeded {
			assert.Equal(t, id, result.View.Items[i].ProductID, "existing items keep their order")
		}
		assert.Equal(t, before, uow.State.ClientState(owner, clientstate.ScopeComparison),
			"rejected toggles must not rewrite the stored set")
	})

	t.Run("toggling a present product removes it", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		snap := seedProduct(uow, "Tomatoes", 400, 0, 10)
		cmds := commands.NewComparisonCommands(uow)

		_, err := cmds.Toggle(ctx, owner, snap.ID)
		require.NoError(t, err)

		result, err := cmds.Toggle(ctx, owner, snap.ID)
		require.NoError(t, err)

		assert.True(t, result.Changed)
		assert.Empty(t, result.View.Items)
	})
}

func TestComparisonClear(t *testing.T) {
	ctx := context.Background()
	const owner = "anon:session-1"

	uow := fakes.NewUnitOfWork()
	snap := seedProduct(uow, "Tomatoes", 400, 0, 10)
	cmds := commands.NewComparisonCommands(uow)

	_, err := cmds.Toggle(ctx, owner, snap.ID)
	require.NoError(t, err)

	require.NoError(t, cmds.Clear(ctx, owner))
	assert.Nil(t, uow.State.ClientState(owner, clientstate.ScopeComparison))
}
