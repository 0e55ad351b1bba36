package account

import (
	"context"
	"math/big"
	"testing"

	"dsc/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollateralBookkeeping(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.Nil(t, store.AddCollateral(ctx, "alice", "btc", big.NewInt(100)))
	require.Nil(t, store.AddCollateral(ctx, "alice", "btc", big.NewInt(50)))

	balance, err := store.Collateral(ctx, "alice", "btc")
	require.Nil(t, err)
	assert.Equal(t, "150", balance.String())

	require.Nil(t, store.SubCollateral(ctx, "alice", "btc", big.NewInt(150)))

	balance, err = store.Collateral(ctx, "alice", "btc")
	require.Nil(t, err)
	assert.Equal(t, "0", balance.String())
}

func TestSubCollateralUnderflow(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.Nil(t, store.AddCollateral(ctx, "alice", "btc", big.NewInt(10)))

	err := store.SubCollateral(ctx, "alice", "btc", big.NewInt(11))
	assert.Equal(t, core.ErrInsufficientCollateral, core.CodeOf(err))

	// nothing mutated
	balance, _ := store.Collateral(ctx, "alice", "btc")
	assert.Equal(t, "10", balance.String())

	err = store.SubCollateral(ctx, "bob", "btc", big.NewInt(1))
	assert.Equal(t, core.ErrInsufficientCollateral, core.CodeOf(err))
}

func TestDebtBookkeeping(t *testing.T) {
	ctx := context.Background()
	store := New()

	err := store.SubDebt(ctx, "alice", big.NewInt(1))
	assert.Equal(t, core.ErrInsufficientDebt, core.CodeOf(err))

	require.Nil(t, store.AddDebt(ctx, "alice", big.NewInt(100)))
	require.Nil(t, store.SubDebt(ctx, "alice", big.NewInt(40)))

	debt, err := store.Debt(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, "60", debt.String())
}

func TestInvalidAmounts(t *testing.T) {
	ctx := context.Background()
	store := New()

	for _, amount := range []*big.Int{nil, big.NewInt(0), big.NewInt(-1)} {
		assert.Equal(t, core.ErrInvalidAmount, core.CodeOf(store.AddCollateral(ctx, "alice", "btc", amount)))
		assert.Equal(t, core.ErrInvalidAmount, core.CodeOf(store.SubCollateral(ctx, "alice", "btc", amount)))
		assert.Equal(t, core.ErrInvalidAmount, core.CodeOf(store.AddDebt(ctx, "alice", amount)))
		assert.Equal(t, core.ErrInvalidAmount, core.CodeOf(store.SubDebt(ctx, "alice", amount)))
	}
}

func TestSnapshotRestore(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.Nil(t, store.AddCollateral(ctx, "alice", "btc", big.NewInt(100)))
	require.Nil(t, store.AddDebt(ctx, "alice", big.NewInt(30)))

	snap, err := store.Snapshot(ctx)
	require.Nil(t, err)

	require.Nil(t, store.SubCollateral(ctx, "alice", "btc", big.NewInt(70)))
	require.Nil(t, store.AddDebt(ctx, "alice", big.NewInt(10)))
	require.Nil(t, store.AddCollateral(ctx, "bob", "eth", big.NewInt(5)))

	require.Nil(t, store.Restore(ctx, snap))

	balance, _ := store.Collateral(ctx, "alice", "btc")
	assert.Equal(t, "100", balance.String())

	debt, _ := store.Debt(ctx, "alice")
	assert.Equal(t, "30", debt.String())

	balance, _ = store.Collateral(ctx, "bob", "eth")
	assert.Equal(t, "0", balance.String())
}

func TestSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.Nil(t, store.AddCollateral(ctx, "alice", "btc", big.NewInt(100)))
	snap, err := store.Snapshot(ctx)
	require.Nil(t, err)

	// mutations after the snapshot must not leak into it
	require.Nil(t, store.AddCollateral(ctx, "alice", "btc", big.NewInt(900)))
	require.Nil(t, store.Restore(ctx, snap))

	balance, _ := store.Collateral(ctx, "alice", "btc")
	assert.Equal(t, "100", balance.String())
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.Nil(t, store.AddCollateral(ctx, "bob", "btc", big.NewInt(1)))
	require.Nil(t, store.AddDebt(ctx, "alice", big.NewInt(1)))

	users, err := store.Users(ctx)
	require.Nil(t, err)
	assert.Equal(t, []string{"alice", "bob"}, users)
}
