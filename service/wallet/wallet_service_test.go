package wallet

import (
	"context"
	"math/big"
	"testing"

	"dsc/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weth = "weth"

func TestCreditPullRelease(t *testing.T) {
	ctx := context.Background()
	srv := New()

	require.Nil(t, srv.Credit(ctx, "alice", weth, big.NewInt(100)))

	balance, _ := srv.Balance(ctx, "alice", weth)
	assert.Equal(t, "100", balance.String())

	require.Nil(t, srv.Pull(ctx, "alice", weth, big.NewInt(30)))

	balance, _ = srv.Balance(ctx, "alice", weth)
	assert.Equal(t, "70", balance.String())

	custody, _ := srv.Custody(ctx, weth)
	assert.Equal(t, "30", custody.String())

	require.Nil(t, srv.Release(ctx, "alice", weth, big.NewInt(30)))

	balance, _ = srv.Balance(ctx, "alice", weth)
	assert.Equal(t, "100", balance.String())

	custody, _ = srv.Custody(ctx, weth)
	assert.Equal(t, "0", custody.String())
}

func TestPullBeyondBalance(t *testing.T) {
	ctx := context.Background()
	srv := New()

	require.Nil(t, srv.Credit(ctx, "alice", weth, big.NewInt(10)))

	err := srv.Pull(ctx, "alice", weth, big.NewInt(11))
	assert.Equal(t, core.ErrTransferFailed, core.CodeOf(err))

	// nothing moved
	balance, _ := srv.Balance(ctx, "alice", weth)
	assert.Equal(t, "10", balance.String())

	custody, _ := srv.Custody(ctx, weth)
	assert.Equal(t, "0", custody.String())
}

func TestInvalidAmounts(t *testing.T) {
	ctx := context.Background()
	srv := New()

	assert.Equal(t, core.ErrInvalidAmount, core.CodeOf(srv.Credit(ctx, "alice", weth, big.NewInt(0))))
	assert.Equal(t, core.ErrInvalidAmount, core.CodeOf(srv.Pull(ctx, "alice", weth, big.NewInt(-1))))
	assert.Equal(t, core.ErrInvalidAmount, core.CodeOf(srv.Release(ctx, "alice", weth, nil)))
}

func TestSnapshotRestore(t *testing.T) {
	ctx := context.Background()
	srv := New()

	require.Nil(t, srv.Credit(ctx, "alice", weth, big.NewInt(100)))

	snapshotter, ok := srv.(core.Snapshotter)
	require.True(t, ok)

	snap, err := snapshotter.Snapshot(ctx)
	require.Nil(t, err)

	require.Nil(t, srv.Pull(ctx, "alice", weth, big.NewInt(60)))
	require.Nil(t, srv.Credit(ctx, "bob", weth, big.NewInt(5)))

	require.Nil(t, snapshotter.Restore(ctx, snap))

	balance, _ := srv.Balance(ctx, "alice", weth)
	assert.Equal(t, "100", balance.String())

	custody, _ := srv.Custody(ctx, weth)
	assert.Equal(t, "0", custody.String())

	balance, _ = srv.Balance(ctx, "bob", weth)
	assert.Equal(t, "0", balance.String())
}
