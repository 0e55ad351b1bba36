package token

import (
	"context"
	"math/big"
	"testing"

	"dsc/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintTransferBurn(t *testing.T) {
	ctx := context.Background()
	srv := New("engine")

	require.Nil(t, srv.Mint(ctx, "alice", big.NewInt(100)))

	supply, _ := srv.TotalSupply(ctx)
	assert.Equal(t, "100", supply.String())

	// pull into custody, then burn
	require.Nil(t, srv.Transfer(ctx, "alice", "engine", big.NewInt(40)))
	require.Nil(t, srv.Burn(ctx, big.NewInt(40)))

	supply, _ = srv.TotalSupply(ctx)
	assert.Equal(t, "60", supply.String())

	balance, _ := srv.BalanceOf(ctx, "alice")
	assert.Equal(t, "60", balance.String())

	balance, _ = srv.BalanceOf(ctx, "engine")
	assert.Equal(t, "0", balance.String())
}

func TestTransferInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	srv := New("engine")

	require.Nil(t, srv.Mint(ctx, "alice", big.NewInt(10)))

	err := srv.Transfer(ctx, "alice", "engine", big.NewInt(11))
	assert.Equal(t, core.ErrTransferFailed, core.CodeOf(err))

	balance, _ := srv.BalanceOf(ctx, "alice")
	assert.Equal(t, "10", balance.String())
}

func TestBurnMoreThanHeld(t *testing.T) {
	ctx := context.Background()
	srv := New("engine")

	require.Nil(t, srv.Mint(ctx, "engine", big.NewInt(5)))

	err := srv.Burn(ctx, big.NewInt(6))
	assert.Equal(t, core.ErrTransferFailed, core.CodeOf(err))

	supply, _ := srv.TotalSupply(ctx)
	assert.Equal(t, "5", supply.String())
}
