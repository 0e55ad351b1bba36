package engine

import (
	"context"
	"testing"

	"dsc/core"
	"dsc/internal/dsc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bob opens a position at exactly the floor, alice stays comfortably
// solvent with tokens to spend on liquidations.
func newLiquidationEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	e := newEnv(t)

	require.Nil(t, e.engine.DepositCollateralAndMintDsc(ctx, "bob", "weth", wad("10"), wad("10000")))
	require.Nil(t, e.engine.DepositCollateralAndMintDsc(ctx, "alice", "weth", wad("20"), wad("10000")))

	return e
}

func TestLiquidateHealthyAccount(t *testing.T) {
	ctx := context.Background()
	e := newLiquidationEnv(t)

	err := e.engine.Liquidate(ctx, "alice", "weth", "bob", wad("1000"))
	assert.Equal(t, core.ErrHealthFactorSafe, core.CodeOf(err))

	var hfErr *core.HealthFactorError
	require.ErrorAs(t, err, &hfErr)
	assert.Equal(t, dsc.MinHealthFactor.String(), hfErr.HealthFactor.String())

	e.requireUnchanged(t, "bob", "10", "10000")
	e.requireUnchanged(t, "alice", "20", "10000")
}

func TestLiquidate(t *testing.T) {
	ctx := context.Background()
	e := newLiquidationEnv(t)

	// weth drops to $1800: bob's score is 0.9, alice's 1.8
	e.wethFeed.set("1800")

	aliceTokensBefore, _ := e.token.BalanceOf(ctx, "alice")
	aliceWethBefore, _ := e.wallet.Balance(ctx, "alice", "weth")

	// covering 9000 of debt buys 5 weth at $1800, plus a 10% bonus
	require.Nil(t, e.engine.Liquidate(ctx, "alice", "weth", "bob", wad("9000")))

	e.requireUnchanged(t, "bob", "4.5", "1000")

	// bob is back above the floor: 4.5 weth = $8100, halved over 1000
	score, err := e.engine.HealthFactor(ctx, "bob")
	require.Nil(t, err)
	assert.Equal(t, wad("4.05").String(), score.String())

	// alice paid 9000 tokens and received 5.5 weth
	aliceTokens, _ := e.token.BalanceOf(ctx, "alice")
	assert.Equal(t, wad("9000").String(), aliceTokensBefore.Sub(aliceTokensBefore, aliceTokens).String())

	aliceWeth, _ := e.wallet.Balance(ctx, "alice", "weth")
	assert.Equal(t, wad("5.5").String(), aliceWeth.Sub(aliceWeth, aliceWethBefore).String())

	// the covered debt was destroyed: supply tracks remaining debt
	supply, _ := e.token.TotalSupply(ctx)
	assert.Equal(t, wad("11000").String(), supply.String())

	// the transfer step is observable as a redeem notification
	events, err := e.events.List(ctx, 0, 100)
	require.Nil(t, err)
	last := events[len(events)-1]
	assert.Equal(t, core.EventTypeCollateralRedeemed, last.Type)
	assert.Equal(t, "bob", last.UserID)
	assert.Equal(t, "alice", last.OpponentID)
	assert.Equal(t, "5.5", last.Amount.String())
}

func TestLiquidateNotImproved(t *testing.T) {
	ctx := context.Background()
	e := newLiquidationEnv(t)

	e.wethFeed.set("1800")

	// covering only 100 of debt leaves bob below the floor
	err := e.engine.Liquidate(ctx, "alice", "weth", "bob", wad("100"))
	assert.Equal(t, core.ErrHealthFactorNotImproved, core.CodeOf(err))

	e.requireUnchanged(t, "bob", "10", "10000")
	e.requireUnchanged(t, "alice", "20", "10000")

	supply, _ := e.token.TotalSupply(ctx)
	assert.Equal(t, wad("20000").String(), supply.String())
}

func TestLiquidateSeizeExceedsCollateral(t *testing.T) {
	ctx := context.Background()
	e := newLiquidationEnv(t)

	// at $500, covering the full 10000 would seize 22 weth, bob holds 10
	e.wethFeed.set("500")

	err := e.engine.Liquidate(ctx, "alice", "weth", "bob", wad("10000"))
	assert.Equal(t, core.ErrInsufficientCollateral, core.CodeOf(err))

	e.requireUnchanged(t, "bob", "10", "10000")
}

func TestLiquidateByInsolventCaller(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	require.Nil(t, e.engine.DepositCollateralAndMintDsc(ctx, "bob", "weth", wad("10"), wad("10000")))
	require.Nil(t, e.engine.DepositCollateralAndMintDsc(ctx, "alice", "weth", wad("10"), wad("10000")))

	// the drop puts both under water; alice cannot liquidate while broken
	e.wethFeed.set("1800")

	err := e.engine.Liquidate(ctx, "alice", "weth", "bob", wad("9000"))
	assert.Equal(t, core.ErrHealthFactorBroken, core.CodeOf(err))

	e.requireUnchanged(t, "bob", "10", "10000")
	e.requireUnchanged(t, "alice", "10", "10000")
}

func TestLiquidateValidation(t *testing.T) {
	ctx := context.Background()
	e := newLiquidationEnv(t)

	err := e.engine.Liquidate(ctx, "alice", "weth", "bob", wad("0"))
	assert.Equal(t, core.ErrInvalidAmount, core.CodeOf(err))

	err = e.engine.Liquidate(ctx, "alice", "doge", "bob", wad("100"))
	assert.Equal(t, core.ErrAssetNotListed, core.CodeOf(err))
}

func TestLiquidationBonusExact(t *testing.T) {
	ctx := context.Background()
	e := newLiquidationEnv(t)

	e.wethFeed.set("1600")

	// 8000 of debt = 5 weth at $1600; seized = 5 + 0.5
	require.Nil(t, e.engine.Liquidate(ctx, "alice", "weth", "bob", wad("8000")))
	e.requireUnchanged(t, "bob", "4.5", "2000")
}
