package core

import (
	"context"
	"math/big"
)

// EngineUserID is the account under which the engine custodies pulled
// tokens and collateral.
const EngineUserID = "dsc-engine"

// ITokenService is the synthetic usd token ledger. Mint and Burn are
// engine-gated: the engine instance is the sole owner.
type ITokenService interface {
	// Mint creates amount new tokens on to's balance.
	Mint(ctx context.Context, to string, amount *big.Int) error
	// Burn destroys amount tokens held by the engine account. The engine
	// pulls tokens from the originating account first.
	Burn(ctx context.Context, amount *big.Int) error
	// Transfer moves tokens between accounts. Fails with
	// ErrTransferFailed on insufficient balance.
	Transfer(ctx context.Context, from, to string, amount *big.Int) error

	BalanceOf(ctx context.Context, userID string) (*big.Int, error)
	TotalSupply(ctx context.Context) (*big.Int, error)
}

// IWalletService custodies collateral assets. Pull moves asset from a user
// wallet into engine custody, Release the reverse.
type IWalletService interface {
	Pull(ctx context.Context, userID, assetID string, amount *big.Int) error
	Release(ctx context.Context, userID, assetID string, amount *big.Int) error
	// Credit tops up a user wallet from outside the system (deposit rail).
	Credit(ctx context.Context, userID, assetID string, amount *big.Int) error

	Balance(ctx context.Context, userID, assetID string) (*big.Int, error)
	Custody(ctx context.Context, assetID string) (*big.Int, error)
}
