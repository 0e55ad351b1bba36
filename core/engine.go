package core

import (
	"context"
	"math/big"
)

// IEngineService is the position actions coordinator and liquidation
// engine. Every command is atomic: it either completes fully or leaves the
// ledger exactly as it was.
type IEngineService interface {
	DepositCollateral(ctx context.Context, userID, assetID string, amount *big.Int) error
	DepositCollateralAndMintDsc(ctx context.Context, userID, assetID string, amount, mintAmount *big.Int) error
	RedeemCollateral(ctx context.Context, userID, assetID string, amount *big.Int) error
	RedeemCollateralForDsc(ctx context.Context, userID, assetID string, amount, burnAmount *big.Int) error
	MintDsc(ctx context.Context, userID string, amount *big.Int) error
	BurnDsc(ctx context.Context, userID string, amount *big.Int) error
	// Liquidate repays debtToCover of targetID's debt with the caller's
	// tokens in exchange for a bonus-adjusted slice of targetID's
	// collateral in assetID. Permissionless, insolvent targets only.
	Liquidate(ctx context.Context, callerID, assetID, targetID string, debtToCover *big.Int) error

	AccountInformation(ctx context.Context, userID string) (debt, collateralValue *big.Int, err error)
	HealthFactor(ctx context.Context, userID string) (*big.Int, error)
	AccountCollateralValue(ctx context.Context, userID string) (*big.Int, error)
	UsdValue(ctx context.Context, assetID string, amount *big.Int) (*big.Int, error)
	TokenAmountFromUsd(ctx context.Context, assetID string, usdValue *big.Int) (*big.Int, error)
	CollateralAssets() []Asset
	MinHealthFactor() *big.Int
	PriceFeedID(assetID string) (string, bool)
}
