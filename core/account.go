package core

import (
	"context"
	"math/big"
)

// Account 抵押借贷账户
type Account struct {
	UserID string `json:"user_id"`
	// asset id -> deposited collateral, 18 decimal fixed point
	Collaterals map[string]*big.Int `json:"collaterals"`
	// minted debt, 18 decimal fixed point
	Debt *big.Int `json:"debt"`
}

// Snapshot is an opaque state capture handed back to Restore.
type Snapshot = interface{}

// Snapshotter is implemented by stateful components that support the
// engine's per-call snapshot and rollback. The engine snapshots every
// collaborator that implements it before mutating anything.
type Snapshotter interface {
	Snapshot(ctx context.Context) (Snapshot, error)
	Restore(ctx context.Context, snapshot Snapshot) error
}

// IAccountStore is the collateral & debt ledger. Pure bookkeeping: it
// guards against negative balances but performs no solvency checks,
// those belong to its callers.
type IAccountStore interface {
	Snapshotter

	AddCollateral(ctx context.Context, userID, assetID string, amount *big.Int) error
	// SubCollateral fails with ErrInsufficientCollateral if amount
	// exceeds the recorded balance. It never underflows.
	SubCollateral(ctx context.Context, userID, assetID string, amount *big.Int) error
	AddDebt(ctx context.Context, userID string, amount *big.Int) error
	// SubDebt fails with ErrInsufficientDebt if amount exceeds the
	// recorded debt.
	SubDebt(ctx context.Context, userID string, amount *big.Int) error

	Collateral(ctx context.Context, userID, assetID string) (*big.Int, error)
	Debt(ctx context.Context, userID string) (*big.Int, error)
	Find(ctx context.Context, userID string) (*Account, error)
	Users(ctx context.Context) ([]string, error)
}
