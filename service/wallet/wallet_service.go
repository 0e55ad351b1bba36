package wallet

import (
	"context"
	"math/big"
	"sync"

	"dsc/core"
)

type walletService struct {
	mu sync.Mutex
	// asset id -> holder id -> balance
	balances map[string]map[string]*big.Int
}

// New new in-process collateral custody ledger. Pulled assets are held
// under core.EngineUserID; the ledger-recorded collateral of all accounts
// always matches that custody balance.
func New() core.IWalletService {
	return &walletService{
		balances: make(map[string]map[string]*big.Int),
	}
}

func (s *walletService) Credit(ctx context.Context, userID, assetID string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	balance := s.balanceOf(userID, assetID)
	balance.Add(balance, amount)
	return nil
}

func (s *walletService) Pull(ctx context.Context, userID, assetID string, amount *big.Int) error {
	return s.transfer(userID, core.EngineUserID, assetID, amount)
}

func (s *walletService) Release(ctx context.Context, userID, assetID string, amount *big.Int) error {
	return s.transfer(core.EngineUserID, userID, assetID, amount)
}

func (s *walletService) Balance(ctx context.Context, userID, assetID string) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return new(big.Int).Set(s.balanceOf(userID, assetID)), nil
}

func (s *walletService) Custody(ctx context.Context, assetID string) (*big.Int, error) {
	return s.Balance(ctx, core.EngineUserID, assetID)
}

func (s *walletService) transfer(from, to, assetID string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	balance := s.balanceOf(from, assetID)
	if balance.Cmp(amount) < 0 {
		return core.ErrTransferFailed
	}

	balance.Sub(balance, amount)
	target := s.balanceOf(to, assetID)
	target.Add(target, amount)
	return nil
}

type snapshot struct {
	balances map[string]map[string]*big.Int
}

// Snapshot lets the engine capture custody state for its per-call rollback.
func (s *walletService) Snapshot(ctx context.Context) (core.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &snapshot{balances: make(map[string]map[string]*big.Int, len(s.balances))}
	for assetID, holders := range s.balances {
		copied := make(map[string]*big.Int, len(holders))
		for userID, balance := range holders {
			copied[userID] = new(big.Int).Set(balance)
		}
		snap.balances[assetID] = copied
	}

	return snap, nil
}

func (s *walletService) Restore(ctx context.Context, v core.Snapshot) error {
	snap, ok := v.(*snapshot)
	if !ok {
		return core.ErrOperationForbidden
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.balances = make(map[string]map[string]*big.Int, len(snap.balances))
	for assetID, holders := range snap.balances {
		copied := make(map[string]*big.Int, len(holders))
		for userID, balance := range holders {
			copied[userID] = new(big.Int).Set(balance)
		}
		s.balances[assetID] = copied
	}

	return nil
}

func (s *walletService) balanceOf(userID, assetID string) *big.Int {
	holders, ok := s.balances[assetID]
	if !ok {
		holders = make(map[string]*big.Int)
		s.balances[assetID] = holders
	}

	balance, ok := holders[userID]
	if !ok {
		balance = new(big.Int)
		holders[userID] = balance
	}

	return balance
}
