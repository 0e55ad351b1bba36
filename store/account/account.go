package account

import (
	"context"
	"math/big"
	"sort"
	"sync"

	"dsc/core"
)

type accountStore struct {
	mu sync.RWMutex
	// user id -> asset id -> collateral
	collaterals map[string]map[string]*big.Int
	// user id -> minted debt
	debts map[string]*big.Int
}

type snapshot struct {
	collaterals map[string]map[string]*big.Int
	debts       map[string]*big.Int
}

// New new in-memory account store. Accounts are implicit: created on first
// credit, never destroyed; zero balances are valid terminal states.
func New() core.IAccountStore {
	return &accountStore{
		collaterals: make(map[string]map[string]*big.Int),
		debts:       make(map[string]*big.Int),
	}
}

func (s *accountStore) AddCollateral(ctx context.Context, userID, assetID string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	assets, ok := s.collaterals[userID]
	if !ok {
		assets = make(map[string]*big.Int)
		s.collaterals[userID] = assets
	}

	balance, ok := assets[assetID]
	if !ok {
		balance = new(big.Int)
		assets[assetID] = balance
	}

	balance.Add(balance, amount)
	return nil
}

func (s *accountStore) SubCollateral(ctx context.Context, userID, assetID string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	balance, ok := s.collaterals[userID][assetID]
	if !ok || balance.Cmp(amount) < 0 {
		return core.ErrInsufficientCollateral
	}

	balance.Sub(balance, amount)
	return nil
}

func (s *accountStore) AddDebt(ctx context.Context, userID string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	debt, ok := s.debts[userID]
	if !ok {
		debt = new(big.Int)
		s.debts[userID] = debt
	}

	debt.Add(debt, amount)
	return nil
}

func (s *accountStore) SubDebt(ctx context.Context, userID string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	debt, ok := s.debts[userID]
	if !ok || debt.Cmp(amount) < 0 {
		return core.ErrInsufficientDebt
	}

	debt.Sub(debt, amount)
	return nil
}

func (s *accountStore) Collateral(ctx context.Context, userID, assetID string) (*big.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if balance, ok := s.collaterals[userID][assetID]; ok {
		return new(big.Int).Set(balance), nil
	}

	return new(big.Int), nil
}

func (s *accountStore) Debt(ctx context.Context, userID string) (*big.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if debt, ok := s.debts[userID]; ok {
		return new(big.Int).Set(debt), nil
	}

	return new(big.Int), nil
}

func (s *accountStore) Find(ctx context.Context, userID string) (*core.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account := &core.Account{
		UserID:      userID,
		Collaterals: make(map[string]*big.Int),
		Debt:        new(big.Int),
	}

	for assetID, balance := range s.collaterals[userID] {
		account.Collaterals[assetID] = new(big.Int).Set(balance)
	}

	if debt, ok := s.debts[userID]; ok {
		account.Debt.Set(debt)
	}

	return account, nil
}

func (s *accountStore) Users(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool, len(s.collaterals))
	for userID := range s.collaterals {
		seen[userID] = true
	}
	for userID := range s.debts {
		seen[userID] = true
	}

	users := make([]string, 0, len(seen))
	for userID := range seen {
		users = append(users, userID)
	}

	sort.Strings(users)
	return users, nil
}

func (s *accountStore) Snapshot(ctx context.Context) (core.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &snapshot{
		collaterals: make(map[string]map[string]*big.Int, len(s.collaterals)),
		debts:       make(map[string]*big.Int, len(s.debts)),
	}

	for userID, assets := range s.collaterals {
		copied := make(map[string]*big.Int, len(assets))
		for assetID, balance := range assets {
			copied[assetID] = new(big.Int).Set(balance)
		}
		snap.collaterals[userID] = copied
	}

	for userID, debt := range s.debts {
		snap.debts[userID] = new(big.Int).Set(debt)
	}

	return snap, nil
}

func (s *accountStore) Restore(ctx context.Context, v core.Snapshot) error {
	snap, ok := v.(*snapshot)
	if !ok {
		return core.ErrOperationForbidden
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.collaterals = make(map[string]map[string]*big.Int, len(snap.collaterals))
	for userID, assets := range snap.collaterals {
		copied := make(map[string]*big.Int, len(assets))
		for assetID, balance := range assets {
			copied[assetID] = new(big.Int).Set(balance)
		}
		s.collaterals[userID] = copied
	}

	s.debts = make(map[string]*big.Int, len(snap.debts))
	for userID, debt := range snap.debts {
		s.debts[userID] = new(big.Int).Set(debt)
	}

	return nil
}
