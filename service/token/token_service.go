package token

import (
	"context"
	"math/big"
	"sync"

	"dsc/core"
)

type tokenService struct {
	mu       sync.Mutex
	owner    string
	balances map[string]*big.Int
	supply   *big.Int
}

// New new synthetic token ledger. owner is the only account allowed to
// trigger Mint and Burn; the engine passes its own custody id.
func New(owner string) core.ITokenService {
	return &tokenService{
		owner:    owner,
		balances: make(map[string]*big.Int),
		supply:   new(big.Int),
	}
}

func (s *tokenService) Mint(ctx context.Context, to string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return core.ErrMintFailed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.balanceOf(to).Add(s.balanceOf(to), amount)
	s.supply.Add(s.supply, amount)
	return nil
}

// Burn destroys amount tokens held by the owner account.
func (s *tokenService) Burn(ctx context.Context, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	balance := s.balanceOf(s.owner)
	if balance.Cmp(amount) < 0 {
		return core.ErrTransferFailed
	}

	balance.Sub(balance, amount)
	s.supply.Sub(s.supply, amount)
	return nil
}

func (s *tokenService) Transfer(ctx context.Context, from, to string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	balance := s.balanceOf(from)
	if balance.Cmp(amount) < 0 {
		return core.ErrTransferFailed
	}

	balance.Sub(balance, amount)
	s.balanceOf(to).Add(s.balanceOf(to), amount)
	return nil
}

func (s *tokenService) BalanceOf(ctx context.Context, userID string) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return new(big.Int).Set(s.balanceOf(userID)), nil
}

func (s *tokenService) TotalSupply(ctx context.Context) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return new(big.Int).Set(s.supply), nil
}

type snapshot struct {
	balances map[string]*big.Int
	supply   *big.Int
}

// Snapshot lets the engine capture the token ledger for its per-call
// rollback; an external token rail would not offer this.
func (s *tokenService) Snapshot(ctx context.Context) (core.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &snapshot{
		balances: make(map[string]*big.Int, len(s.balances)),
		supply:   new(big.Int).Set(s.supply),
	}
	for userID, balance := range s.balances {
		snap.balances[userID] = new(big.Int).Set(balance)
	}

	return snap, nil
}

func (s *tokenService) Restore(ctx context.Context, v core.Snapshot) error {
	snap, ok := v.(*snapshot)
	if !ok {
		return core.ErrOperationForbidden
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.balances = make(map[string]*big.Int, len(snap.balances))
	for userID, balance := range snap.balances {
		s.balances[userID] = new(big.Int).Set(balance)
	}
	s.supply = new(big.Int).Set(snap.supply)
	return nil
}

func (s *tokenService) balanceOf(userID string) *big.Int {
	balance, ok := s.balances[userID]
	if !ok {
		balance = new(big.Int)
		s.balances[userID] = balance
	}

	return balance
}
