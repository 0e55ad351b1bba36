package engine

import (
	"context"
	"math/big"
	"sync"
	"sync/atomic"

	"dsc/core"
	"dsc/internal/dsc"
	"dsc/pkg/id"
	"dsc/pkg/number"

	"github.com/fox-one/pkg/logger"
)

type engineService struct {
	inFlight atomic.Bool
	// held in write mode for the whole of a command, in read mode by
	// queries, so no caller ever observes a mutation that may still be
	// rolled back
	mu sync.RWMutex

	accountStore  core.IAccountStore
	oracleService core.IPriceOracleService
	tokenService  core.ITokenService
	walletService core.IWalletService
	eventStore    core.IEventStore

	// collaborators captured and restored around every mutating call
	snapshotters []core.Snapshotter
}

// txn collects the notifications of one call; they are flushed only after
// the call commits.
type txn struct {
	events []*core.Event
}

// New new engine service. The asset set and feed bindings are fixed inside
// the oracle service at construction and immutable for the engine's
// lifetime.
func New(
	accountStore core.IAccountStore,
	oracleService core.IPriceOracleService,
	tokenService core.ITokenService,
	walletService core.IWalletService,
	eventStore core.IEventStore,
) core.IEngineService {
	s := &engineService{
		accountStore:  accountStore,
		oracleService: oracleService,
		tokenService:  tokenService,
		walletService: walletService,
		eventStore:    eventStore,
	}

	s.snapshotters = append(s.snapshotters, accountStore)
	if snap, ok := tokenService.(core.Snapshotter); ok {
		s.snapshotters = append(s.snapshotters, snap)
	}
	if snap, ok := walletService.(core.Snapshotter); ok {
		s.snapshotters = append(s.snapshotters, snap)
	}

	return s
}

// transactional serializes mutating calls, rejects reentrant ones, and
// makes the wrapped call all-or-nothing: on any failure every captured
// collaborator is restored to its entry state. Overlapping commands are
// rejected by the flag, never queued; queries block on the lock until the
// command commits or unwinds.
func (s *engineService) transactional(ctx context.Context, fn func(ctx context.Context, tx *txn) error) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return core.ErrReentrantCall
	}
	defer s.inFlight.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshots := make([]core.Snapshot, len(s.snapshotters))
	for i, snapshotter := range s.snapshotters {
		snapshot, err := snapshotter.Snapshot(ctx)
		if err != nil {
			return err
		}
		snapshots[i] = snapshot
	}

	tx := &txn{}
	if err := fn(ctx, tx); err != nil {
		for i := len(s.snapshotters) - 1; i >= 0; i-- {
			if re := s.snapshotters[i].Restore(ctx, snapshots[i]); re != nil {
				logger.FromContext(ctx).WithError(re).Errorln("engine: restore failed")
			}
		}
		return err
	}

	// state is committed; a lost notification is logged, not fatal
	for _, event := range tx.events {
		if err := s.eventStore.Create(ctx, event); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("engine: create event failed")
		}
	}

	return nil
}

func (s *engineService) DepositCollateral(ctx context.Context, userID, assetID string, amount *big.Int) error {
	return s.transactional(ctx, func(ctx context.Context, tx *txn) error {
		return s.depositCollateral(ctx, tx, userID, assetID, amount)
	})
}

func (s *engineService) DepositCollateralAndMintDsc(ctx context.Context, userID, assetID string, amount, mintAmount *big.Int) error {
	return s.transactional(ctx, func(ctx context.Context, tx *txn) error {
		if err := s.depositCollateral(ctx, tx, userID, assetID, amount); err != nil {
			return err
		}

		return s.mintDsc(ctx, userID, mintAmount)
	})
}

func (s *engineService) RedeemCollateral(ctx context.Context, userID, assetID string, amount *big.Int) error {
	return s.transactional(ctx, func(ctx context.Context, tx *txn) error {
		return s.redeemCollateral(ctx, tx, userID, userID, assetID, amount)
	})
}

func (s *engineService) RedeemCollateralForDsc(ctx context.Context, userID, assetID string, amount, burnAmount *big.Int) error {
	return s.transactional(ctx, func(ctx context.Context, tx *txn) error {
		// debt is retired before any collateral leaves the ledger
		if err := s.burnDsc(ctx, userID, burnAmount); err != nil {
			return err
		}

		return s.redeemCollateral(ctx, tx, userID, userID, assetID, amount)
	})
}

func (s *engineService) MintDsc(ctx context.Context, userID string, amount *big.Int) error {
	return s.transactional(ctx, func(ctx context.Context, tx *txn) error {
		return s.mintDsc(ctx, userID, amount)
	})
}

func (s *engineService) BurnDsc(ctx context.Context, userID string, amount *big.Int) error {
	return s.transactional(ctx, func(ctx context.Context, tx *txn) error {
		return s.burnDsc(ctx, userID, amount)
	})
}

// depositCollateral credits the ledger, then pulls the asset into custody.
// A declined pull fails the call and the wrapper rolls the credit back.
func (s *engineService) depositCollateral(ctx context.Context, tx *txn, userID, assetID string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return core.ErrInvalidAmount
	}
	if !s.oracleService.IsSupported(assetID) {
		return core.ErrAssetNotListed
	}

	if err := s.accountStore.AddCollateral(ctx, userID, assetID, amount); err != nil {
		return err
	}

	if err := s.walletService.Pull(ctx, userID, assetID, amount); err != nil {
		return err
	}

	tx.events = append(tx.events, &core.Event{
		TraceID: id.GenTraceID(),
		Type:    core.EventTypeCollateralDeposited,
		UserID:  userID,
		AssetID: assetID,
		Amount:  number.DecimalFromWad(amount),
	})

	return nil
}

// mintDsc credits debt, verifies the caller stays solvent, then asks the
// token to mint. Either failure rolls the debt credit back.
func (s *engineService) mintDsc(ctx context.Context, userID string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return core.ErrInvalidAmount
	}

	if err := s.accountStore.AddDebt(ctx, userID, amount); err != nil {
		return err
	}

	if err := s.checkHealth(ctx, userID); err != nil {
		return err
	}

	if err := s.tokenService.Mint(ctx, userID, amount); err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("engine: mint declined")
		return core.ErrMintFailed
	}

	return nil
}

// redeemCollateral debits the ledger and releases the asset to the
// receiver. Solvency is verified while the asset is still in custody so a
// failed check only needs the ledger restored.
func (s *engineService) redeemCollateral(ctx context.Context, tx *txn, userID, to, assetID string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return core.ErrInvalidAmount
	}
	if !s.oracleService.IsSupported(assetID) {
		return core.ErrAssetNotListed
	}

	if err := s.accountStore.SubCollateral(ctx, userID, assetID, amount); err != nil {
		return err
	}

	if err := s.checkHealth(ctx, userID); err != nil {
		return err
	}

	if err := s.walletService.Release(ctx, to, assetID, amount); err != nil {
		return err
	}

	tx.events = append(tx.events, &core.Event{
		TraceID:    id.GenTraceID(),
		Type:       core.EventTypeCollateralRedeemed,
		UserID:     userID,
		OpponentID: to,
		AssetID:    assetID,
		Amount:     number.DecimalFromWad(amount),
	})

	return nil
}

// burnDsc retires debt. The ledger debit happens before the token pull;
// a declined pull fails the call and the wrapper restores the debit.
func (s *engineService) burnDsc(ctx context.Context, userID string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return core.ErrInvalidAmount
	}

	if err := s.accountStore.SubDebt(ctx, userID, amount); err != nil {
		return err
	}

	if err := s.tokenService.Transfer(ctx, userID, core.EngineUserID, amount); err != nil {
		return err
	}

	return s.tokenService.Burn(ctx, amount)
}

func (s *engineService) collateralValue(ctx context.Context, userID string) (*big.Int, error) {
	value := new(big.Int)
	for _, asset := range s.oracleService.Assets() {
		balance, err := s.accountStore.Collateral(ctx, userID, asset.AssetID)
		if err != nil {
			return nil, err
		}
		if balance.Sign() == 0 {
			continue
		}

		usd, err := s.oracleService.ValueOf(ctx, asset.AssetID, balance)
		if err != nil {
			return nil, err
		}

		value.Add(value, usd)
	}

	return value, nil
}

func (s *engineService) healthFactor(ctx context.Context, userID string) (*big.Int, error) {
	debt, err := s.accountStore.Debt(ctx, userID)
	if err != nil {
		return nil, err
	}

	value, err := s.collateralValue(ctx, userID)
	if err != nil {
		return nil, err
	}

	return dsc.HealthFactor(debt, value), nil
}

func (s *engineService) checkHealth(ctx context.Context, userID string) error {
	score, err := s.healthFactor(ctx, userID)
	if err != nil {
		return err
	}

	if !dsc.IsSolvent(score) {
		return core.WithHealthFactor(core.ErrHealthFactorBroken, score)
	}

	return nil
}

func (s *engineService) AccountInformation(ctx context.Context, userID string) (*big.Int, *big.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	debt, err := s.accountStore.Debt(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	value, err := s.collateralValue(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return debt, value, nil
}

func (s *engineService) HealthFactor(ctx context.Context, userID string) (*big.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.healthFactor(ctx, userID)
}

func (s *engineService) AccountCollateralValue(ctx context.Context, userID string) (*big.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collateralValue(ctx, userID)
}

func (s *engineService) UsdValue(ctx context.Context, assetID string, amount *big.Int) (*big.Int, error) {
	return s.oracleService.ValueOf(ctx, assetID, amount)
}

func (s *engineService) TokenAmountFromUsd(ctx context.Context, assetID string, usdValue *big.Int) (*big.Int, error) {
	return s.oracleService.QuantityOf(ctx, assetID, usdValue)
}

func (s *engineService) CollateralAssets() []core.Asset {
	return s.oracleService.Assets()
}

func (s *engineService) MinHealthFactor() *big.Int {
	return new(big.Int).Set(dsc.MinHealthFactor)
}

func (s *engineService) PriceFeedID(assetID string) (string, bool) {
	return s.oracleService.PriceFeedID(assetID)
}
