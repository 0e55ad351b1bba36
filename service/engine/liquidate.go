package engine

import (
	"context"
	"math/big"

	"dsc/core"
	"dsc/internal/dsc"
	"dsc/pkg/id"
	"dsc/pkg/number"

	"github.com/fox-one/pkg/logger"
)

// Liquidate lets any caller repay debtToCover of an insolvent target's
// debt in exchange for the equivalent collateral quantity plus a 10%
// bonus. The whole call is one transaction: any failure restores both
// accounts exactly as they were.
func (s *engineService) Liquidate(ctx context.Context, callerID, assetID, targetID string, debtToCover *big.Int) error {
	return s.transactional(ctx, func(ctx context.Context, tx *txn) error {
		log := logger.FromContext(ctx).WithField("service", "engine")

		if debtToCover == nil || debtToCover.Sign() <= 0 {
			return core.ErrInvalidAmount
		}
		if !s.oracleService.IsSupported(assetID) {
			return core.ErrAssetNotListed
		}

		starting, err := s.healthFactor(ctx, targetID)
		if err != nil {
			return err
		}
		if dsc.IsSolvent(starting) {
			return core.WithHealthFactor(core.ErrHealthFactorSafe, starting)
		}

		tokenAmount, err := s.oracleService.QuantityOf(ctx, assetID, debtToCover)
		if err != nil {
			return err
		}
		seized := new(big.Int).Add(tokenAmount, dsc.BonusFor(tokenAmount))

		// ledger first. Seizing more than the target holds fails here
		// and is never masked as success.
		if err := s.accountStore.SubCollateral(ctx, targetID, assetID, seized); err != nil {
			return err
		}

		// debt debit precedes the token pull below
		if err := s.accountStore.SubDebt(ctx, targetID, debtToCover); err != nil {
			return err
		}

		ending, err := s.healthFactor(ctx, targetID)
		if err != nil {
			return err
		}
		if !dsc.IsSolvent(ending) {
			return core.WithHealthFactor(core.ErrHealthFactorNotImproved, ending)
		}

		// the caller may itself hold a position
		if err := s.checkHealth(ctx, callerID); err != nil {
			return err
		}

		// externals last: pull and destroy the caller's tokens, then
		// release the seized collateral to the caller
		if err := s.tokenService.Transfer(ctx, callerID, core.EngineUserID, debtToCover); err != nil {
			return err
		}
		if err := s.tokenService.Burn(ctx, debtToCover); err != nil {
			return err
		}
		if err := s.walletService.Release(ctx, callerID, assetID, seized); err != nil {
			return err
		}

		log.WithField("target", targetID).
			WithField("caller", callerID).
			Infof("liquidated %s of debt for %s %s", debtToCover, seized, assetID)

		event := &core.Event{
			TraceID:    id.GenTraceID(),
			Type:       core.EventTypeCollateralRedeemed,
			UserID:     targetID,
			OpponentID: callerID,
			AssetID:    assetID,
			Amount:     number.DecimalFromWad(seized),
		}
		_ = event.PutExtra(map[string]interface{}{
			"debt_covered": number.DecimalFromWad(debtToCover),
			"bonus":        number.DecimalFromWad(dsc.BonusFor(tokenAmount)),
		})
		tx.events = append(tx.events, event)

		return nil
	})
}
