package oracle

import (
	"context"
	"math/big"

	"dsc/core"
	"dsc/internal/dsc"
)

type priceOracleService struct {
	assets []core.Asset
	feeds  map[string]core.PriceFeed
}

// New binds the supported asset list to its price feeds. Every asset must
// name a feed present in the registry; the binding is immutable afterwards.
func New(assets []core.Asset, registry map[string]core.PriceFeed) (core.IPriceOracleService, error) {
	s := &priceOracleService{
		assets: make([]core.Asset, 0, len(assets)),
		feeds:  make(map[string]core.PriceFeed, len(assets)),
	}

	for _, asset := range assets {
		if asset.AssetID == "" || asset.PriceFeedID == "" {
			return nil, core.ErrConfigMismatch
		}

		feed, ok := registry[asset.PriceFeedID]
		if !ok {
			return nil, core.ErrConfigMismatch
		}

		s.assets = append(s.assets, asset)
		s.feeds[asset.AssetID] = feed
	}

	return s, nil
}

func (s *priceOracleService) LatestPrice(ctx context.Context, assetID string) (*big.Int, error) {
	feed, ok := s.feeds[assetID]
	if !ok {
		return nil, core.ErrAssetNotListed
	}

	return feed.LatestPrice(ctx)
}

// ValueOf returns price * 1e10 * amount / 1e18, truncating.
func (s *priceOracleService) ValueOf(ctx context.Context, assetID string, amount *big.Int) (*big.Int, error) {
	price, err := s.LatestPrice(ctx, assetID)
	if err != nil {
		return nil, err
	}

	value := new(big.Int).Mul(price, dsc.AdditionalFeedPrecision)
	value.Mul(value, amount)
	return value.Div(value, dsc.Precision), nil
}

// QuantityOf returns usdValue * 1e18 / (price * 1e10), truncating.
func (s *priceOracleService) QuantityOf(ctx context.Context, assetID string, usdValue *big.Int) (*big.Int, error) {
	price, err := s.LatestPrice(ctx, assetID)
	if err != nil {
		return nil, err
	}

	quantity := new(big.Int).Mul(usdValue, dsc.Precision)
	return quantity.Div(quantity, new(big.Int).Mul(price, dsc.AdditionalFeedPrecision)), nil
}

func (s *priceOracleService) Assets() []core.Asset {
	assets := make([]core.Asset, len(s.assets))
	copy(assets, s.assets)
	return assets
}

func (s *priceOracleService) IsSupported(assetID string) bool {
	_, ok := s.feeds[assetID]
	return ok
}

func (s *priceOracleService) PriceFeedID(assetID string) (string, bool) {
	for _, asset := range s.assets {
		if asset.AssetID == assetID {
			return asset.PriceFeedID, true
		}
	}

	return "", false
}
