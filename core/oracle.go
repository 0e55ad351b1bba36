package core

import (
	"context"
	"math/big"

	"github.com/shopspring/decimal"
)

// PriceFeed exposes the latest quoted price of one asset.
// Prices are positive 8 decimal fixed point, trusted unconditionally.
type PriceFeed interface {
	LatestPrice(ctx context.Context) (*big.Int, error)
}

// PriceTicker is the wire shape of a quote pulled from the oracle endpoint.
type PriceTicker struct {
	Provider string          `json:"provider,omitempty"`
	FeedID   string          `json:"feed_id,omitempty"`
	Symbol   string          `json:"symbol,omitempty"`
	Price    decimal.Decimal `json:"price,omitempty"`
}

// IPriceOracleService converts between asset quantity and usd value using
// each supported asset's bound feed.
type IPriceOracleService interface {
	// ValueOf returns the usd value (18 decimals) of amount of asset.
	ValueOf(ctx context.Context, assetID string, amount *big.Int) (*big.Int, error)
	// QuantityOf is the inverse: the asset quantity worth usdValue.
	QuantityOf(ctx context.Context, assetID string, usdValue *big.Int) (*big.Int, error)
	LatestPrice(ctx context.Context, assetID string) (*big.Int, error)

	Assets() []Asset
	IsSupported(assetID string) bool
	PriceFeedID(assetID string) (string, bool)
}
