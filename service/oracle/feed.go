package oracle

import (
	"context"
	"fmt"
	"math/big"

	"dsc/core"
	"dsc/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

type fixedFeed struct {
	price *big.Int
}

// FixedFeed returns a constant 8 decimal price, for bootstrap and tests.
func FixedFeed(price *big.Int) core.PriceFeed {
	return &fixedFeed{price: new(big.Int).Set(price)}
}

// FixedFeedFromDecimal builds a FixedFeed from a human usd price.
func FixedFeedFromDecimal(price decimal.Decimal) core.PriceFeed {
	return FixedFeed(price.Shift(8).Truncate(0).BigInt())
}

func (f *fixedFeed) LatestPrice(ctx context.Context) (*big.Int, error) {
	return new(big.Int).Set(f.price), nil
}

type tickerFeed struct {
	endpoint string
	feedID   string
}

// TickerFeed pulls the latest quote from the oracle endpoint on every call.
// The returned price is trusted unconditionally: no staleness or deviation
// bound is applied here.
func TickerFeed(endpoint, feedID string) core.PriceFeed {
	return &tickerFeed{endpoint: endpoint, feedID: feedID}
}

func (f *tickerFeed) LatestPrice(ctx context.Context) (*big.Int, error) {
	url := fmt.Sprintf("%s/api/tickers/%s", f.endpoint, f.feedID)
	logger.FromContext(ctx).Debugln("pull price:", url)

	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	var ticker core.PriceTicker
	if err := resthttp.ParseResponse(resp, &ticker); err != nil {
		return nil, err
	}

	if ticker.Price.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("invalid ticker price for feed %s: %s", f.feedID, ticker.Price)
	}

	return ticker.Price.Shift(8).Truncate(0).BigInt(), nil
}

type storeFeed struct {
	feedID string
	prices core.IPriceStore
}

// StoreFeed reads the quote last persisted by the price oracle worker.
func StoreFeed(feedID string, prices core.IPriceStore) core.PriceFeed {
	return &storeFeed{feedID: feedID, prices: prices}
}

func (f *storeFeed) LatestPrice(ctx context.Context) (*big.Int, error) {
	quote, err := f.prices.Find(ctx, f.feedID)
	if err != nil {
		return nil, err
	}

	return quote.Price.Shift(8).Truncate(0).BigInt(), nil
}
