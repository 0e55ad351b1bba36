package priceoracle

import (
	"context"
	"fmt"
	"sync"

	"dsc/core"
	"dsc/pkg/resthttp"
	"dsc/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// Worker pulls the latest quote of every configured feed from the oracle
// endpoint and persists it, so the store price source always has a value.
type Worker struct {
	worker.TickWorker
	endpoint   string
	assets     []core.AssetConfig
	priceStore core.IPriceStore
}

// New new price oracle worker
func New(endpoint string, assets []core.AssetConfig, priceStore core.IPriceStore) *Worker {
	return &Worker{
		endpoint:   endpoint,
		assets:     assets,
		priceStore: priceStore,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "priceoracle")
	ctx = logger.WithContext(ctx, log)

	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if len(w.assets) == 0 {
		log.Infoln("no asset configured")
		return nil
	}

	wg := sync.WaitGroup{}
	for _, asset := range w.assets {
		wg.Add(1)
		go func(asset core.AssetConfig) {
			defer wg.Done()

			ticker, err := w.pullTicker(ctx, asset.PriceFeedID)
			if err != nil {
				log.Errorln("pull price ticker error:", err)
				return
			}

			if ticker.Price.LessThanOrEqual(decimal.Zero) {
				log.Errorln("invalid ticker price:", asset.Symbol, ":", ticker.Price)
				return
			}

			if err := w.priceStore.Save(ctx, asset.PriceFeedID, ticker.Price); err != nil {
				log.Errorln("save price error:", err)
			}
		}(asset)
	}

	wg.Wait()

	return nil
}

func (w *Worker) pullTicker(ctx context.Context, feedID string) (*core.PriceTicker, error) {
	url := fmt.Sprintf("%s/api/tickers/%s", w.endpoint, feedID)

	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	var ticker core.PriceTicker
	if err := resthttp.ParseResponse(resp, &ticker); err != nil {
		return nil, err
	}

	return &ticker, nil
}
