package cmd

import (
	"dsc/core"
	"dsc/service/engine"
	"dsc/service/oracle"
	"dsc/service/token"
	"dsc/service/wallet"
	accountstore "dsc/store/account"
	eventstore "dsc/store/event"
	pricestore "dsc/store/price"

	"github.com/fox-one/pkg/store/db"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

// ---------------store-----------------------------------------

func provideAccountStore() core.IAccountStore {
	return accountstore.New()
}

func providePriceStore(database *db.DB) core.IPriceStore {
	return pricestore.New(database)
}

func provideEventStore(database *db.DB) core.IEventStore {
	return eventstore.New(database)
}

// ------------------service------------------------------------

func provideTokenService() core.ITokenService {
	return token.New(core.EngineUserID)
}

func provideWalletService() core.IWalletService {
	return wallet.New()
}

func providePriceOracleService(priceStore core.IPriceStore) core.IPriceOracleService {
	assets := make([]core.Asset, 0, len(cfg.Assets))
	registry := make(map[string]core.PriceFeed, len(cfg.Assets))

	for _, asset := range cfg.Assets {
		assets = append(assets, core.Asset{
			AssetID:     asset.AssetID,
			Symbol:      asset.Symbol,
			PriceFeedID: asset.PriceFeedID,
		})

		switch cfg.PriceOracle.Source {
		case core.PriceSourceTicker:
			registry[asset.PriceFeedID] = oracle.TickerFeed(cfg.PriceOracle.EndPoint, asset.PriceFeedID)
		case core.PriceSourceStore:
			registry[asset.PriceFeedID] = oracle.StoreFeed(asset.PriceFeedID, priceStore)
		default:
			registry[asset.PriceFeedID] = oracle.FixedFeedFromDecimal(asset.Price)
		}
	}

	srv, err := oracle.New(assets, registry)
	if err != nil {
		panic(err)
	}

	return srv
}

func provideEngineService(
	accountStore core.IAccountStore,
	oracleService core.IPriceOracleService,
	tokenService core.ITokenService,
	walletService core.IWalletService,
	eventStore core.IEventStore,
) core.IEngineService {
	return engine.New(accountStore, oracleService, tokenService, walletService, eventStore)
}
