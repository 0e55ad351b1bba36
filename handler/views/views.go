package views

import (
	"math/big"

	"dsc/core"
	"dsc/pkg/number"

	"github.com/shopspring/decimal"
)

// Account account view
type Account struct {
	UserID          string          `json:"user_id"`
	Debt            decimal.Decimal `json:"debt"`
	CollateralValue decimal.Decimal `json:"collateral_value"`
	HealthFactor    decimal.Decimal `json:"health_factor"`
}

// Asset asset view
type Asset struct {
	AssetID     string `json:"asset_id"`
	Symbol      string `json:"symbol"`
	PriceFeedID string `json:"price_feed_id"`
}

// AssetList asset list view
type AssetList struct {
	Assets          []Asset         `json:"assets"`
	MinHealthFactor decimal.Decimal `json:"min_health_factor"`
}

// NewAsset new asset view
func NewAsset(asset core.Asset) Asset {
	return Asset{
		AssetID:     asset.AssetID,
		Symbol:      asset.Symbol,
		PriceFeedID: asset.PriceFeedID,
	}
}

// NewAccount new account view
func NewAccount(userID string, debt, collateralValue, healthFactor *big.Int) Account {
	return Account{
		UserID:          userID,
		Debt:            number.DecimalFromWad(debt),
		CollateralValue: number.DecimalFromWad(collateralValue),
		HealthFactor:    number.DecimalFromWad(healthFactor),
	}
}
