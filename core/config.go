package core

import (
	"github.com/asaskevich/govalidator"
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// PriceSourceType selects where the oracle adapter reads quotes from.
type PriceSourceType string

const (
	// PriceSourceTicker pull the live quote from the oracle endpoint per call
	PriceSourceTicker PriceSourceType = "ticker"
	// PriceSourceStore read the last quote persisted by the price worker
	PriceSourceStore PriceSourceType = "store"
	// PriceSourceFixed use the static price from the asset config
	PriceSourceFixed PriceSourceType = "fixed"
)

// Config dsc config
type Config struct {
	App         App           `json:"app"`
	DB          db.Config     `json:"db"`
	PriceOracle PriceOracle   `json:"price_oracle"`
	Assets      []AssetConfig `json:"assets"`
	Admins      []string      `json:"admins"`
}

// App app config
type App struct {
	Location string `json:"location"`
}

// PriceOracle price oracle config
type PriceOracle struct {
	EndPoint string          `json:"end_point"`
	Source   PriceSourceType `json:"source"`
}

// AssetConfig one supported collateral asset
type AssetConfig struct {
	AssetID     string `json:"asset_id"`
	Symbol      string `json:"symbol"`
	PriceFeedID string `json:"price_feed_id"`
	// static usd price, only used with the fixed price source
	Price decimal.Decimal `json:"price,omitempty"`
}

// IsAdmin check if the user is admin
func (c *Config) IsAdmin(userID string) bool {
	for _, a := range c.Admins {
		if a == userID {
			return true
		}
	}

	return false
}

// Validate validate config
func (c *Config) Validate() error {
	if len(c.Assets) == 0 {
		return ErrConfigMismatch
	}

	for _, asset := range c.Assets {
		if govalidator.IsNull(asset.AssetID) || govalidator.IsNull(asset.PriceFeedID) {
			return ErrConfigMismatch
		}
	}

	source := c.PriceOracle.Source
	if source == "" {
		source = PriceSourceFixed
	}

	if source != PriceSourceFixed && !govalidator.IsRequestURL(c.PriceOracle.EndPoint) {
		return ErrConfigMismatch
	}

	return nil
}
