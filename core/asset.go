package core

// Asset is a collateral asset the engine accepts, bound to its price feed
// at construction time. The supported set never changes afterwards.
type Asset struct {
	AssetID     string `json:"asset_id"`
	Symbol      string `json:"symbol"`
	PriceFeedID string `json:"price_feed_id"`
}
