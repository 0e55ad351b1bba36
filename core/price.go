package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Price last persisted quote of one price feed
type Price struct {
	ID        int64           `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	FeedID    string          `sql:"size:36;unique_index:idx_prices_feed" json:"feed_id,omitempty"`
	Price     decimal.Decimal `sql:"type:decimal(24,8)" json:"price,omitempty"`
	Version   int64           `sql:"default:0" json:"version,omitempty"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at,omitempty"`
}

// IPriceStore price store interface
type IPriceStore interface {
	Save(ctx context.Context, feedID string, price decimal.Decimal) error
	Find(ctx context.Context, feedID string) (*Price, error)
}
