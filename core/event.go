package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

const (
	// EventTypeCollateralDeposited (account, asset, amount)
	EventTypeCollateralDeposited = "collateral_deposited"
	// EventTypeCollateralRedeemed (from, to, asset, amount); also emitted
	// for the collateral transfer step of a liquidation
	EventTypeCollateralRedeemed = "collateral_redeemed"
)

// Event is an observable side effect of a successful command.
type Event struct {
	ID         uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	TraceID    string          `sql:"size:36;unique_index:idx_events_trace" json:"trace_id,omitempty"`
	Type       string          `sql:"size:36;index:idx_events_type" json:"type,omitempty"`
	UserID     string          `sql:"size:36;index:idx_events_user" json:"user_id,omitempty"`
	OpponentID string          `sql:"size:36" json:"opponent_id,omitempty"`
	AssetID    string          `sql:"size:36" json:"asset_id,omitempty"`
	Amount     decimal.Decimal `sql:"type:decimal(38,18)" json:"amount,omitempty"`
	Extra      types.JSONText  `sql:"type:varchar(1024)" json:"extra,omitempty"`
	CreatedAt  time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
}

// PutExtra marshals v into the extra column.
func (e *Event) PutExtra(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	e.Extra = types.JSONText(data)
	return nil
}

// IEventStore event store interface
type IEventStore interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context, fromID uint64, limit int) ([]*Event, error)
}
