package price

import (
	"context"

	"dsc/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

type priceStore struct {
	db *db.DB
}

// New new price store
func New(db *db.DB) core.IPriceStore {
	return &priceStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Price{})
		if err := tx.AutoMigrate(core.Price{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *priceStore) Save(ctx context.Context, feedID string, price decimal.Decimal) error {
	return s.db.Tx(func(tx *db.DB) error {
		var quote core.Price
		if err := tx.Update().Where("feed_id=?", feedID).FirstOrCreate(&quote, core.Price{FeedID: feedID}).Error; err != nil {
			return err
		}

		version := quote.Version
		return tx.Update().Model(core.Price{}).
			Where("feed_id=? and version=?", feedID, version).
			Updates(map[string]interface{}{
				"price":   price,
				"version": version + 1,
			}).Error
	})
}

func (s *priceStore) Find(ctx context.Context, feedID string) (*core.Price, error) {
	var quote core.Price
	if err := s.db.View().Where("feed_id=?", feedID).First(&quote).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrAssetNotListed
		}

		return nil, err
	}

	return &quote, nil
}
