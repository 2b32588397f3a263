package repository

import (
	"context"
	"errors"
	"time"

	"antique-models-store/internal/apperr"
	"antique-models-store/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PurchaseRepository is the purchase/download ledger keyed by the payment
// intent id. Webhook delivery is at-least-once, so creation must be
// create-if-absent, and concurrent downloads must not race past the
// download ceiling.
type PurchaseRepository interface {
	// CreateIfAbsent inserts the row unless one already exists for the
	// purchase id. Reports whether a new row was written.
	CreateIfAbsent(ctx context.Context, p *model.Purchase) (bool, error)

	FindByPurchaseID(ctx context.Context, purchaseID string) (*model.Purchase, error)

	// IncrementDownloadCount atomically bumps the count while it is below
	// the ceiling and returns the new value. Returns apperr.ErrNotFound if
	// no ledger row exists, apperr.ErrLimitExceeded at the ceiling.
	IncrementDownloadCount(ctx context.Context, purchaseID string, ceiling int32) (int32, error)
}

type purchaseRepoImpl struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepoImpl{
		db: db,
	}
}

func (r *purchaseRepoImpl) CreateIfAbsent(ctx context.Context, p *model.Purchase) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "purchase_id"}},
		DoNothing: true,
	}).Create(p)

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (r *purchaseRepoImpl) FindByPurchaseID(ctx context.Context, purchaseID string) (*model.Purchase, error) {
	var p model.Purchase
	err := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *purchaseRepoImpl) IncrementDownloadCount(ctx context.Context, purchaseID string, ceiling int32) (int32, error) {
	var count int32

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Purchase{}).
			Where("purchase_id = ? AND download_count < ?", purchaseID, ceiling).
			Updates(map[string]interface{}{
				"download_count": gorm.Expr("download_count + 1"),
				"updated_at":     time.Now(),
			})

		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// either no ledger row or the ceiling was hit
			var existing int64
			if err := tx.Model(&model.Purchase{}).
				Where("purchase_id = ?", purchaseID).
				Count(&existing).Error; err != nil {
				return err
			}
			if existing == 0 {
				return apperr.ErrNotFound
			}
			return apperr.ErrLimitExceeded
		}

		var p model.Purchase
		if err := tx.Where("purchase_id = ?", purchaseID).First(&p).Error; err != nil {
			return err
		}
		count = p.DownloadCount

		return nil
	})

	if err != nil {
		return 0, err
	}

	return count, nil
}
