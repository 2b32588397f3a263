package repository

import (
	"context"
	"errors"

	"antique-models-store/internal/apperr"
	"antique-models-store/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PartnerRepository interface {
	Seed(ctx context.Context) error
	FindByID(ctx context.Context, partnerID string) (*model.FulfillmentPartner, error)
	List(ctx context.Context) ([]*model.FulfillmentPartner, error)
}

type partnerRepoImpl struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) PartnerRepository {
	return &partnerRepoImpl{
		db: db,
	}
}

func (r *partnerRepoImpl) Seed(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seedPartners).Error
}

func (r *partnerRepoImpl) FindByID(ctx context.Context, partnerID string) (*model.FulfillmentPartner, error) {
	var p model.FulfillmentPartner
	err := r.db.WithContext(ctx).
		Where("id = ?", partnerID).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *partnerRepoImpl) List(ctx context.Context) ([]*model.FulfillmentPartner, error) {
	var partners []*model.FulfillmentPartner
	err := r.db.WithContext(ctx).Order("id ASC").Find(&partners).Error
	if err != nil {
		return nil, err
	}

	return partners, nil
}
