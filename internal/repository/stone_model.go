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

// ModelFilter narrows and orders a public catalog listing.
type ModelFilter struct {
	Era  string
	Sort string // price_asc | price_desc | name | newest (default)
}

type ModelRepository interface {
	Seed(ctx context.Context) error
	FindByID(ctx context.Context, modelID string) (*model.StoneModel, error)
	FindPublished(ctx context.Context, filter ModelFilter) ([]*model.StoneModel, error)
	Upsert(ctx context.Context, m *model.StoneModel) error
}

type modelRepoImpl struct {
	db *gorm.DB
}

func NewModelRepository(db *gorm.DB) ModelRepository {
	return &modelRepoImpl{
		db: db,
	}
}

var sortColumns = map[string]string{
	"price_asc":  "price ASC",
	"price_desc": "price DESC",
	"name":       "name ASC",
	"newest":     "created_at DESC",
}

func (r *modelRepoImpl) Seed(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seedModels).Error
}

func (r *modelRepoImpl) FindByID(ctx context.Context, modelID string) (*model.StoneModel, error) {
	var m model.StoneModel
	err := r.db.WithContext(ctx).
		Where("id = ?", modelID).
		First(&m).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *modelRepoImpl) FindPublished(ctx context.Context, filter ModelFilter) ([]*model.StoneModel, error) {
	q := r.db.WithContext(ctx).Where("published = ?", true)

	if filter.Era != "" {
		q = q.Where("era = ?", filter.Era)
	}

	order, ok := sortColumns[filter.Sort]
	if !ok {
		order = sortColumns["newest"]
	}

	var models []*model.StoneModel
	if err := q.Order(order).Find(&models).Error; err != nil {
		return nil, err
	}

	return models, nil
}

func (r *modelRepoImpl) Upsert(ctx context.Context, m *model.StoneModel) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"name":          m.Name,
			"era":           m.Era,
			"provenance":    m.Provenance,
			"dimensions":    m.Dimensions,
			"vertices":      m.Vertices,
			"file_size":     m.FileSize,
			"file_url":      m.FileURL,
			"thumbnail_url": m.ThumbnailURL,
			"price":         m.Price,
			"published":     m.Published,
			"updated_at":    time.Now(),
		}),
	}).Create(m).Error
}
