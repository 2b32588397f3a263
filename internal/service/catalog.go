package service

import (
	"context"
	"fmt"

	"antique-models-store/internal/apperr"
	"antique-models-store/internal/model"
	"antique-models-store/internal/repository"
)

type CatalogService interface {
	ListPublished(ctx context.Context, filter repository.ModelFilter) ([]*model.StoneModel, error)
	GetPublished(ctx context.Context, modelID string) (*model.StoneModel, error)
	Upsert(ctx context.Context, m *model.StoneModel) error
}

type catalogServiceImpl struct {
	modelRepo repository.ModelRepository
}

func NewCatalogService(modelRepo repository.ModelRepository) CatalogService {
	return &catalogServiceImpl{
		modelRepo: modelRepo,
	}
}

func (s *catalogServiceImpl) ListPublished(ctx context.Context, filter repository.ModelFilter) ([]*model.StoneModel, error) {
	models, err := s.modelRepo.FindPublished(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list published models: %w", err)
	}

	return models, nil
}

func (s *catalogServiceImpl) GetPublished(ctx context.Context, modelID string) (*model.StoneModel, error) {
	m, err := s.modelRepo.FindByID(ctx, modelID)
	if err != nil {
		return nil, err
	}

	// unpublished pieces are invisible to the public catalog
	if !m.Published {
		return nil, apperr.ErrNotFound
	}

	return m, nil
}

func (s *catalogServiceImpl) Upsert(ctx context.Context, m *model.StoneModel) error {
	if err := s.modelRepo.Upsert(ctx, m); err != nil {
		return fmt.Errorf("upsert model %s: %w", m.ID, err)
	}

	return nil
}
