package service

import (
	"context"
	"fmt"
	"math"

	"antique-models-store/internal/apperr"
	"antique-models-store/internal/dto"
	"antique-models-store/internal/model"
	"antique-models-store/internal/repository"
)

// QuoteService prices CNC stone fabrication of a catalog piece through one
// of the partner shops.
type QuoteService interface {
	ListPartners(ctx context.Context) ([]*model.FulfillmentPartner, error)
	Quote(ctx context.Context, modelID, partnerID string) (*dto.QuoteResponse, error)
}

type quoteServiceImpl struct {
	modelRepo   repository.ModelRepository
	partnerRepo repository.PartnerRepository
}

func NewQuoteService(modelRepo repository.ModelRepository, partnerRepo repository.PartnerRepository) QuoteService {
	return &quoteServiceImpl{
		modelRepo:   modelRepo,
		partnerRepo: partnerRepo,
	}
}

func (s *quoteServiceImpl) ListPartners(ctx context.Context) ([]*model.FulfillmentPartner, error) {
	partners, err := s.partnerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fulfillment partners: %w", err)
	}

	return partners, nil
}

func (s *quoteServiceImpl) Quote(ctx context.Context, modelID, partnerID string) (*dto.QuoteResponse, error) {
	m, err := s.modelRepo.FindByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if !m.Published {
		return nil, apperr.ErrNotFound
	}

	p, err := s.partnerRepo.FindByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	fabrication := int32(math.Round(float64(m.Price) * p.PriceMultiplier))

	return &dto.QuoteResponse{
		ModelID:          m.ID,
		PartnerID:        p.ID,
		PartnerName:      p.Name,
		Currency:         "usd",
		DigitalPrice:     m.Price,
		FabricationPrice: fabrication,
		LeadTime:         p.LeadTime,
		Materials:        p.Materials,
	}, nil
}
