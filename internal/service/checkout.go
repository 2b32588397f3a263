package service

import (
	"context"
	"errors"
	"fmt"

	"antique-models-store/internal/apperr"
	"antique-models-store/internal/client"
	"antique-models-store/internal/dto"
	"antique-models-store/internal/model"
	"antique-models-store/internal/repository"

	"github.com/google/uuid"
)

type CheckoutService interface {
	CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error)
}

type checkoutServiceImpl struct {
	stripeClient client.StripeClient
	modelRepo    repository.ModelRepository
}

func NewCheckoutService(stripeClient client.StripeClient, modelRepo repository.ModelRepository) CheckoutService {
	return &checkoutServiceImpl{
		stripeClient: stripeClient,
		modelRepo:    modelRepo,
	}
}

// CreatePaymentIntent asks the processor for a charge intent over exactly
// the model's current price. Single attempt, no local purchase record: the
// ledger row is written when the success webhook arrives.
func (s *checkoutServiceImpl) CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	m, err := s.modelRepo.FindByID(ctx, req.ModelID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("find model %s: %w", req.ModelID, err)
	}

	if !m.Published {
		return nil, apperr.ErrNotFound
	}

	metadata := model.PaymentIntentMetadata{
		ModelID:               m.ID,
		DeliveryType:          "digital",
		FulfillmentType:       "digital_download",
		Format:                "glb",
		Dimensions:            m.Dimensions,
		CustomerEmail:         req.CustomerEmail,
		ManufacturingRequired: "false",
	}

	result, err := s.stripeClient.CreatePaymentIntent(ctx, &client.CreatePaymentIntentRequest{
		Amount:         int64(m.Price),
		Currency:       "usd",
		Description:    fmt.Sprintf("%s - Digital Download", m.Name),
		ReceiptEmail:   req.CustomerEmail,
		Metadata:       metadata.ToMap(),
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create payment intent: %v", apperr.ErrUpstream, err)
	}

	return &dto.PaymentIntentResponse{
		ClientSecret: result.ClientSecret,
		Amount:       result.Amount,
	}, nil
}
