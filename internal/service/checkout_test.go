package service

import (
	"context"
	"errors"
	"testing"

	"antique-models-store/internal/apperr"
	"antique-models-store/internal/client"
	"antique-models-store/internal/dto"
	"antique-models-store/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishedModel() *model.StoneModel {
	return &model.StoneModel{
		ID:         "madonna-and-child",
		Name:       "Madonna and Child",
		Era:        "Renaissance Italy 15th Century",
		Dimensions: `24" H x 18" W x 6" D`,
		FileURL:    "/models/madonna-and-child.glb",
		Price:      12900,
		Published:  true,
	}
}

func TestCreatePaymentIntent_ChargesExactPrice(t *testing.T) {
	stripeClient := &fakeStripeClient{
		createOut: &client.PaymentIntentResult{
			ID:           "pi_123",
			ClientSecret: "pi_123_secret_abc",
			Amount:       12900,
		},
	}
	svc := NewCheckoutService(stripeClient, newFakeModelRepo(publishedModel()))

	resp, err := svc.CreatePaymentIntent(context.Background(), &dto.CreatePaymentIntentRequest{
		ModelID:       "madonna-and-child",
		CustomerEmail: "buyer@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "pi_123_secret_abc", resp.ClientSecret)
	assert.Equal(t, int64(12900), resp.Amount)

	req := stripeClient.lastCreateReq
	require.NotNil(t, req)
	assert.Equal(t, int64(12900), req.Amount)
	assert.Equal(t, "usd", req.Currency)
	assert.Equal(t, "buyer@example.com", req.ReceiptEmail)
	assert.NotEmpty(t, req.IdempotencyKey)
}

func TestCreatePaymentIntent_MetadataBindsFulfillmentContext(t *testing.T) {
	stripeClient := &fakeStripeClient{
		createOut: &client.PaymentIntentResult{ClientSecret: "cs", Amount: 12900},
	}
	svc := NewCheckoutService(stripeClient, newFakeModelRepo(publishedModel()))

	_, err := svc.CreatePaymentIntent(context.Background(), &dto.CreatePaymentIntentRequest{
		ModelID:       "madonna-and-child",
		CustomerEmail: "buyer@example.com",
	})
	require.NoError(t, err)

	meta := stripeClient.lastCreateReq.Metadata
	assert.Equal(t, "madonna-and-child", meta["modelId"])
	assert.Equal(t, "digital_download", meta["fulfillmentType"])
	assert.Equal(t, "glb", meta["format"])
	assert.Equal(t, "buyer@example.com", meta["customerEmail"])
	assert.Equal(t, "false", meta["manufacturingRequired"])
	assert.Equal(t, `24" H x 18" W x 6" D`, meta["dimensions"])
}

func TestCreatePaymentIntent_UnknownModel(t *testing.T) {
	svc := NewCheckoutService(&fakeStripeClient{}, newFakeModelRepo())

	_, err := svc.CreatePaymentIntent(context.Background(), &dto.CreatePaymentIntentRequest{
		ModelID:       "no-such-model",
		CustomerEmail: "buyer@example.com",
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreatePaymentIntent_UnpublishedModel(t *testing.T) {
	m := publishedModel()
	m.Published = false
	stripeClient := &fakeStripeClient{}
	svc := NewCheckoutService(stripeClient, newFakeModelRepo(m))

	_, err := svc.CreatePaymentIntent(context.Background(), &dto.CreatePaymentIntentRequest{
		ModelID:       m.ID,
		CustomerEmail: "buyer@example.com",
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Nil(t, stripeClient.lastCreateReq, "no processor call for unpublished models")
}

func TestCreatePaymentIntent_UpstreamFailure(t *testing.T) {
	stripeClient := &fakeStripeClient{createErr: errors.New("stripe is down")}
	svc := NewCheckoutService(stripeClient, newFakeModelRepo(publishedModel()))

	_, err := svc.CreatePaymentIntent(context.Background(), &dto.CreatePaymentIntentRequest{
		ModelID:       "madonna-and-child",
		CustomerEmail: "buyer@example.com",
	})
	assert.ErrorIs(t, err, apperr.ErrUpstream)
}
