package client

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	stripeclient "github.com/stripe/stripe-go/v74/client"
	"github.com/stripe/stripe-go/v74/webhook"
)

// StripeClient is the capability surface the store needs from the payment
// processor: create a charge intent, and verify+decode a webhook event from
// the exact raw request bytes.
type StripeClient interface {
	CreatePaymentIntent(ctx context.Context, req *CreatePaymentIntentRequest) (*PaymentIntentResult, error)
	ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error)
}

type CreatePaymentIntentRequest struct {
	Amount         int64
	Currency       string
	Description    string
	ReceiptEmail   string
	Metadata       map[string]string
	IdempotencyKey string
}

type PaymentIntentResult struct {
	ID           string
	ClientSecret string
	Amount       int64
}

type stripeClientImpl struct {
	api           *stripeclient.API
	webhookSecret string
}

func NewStripeClient(secretKey, webhookSecret string) StripeClient {
	api := &stripeclient.API{}
	api.Init(secretKey, nil)

	return &stripeClientImpl{
		api:           api,
		webhookSecret: webhookSecret,
	}
}

func (c *stripeClientImpl) CreatePaymentIntent(ctx context.Context, req *CreatePaymentIntentRequest) (*PaymentIntentResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(req.Amount),
		Currency:     stripe.String(req.Currency),
		Description:  stripe.String(req.Description),
		ReceiptEmail: stripe.String(req.ReceiptEmail),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create payment intent: %w", err)
	}

	return &PaymentIntentResult{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
	}, nil
}

// ConstructEvent verifies the HMAC signature over the raw body. Parsing
// before verifying would be a correctness bug, so callers must pass the
// bytes exactly as received.
func (c *stripeClientImpl) ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
}
