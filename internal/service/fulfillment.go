package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"antique-models-store/internal/apperr"
	"antique-models-store/internal/client"
	"antique-models-store/internal/logging"
	"antique-models-store/internal/mailer"
	"antique-models-store/internal/model"
	"antique-models-store/internal/repository"
	"antique-models-store/internal/token"

	"github.com/stripe/stripe-go/v74"
)

// FulfillmentService receives processor webhooks and, on a verified
// successful payment, records the purchase, mints the download token and
// emails the link. The processor delivers events at least once, so every
// path through HandleWebhook must be safe to repeat.
type FulfillmentService interface {
	HandleWebhook(ctx context.Context, signature string, body []byte) error
}

type fulfillmentServiceImpl struct {
	stripeClient     client.StripeClient
	purchaseRepo     repository.PurchaseRepository
	webhookEventRepo repository.WebhookEventRepository
	modelRepo        repository.ModelRepository
	issuer           *token.Issuer
	mailer           mailer.Mailer
	baseURL          string
	log              logging.Logger
}

func NewFulfillmentService(
	stripeClient client.StripeClient,
	purchaseRepo repository.PurchaseRepository,
	webhookEventRepo repository.WebhookEventRepository,
	modelRepo repository.ModelRepository,
	issuer *token.Issuer,
	m mailer.Mailer,
	baseURL string,
	log logging.Logger,
) FulfillmentService {
	return &fulfillmentServiceImpl{
		stripeClient:     stripeClient,
		purchaseRepo:     purchaseRepo,
		webhookEventRepo: webhookEventRepo,
		modelRepo:        modelRepo,
		issuer:           issuer,
		mailer:           m,
		baseURL:          baseURL,
		log:              log,
	}
}

func (s *fulfillmentServiceImpl) HandleWebhook(ctx context.Context, signature string, body []byte) error {
	if signature == "" {
		return fmt.Errorf("%w: missing stripe-signature header", apperr.ErrUnauthenticated)
	}

	event, err := s.stripeClient.ConstructEvent(body, signature)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidSignature, err)
	}

	processed, err := s.webhookEventRepo.Exists(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("check webhook event %s: %w", event.ID, err)
	}
	if processed {
		// redelivery of an already-handled event: acknowledge quietly
		s.log.Info(ctx, "webhook event already processed", "eventId", event.ID)
		return nil
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("decode payment intent from event %s: %w", event.ID, err)
		}
		if err := s.handlePaymentSucceeded(ctx, &intent); err != nil {
			return err
		}

	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("decode payment intent from event %s: %w", event.ID, err)
		}
		s.logPaymentFailed(ctx, &intent)

	default:
		s.log.Debug(ctx, "unhandled webhook event type", "type", string(event.Type))
	}

	if err := s.webhookEventRepo.MarkProcessed(ctx, event.ID, string(event.Type)); err != nil {
		return fmt.Errorf("mark webhook event %s processed: %w", event.ID, err)
	}

	return nil
}

func (s *fulfillmentServiceImpl) handlePaymentSucceeded(ctx context.Context, intent *stripe.PaymentIntent) error {
	meta := model.MetadataFromMap(intent.Metadata)
	if meta.ModelID == "" || meta.CustomerEmail == "" {
		return fmt.Errorf("%w: payment intent %s metadata missing modelId or customerEmail",
			apperr.ErrInvariant, intent.ID)
	}

	now := time.Now()
	created, err := s.purchaseRepo.CreateIfAbsent(ctx, &model.Purchase{
		PurchaseID:    intent.ID,
		ModelID:       meta.ModelID,
		CustomerEmail: meta.CustomerEmail,
		Amount:        int32(intent.Amount),
		Currency:      "usd",
		DownloadCount: 0,
		TokenIssuedAt: now,
	})
	if err != nil {
		return fmt.Errorf("record purchase %s: %w", intent.ID, err)
	}
	if !created {
		s.log.Info(ctx, "purchase already recorded", "purchaseId", intent.ID)
	}

	downloadToken, err := s.issuer.Issue(token.Payload{
		ModelID:       meta.ModelID,
		PurchaseID:    intent.ID,
		CustomerEmail: meta.CustomerEmail,
		DownloadCount: 0,
	})
	if err != nil {
		return fmt.Errorf("issue download token for %s: %w", intent.ID, err)
	}

	downloadURL := fmt.Sprintf("%s/api/download/%s?token=%s",
		s.baseURL, meta.ModelID, url.QueryEscape(downloadToken))

	modelName := meta.ModelID
	if m, err := s.modelRepo.FindByID(ctx, meta.ModelID); err == nil {
		modelName = m.Name
	}

	// best-effort: mail failure must not fail the webhook ack, the buyer
	// can still be re-sent the link by support
	if err := s.mailer.SendDownloadLink(ctx, mailer.DownloadEmail{
		To:        meta.CustomerEmail,
		ModelName: modelName,
		URL:       downloadURL,
		ExpiresAt: now.Add(s.issuer.TTL()),
	}); err != nil {
		s.log.Error(ctx, "send download email failed",
			"purchaseId", intent.ID,
			"customerEmail", meta.CustomerEmail,
			"error", err.Error(),
		)
	}

	s.log.Info(ctx, "payment fulfilled",
		"purchaseId", intent.ID,
		"modelId", meta.ModelID,
		"amount", intent.Amount,
	)

	return nil
}

func (s *fulfillmentServiceImpl) logPaymentFailed(ctx context.Context, intent *stripe.PaymentIntent) {
	args := []any{"purchaseId", intent.ID}
	if intent.LastPaymentError != nil {
		args = append(args, "code", string(intent.LastPaymentError.Code), "message", intent.LastPaymentError.Msg)
	}
	s.log.Warn(ctx, "payment failed", args...)
}
