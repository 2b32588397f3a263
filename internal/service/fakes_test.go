package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"antique-models-store/internal/apperr"
	"antique-models-store/internal/client"
	"antique-models-store/internal/logging"
	"antique-models-store/internal/mailer"
	"antique-models-store/internal/model"
	"antique-models-store/internal/repository"

	"github.com/stripe/stripe-go/v74"
)

func testLogger(t *testing.T) logging.Logger {
	t.Helper()
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// --- stripe client ---

type fakeStripeClient struct {
	lastCreateReq *client.CreatePaymentIntentRequest
	createOut     *client.PaymentIntentResult
	createErr     error

	eventOut stripe.Event
	eventErr error
}

func (f *fakeStripeClient) CreatePaymentIntent(ctx context.Context, req *client.CreatePaymentIntentRequest) (*client.PaymentIntentResult, error) {
	f.lastCreateReq = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeStripeClient) ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	if f.eventErr != nil {
		return stripe.Event{}, f.eventErr
	}
	return f.eventOut, nil
}

// --- model repository ---

type fakeModelRepo struct {
	models map[string]*model.StoneModel
}

func newFakeModelRepo(models ...*model.StoneModel) *fakeModelRepo {
	r := &fakeModelRepo{models: map[string]*model.StoneModel{}}
	for _, m := range models {
		r.models[m.ID] = m
	}
	return r
}

func (f *fakeModelRepo) Seed(ctx context.Context) error { return nil }

func (f *fakeModelRepo) FindByID(ctx context.Context, modelID string) (*model.StoneModel, error) {
	m, ok := f.models[modelID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return m, nil
}

func (f *fakeModelRepo) FindPublished(ctx context.Context, filter repository.ModelFilter) ([]*model.StoneModel, error) {
	var out []*model.StoneModel
	for _, m := range f.models {
		if m.Published && (filter.Era == "" || m.Era == filter.Era) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeModelRepo) Upsert(ctx context.Context, m *model.StoneModel) error {
	f.models[m.ID] = m
	return nil
}

// --- purchase ledger ---

type fakePurchaseRepo struct {
	purchases map[string]*model.Purchase
	createErr error
	incErr    error
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{purchases: map[string]*model.Purchase{}}
}

func (f *fakePurchaseRepo) CreateIfAbsent(ctx context.Context, p *model.Purchase) (bool, error) {
	if f.createErr != nil {
		return false, f.createErr
	}
	if _, ok := f.purchases[p.PurchaseID]; ok {
		return false, nil
	}
	f.purchases[p.PurchaseID] = p
	return true, nil
}

func (f *fakePurchaseRepo) FindByPurchaseID(ctx context.Context, purchaseID string) (*model.Purchase, error) {
	p, ok := f.purchases[purchaseID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

func (f *fakePurchaseRepo) IncrementDownloadCount(ctx context.Context, purchaseID string, ceiling int32) (int32, error) {
	if f.incErr != nil {
		return 0, f.incErr
	}
	p, ok := f.purchases[purchaseID]
	if !ok {
		return 0, apperr.ErrNotFound
	}
	if p.DownloadCount >= ceiling {
		return 0, apperr.ErrLimitExceeded
	}
	p.DownloadCount++
	return p.DownloadCount, nil
}

// --- webhook event dedup ---

type fakeWebhookEventRepo struct {
	processed map[string]string
}

func newFakeWebhookEventRepo() *fakeWebhookEventRepo {
	return &fakeWebhookEventRepo{processed: map[string]string{}}
}

func (f *fakeWebhookEventRepo) Exists(ctx context.Context, eventID string) (bool, error) {
	_, ok := f.processed[eventID]
	return ok, nil
}

func (f *fakeWebhookEventRepo) MarkProcessed(ctx context.Context, eventID, eventType string) error {
	f.processed[eventID] = eventType
	return nil
}

// --- mailer ---

type fakeMailer struct {
	sent    []mailer.DownloadEmail
	sendErr error
}

func (f *fakeMailer) SendDownloadLink(ctx context.Context, email mailer.DownloadEmail) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, email)
	return nil
}

// --- asset store ---

type fakeStore struct {
	files map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{files: map[string][]byte{}}
}

func (f *fakeStore) Get(ctx context.Context, fileURL string) ([]byte, error) {
	data, ok := f.files[fileURL]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return data, nil
}
