package repository

import (
	"context"
	"testing"

	"antique-models-store/internal/apperr"
	"antique-models-store/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.StoneModel{},
		&model.Purchase{},
		&model.WebhookEvent{},
		&model.FulfillmentPartner{},
	))

	return db
}

func purchaseRow() *model.Purchase {
	return &model.Purchase{
		PurchaseID:    "pi_123",
		ModelID:       "madonna-and-child",
		CustomerEmail: "buyer@example.com",
		Amount:        12900,
		Currency:      "usd",
	}
}

func TestCreateIfAbsent(t *testing.T) {
	repo := NewPurchaseRepository(testDB(t))
	ctx := context.Background()

	created, err := repo.CreateIfAbsent(ctx, purchaseRow())
	require.NoError(t, err)
	assert.True(t, created)

	// webhook redelivery: same purchase id again
	again := purchaseRow()
	again.CustomerEmail = "other@example.com"
	created, err = repo.CreateIfAbsent(ctx, again)
	require.NoError(t, err)
	assert.False(t, created)

	p, err := repo.FindByPurchaseID(ctx, "pi_123")
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", p.CustomerEmail, "first write wins")
}

func TestIncrementDownloadCount_Ceiling(t *testing.T) {
	repo := NewPurchaseRepository(testDB(t))
	ctx := context.Background()

	_, err := repo.CreateIfAbsent(ctx, purchaseRow())
	require.NoError(t, err)

	for want := int32(1); want <= 10; want++ {
		count, err := repo.IncrementDownloadCount(ctx, "pi_123", 10)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	_, err = repo.IncrementDownloadCount(ctx, "pi_123", 10)
	assert.ErrorIs(t, err, apperr.ErrLimitExceeded)

	p, err := repo.FindByPurchaseID(ctx, "pi_123")
	require.NoError(t, err)
	assert.Equal(t, int32(10), p.DownloadCount, "count never passes the ceiling")
}

func TestIncrementDownloadCount_MissingRow(t *testing.T) {
	repo := NewPurchaseRepository(testDB(t))

	_, err := repo.IncrementDownloadCount(context.Background(), "pi_unknown", 10)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestFindByPurchaseID_Missing(t *testing.T) {
	repo := NewPurchaseRepository(testDB(t))

	_, err := repo.FindByPurchaseID(context.Background(), "pi_unknown")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestWebhookEventRepository_Dedup(t *testing.T) {
	repo := NewWebhookEventRepository(testDB(t))
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "evt_1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.MarkProcessed(ctx, "evt_1", "payment_intent.succeeded"))
	// marking twice must not error (redelivery)
	require.NoError(t, repo.MarkProcessed(ctx, "evt_1", "payment_intent.succeeded"))

	exists, err = repo.Exists(ctx, "evt_1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestModelRepository_SeedAndFilter(t *testing.T) {
	repo := NewModelRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx))
	// seeding twice is a no-op
	require.NoError(t, repo.Seed(ctx))

	all, err := repo.FindPublished(ctx, ModelFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 9)

	gothic, err := repo.FindPublished(ctx, ModelFilter{Era: "Gothic Period 14th Century"})
	require.NoError(t, err)
	require.Len(t, gothic, 1)
	assert.Equal(t, "religious-marble-relief", gothic[0].ID)

	byPrice, err := repo.FindPublished(ctx, ModelFilter{Sort: "price_asc"})
	require.NoError(t, err)
	require.NotEmpty(t, byPrice)
	assert.Equal(t, "medieval-knight", byPrice[0].ID)
	assert.Equal(t, "statue-of-grace", byPrice[len(byPrice)-1].ID)
}

func TestModelRepository_UpsertPreservesIdentity(t *testing.T) {
	repo := NewModelRepository(testDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Seed(ctx))

	m, err := repo.FindByID(ctx, "madonna-and-child")
	require.NoError(t, err)

	m.Price = 13900
	m.Published = false
	require.NoError(t, repo.Upsert(ctx, m))

	got, err := repo.FindByID(ctx, "madonna-and-child")
	require.NoError(t, err)
	assert.Equal(t, int32(13900), got.Price)
	assert.False(t, got.Published)

	published, err := repo.FindPublished(ctx, ModelFilter{})
	require.NoError(t, err)
	assert.Len(t, published, 8, "unpublished model leaves the public listing")
}
