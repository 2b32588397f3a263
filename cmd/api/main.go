package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"antique-models-store/internal/client"
	"antique-models-store/internal/config"
	"antique-models-store/internal/logging"
	"antique-models-store/internal/mailer"
	"antique-models-store/internal/repository"
	"antique-models-store/internal/server"
	"antique-models-store/internal/service"
	"antique-models-store/internal/storage"
	"antique-models-store/internal/token"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Log)
	ctx := context.Background()

	db := client.InitSqliteClient(cfg.DatabaseURL)
	stripeClient := client.NewStripeClient(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)

	modelRepo := repository.NewModelRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)

	if err := modelRepo.Seed(ctx); err != nil {
		log.Error(ctx, "seed catalog", "error", err.Error())
		os.Exit(1)
	}
	if err := partnerRepo.Seed(ctx); err != nil {
		log.Error(ctx, "seed fulfillment partners", "error", err.Error())
		os.Exit(1)
	}

	var assetStore storage.Store
	if cfg.Assets.S3Bucket != "" {
		s3Store, err := storage.NewS3Store(ctx, cfg.Assets)
		if err != nil {
			log.Error(ctx, "init s3 asset store", "error", err.Error())
			os.Exit(1)
		}
		assetStore = s3Store
	} else {
		assetStore = storage.NewLocalStore(cfg.Assets.Dir)
	}

	var mail mailer.Mailer
	if cfg.Brevo.APIKey != "" {
		mail = mailer.NewBrevoMailer(cfg.Brevo)
	} else {
		mail = mailer.NewLogMailer(log)
	}

	issuer := token.NewIssuer(cfg.Download.TokenSecret, cfg.Download.TokenTTL)

	catalogService := service.NewCatalogService(modelRepo)
	checkoutService := service.NewCheckoutService(stripeClient, modelRepo)
	fulfillmentService := service.NewFulfillmentService(
		stripeClient,
		purchaseRepo,
		webhookEventRepo,
		modelRepo,
		issuer,
		mail,
		cfg.BaseURL,
		log,
	)
	downloadService := service.NewDownloadService(issuer, modelRepo, purchaseRepo, assetStore, log)
	quoteService := service.NewQuoteService(modelRepo, partnerRepo)

	srv := server.NewServer(cfg, catalogService, checkoutService, fulfillmentService, downloadService, quoteService, log)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Info(ctx, "starting HTTP server", "addr", serverAddr, "env", cfg.Environment.Name)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "HTTP server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info(ctx, "signal received, starting graceful shutdown")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Error(ctx, "HTTP server shutdown error", "error", err.Error())
		os.Exit(1)
	}
}
