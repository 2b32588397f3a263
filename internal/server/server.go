package server

import (
	"net/http"

	"antique-models-store/internal/config"
	"antique-models-store/internal/handler"
	"antique-models-store/internal/logging"
	custommw "antique-models-store/internal/middleware"
	"antique-models-store/internal/service"
	"antique-models-store/internal/validate"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo               *echo.Echo
	catalogHandler     *handler.CatalogHandler
	checkoutHandler    *handler.CheckoutHandler
	webhookHandler     *handler.WebhookHandler
	downloadHandler    *handler.DownloadHandler
	fulfillmentHandler *handler.FulfillmentHandler
	adminPassword      string
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(
	cfg *config.Config,
	catalogService service.CatalogService,
	checkoutService service.CheckoutService,
	fulfillmentService service.FulfillmentService,
	downloadService service.DownloadService,
	quoteService service.QuoteService,
	log logging.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validate.New()}

	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:               e,
		catalogHandler:     handler.NewCatalogHandler(catalogService, log),
		checkoutHandler:    handler.NewCheckoutHandler(checkoutService, log),
		webhookHandler:     handler.NewWebhookHandler(fulfillmentService, log),
		downloadHandler:    handler.NewDownloadHandler(downloadService, log),
		fulfillmentHandler: handler.NewFulfillmentHandler(quoteService, log),
		adminPassword:      cfg.Admin.Password,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// -------- catalog --------
	api.GET("/models", s.catalogHandler.ListModels)
	api.GET("/models/:id", s.catalogHandler.GetModel)

	// -------- checkout / stripe --------
	api.POST("/checkout/payment-intent", s.checkoutHandler.CreatePaymentIntent)
	api.POST("/webhooks/stripe", s.webhookHandler.StripeWebhook)

	// -------- fulfillment --------
	api.GET("/download/:modelId", s.downloadHandler.Download)
	api.GET("/fulfillment/partners", s.fulfillmentHandler.ListPartners)
	api.GET("/fulfillment/quote", s.fulfillmentHandler.Quote)

	// -------- admin --------
	admin := api.Group("/admin", custommw.AdminAuth(s.adminPassword))
	admin.PUT("/models/:id", s.catalogHandler.UpsertModel)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
