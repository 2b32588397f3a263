package handler

import (
	"errors"
	"io"
	"net/http"

	"antique-models-store/internal/apperr"
	"antique-models-store/internal/dto"
	"antique-models-store/internal/logging"
	"antique-models-store/internal/service"

	"github.com/labstack/echo/v4"
)

type WebhookHandler struct {
	fulfillmentService service.FulfillmentService
	log                logging.Logger
}

func NewWebhookHandler(fulfillmentService service.FulfillmentService, log logging.Logger) *WebhookHandler {
	return &WebhookHandler{
		fulfillmentService: fulfillmentService,
		log:                log,
	}
}

// StripeWebhook hands the raw request bytes to fulfillment. The body must
// not be parsed here: signature verification runs over the exact bytes
// Stripe sent. A 500 response makes Stripe redeliver, which downstream
// handling is idempotent against.
func (h *WebhookHandler) StripeWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Unreadable request body"})
	}

	signature := c.Request().Header.Get("Stripe-Signature")

	if err := h.fulfillmentService.HandleWebhook(ctx, signature, body); err != nil {
		switch {
		case errors.Is(err, apperr.ErrUnauthenticated):
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing stripe-signature header"})
		case errors.Is(err, apperr.ErrInvalidSignature):
			h.log.Warn(ctx, "webhook signature verification failed", "error", err.Error())
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid signature"})
		default:
			h.log.Error(ctx, "webhook handler failed", "error", err.Error())
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Webhook handler failed"})
		}
	}

	return c.JSON(http.StatusOK, dto.WebhookAck{Received: true})
}
