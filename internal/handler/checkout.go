package handler

import (
	"net/http"

	"antique-models-store/internal/dto"
	"antique-models-store/internal/logging"
	"antique-models-store/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	log             logging.Logger
}

func NewCheckoutHandler(checkoutService service.CheckoutService, log logging.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		log:             log,
	}
}

func (h *CheckoutHandler) CreatePaymentIntent(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreatePaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
	}

	resp, err := h.checkoutService.CreatePaymentIntent(ctx, &req)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, resp)
}
