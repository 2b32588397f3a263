package handler

import (
	"net/http"

	"antique-models-store/internal/dto"
	"antique-models-store/internal/logging"
	"antique-models-store/internal/service"

	"github.com/labstack/echo/v4"
)

type FulfillmentHandler struct {
	quoteService service.QuoteService
	log          logging.Logger
}

func NewFulfillmentHandler(quoteService service.QuoteService, log logging.Logger) *FulfillmentHandler {
	return &FulfillmentHandler{
		quoteService: quoteService,
		log:          log,
	}
}

func (h *FulfillmentHandler) ListPartners(c echo.Context) error {
	ctx := c.Request().Context()

	partners, err := h.quoteService.ListPartners(ctx)
	if err != nil {
		return writeError(c, h.log, err)
	}

	out := make([]*dto.PartnerResponse, len(partners))
	for i, p := range partners {
		out[i] = dto.NewPartnerResponse(p)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *FulfillmentHandler) Quote(c echo.Context) error {
	ctx := c.Request().Context()

	modelID := c.QueryParam("modelId")
	partnerID := c.QueryParam("partnerId")
	if modelID == "" || partnerID == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "modelId and partnerId are required"})
	}

	quote, err := h.quoteService.Quote(ctx, modelID, partnerID)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, quote)
}
