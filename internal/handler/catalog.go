package handler

import (
	"net/http"

	"antique-models-store/internal/dto"
	"antique-models-store/internal/logging"
	"antique-models-store/internal/repository"
	"antique-models-store/internal/service"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	log            logging.Logger
}

func NewCatalogHandler(catalogService service.CatalogService, log logging.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		log:            log,
	}
}

func (h *CatalogHandler) ListModels(c echo.Context) error {
	ctx := c.Request().Context()

	models, err := h.catalogService.ListPublished(ctx, repository.ModelFilter{
		Era:  c.QueryParam("era"),
		Sort: c.QueryParam("sort"),
	})
	if err != nil {
		return writeError(c, h.log, err)
	}

	out := make([]*dto.ModelResponse, len(models))
	for i, m := range models {
		out[i] = dto.NewModelResponse(m)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) GetModel(c echo.Context) error {
	ctx := c.Request().Context()

	m, err := h.catalogService.GetPublished(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, dto.NewModelResponse(m))
}

// UpsertModel is the admin create/edit endpoint.
func (h *CatalogHandler) UpsertModel(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpsertModelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request data"})
	}
	req.ID = c.Param("id")

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
	}

	if err := h.catalogService.Upsert(ctx, req.ToModel()); err != nil {
		return writeError(c, h.log, err)
	}

	m, err := h.catalogService.GetPublished(ctx, req.ID)
	if err != nil {
		// unpublished after the edit: return the write as accepted
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, dto.NewModelResponse(m))
}
