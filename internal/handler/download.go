package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"antique-models-store/internal/logging"
	"antique-models-store/internal/service"

	"github.com/labstack/echo/v4"
)

type DownloadHandler struct {
	downloadService service.DownloadService
	log             logging.Logger
}

func NewDownloadHandler(downloadService service.DownloadService, log logging.Logger) *DownloadHandler {
	return &DownloadHandler{
		downloadService: downloadService,
		log:             log,
	}
}

func (h *DownloadHandler) Download(c echo.Context) error {
	ctx := c.Request().Context()

	modelID := c.Param("modelId")
	token := c.QueryParam("token")

	result, err := h.downloadService.Download(ctx, modelID, token)
	if err != nil {
		return writeError(c, h.log, err)
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", result.FileName))
	header.Set(echo.HeaderContentLength, strconv.Itoa(len(result.Data)))
	header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	header.Set("X-Download-Count", strconv.Itoa(int(result.DownloadCount)))
	header.Set("X-Download-Limit", strconv.Itoa(int(result.DownloadLimit)))

	return c.Blob(http.StatusOK, result.ContentType, result.Data)
}
