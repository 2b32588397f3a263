package handler

import (
	"context"
	"errors"
	"net/http"

	"antique-models-store/internal/apperr"
	"antique-models-store/internal/dto"
	"antique-models-store/internal/logging"

	"github.com/labstack/echo/v4"
)

// writeError maps the error taxonomy onto HTTP responses. Token and
// signature failures intentionally return generic messages so that the
// responses leak nothing an attacker could use as an oracle.
func writeError(c echo.Context, log logging.Logger, err error) error {
	switch {
	case errors.Is(err, apperr.ErrInvalidRequest):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request data"})

	case errors.Is(err, apperr.ErrNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Model not found or not available"})

	case errors.Is(err, apperr.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Download token is required"})

	case errors.Is(err, apperr.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired download token"})

	case errors.Is(err, apperr.ErrTokenExpired):
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Download token has expired. Please contact support."})

	case errors.Is(err, apperr.ErrLimitExceeded):
		return c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Download limit reached (10/10). Please contact support."})

	case errors.Is(err, apperr.ErrModelMismatch):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Model ID mismatch"})

	case errors.Is(err, apperr.ErrUpstream):
		log.Error(contextOf(c), "payment processor call failed", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create payment intent"})

	default:
		log.Error(contextOf(c), "unexpected handler error", "path", c.Path(), "error", err.Error())
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}

func contextOf(c echo.Context) context.Context {
	return c.Request().Context()
}
