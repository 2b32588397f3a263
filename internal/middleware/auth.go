package middleware

import (
	"crypto/subtle"
	"net/http"

	"antique-models-store/internal/dto"

	"github.com/labstack/echo/v4"
)

// AdminAuth gates the admin routes on a shared password header. Placeholder
// until real session auth lands; the password default is rejected at boot
// outside development.
func AdminAuth(password string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Request().Header.Get("X-Admin-Password")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(password)) != 1 {
				return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
			}
			return next(c)
		}
	}
}
