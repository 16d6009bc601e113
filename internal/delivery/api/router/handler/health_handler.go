package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers liveness checks with a bare {"ok": true}, outside the response envelope.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
