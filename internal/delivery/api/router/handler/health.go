package handler

import (
	"net/http"

	"fintwin/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const bannerText = "Financial Digital Twin API is running"

// Banner handles GET /
func Banner(c echo.Context) error {
	return c.String(http.StatusOK, bannerText)
}

// HealthCheck handles GET /health
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
