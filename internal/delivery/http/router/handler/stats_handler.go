// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"atlas/internal/delivery/http/response"
	"atlas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler holds dependencies for the dashboard summary handler.
type StatsHandler struct {
	uc     usecase.StatsUsecase
	logger *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.StatsUsecase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetStats handles the dashboard summary request.
func (h *StatsHandler) GetStats(c echo.Context) error {
	stats, err := h.uc.ComputeStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, stats)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
