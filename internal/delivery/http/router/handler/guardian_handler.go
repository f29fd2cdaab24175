package handler

import (
	"log/slog"
	"net/http"

	"atlas/internal/delivery/http/response"
	"atlas/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GuardianHandler exposes the content-safety flag samples.
type GuardianHandler struct {
	flags  service.FlagProvider
	logger *slog.Logger
}

// NewGuardianHandler is the constructor for GuardianHandler, injected by Fx.
func NewGuardianHandler(flags service.FlagProvider, logger *slog.Logger) *GuardianHandler {
	return &GuardianHandler{
		flags:  flags,
		logger: logger,
	}
}

// ListFlags returns the static flagged-message samples.
func (h *GuardianHandler) ListFlags(c echo.Context) error {
	flags, err := h.flags.ListFlags(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, flags)
}
