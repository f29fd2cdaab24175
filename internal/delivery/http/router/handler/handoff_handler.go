package handler

import (
	"log/slog"
	"net/http"

	"atlas/internal/delivery/http/response"
	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HandoffHandler holds dependencies for the cross-page handoff handlers.
type HandoffHandler struct {
	uc     usecase.HandoffUsecase
	logger *slog.Logger
}

// NewHandoffHandler is the constructor for HandoffHandler, injected by Fx.
func NewHandoffHandler(uc usecase.HandoffUsecase, logger *slog.Logger) *HandoffHandler {
	return &HandoffHandler{
		uc:     uc,
		logger: logger,
	}
}

// Stash stores a result and returns its one-shot ticket.
func (h *HandoffHandler) Stash(c echo.Context) error {
	result := new(entity.AnswerResult)
	if err := c.Bind(result); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "failed to bind handoff payload")
	}
	if result.Answer == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "answer is required")
	}

	output, err := h.uc.Stash(c.Request().Context(), result)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, output)
}

// Redeem consumes a ticket and returns the stashed result exactly once.
func (h *HandoffHandler) Redeem(c echo.Context) error {
	result, err := h.uc.Redeem(c.Request().Context(), c.Param("ticket"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, result)
}
