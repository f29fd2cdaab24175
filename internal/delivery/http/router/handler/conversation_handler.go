package handler

import (
	"log/slog"
	"net/http"

	"atlas/internal/delivery/http/response"
	"atlas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConversationHandler holds dependencies for conversation handlers.
type ConversationHandler struct {
	uc     usecase.ConversationUsecase
	logger *slog.Logger
}

// NewConversationHandler is the constructor for ConversationHandler, injected by Fx.
func NewConversationHandler(uc usecase.ConversationUsecase, logger *slog.Logger) *ConversationHandler {
	return &ConversationHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListConversations handles the thread listing request, optionally
// filtered by the fanId query parameter.
func (h *ConversationHandler) ListConversations(c echo.Context) error {
	conversations, err := h.uc.ListConversations(c.Request().Context(), c.QueryParam("fanId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, conversations)
}

// CreateConversation handles the thread creation request.
func (h *ConversationHandler) CreateConversation(c echo.Context) error {
	input := new(usecase.CreateConversationInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	conversation, err := h.uc.CreateConversation(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, conversation)
}
