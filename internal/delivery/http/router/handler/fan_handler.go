package handler

import (
	"log/slog"
	"net/http"

	"atlas/internal/delivery/http/response"
	"atlas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FanHandler holds dependencies for fan directory handlers.
type FanHandler struct {
	uc     usecase.FanUsecase
	logger *slog.Logger
}

// NewFanHandler is the constructor for FanHandler, injected by Fx.
func NewFanHandler(uc usecase.FanUsecase, logger *slog.Logger) *FanHandler {
	return &FanHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListFans handles the fan listing request. A non-empty search query
// narrows the list by name substring.
func (h *FanHandler) ListFans(c echo.Context) error {
	search := c.QueryParam("search")

	fans, err := h.uc.SearchFans(c.Request().Context(), search)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, fans)
}

// GetFan handles the single fan lookup request.
func (h *FanHandler) GetFan(c echo.Context) error {
	fan, err := h.uc.GetFan(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, fan)
}

// CreateFan handles the fan creation request.
func (h *FanHandler) CreateFan(c echo.Context) error {
	input := new(usecase.CreateFanInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	fan, err := h.uc.CreateFan(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, fan)
}

// UpdateFan handles the partial fan update request.
func (h *FanHandler) UpdateFan(c echo.Context) error {
	input := new(usecase.UpdateFanInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	fan, err := h.uc.UpdateFan(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, fan)
}

// RegisterHandle binds a chat handle to the fan in the path.
func (h *FanHandler) RegisterHandle(c echo.Context) error {
	input := new(usecase.RegisterHandleInput)
	input.FanID = c.Param("id")
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	if err := h.uc.RegisterHandle(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
