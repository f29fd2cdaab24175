package handler

import (
	"log/slog"
	"net/http"

	"atlas/internal/delivery/http/response"
	"atlas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QuestionHandler holds dependencies for question log and answer handlers.
type QuestionHandler struct {
	uc     usecase.QuestionUsecase
	logger *slog.Logger
}

// NewQuestionHandler is the constructor for QuestionHandler, injected by Fx.
func NewQuestionHandler(uc usecase.QuestionUsecase, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListQuestions handles the question log listing request, newest-first.
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	questions, err := h.uc.ListQuestions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, questions)
}

// GetQuestion handles the single log entry lookup request.
func (h *QuestionHandler) GetQuestion(c echo.Context) error {
	question, err := h.uc.GetQuestion(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, question)
}

// AskQuestion handles a question submission and returns the logged entry.
func (h *QuestionHandler) AskQuestion(c echo.Context) error {
	input := new(usecase.AskInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output, err := h.uc.Ask(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, output.Question)
}

// Answer handles a question submission and returns the handoff-shaped
// result instead of the log entry. The entry is still logged.
func (h *QuestionHandler) Answer(c echo.Context) error {
	input := new(usecase.AskInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output, err := h.uc.Ask(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output.Result)
}

// ShareQR renders the share QR code PNG for a logged question.
func (h *QuestionHandler) ShareQR(c echo.Context) error {
	png, err := h.uc.ShareQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
