// Package response defines the wire shapes of the API. Payloads are
// returned as raw JSON entities; errors carry a single "error" message
// plus optional structured details.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the uniform error shape.
type ErrorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JSON writes a payload as-is, without an envelope.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error writes an error message.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Error: message})
}

// ValidationError writes a 400 carrying per-field details.
func ValidationError(c echo.Context, message string, details any) error {
	return c.JSON(http.StatusBadRequest, ErrorBody{
		Error:   message,
		Details: details,
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
