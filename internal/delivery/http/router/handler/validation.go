package handler

import (
	domainerrors "atlas/internal/domain/errors"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// fieldDetail is one entry of a validation error's details list.
type fieldDetail struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// bindAndValidate binds the request body into input and runs struct tag
// validation. Failures come back as the application validation error so
// the boundary renders them with per-field details.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "failed to bind request body")
	}

	if err := c.Validate(input); err != nil {
		var fieldErrs validatorv10.ValidationErrors
		if errors.As(err, &fieldErrs) {
			details := make([]fieldDetail, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				details = append(details, fieldDetail{
					Field:   fe.Field(),
					Rule:    fe.Tag(),
					Message: fe.Error(),
				})
			}

			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
		}

		return errors.Wrap(domainerrors.ErrValidationFailed, "failed to validate request body")
	}

	return nil
}
