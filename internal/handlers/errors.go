package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anonto42/local-food-lovers/backend/internal/errs"
	"github.com/anonto42/local-food-lovers/backend/internal/repositories"
	"github.com/anonto42/local-food-lovers/backend/validators"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		e := errs.NewBadRequestError("Invalid request payload", "INVALID_PAYLOAD")
		var he *echo.HTTPError
		if errors.As(err, &he) {
			e.Detail = fmt.Sprint(he.Message)
		} else {
			e.Detail = err.Error()
		}
		return e
	}

	if err := c.Validate(req); err != nil {
		var fieldErrors validators.ValidationErrors
		if errors.As(err, &fieldErrors) {
			return errs.ValidationError(fieldErrors)
		}
		return errs.NewInternalServerError("Failed to validate request", err)
	}
	return nil
}

// repositoryError maps a repository failure onto the HTTP error returned to the client.
// failure is the message used when the store itself failed.
func repositoryError(err error, entity, failure string) error {
	switch {
	case errors.Is(err, repositories.ErrInvalidID):
		return errs.NewBadRequestError("Invalid "+strings.ToLower(entity)+" id", "INVALID_ID")
	case errors.Is(err, repositories.ErrMissingEmail):
		return errs.NewBadRequestError("Email is required", "EMAIL_REQUIRED")
	case errors.Is(err, repositories.ErrNotFound):
		return errs.NewNotFoundError(entity + " not found")
	case errors.Is(err, repositories.ErrDuplicateFavorite):
		return errs.NewBadRequestError("Already in favorites", "ALREADY_IN_FAVORITES")
	default:
		return errs.NewInternalServerError(failure, err)
	}
}
