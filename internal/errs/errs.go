// Package errs defines the error shape returned to API clients.
package errs

import (
	"net/http"
	"strings"

	"github.com/anonto42/local-food-lovers/backend/validators"
)

// HTTPError is serialized as the body of every failed request.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	// Detail carries the underlying failure, e.g. the store error text.
	Detail string                  `json:"error,omitempty"`
	Errors []validators.FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

func NewBadRequestError(message string, code string) *HTTPError {
	if code == "" {
		code = statusCode(http.StatusBadRequest)
	}
	return &HTTPError{Code: code, Message: message, Status: http.StatusBadRequest}
}

func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{Code: statusCode(http.StatusNotFound), Message: message, Status: http.StatusNotFound}
}

// NewInternalServerError wraps a store or unexpected failure, keeping its text as detail.
func NewInternalServerError(message string, err error) *HTTPError {
	e := &HTTPError{
		Code:    statusCode(http.StatusInternalServerError),
		Message: message,
		Status:  http.StatusInternalServerError,
	}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

func NewServiceUnavailableError(message string, err error) *HTTPError {
	e := NewInternalServerError(message, err)
	e.Code = statusCode(http.StatusServiceUnavailable)
	e.Status = http.StatusServiceUnavailable
	return e
}

// ValidationError converts field errors into a 400 response.
func ValidationError(fieldErrors validators.ValidationErrors) *HTTPError {
	e := NewBadRequestError("Validation failed", "VALIDATION_FAILED")
	e.Errors = fieldErrors
	return e
}
