// Package response provides standardized HTTP response builders for the
// flight search facade. It centralizes the mapping from classified error
// kinds to HTTP statuses so handlers stay declarative.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MikeAdelek/Google-Flight-Clone/internal/domain"
)

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is the machine-readable error kind.
	Code string `json:"code"`

	// Message is a human-readable, action-oriented message.
	Message string `json:"message"`

	// Details contains field-specific errors (for validation failures).
	Details map[string]string `json:"details,omitempty"`
}

// Non-domain error codes used by the facade itself.
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeValidationError = "VALIDATION_ERROR"
	CodeTimeout         = "TIMEOUT"
	CodeInternalError   = "INTERNAL_ERROR"
)

// Facade-level error messages.
const (
	MsgInvalidRequestBody = "Failed to parse request parameters"
	MsgValidationFailed   = "Request validation failed"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// statusForKind maps each classified kind onto an HTTP status. Kinds not
// listed fall back to 500.
var statusForKind = map[domain.ErrorKind]int{
	domain.KindInvalidQuery:     http.StatusBadRequest,
	domain.KindInvalidParams:    http.StatusBadRequest,
	domain.KindInvalidDate:      http.StatusBadRequest,
	domain.KindNoFlightsFound:   http.StatusNotFound,
	domain.KindSearchIncomplete: http.StatusUnprocessableEntity,
	domain.KindRateLimit:        http.StatusTooManyRequests,
	domain.KindUnauthorized:     http.StatusBadGateway,
	domain.KindForbidden:        http.StatusBadGateway,
	domain.KindServerError:      http.StatusBadGateway,
	domain.KindAPIError:         http.StatusBadGateway,
	domain.KindNetworkError:     http.StatusBadGateway,
	domain.KindInvalidResponse:  http.StatusBadGateway,
}

// StatusForKind returns the HTTP status for a classified kind.
func StatusForKind(kind domain.ErrorKind) int {
	if status, ok := statusForKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// FromClassified writes the response for a classified error.
func FromClassified(c echo.Context, cerr *domain.ClassifiedError) error {
	return c.JSON(StatusForKind(cerr.Kind), &ErrorDetail{
		Code:    string(cerr.Kind),
		Message: cerr.Message,
	})
}
