package domain

import (
	"errors"
	"fmt"
)

// ErrorKind identifies one of the closed set of failure categories the core
// can report. Every error that leaves the core carries exactly one kind.
type ErrorKind string

// The closed kind set. New kinds must not be invented at call sites;
// anything unrecognized is folded into KindUnknownError.
const (
	KindUnauthorized     ErrorKind = "UNAUTHORIZED"
	KindForbidden        ErrorKind = "FORBIDDEN"
	KindRateLimit        ErrorKind = "RATE_LIMIT"
	KindServerError      ErrorKind = "SERVER_ERROR"
	KindAPIError         ErrorKind = "API_ERROR"
	KindNetworkError     ErrorKind = "NETWORK_ERROR"
	KindUnknownError     ErrorKind = "UNKNOWN_ERROR"
	KindInvalidQuery     ErrorKind = "INVALID_QUERY"
	KindInvalidParams    ErrorKind = "INVALID_PARAMS"
	KindInvalidDate      ErrorKind = "INVALID_DATE"
	KindNoFlightsFound   ErrorKind = "NO_FLIGHTS_FOUND"
	KindSearchIncomplete ErrorKind = "SEARCH_INCOMPLETE"
	KindSearchError      ErrorKind = "SEARCH_ERROR"
	KindInvalidResponse  ErrorKind = "INVALID_RESPONSE"
)

// userMessages maps each kind to one human-readable, action-oriented message.
// Kinds without an entry fall back to a generic templated message that embeds
// the raw provider text.
var userMessages = map[ErrorKind]string{
	KindUnauthorized:     "The flight data service rejected our credentials. Check the API key configuration.",
	KindForbidden:        "Access to the flight data service is forbidden. Verify your subscription plan.",
	KindRateLimit:        "Too many requests to the flight data service. Wait a moment and try again.",
	KindServerError:      "The flight data service is having trouble. Try again in a few minutes.",
	KindNetworkError:     "Could not reach the flight data service. Check your network connection.",
	KindInvalidQuery:     "Enter at least 2 characters to search for airports.",
	KindInvalidParams:    "Origin, destination and travel date are required to search flights.",
	KindInvalidDate:      "The travel date cannot be in the past. Pick today or a later date.",
	KindNoFlightsFound:   "No flights found for this route. Try different airports or dates.",
	KindSearchIncomplete: "The search is taking longer than expected. Try again or pick different dates.",
	KindInvalidResponse:  "The flight data service returned an unreadable response. Try again.",
}

// ClassifiedError is the single error currency of the core. Transport and
// HTTP failures are classified into one at the boundary; validation failures
// produce one directly. No raw transport error ever escapes the core.
type ClassifiedError struct {
	// Kind is the category from the closed set above.
	Kind ErrorKind

	// Message is a human-readable, user-facing description.
	Message string

	// HTTPStatus is the upstream HTTP status when a response was received.
	// Zero when no response was involved (validation, network failures).
	HTTPStatus int
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.HTTPStatus != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is makes errors.Is match any ClassifiedError of the same kind, so callers
// can compare against a kind sentinel without caring about the message.
func (e *ClassifiedError) Is(target error) bool {
	var other *ClassifiedError
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

// NewError creates a ClassifiedError with the canonical message for the kind.
func NewError(kind ErrorKind) *ClassifiedError {
	return &ClassifiedError{
		Kind:    kind,
		Message: MessageFor(kind, ""),
	}
}

// NewErrorWithMessage creates a ClassifiedError with a custom message.
func NewErrorWithMessage(kind ErrorKind, message string) *ClassifiedError {
	return &ClassifiedError{
		Kind:    kind,
		Message: message,
	}
}

// NewHTTPError creates a ClassifiedError that carries the upstream status.
func NewHTTPError(kind ErrorKind, message string, status int) *ClassifiedError {
	return &ClassifiedError{
		Kind:       kind,
		Message:    message,
		HTTPStatus: status,
	}
}

// MessageFor returns the user-facing message for a kind. Unmapped kinds fall
// back to a generic template embedding the raw provider text, if any.
func MessageFor(kind ErrorKind, raw string) string {
	if msg, ok := userMessages[kind]; ok {
		return msg
	}
	if raw != "" {
		return fmt.Sprintf("Flight search failed: %s", raw)
	}
	return "Flight search failed due to an unexpected error. Try again."
}

// AsClassified extracts a ClassifiedError from an error chain.
// The second return is false when the error is not classified.
func AsClassified(err error) (*ClassifiedError, bool) {
	var cerr *ClassifiedError
	if errors.As(err, &cerr) {
		return cerr, true
	}
	return nil, false
}

// IsKind reports whether err is a ClassifiedError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	cerr, ok := AsClassified(err)
	return ok && cerr.Kind == kind
}

// EnsureClassified returns err unchanged when it is already classified, and
// wraps anything else as a generic SEARCH_ERROR. This is the last line of
// defense before an error crosses the public contract.
func EnsureClassified(err error) *ClassifiedError {
	if cerr, ok := AsClassified(err); ok {
		return cerr
	}
	return NewErrorWithMessage(KindSearchError, MessageFor(KindSearchError, err.Error()))
}
