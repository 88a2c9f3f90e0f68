package skyscanner

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MikeAdelek/Google-Flight-Clone/internal/domain"
)

// classifyStatus maps a received non-2xx response onto the closed error
// taxonomy. Fixed kinds for 401/403/429/500; everything else becomes
// API_ERROR carrying the provider message when one can be extracted.
func classifyStatus(status int, body []byte) *domain.ClassifiedError {
	switch status {
	case http.StatusUnauthorized:
		return domain.NewHTTPError(domain.KindUnauthorized,
			domain.MessageFor(domain.KindUnauthorized, ""), status)
	case http.StatusForbidden:
		return domain.NewHTTPError(domain.KindForbidden,
			domain.MessageFor(domain.KindForbidden, ""), status)
	case http.StatusTooManyRequests:
		return domain.NewHTTPError(domain.KindRateLimit,
			domain.MessageFor(domain.KindRateLimit, ""), status)
	case http.StatusInternalServerError:
		return domain.NewHTTPError(domain.KindServerError,
			domain.MessageFor(domain.KindServerError, ""), status)
	}

	message := providerMessage(body)
	if message == "" {
		message = fmt.Sprintf("The flight data service returned an unexpected status %d.", status)
	}
	return domain.NewHTTPError(domain.KindAPIError, message, status)
}

// classifyTransportFailure covers the case where a request went out but no
// usable response came back: connection refused, DNS failure, timeout. The
// underlying error is deliberately not surfaced to callers; the kind and its
// canonical message are the whole contract.
func classifyTransportFailure(error) *domain.ClassifiedError {
	return domain.NewError(domain.KindNetworkError)
}

// classifyRequestFailure covers the case where the request could not even be
// constructed.
func classifyRequestFailure(err error) *domain.ClassifiedError {
	return domain.NewErrorWithMessage(domain.KindUnknownError,
		domain.MessageFor(domain.KindUnknownError, err.Error()))
}

// providerMessage pulls a human-readable message out of an error body, if
// the provider supplied one.
func providerMessage(body []byte) string {
	var envelope struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Message) == 0 {
		return ""
	}

	// The message field is sometimes a string, sometimes a list of
	// field-error objects.
	var asString string
	if err := json.Unmarshal(envelope.Message, &asString); err == nil {
		return asString
	}

	var asList []map[string]string
	if err := json.Unmarshal(envelope.Message, &asList); err == nil && len(asList) > 0 {
		for _, m := range asList {
			for _, v := range m {
				return v
			}
		}
	}

	return ""
}
