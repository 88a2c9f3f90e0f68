// Package http provides the HTTP facade over the flight search core.
// It handles query binding, validation, response formatting, and the mapping
// of classified errors onto HTTP statuses.
package http

import (
	"strings"

	"github.com/MikeAdelek/Google-Flight-Clone/internal/domain"
)

// SearchAirportsRequest carries the airport lookup query string.
type SearchAirportsRequest struct {
	// Query is the free-text search, minimum 2 characters.
	Query string `query:"query"`
}

// SearchFlightsRequest carries the flight search query parameters.
// Identifier and date semantics are validated by the domain layer; this
// type only checks what must hold before a SearchParams can be built.
type SearchFlightsRequest struct {
	// Origin is the provider identifier of the departure airport.
	Origin string `query:"origin"`

	// Destination is the provider identifier of the arrival airport.
	Destination string `query:"destination"`

	// OriginEntityID optionally refines the origin location.
	OriginEntityID string `query:"originEntityId"`

	// DestinationEntityID optionally refines the destination location.
	DestinationEntityID string `query:"destinationEntityId"`

	// Date is the travel date in YYYY-MM-DD format.
	Date string `query:"date"`

	// ReturnDate is the optional return date in YYYY-MM-DD format.
	ReturnDate string `query:"returnDate"`

	// CabinClass is the travel class (economy, premium_economy, business, first).
	CabinClass string `query:"cabinClass"`

	// Adults, Children, Infants are the passenger counts.
	Adults   int `query:"adults"`
	Children int `query:"children"`
	Infants  int `query:"infants"`

	// SortBy is the provider-side sort preference.
	SortBy string `query:"sortBy"`

	// Currency, Market, CountryCode select the pricing locale.
	Currency    string `query:"currency"`
	Market      string `query:"market"`
	CountryCode string `query:"countryCode"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API responses.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the structural surface of the request. Domain-level
// semantics (past dates, defaults) are left to SearchParams.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.Origin) == "" {
		errs.Add("origin", "origin is required")
	}
	if strings.TrimSpace(r.Destination) == "" {
		errs.Add("destination", "destination is required")
	}
	if strings.TrimSpace(r.Date) == "" {
		errs.Add("date", "date is required")
	}

	if r.Adults < 0 {
		errs.Add("adults", "adults cannot be negative")
	}
	if r.Children < 0 {
		errs.Add("children", "children cannot be negative")
	}
	if r.Infants < 0 {
		errs.Add("infants", "infants cannot be negative")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToSearchParams converts the request into domain parameters. Identifiers
// are upper-cased the way the provider expects.
func (r *SearchFlightsRequest) ToSearchParams() domain.SearchParams {
	return domain.SearchParams{
		OriginSkyID:         strings.ToUpper(strings.TrimSpace(r.Origin)),
		DestinationSkyID:    strings.ToUpper(strings.TrimSpace(r.Destination)),
		OriginEntityID:      strings.TrimSpace(r.OriginEntityID),
		DestinationEntityID: strings.TrimSpace(r.DestinationEntityID),
		Date:                strings.TrimSpace(r.Date),
		ReturnDate:          strings.TrimSpace(r.ReturnDate),
		CabinClass:          strings.ToLower(strings.TrimSpace(r.CabinClass)),
		Adults:              r.Adults,
		Children:            r.Children,
		Infants:             r.Infants,
		SortBy:              strings.TrimSpace(r.SortBy),
		Currency:            strings.ToUpper(strings.TrimSpace(r.Currency)),
		Market:              strings.TrimSpace(r.Market),
		CountryCode:         strings.TrimSpace(r.CountryCode),
	}
}
