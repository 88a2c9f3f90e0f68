// Package domain contains the core business entities and rules for the
// flight search client. These entities are provider-agnostic; raw provider
// records never cross this boundary without being normalized first.
package domain

// Airport is a canonical airport entry produced by the airport normalizer
// from one raw provider record. Immutable once constructed; discarded when a
// new search supersedes it.
type Airport struct {
	// IATACode is the 3-uppercase-letter airport code, the unique key.
	IATACode string `json:"iataCode"`

	// DisplayName is the human-readable airport name.
	DisplayName string `json:"displayName"`

	// City is the airport's city, when known.
	City string `json:"city,omitempty"`

	// Country is the airport's country, when known.
	Country string `json:"country,omitempty"`

	// SkyID is the provider's primary identifier for this airport.
	SkyID string `json:"skyId,omitempty"`

	// EntityID is the provider's secondary location identifier, distinct
	// from the IATA code.
	EntityID string `json:"entityId,omitempty"`
}
