package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// FlightProvider is the port to the upstream flight data aggregator. The
// adapter behind it owns all transport concerns and payload normalization;
// only canonical entities and classified errors cross this boundary.
type FlightProvider interface {
	// Name returns the provider's unique identifier for logging.
	Name() string

	// SearchFlights runs one flight search and returns a normalized,
	// always-renderable result. Transport and HTTP failures come back as
	// classified errors; malformed payload data never does.
	SearchFlights(ctx context.Context, params SearchParams) (*SearchResult, error)

	// SearchAirports looks up airports by free-text query and returns only
	// the records that normalize cleanly.
	SearchAirports(ctx context.Context, query string) ([]Airport, error)
}
