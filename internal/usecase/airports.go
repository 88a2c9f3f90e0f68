package usecase

import (
	"context"
	"strings"

	"github.com/MikeAdelek/Google-Flight-Clone/internal/domain"
	"github.com/MikeAdelek/Google-Flight-Clone/internal/infrastructure/logger"
)

// MinQueryLength is the shortest airport search text accepted. Shorter
// queries are rejected before any network call is issued.
const MinQueryLength = 2

// AirportSearchUseCase defines the airport lookup contract exposed to the
// UI boundary.
type AirportSearchUseCase interface {
	// SearchAirports looks up airports matching a free-text query.
	// Queries under MinQueryLength fail with INVALID_QUERY.
	SearchAirports(ctx context.Context, query string) ([]domain.Airport, error)

	// PopularDestinations returns a fixed list of well-known airports used
	// to seed UI suggestions. No network call is involved.
	PopularDestinations() []domain.Airport
}

// airportSearchUseCase implements AirportSearchUseCase against one provider.
type airportSearchUseCase struct {
	provider domain.FlightProvider
	log      *logger.Logger
}

// NewAirportSearchUseCase creates the airport lookup use case.
func NewAirportSearchUseCase(provider domain.FlightProvider, log *logger.Logger) AirportSearchUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &airportSearchUseCase{
		provider: provider,
		log:      log.WithComponent("airport_search"),
	}
}

// SearchAirports implements AirportSearchUseCase.
func (uc *airportSearchUseCase) SearchAirports(ctx context.Context, query string) ([]domain.Airport, error) {
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < MinQueryLength {
		return nil, domain.NewError(domain.KindInvalidQuery)
	}

	airports, err := uc.provider.SearchAirports(ctx, trimmed)
	if err != nil {
		return nil, domain.EnsureClassified(err)
	}

	if airports == nil {
		airports = []domain.Airport{}
	}
	return airports, nil
}

// PopularDestinations implements AirportSearchUseCase.
func (uc *airportSearchUseCase) PopularDestinations() []domain.Airport {
	// Copy so callers cannot mutate the seed list.
	out := make([]domain.Airport, len(popularDestinations))
	copy(out, popularDestinations)
	return out
}

// popularDestinations is the static seed list for UI suggestions.
var popularDestinations = []domain.Airport{
	{IATACode: "JFK", DisplayName: "New York John F. Kennedy", City: "New York", Country: "United States", SkyID: "JFK", EntityID: "95565058"},
	{IATACode: "LAX", DisplayName: "Los Angeles International", City: "Los Angeles", Country: "United States", SkyID: "LAX", EntityID: "95565059"},
	{IATACode: "LHR", DisplayName: "London Heathrow", City: "London", Country: "United Kingdom", SkyID: "LHR", EntityID: "95565050"},
	{IATACode: "CDG", DisplayName: "Paris Charles de Gaulle", City: "Paris", Country: "France", SkyID: "CDG", EntityID: "95565041"},
	{IATACode: "DXB", DisplayName: "Dubai International", City: "Dubai", Country: "United Arab Emirates", SkyID: "DXB", EntityID: "95673506"},
	{IATACode: "HND", DisplayName: "Tokyo Haneda", City: "Tokyo", Country: "Japan", SkyID: "HND", EntityID: "95673827"},
	{IATACode: "SIN", DisplayName: "Singapore Changi", City: "Singapore", Country: "Singapore", SkyID: "SIN", EntityID: "95673521"},
	{IATACode: "SYD", DisplayName: "Sydney Kingsford Smith", City: "Sydney", Country: "Australia", SkyID: "SYD", EntityID: "95565055"},
}

// Ensure airportSearchUseCase implements the interface at compile time.
var _ AirportSearchUseCase = (*airportSearchUseCase)(nil)
