package skyscanner

import (
	"encoding/json"
	"errors"

	"github.com/MikeAdelek/Google-Flight-Clone/internal/domain"
)

// Per-record normalization failures. These never escape the normalizer;
// they only decide whether a record is kept or dropped.
var (
	errMissingID        = errors.New("missing itinerary id")
	errMissingLegs      = errors.New("missing legs")
	errMissingPrice     = errors.New("missing numeric price")
	errMissingEndpoint  = errors.New("leg endpoint unresolvable")
	errMissingTimestamp = errors.New("leg timestamp missing")
)

// itinerarySources lists the payload locations that may hold the itinerary
// list, probed in declaration order. The first location holding a non-nil
// array wins. Kept explicit so the probing order is visible and testable.
var itinerarySources = []func(*searchEnvelope) []rawItinerary{
	func(e *searchEnvelope) []rawItinerary {
		if e.Data == nil {
			return nil
		}
		return e.Data.Itineraries
	},
	func(e *searchEnvelope) []rawItinerary { return e.Itineraries },
	func(e *searchEnvelope) []rawItinerary { return e.Results },
}

// normalizeSearchPayload turns a raw flight search body into a well-typed,
// always-renderable SearchResult. Malformed itineraries and legs are dropped
// at the smallest possible granularity; only an undecodable body produces an
// error (INVALID_RESPONSE).
func normalizeSearchPayload(body []byte) (*domain.SearchResult, *domain.ClassifiedError) {
	var envelope searchEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, domain.NewError(domain.KindInvalidResponse)
	}

	searchID, contextStatus, _ := searchContext(&envelope)

	// An explicit provider-level failure flag short-circuits to an empty
	// but well-formed result.
	if envelope.Status != nil && !*envelope.Status {
		return domain.NewEmptySearchResult(domain.StatusFailure, searchID), nil
	}

	raw := locateItineraries(&envelope)
	if raw == nil {
		return domain.NewEmptySearchResult(statusFrom(contextStatus), searchID), nil
	}

	// Structural validation pass: survivors are well-formed itineraries.
	survivors := make([]domain.Itinerary, 0, len(raw))
	for _, r := range raw {
		itin, err := normalizeItinerary(r)
		if err != nil {
			continue
		}
		survivors = append(survivors, itin)
	}

	// Renderability filter: only flights with positive price and duration
	// are shown and counted in statistics. TotalResults reflects the
	// pre-filter survivor count.
	renderable := make([]domain.Itinerary, 0, len(survivors))
	for _, itin := range survivors {
		if itin.IsRenderable() {
			renderable = append(renderable, itin)
		}
	}

	return &domain.SearchResult{
		Itineraries: renderable,
		Status:      statusFrom(contextStatus),
		FilterStats: domain.AggregateStats(renderable),
		Context: domain.SearchContext{
			TotalResults: len(survivors),
			SearchID:     searchID,
		},
	}, nil
}

// locateItineraries probes the known nesting locations in order and returns
// the first array present, or nil when none is.
func locateItineraries(envelope *searchEnvelope) []rawItinerary {
	for _, source := range itinerarySources {
		if list := source(envelope); list != nil {
			return list
		}
	}
	return nil
}

// searchContext extracts session metadata from whichever location carries
// it. The bool reports whether any context was present.
func searchContext(envelope *searchEnvelope) (searchID, status string, ok bool) {
	ctx := envelope.Context
	if envelope.Data != nil && envelope.Data.Context != nil {
		ctx = envelope.Data.Context
	}
	if ctx == nil {
		return "", "", false
	}
	return ctx.SessionID, ctx.Status, true
}

// statusFrom maps the provider's context status string onto SearchStatus.
func statusFrom(contextStatus string) domain.SearchStatus {
	if contextStatus == "incomplete" {
		return domain.StatusIncomplete
	}
	return domain.StatusComplete
}

// normalizeItinerary validates one raw itinerary and converts it. An error
// drops the whole itinerary without affecting its siblings: partial
// itineraries are never produced.
func normalizeItinerary(raw rawItinerary) (domain.Itinerary, error) {
	if raw.ID == "" {
		return domain.Itinerary{}, errMissingID
	}
	if len(raw.Legs) == 0 {
		return domain.Itinerary{}, errMissingLegs
	}
	if raw.Price == nil || raw.Price.Raw == nil {
		return domain.Itinerary{}, errMissingPrice
	}

	legs := make([]domain.Leg, 0, len(raw.Legs))
	for _, rl := range raw.Legs {
		leg, err := normalizeLeg(rl)
		if err != nil {
			return domain.Itinerary{}, err
		}
		legs = append(legs, leg)
	}

	bookingLink, agent := purchaseInfo(raw.PricingOptions)

	return domain.NewItinerary(
		raw.ID,
		legs,
		*raw.Price.Raw,
		raw.Price.Currency,
		raw.Price.Formatted,
		bookingLink,
		agent,
	), nil
}

// normalizeLeg validates one raw leg. Origin/destination identifiers and
// both timestamps are required; every other attribute degrades to an
// explicit placeholder instead of failing.
func normalizeLeg(raw rawLeg) (domain.Leg, error) {
	origin := endpointFrom(raw.Origin)
	destination := endpointFrom(raw.Destination)
	if origin.Identifier() == "" || destination.Identifier() == "" {
		return domain.Leg{}, errMissingEndpoint
	}
	if raw.Departure == "" || raw.Arrival == "" {
		return domain.Leg{}, errMissingTimestamp
	}

	leg := domain.Leg{
		ID:           raw.ID,
		Origin:       origin,
		Destination:  destination,
		Departure:    raw.Departure,
		Arrival:      raw.Arrival,
		AirlineName:  domain.UnknownValue,
		AircraftName: domain.UnknownValue,
	}

	if raw.DurationInMinutes > 0 {
		leg.DurationMinutes = raw.DurationInMinutes
	}

	if len(raw.Carriers.Marketing) > 0 {
		carrier := raw.Carriers.Marketing[0]
		if carrier.Name != "" {
			leg.AirlineName = carrier.Name
		}
		leg.AirlineLogoURL = carrier.LogoURL
		leg.AirlineCode = carrier.AlternateID
	}

	if len(raw.Segments) > 0 {
		segment := raw.Segments[0]
		leg.FlightNumber = segment.FlightNumber
		if segment.Aircraft != nil && segment.Aircraft.Name != "" {
			leg.AircraftName = segment.Aircraft.Name
		}
	}

	return leg, nil
}

// endpointFrom picks the best identifiers out of a raw place.
func endpointFrom(place rawPlace) domain.LegEndpoint {
	code := place.DisplayCode
	if code == "" {
		code = place.ID
	}
	return domain.LegEndpoint{
		Code: code,
		Name: place.Name,
		City: place.City,
	}
}

// purchaseInfo derives the booking link and selling agent from the first
// pricing option, defaulting to empty/"Unknown" when absent.
func purchaseInfo(options []rawPricingOption) (string, domain.AgentInfo) {
	agent := domain.AgentInfo{Name: domain.UnknownValue}
	if len(options) == 0 {
		return "", agent
	}

	option := options[0]
	link := option.URL

	if len(option.Agents) > 0 {
		first := option.Agents[0]
		if first.Name != "" {
			agent.Name = first.Name
		}
		agent.IsAirline = first.IsCarrier
		if link == "" {
			link = first.URL
		}
	}

	return link, agent
}
