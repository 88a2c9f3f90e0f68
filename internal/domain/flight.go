package domain

import "strconv"

// UnknownValue is the placeholder for optional leg attributes the provider
// did not supply (airline name, aircraft, and so on).
const UnknownValue = "Unknown"

// LegEndpoint identifies one end of a flight segment. Either Code or Name
// must be non-empty for the leg to be usable.
type LegEndpoint struct {
	// Code is the IATA display code of the airport (e.g., "JFK").
	Code string `json:"code"`

	// Name is the airport's display name.
	Name string `json:"name,omitempty"`

	// City is the airport's city, when known.
	City string `json:"city,omitempty"`
}

// Identifier returns the best available identifier for the endpoint.
// Empty when the endpoint is unusable.
func (e LegEndpoint) Identifier() string {
	if e.Code != "" {
		return e.Code
	}
	return e.Name
}

// Leg is one non-stop flight segment between two airports.
type Leg struct {
	// ID is the provider's stable identifier for this segment.
	ID string `json:"id"`

	// Origin is the departure airport.
	Origin LegEndpoint `json:"origin"`

	// Destination is the arrival airport.
	Destination LegEndpoint `json:"destination"`

	// Departure is the scheduled departure timestamp as supplied upstream.
	Departure string `json:"departure"`

	// Arrival is the scheduled arrival timestamp as supplied upstream.
	Arrival string `json:"arrival"`

	// DurationMinutes is the segment duration, never negative.
	DurationMinutes int `json:"durationMinutes"`

	// AirlineName is the marketing carrier name, or "Unknown".
	AirlineName string `json:"airlineName"`

	// AirlineLogoURL is the carrier logo URL, possibly empty.
	AirlineLogoURL string `json:"airlineLogoUrl,omitempty"`

	// AirlineCode is the carrier's short code, possibly empty.
	AirlineCode string `json:"airlineCode,omitempty"`

	// AircraftName is the equipment name, or "Unknown".
	AircraftName string `json:"aircraftName"`

	// FlightNumber is the flight number, possibly empty.
	FlightNumber string `json:"flightNumber,omitempty"`
}

// AgentInfo describes the party selling a bookable itinerary.
type AgentInfo struct {
	// Name is the agent's display name, or "Unknown".
	Name string `json:"name"`

	// IsAirline is true when the seller is the operating airline itself.
	IsAirline bool `json:"isAirline"`
}

// Itinerary is one bookable combination of one or more legs with a single
// price. StopCount and TotalDurationMinutes are always derived from the leg
// sequence, never supplied independently; use NewItinerary to construct one.
type Itinerary struct {
	// ID is the provider's stable identifier for this itinerary.
	ID string `json:"id"`

	// Legs is the non-empty ordered sequence of segments, in departure order.
	Legs []Leg `json:"legs"`

	// PriceAmount is the total price, never negative.
	PriceAmount float64 `json:"priceAmount"`

	// PriceCurrency is the ISO 4217 currency code.
	PriceCurrency string `json:"priceCurrency,omitempty"`

	// PriceFormatted is the provider's display label for the price.
	PriceFormatted string `json:"priceFormatted,omitempty"`

	// TotalDurationMinutes is the sum of leg durations.
	TotalDurationMinutes int `json:"totalDurationMinutes"`

	// DurationFormatted is a human-readable duration (e.g., "2h 30m").
	DurationFormatted string `json:"durationFormatted"`

	// StopCount equals len(Legs) - 1.
	StopCount int `json:"stopCount"`

	// IsDirect is true when StopCount is zero.
	IsDirect bool `json:"isDirect"`

	// BookingLink is the deep link to the booking page, possibly empty.
	BookingLink string `json:"bookingLink,omitempty"`

	// Agent describes who sells this itinerary.
	Agent AgentInfo `json:"agent"`
}

// NewItinerary constructs an Itinerary and computes every derived field from
// the leg sequence. The caller guarantees legs is non-empty and ordered by
// departure.
func NewItinerary(id string, legs []Leg, priceAmount float64, currency, priceFormatted, bookingLink string, agent AgentInfo) Itinerary {
	total := 0
	for _, leg := range legs {
		total += leg.DurationMinutes
	}

	stops := len(legs) - 1

	return Itinerary{
		ID:                   id,
		Legs:                 legs,
		PriceAmount:          priceAmount,
		PriceCurrency:        currency,
		PriceFormatted:       priceFormatted,
		TotalDurationMinutes: total,
		DurationFormatted:    FormatMinutes(total),
		StopCount:            stops,
		IsDirect:             stops == 0,
		BookingLink:          bookingLink,
		Agent:                agent,
	}
}

// IsRenderable reports whether the itinerary carries enough substance to be
// shown and counted in statistics: a strictly positive price and duration.
func (i Itinerary) IsRenderable() bool {
	return i.TotalDurationMinutes > 0 && i.PriceAmount > 0
}

// FormatMinutes renders a minute count as "Xh Ym", "Xh" or "Ym".
func FormatMinutes(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h"
	default:
		return strconv.Itoa(mins) + "m"
	}
}
