package skyscanner

// Raw payload shapes. These are the only loosely-typed values in the system;
// they exist solely at this boundary and are converted to strict domain
// entities immediately upon validation. Pointer fields distinguish "absent"
// from zero values where the distinction matters.

// searchEnvelope is the outermost flight search payload. The itinerary list
// has been observed under three different keys across provider revisions,
// so all three are declared and probed in order (see itinerarySources).
type searchEnvelope struct {
	// Status is the provider-level success flag. False signals an explicit
	// provider failure; absent counts as success.
	Status *bool `json:"status"`

	Data *searchData `json:"data"`

	// Flat fallback locations for the itinerary list.
	Itineraries []rawItinerary `json:"itineraries"`
	Results     []rawItinerary `json:"results"`

	// Context occasionally appears at the top level instead of under data.
	Context *rawContext `json:"context"`
}

// searchData is the primary nesting location of search results.
type searchData struct {
	Itineraries []rawItinerary `json:"itineraries"`
	Context     *rawContext    `json:"context"`
}

// rawContext carries the provider's search-session metadata.
type rawContext struct {
	// Status is "incomplete" while the provider is still gathering
	// results server-side.
	Status string `json:"status"`

	SessionID    string `json:"sessionId"`
	TotalResults int    `json:"totalResults"`
}

// rawItinerary is one unvalidated itinerary record.
type rawItinerary struct {
	ID             string             `json:"id"`
	Price          *rawPrice          `json:"price"`
	Legs           []rawLeg           `json:"legs"`
	PricingOptions []rawPricingOption `json:"pricingOptions"`
}

// rawPrice distinguishes a missing numeric amount from an explicit zero.
type rawPrice struct {
	Raw       *float64 `json:"raw"`
	Formatted string   `json:"formatted"`
	Currency  string   `json:"currency"`
}

// rawLeg is one unvalidated flight segment.
type rawLeg struct {
	ID                string      `json:"id"`
	Origin            rawPlace    `json:"origin"`
	Destination       rawPlace    `json:"destination"`
	Departure         string      `json:"departure"`
	Arrival           string      `json:"arrival"`
	DurationInMinutes int         `json:"durationInMinutes"`
	Carriers          rawCarriers `json:"carriers"`
	Segments          []rawSegment `json:"segments"`
}

// rawPlace identifies one end of a leg.
type rawPlace struct {
	ID          string `json:"id"`
	DisplayCode string `json:"displayCode"`
	Name        string `json:"name"`
	City        string `json:"city"`
}

// rawCarriers groups the carriers operating/marketing a leg.
type rawCarriers struct {
	Marketing []rawCarrier `json:"marketing"`
}

// rawCarrier is one airline reference.
type rawCarrier struct {
	Name        string `json:"name"`
	LogoURL     string `json:"logoUrl"`
	AlternateID string `json:"alternateId"`
}

// rawSegment carries per-segment detail (flight number, equipment).
type rawSegment struct {
	FlightNumber     string       `json:"flightNumber"`
	Aircraft         *rawAircraft `json:"aircraft"`
	OperatingCarrier *rawCarrier  `json:"operatingCarrier"`
}

// rawAircraft names the equipment flown.
type rawAircraft struct {
	Name string `json:"name"`
}

// rawPricingOption is one purchase channel for an itinerary.
type rawPricingOption struct {
	URL    string     `json:"url"`
	Agents []rawAgent `json:"agents"`
}

// rawAgent is the party selling through a pricing option.
type rawAgent struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	IsCarrier bool   `json:"isCarrier"`
}

// airportEnvelope is the airport lookup payload. The record list appears
// either under data or as the top-level document.
type airportEnvelope struct {
	Status *bool              `json:"status"`
	Data   []rawAirportRecord `json:"data"`
}

// rawAirportRecord is one unvalidated airport suggestion.
type rawAirportRecord struct {
	SkyID    string `json:"skyId"`
	EntityID string `json:"entityId"`
	IATA     string `json:"iata"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`

	Presentation struct {
		Title           string `json:"title"`
		SuggestionTitle string `json:"suggestionTitle"`
		Subtitle        string `json:"subtitle"`
	} `json:"presentation"`

	Navigation struct {
		RelevantFlightParams struct {
			SkyID         string `json:"skyId"`
			EntityID      string `json:"entityId"`
			LocalizedName string `json:"localizedName"`
		} `json:"relevantFlightParams"`
	} `json:"navigation"`
}
