package domain

import (
	"fmt"
	"time"
)

// Default values applied to optional search parameters.
const (
	DefaultCabinClass  = "economy"
	DefaultAdults      = 1
	DefaultSortBy      = "price_low"
	DefaultCurrency    = "USD"
	DefaultMarket      = "US"
	DefaultCountryCode = "US"
)

// DateLayout is the wire format for travel dates.
const DateLayout = "2006-01-02"

// entityIDSuffix coerces a plain airport code into the provider's
// entity-id form. Used by the first fallback variant.
const entityIDSuffix = "-sky"

// SearchParams is a caller-supplied flight search query. Values are never
// mutated after submission; fallback variants are fresh copies produced by
// the With* methods.
type SearchParams struct {
	// OriginSkyID is the provider identifier of the departure airport.
	OriginSkyID string `json:"originSkyId"`

	// DestinationSkyID is the provider identifier of the arrival airport.
	DestinationSkyID string `json:"destinationSkyId"`

	// OriginEntityID optionally refines the origin to a provider entity.
	OriginEntityID string `json:"originEntityId,omitempty"`

	// DestinationEntityID optionally refines the destination.
	DestinationEntityID string `json:"destinationEntityId,omitempty"`

	// Date is the travel date in YYYY-MM-DD format.
	Date string `json:"date"`

	// ReturnDate is the optional return date in YYYY-MM-DD format.
	ReturnDate string `json:"returnDate,omitempty"`

	// CabinClass is the travel class (default: economy).
	CabinClass string `json:"cabinClass,omitempty"`

	// Adults is the adult passenger count (default: 1).
	Adults int `json:"adults,omitempty"`

	// Children is the child passenger count.
	Children int `json:"children,omitempty"`

	// Infants is the infant passenger count.
	Infants int `json:"infants,omitempty"`

	// SortBy is the provider-side sort preference (default: price_low).
	SortBy string `json:"sortBy,omitempty"`

	// Currency is the pricing currency (default: USD).
	Currency string `json:"currency,omitempty"`

	// Market is the provider market (default: US).
	Market string `json:"market,omitempty"`

	// CountryCode is the provider country code (default: US).
	CountryCode string `json:"countryCode,omitempty"`
}

// SetDefaults fills empty optional fields with the documented defaults.
func (p *SearchParams) SetDefaults() {
	if p.CabinClass == "" {
		p.CabinClass = DefaultCabinClass
	}
	if p.Adults == 0 {
		p.Adults = DefaultAdults
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	if p.Market == "" {
		p.Market = DefaultMarket
	}
	if p.CountryCode == "" {
		p.CountryCode = DefaultCountryCode
	}
}

// Validate checks the parameters against the current time. Origin,
// destination and date are required (INVALID_PARAMS); the date must not be
// before today's calendar day, time of day ignored (INVALID_DATE).
func (p *SearchParams) Validate(now time.Time) error {
	if p.OriginSkyID == "" || p.DestinationSkyID == "" || p.Date == "" {
		return NewError(KindInvalidParams)
	}

	date, err := time.Parse(DateLayout, p.Date)
	if err != nil {
		return NewErrorWithMessage(KindInvalidDate,
			fmt.Sprintf("The travel date %q is not a valid YYYY-MM-DD date.", p.Date))
	}

	today := truncateToDay(now)
	if date.Before(today) {
		return NewError(KindInvalidDate)
	}

	return nil
}

// WithEntityIDSuffix returns a copy whose origin/destination identifiers are
// coerced into entity-id form by appending the provider suffix.
func (p SearchParams) WithEntityIDSuffix() SearchParams {
	p.OriginEntityID = p.OriginSkyID + entityIDSuffix
	p.DestinationEntityID = p.DestinationSkyID + entityIDSuffix
	return p
}

// WithoutEntityIDs returns a copy stripped of any entity-id refinement,
// searching by airport code alone.
func (p SearchParams) WithoutEntityIDs() SearchParams {
	p.OriginEntityID = ""
	p.DestinationEntityID = ""
	return p
}

// WithShiftedDate returns a copy whose travel date is pushed to 8 days from
// now when the original date is less than one day away. Dates further out
// are left unchanged.
func (p SearchParams) WithShiftedDate(now time.Time) SearchParams {
	date, err := time.Parse(DateLayout, p.Date)
	if err != nil {
		return p
	}

	if date.Before(now.Add(24 * time.Hour)) {
		p.Date = now.Add(8 * 24 * time.Hour).Format(DateLayout)
	}
	return p
}

// truncateToDay maps t to midnight UTC of its calendar day, so that
// comparisons against parsed YYYY-MM-DD dates ignore time of day and zone.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
