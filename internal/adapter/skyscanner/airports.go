package skyscanner

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/MikeAdelek/Google-Flight-Clone/internal/domain"
)

// iataCodePattern matches valid IATA airport codes: exactly three uppercase
// letters.
var iataCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// normalizeAirportPayload decodes an airport lookup body and normalizes each
// record, dropping the malformed ones silently. Returns the airports and the
// number of dropped records (for logging only). An undecodable body simply
// yields zero airports; a bad lookup response is not worth failing over.
func normalizeAirportPayload(body []byte) ([]domain.Airport, int) {
	var envelope airportEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		// Some revisions return the record list as the top-level document.
		var records []rawAirportRecord
		if err := json.Unmarshal(body, &records); err != nil {
			return []domain.Airport{}, 0
		}
		envelope.Data = records
	}

	airports := make([]domain.Airport, 0, len(envelope.Data))
	dropped := 0
	for _, record := range envelope.Data {
		airport, ok := normalizeAirport(record)
		if !ok {
			dropped++
			continue
		}
		airports = append(airports, airport)
	}

	return airports, dropped
}

// normalizeAirport converts one raw record into a canonical Airport.
// Records without a valid IATA code or a display name are rejected.
func normalizeAirport(record rawAirportRecord) (domain.Airport, bool) {
	code := extractIATACode(record)
	if code == "" {
		return domain.Airport{}, false
	}

	name := extractDisplayName(record)
	if name == "" {
		return domain.Airport{}, false
	}

	city, country := extractLocation(record)

	entityID := record.EntityID
	if entityID == "" {
		entityID = record.Navigation.RelevantFlightParams.EntityID
	}

	skyID := record.SkyID
	if skyID == "" {
		skyID = record.Navigation.RelevantFlightParams.SkyID
	}

	return domain.Airport{
		IATACode:    code,
		DisplayName: name,
		City:        city,
		Country:     country,
		SkyID:       skyID,
		EntityID:    entityID,
	}, true
}

// extractIATACode picks the code candidate in priority order: the provider
// skyId, the nested navigation parameter, then generic iata/code fields.
// Rejects anything that is not exactly three uppercase letters after
// trimming and upper-casing.
func extractIATACode(record rawAirportRecord) string {
	candidates := []string{
		record.SkyID,
		record.Navigation.RelevantFlightParams.SkyID,
		record.IATA,
		record.Code,
	}

	for _, candidate := range candidates {
		code := strings.ToUpper(strings.TrimSpace(candidate))
		if code == "" {
			continue
		}
		if iataCodePattern.MatchString(code) {
			return code
		}
		// A present-but-malformed candidate invalidates the record; a
		// lower-priority field must not mask it.
		return ""
	}

	return ""
}

// extractDisplayName picks the name in priority order: presentation title,
// localized name, generic name field. A leading ", " artifact left by the
// provider's string concatenation is stripped.
func extractDisplayName(record rawAirportRecord) string {
	candidates := []string{
		record.Presentation.Title,
		record.Navigation.RelevantFlightParams.LocalizedName,
		record.Name,
	}

	for _, candidate := range candidates {
		name := strings.TrimSpace(candidate)
		if name == "" {
			continue
		}
		name = strings.TrimSpace(strings.TrimPrefix(name, ", "))
		return name
	}

	return ""
}

// extractLocation derives city and country. Explicit record fields win; a
// comma-separated subtitle contributes its first two segments to whichever
// of city/country is still empty; a plain subtitle becomes the city only
// when both are still empty.
func extractLocation(record rawAirportRecord) (city, country string) {
	city = strings.TrimSpace(record.City)
	country = strings.TrimSpace(record.Country)

	subtitle := strings.TrimSpace(record.Presentation.Subtitle)
	if subtitle == "" {
		return city, country
	}

	if strings.Contains(subtitle, ",") {
		parts := strings.SplitN(subtitle, ",", 3)
		if city == "" {
			city = strings.TrimSpace(parts[0])
		}
		if country == "" && len(parts) > 1 {
			country = strings.TrimSpace(parts[1])
		}
		return city, country
	}

	if city == "" && country == "" {
		city = subtitle
	}
	return city, country
}
