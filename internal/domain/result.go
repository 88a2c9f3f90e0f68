package domain

// SearchStatus reflects the provider-reported state of a search.
type SearchStatus string

const (
	// StatusComplete means the provider finished gathering results.
	StatusComplete SearchStatus = "complete"

	// StatusIncomplete means the provider is still gathering results
	// server-side. Not a failure; the search may be re-polled.
	StatusIncomplete SearchStatus = "incomplete"

	// StatusFailure means the provider reported an explicit failure flag.
	StatusFailure SearchStatus = "failure"
)

// SearchContext carries provider-side metadata about one search execution.
type SearchContext struct {
	// TotalResults is the number of itineraries that survived structural
	// validation, counted before the renderability filter.
	TotalResults int `json:"totalResults"`

	// SearchID is the provider-assigned identifier for this search, when
	// one was supplied.
	SearchID string `json:"searchId,omitempty"`
}

// FilterStats summarizes a normalized flight set for filter-UI consumption.
// Recomputed on every search; set ordering is first-occurrence insertion
// order with no further sorting guaranteed.
type FilterStats struct {
	// DurationRange is [min, max] total duration over renderable flights.
	DurationRange [2]int `json:"durationRange"`

	// PriceRange is [min, max] price over renderable flights.
	PriceRange [2]float64 `json:"priceRange"`

	// Airlines is the deduplicated set of leg airline names, excluding the
	// "Unknown" placeholder and empty strings.
	Airlines []string `json:"airlines"`

	// StopCounts is the deduplicated set of per-flight stop counts.
	StopCounts []int `json:"stopCounts"`
}

// EmptyFilterStats returns the zero-range/empty-set defaults.
func EmptyFilterStats() FilterStats {
	return FilterStats{
		Airlines:   []string{},
		StopCounts: []int{},
	}
}

// SearchResult is the single uniform success shape of a flight search.
// It is always produced, even for empty searches — never nil.
type SearchResult struct {
	// Itineraries is the renderable flight list, never nil.
	Itineraries []Itinerary `json:"itineraries"`

	// Status is the provider-reported search state.
	Status SearchStatus `json:"status"`

	// FilterStats summarizes the itinerary set.
	FilterStats FilterStats `json:"filterStats"`

	// Context carries provider-side search metadata.
	Context SearchContext `json:"context"`
}

// NewEmptySearchResult builds a well-formed result with zero itineraries and
// zeroed stats, preserving the provider search id when available.
func NewEmptySearchResult(status SearchStatus, searchID string) *SearchResult {
	return &SearchResult{
		Itineraries: []Itinerary{},
		Status:      status,
		FilterStats: EmptyFilterStats(),
		Context: SearchContext{
			SearchID: searchID,
		},
	}
}
