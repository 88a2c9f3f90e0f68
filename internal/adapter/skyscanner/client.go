// Package skyscanner implements the upstream flight data adapter against a
// RapidAPI sky-scrapper-compatible aggregator. It owns transport, failure
// classification, and payload normalization; only canonical domain entities
// and classified errors leave this package.
package skyscanner

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/MikeAdelek/Google-Flight-Clone/internal/domain"
	"github.com/MikeAdelek/Google-Flight-Clone/internal/infrastructure/logger"
)

// ProviderName is the unique identifier for this provider.
const ProviderName = "sky_scrapper"

// Upstream endpoint paths.
const (
	airportSearchPath = "/api/v1/flights/searchAirport"
	flightSearchPath  = "/api/v1/flights/searchFlights"
)

// RapidAPI authentication headers.
const (
	headerAPIKey  = "X-RapidAPI-Key"
	headerAPIHost = "X-RapidAPI-Host"
)

// Config holds the upstream client settings.
type Config struct {
	// BaseURL is the scheme+host of the aggregator API.
	BaseURL string

	// APIKey and APIHost form the RapidAPI credential pair.
	APIKey  string
	APIHost string

	// RequestsPerSecond and Burst bound the client-side request rate.
	RequestsPerSecond float64
	Burst             int
}

// httpDoer is the slice of http.Client the adapter needs. Substituting it
// lets tests run the full client without a network.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the upstream adapter. It implements domain.FlightProvider.
type Client struct {
	cfg     Config
	http    httpDoer
	limiter *rate.Limiter
	log     *logger.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPDoer replaces the underlying HTTP client. Used by tests.
func WithHTTPDoer(d httpDoer) Option {
	return func(c *Client) {
		c.http = d
	}
}

// WithLogger replaces the default Nop logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		c.log = l.WithComponent("skyscanner")
	}
}

// NewClient creates a Client with the given configuration.
func NewClient(cfg Config, httpClient *http.Client, opts ...Option) *Client {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5
	}
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}

	c := &Client{
		cfg:     cfg,
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		log:     logger.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Name implements domain.FlightProvider.
func (c *Client) Name() string {
	return ProviderName
}

// SearchAirports implements domain.FlightProvider. Records that fail to
// normalize are dropped silently; a batch of N raw records yields at most N
// airports, never an error for individual bad entries.
func (c *Client) SearchAirports(ctx context.Context, query string) ([]domain.Airport, error) {
	values := url.Values{}
	values.Set("query", query)

	body, err := c.get(ctx, airportSearchPath, values)
	if err != nil {
		return nil, err
	}

	airports, dropped := normalizeAirportPayload(body)
	c.log.Debug().
		Str("query", query).
		Int("returned", len(airports)).
		Int("dropped", dropped).
		Msg("Airport lookup normalized")

	return airports, nil
}

// SearchFlights implements domain.FlightProvider. The returned result is
// always well-formed; malformed payload entries are dropped at the smallest
// granularity rather than failing the search.
func (c *Client) SearchFlights(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
	body, err := c.get(ctx, flightSearchPath, flightQuery(params))
	if err != nil {
		return nil, err
	}

	result, cerr := normalizeSearchPayload(body)
	if cerr != nil {
		return nil, cerr
	}

	c.log.Debug().
		Str("origin", params.OriginSkyID).
		Str("destination", params.DestinationSkyID).
		Str("status", string(result.Status)).
		Int("itineraries", len(result.Itineraries)).
		Msg("Flight search normalized")

	return result, nil
}

// get issues one GET with path+query against the aggregator and returns the
// response body, or a classified error. It never returns a raw transport
// error.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, domain.NewErrorWithMessage(domain.KindNetworkError,
			domain.MessageFor(domain.KindNetworkError, ""))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, classifyRequestFailure(err)
	}
	req.URL.RawQuery = query.Encode()
	req.Header.Set(headerAPIKey, c.cfg.APIKey)
	req.Header.Set(headerAPIHost, c.cfg.APIHost)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransportFailure(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportFailure(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		cerr := classifyStatus(resp.StatusCode, body)
		c.log.Warn().
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("kind", string(cerr.Kind)).
			Msg("Upstream request failed")
		return nil, cerr
	}

	return body, nil
}

// flightQuery maps SearchParams onto the aggregator's query string.
func flightQuery(p domain.SearchParams) url.Values {
	values := url.Values{}
	values.Set("originSkyId", p.OriginSkyID)
	values.Set("destinationSkyId", p.DestinationSkyID)
	values.Set("date", p.Date)
	values.Set("cabinClass", p.CabinClass)
	values.Set("adults", strconv.Itoa(p.Adults))
	values.Set("sortBy", p.SortBy)
	values.Set("currency", p.Currency)
	values.Set("market", p.Market)
	values.Set("countryCode", p.CountryCode)

	if p.OriginEntityID != "" {
		values.Set("originEntityId", p.OriginEntityID)
	}
	if p.DestinationEntityID != "" {
		values.Set("destinationEntityId", p.DestinationEntityID)
	}
	if p.ReturnDate != "" {
		values.Set("returnDate", p.ReturnDate)
	}
	if p.Children > 0 {
		values.Set("childrens", strconv.Itoa(p.Children))
	}
	if p.Infants > 0 {
		values.Set("infants", strconv.Itoa(p.Infants))
	}

	return values
}

// Ensure Client implements the provider port at compile time.
var _ domain.FlightProvider = (*Client)(nil)
