// Package usecase contains the business logic of the flight search client:
// the search orchestrator with its retry and fallback strategies, and the
// airport lookup.
package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/MikeAdelek/Google-Flight-Clone/internal/domain"
	"github.com/MikeAdelek/Google-Flight-Clone/internal/infrastructure/logger"
	"github.com/MikeAdelek/Google-Flight-Clone/internal/infrastructure/retry"
	"github.com/MikeAdelek/Google-Flight-Clone/internal/infrastructure/timeutil"
)

// Default orchestrator tuning.
const (
	DefaultMaxAttempts = 3
	DefaultBackoffUnit = 2 * time.Second
)

// errEmptyResult marks a completed search that produced zero itineraries.
// Internal control-flow only: it routes the orchestrator into the fallback
// phase and never escapes this package.
var errEmptyResult = errors.New("search returned no itineraries")

// FlightSearchUseCase defines the flight search contract exposed to the UI
// boundary.
type FlightSearchUseCase interface {
	// Search runs the end-to-end flight search: validation, the primary
	// attempt loop, and the fallback parameter variants. It fails with a
	// classified error only when no strategy produced a usable result.
	Search(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error)
}

// flightSearchUseCase drives the search state machine against one provider.
type flightSearchUseCase struct {
	provider    domain.FlightProvider
	clock       timeutil.Clock
	log         *logger.Logger
	maxAttempts int
	backoffUnit time.Duration
}

// Config contains configuration options for the orchestrator.
type Config struct {
	// MaxAttempts bounds the polling of an incomplete search.
	MaxAttempts int

	// BackoffUnit is the base delay between attempts; the delay before
	// attempt n+1 is n times this value.
	BackoffUnit time.Duration
}

// DefaultConfig returns the default orchestrator configuration.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: DefaultMaxAttempts,
		BackoffUnit: DefaultBackoffUnit,
	}
}

// NewFlightSearchUseCase creates the orchestrator. A nil config selects the
// defaults; a nil clock selects the system clock.
func NewFlightSearchUseCase(provider domain.FlightProvider, clock timeutil.Clock, log *logger.Logger, config *Config) FlightSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.MaxAttempts > 0 {
			cfg.MaxAttempts = config.MaxAttempts
		}
		if config.BackoffUnit > 0 {
			cfg.BackoffUnit = config.BackoffUnit
		}
	}

	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &flightSearchUseCase{
		provider:    provider,
		clock:       clock,
		log:         log.WithComponent("search_orchestrator"),
		maxAttempts: cfg.MaxAttempts,
		backoffUnit: cfg.BackoffUnit,
	}
}

// Search implements FlightSearchUseCase.
func (uc *flightSearchUseCase) Search(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
	params.SetDefaults()
	if err := params.Validate(uc.clock.Now()); err != nil {
		return nil, err
	}

	result, err := uc.primarySearch(ctx, params)
	if err == nil {
		return result, nil
	}

	// Context cancellation is the caller's doing, not a search outcome.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}

	// An exhausted incomplete search is surfaced directly so the caller
	// can suggest different dates; it never goes through the fallback path.
	if domain.IsKind(err, domain.KindSearchIncomplete) {
		return nil, err
	}

	// A provider-reported failure flag is terminal.
	if domain.IsKind(err, domain.KindNoFlightsFound) {
		return nil, err
	}

	uc.log.Info().
		Str("origin", params.OriginSkyID).
		Str("destination", params.DestinationSkyID).
		Str("reason", err.Error()).
		Msg("Primary search unusable, trying fallback variants")

	if result, ok := uc.fallbackSearch(ctx, params); ok {
		return result, nil
	}

	// Fallback could not recover. Empty primaries surface as
	// NO_FLIGHTS_FOUND; transport failures surface the original
	// classification, or SEARCH_ERROR when there is none.
	if errors.Is(err, errEmptyResult) {
		return nil, domain.NewError(domain.KindNoFlightsFound)
	}
	return nil, domain.EnsureClassified(err)
}

// primarySearch runs the bounded attempt loop. Only the "search context
// incomplete with zero itineraries" outcome is retried, after a linear
// backoff delay that suspends this call chain alone.
func (uc *flightSearchUseCase) primarySearch(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
	attempt := 0

	cfg := retry.Config{
		MaxAttempts:  uc.maxAttempts,
		InitialDelay: uc.backoffUnit,
		Strategy:     retry.StrategyLinear,
		RetryIf:      retry.SkipPermanent,
	}

	result, err := retry.DoWithResult(ctx, func() (*domain.SearchResult, error) {
		attempt++

		res, searchErr := uc.provider.SearchFlights(ctx, params)
		if searchErr != nil {
			// Transport/HTTP failures are not retried here; the
			// fallback phase is their recovery path.
			return nil, retry.NewPermanent(searchErr)
		}

		switch {
		case res.Status == domain.StatusFailure:
			return nil, retry.NewPermanent(domain.NewError(domain.KindNoFlightsFound))

		case len(res.Itineraries) > 0:
			return res, nil

		case res.Status == domain.StatusIncomplete:
			uc.log.Debug().
				Int("attempt", attempt).
				Str("search_id", res.Context.SearchID).
				Msg("Search still running upstream, will retry")
			return nil, domain.NewError(domain.KindSearchIncomplete)

		default:
			return nil, retry.NewPermanent(errEmptyResult)
		}
	}, cfg)

	if err != nil {
		return nil, retry.Unwrapped(err)
	}
	return result, nil
}

// fallbackVariant pairs an alternative parameter set with a name for logs.
type fallbackVariant struct {
	name   string
	params domain.SearchParams
}

// fallbackSearch tries the alternative parameter variants in fixed order,
// each once, short-circuiting on the first that yields at least one
// itinerary. Variant errors are consumed; the caller decides what surfaces.
func (uc *flightSearchUseCase) fallbackSearch(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, bool) {
	variants := []fallbackVariant{
		{"entity_id_suffix", params.WithEntityIDSuffix()},
		{"code_only", params.WithoutEntityIDs()},
		{"shifted_date", params.WithShiftedDate(uc.clock.Now())},
	}

	for _, variant := range variants {
		if ctx.Err() != nil {
			return nil, false
		}

		result, err := uc.provider.SearchFlights(ctx, variant.params)
		if err != nil {
			uc.log.Warn().
				Str("variant", variant.name).
				Str("reason", err.Error()).
				Msg("Fallback variant failed")
			continue
		}

		if len(result.Itineraries) > 0 {
			uc.log.Info().
				Str("variant", variant.name).
				Int("itineraries", len(result.Itineraries)).
				Msg("Fallback variant recovered results")
			return result, true
		}
	}

	return nil, false
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
