package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MikeAdelek/Google-Flight-Clone/internal/domain"
	"github.com/MikeAdelek/Google-Flight-Clone/internal/infrastructure/timeutil"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

// fastConfig keeps backoff delays negligible so retry tests stay quick.
var fastConfig = &Config{MaxAttempts: 3, BackoffUnit: 5 * time.Millisecond}

func validParams() domain.SearchParams {
	return domain.SearchParams{
		OriginSkyID:      "JFK",
		DestinationSkyID: "LAX",
		Date:             "2026-09-10",
	}
}

func newSearchUseCase(t *testing.T, ctrl *gomock.Controller) (FlightSearchUseCase, *domain.MockFlightProvider) {
	t.Helper()
	provider := domain.NewMockFlightProvider(ctrl)
	uc := NewFlightSearchUseCase(provider, timeutil.NewMockClock(testNow), nil, fastConfig)
	return uc, provider
}

func completeResult(itineraries ...domain.Itinerary) *domain.SearchResult {
	if itineraries == nil {
		itineraries = []domain.Itinerary{}
	}
	return &domain.SearchResult{
		Itineraries: itineraries,
		Status:      domain.StatusComplete,
		FilterStats: domain.AggregateStats(itineraries),
		Context:     domain.SearchContext{TotalResults: len(itineraries)},
	}
}

func incompleteResult(searchID string) *domain.SearchResult {
	return domain.NewEmptySearchResult(domain.StatusIncomplete, searchID)
}

func testItinerary(id string) domain.Itinerary {
	leg := domain.Leg{
		ID:              id + "-leg",
		Origin:          domain.LegEndpoint{Code: "JFK"},
		Destination:     domain.LegEndpoint{Code: "LAX"},
		Departure:       "2026-09-10T08:00:00",
		Arrival:         "2026-09-10T11:30:00",
		DurationMinutes: 330,
		AirlineName:     "Delta",
		AircraftName:    domain.UnknownValue,
	}
	return domain.NewItinerary(id, []domain.Leg{leg}, 245.5, "USD", "$246", "", domain.AgentInfo{Name: "Delta", IsAirline: true})
}

func TestSearch_ValidationFailuresSkipProvider(t *testing.T) {
	tests := []struct {
		name     string
		params   domain.SearchParams
		wantKind domain.ErrorKind
	}{
		{
			name:     "missing route",
			params:   domain.SearchParams{Date: "2026-09-10"},
			wantKind: domain.KindInvalidParams,
		},
		{
			name: "past date",
			params: domain.SearchParams{
				OriginSkyID: "JFK", DestinationSkyID: "LAX", Date: "2026-08-20",
			},
			wantKind: domain.KindInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc, provider := newSearchUseCase(t, ctrl)
			provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Times(0)

			result, err := uc.Search(context.Background(), tt.params)

			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, tt.wantKind), "got %v", err)
		})
	}
}

func TestSearch_AppliesDefaultsBeforeCallingProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, provider := newSearchUseCase(t, ctrl)

	var seen domain.SearchParams
	provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
			seen = params
			return completeResult(testItinerary("it-1")), nil
		})

	_, err := uc.Search(context.Background(), validParams())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultCabinClass, seen.CabinClass)
	assert.Equal(t, domain.DefaultAdults, seen.Adults)
	assert.Equal(t, domain.DefaultCurrency, seen.Currency)
	assert.Equal(t, domain.DefaultSortBy, seen.SortBy)
}

func TestSearch_FirstAttemptSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, provider := newSearchUseCase(t, ctrl)
	want := completeResult(testItinerary("it-1"))
	provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(want, nil).Times(1)

	result, err := uc.Search(context.Background(), validParams())

	require.NoError(t, err)
	assert.Equal(t, want, result)
}

func TestSearch_RetriesIncompleteWithLinearBackoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := domain.NewMockFlightProvider(ctrl)
	unit := 20 * time.Millisecond
	uc := NewFlightSearchUseCase(provider, timeutil.NewMockClock(testNow), nil,
		&Config{MaxAttempts: 3, BackoffUnit: unit})

	want := completeResult(testItinerary("it-1"))
	gomock.InOrder(
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(incompleteResult("s1"), nil),
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(incompleteResult("s1"), nil),
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(want, nil),
	)

	start := time.Now()
	result, err := uc.Search(context.Background(), validParams())
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, want, result)
	// Delays are 1x then 2x the unit between the three attempts.
	assert.GreaterOrEqual(t, elapsed, 3*unit, "linear backoff should wait 1x+2x the unit")
}

func TestSearch_IncompleteExhaustedSurfacesWithoutFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, provider := newSearchUseCase(t, ctrl)
	provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
		Return(incompleteResult("s1"), nil).Times(3)

	result, err := uc.Search(context.Background(), validParams())

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindSearchIncomplete),
		"exhausted incomplete searches surface directly, got %v", err)
}

func TestSearch_ProviderFailureFlagIsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, provider := newSearchUseCase(t, ctrl)
	provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
		Return(domain.NewEmptySearchResult(domain.StatusFailure, ""), nil).Times(1)

	result, err := uc.Search(context.Background(), validParams())

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNoFlightsFound))
}

func TestSearch_EmptyPrimaryTriesFallbackVariantsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, provider := newSearchUseCase(t, ctrl)
	want := completeResult(testItinerary("it-fallback"))

	gomock.InOrder(
		// Primary: complete but empty, not retried.
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
			Return(completeResult(), nil),
		// First variant: entity-id suffix coercion.
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
				assert.Equal(t, "JFK-sky", params.OriginEntityID)
				assert.Equal(t, "LAX-sky", params.DestinationEntityID)
				return completeResult(), nil
			}),
		// Second variant: code only.
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
				assert.Empty(t, params.OriginEntityID)
				assert.Empty(t, params.DestinationEntityID)
				return completeResult(), nil
			}),
		// Third variant: shifted date. The original date is 9 days out, so
		// it stays unchanged.
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
				assert.Equal(t, "2026-09-10", params.Date)
				return want, nil
			}),
	)

	result, err := uc.Search(context.Background(), validParams())

	require.NoError(t, err)
	assert.Equal(t, want, result)
}

func TestSearch_FallbackShortCircuitsOnFirstHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, provider := newSearchUseCase(t, ctrl)
	want := completeResult(testItinerary("it-1"))

	gomock.InOrder(
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
			Return(completeResult(), nil),
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
			Return(want, nil),
	)

	result, err := uc.Search(context.Background(), validParams())

	require.NoError(t, err)
	assert.Equal(t, want, result)
}

func TestSearch_ShiftedDateVariantMovesNearDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, provider := newSearchUseCase(t, ctrl)

	params := validParams()
	params.Date = testNow.Format(domain.DateLayout) // searching today

	want := completeResult(testItinerary("it-shifted"))
	shifted := testNow.Add(8 * 24 * time.Hour).Format(domain.DateLayout)

	gomock.InOrder(
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(completeResult(), nil),
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(completeResult(), nil),
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(completeResult(), nil),
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.SearchParams) (*domain.SearchResult, error) {
				assert.Equal(t, shifted, p.Date)
				return want, nil
			}),
	)

	result, err := uc.Search(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, want, result)
}

func TestSearch_AllEmptyBecomesNoFlightsFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, provider := newSearchUseCase(t, ctrl)
	// Primary plus three fallback variants, all complete and empty.
	provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
		Return(completeResult(), nil).Times(4)

	result, err := uc.Search(context.Background(), validParams())

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNoFlightsFound))
}

func TestSearch_TransportFailureFallsBackThenSurfacesOriginal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, provider := newSearchUseCase(t, ctrl)
	upstream := domain.NewHTTPError(domain.KindRateLimit, "too many requests", 429)

	// Primary fails with a classified error (not retried), then every
	// fallback variant fails too. The original classification surfaces.
	provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
		Return(nil, upstream).Times(4)

	result, err := uc.Search(context.Background(), validParams())

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindRateLimit),
		"the primary failure classification must survive the fallback phase, got %v", err)
}

func TestSearch_TransportFailureRecoveredByFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, provider := newSearchUseCase(t, ctrl)
	want := completeResult(testItinerary("it-1"))

	gomock.InOrder(
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewError(domain.KindNetworkError)),
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
			Return(want, nil),
	)

	result, err := uc.Search(context.Background(), validParams())

	require.NoError(t, err)
	assert.Equal(t, want, result)
}

func TestSearch_ContextCancellationSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, provider := newSearchUseCase(t, ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ domain.SearchParams) (*domain.SearchResult, error) {
			cancel()
			return nil, ctx.Err()
		})

	result, err := uc.Search(ctx, validParams())

	assert.Nil(t, result)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewFlightSearchUseCase_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := domain.NewMockFlightProvider(ctrl)

	tests := []struct {
		name   string
		config *Config
	}{
		{"nil config", nil},
		{"zero values fall back to defaults", &Config{}},
		{"explicit config", &Config{MaxAttempts: 5, BackoffUnit: time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewFlightSearchUseCase(provider, nil, nil, tt.config)
			assert.NotNil(t, uc)
		})
	}
}
