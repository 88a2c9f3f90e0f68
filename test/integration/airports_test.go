package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeAdelek/Google-Flight-Clone/internal/domain"
)

const airportPayload = `{
	"status": true,
	"data": [
		{
			"skyId": "JFK",
			"entityId": "95565058",
			"presentation": {"title": "New York John F. Kennedy", "subtitle": "New York, United States"},
			"navigation": {"relevantFlightParams": {"skyId": "JFK", "entityId": "95565058"}}
		},
		{
			"skyId": "NYCA",
			"presentation": {"title": "New York Area"}
		}
	]
}`

func TestAirportSearch_EndToEnd(t *testing.T) {
	ts := NewTestServer(t)
	ts.Upstream.enqueue(airportSearchPath, http.StatusOK, airportPayload)

	rec := ts.GET("/api/v1/airports/search?query=new+york")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var airports []domain.Airport
	DecodeJSON(t, rec, &airports)

	require.Len(t, airports, 1, "the metro-area record is dropped")
	assert.Equal(t, "JFK", airports[0].IATACode)
	assert.Equal(t, "New York John F. Kennedy", airports[0].DisplayName)
	assert.Equal(t, "New York", airports[0].City)
	assert.Equal(t, "United States", airports[0].Country)
	assert.Equal(t, "95565058", airports[0].EntityID)
}

func TestAirportSearch_ShortQueryNeverHitsUpstream(t *testing.T) {
	ts := NewTestServer(t)

	rec := ts.GET("/api/v1/airports/search?query=j")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, ts.Upstream.requestCount(airportSearchPath))

	var detail struct {
		Code string `json:"code"`
	}
	DecodeJSON(t, rec, &detail)
	assert.Equal(t, "INVALID_QUERY", detail.Code)
}

func TestAirportSearch_EmptyResultIsEmptyArray(t *testing.T) {
	ts := NewTestServer(t)
	ts.Upstream.enqueue(airportSearchPath, http.StatusOK, `{"status": true, "data": []}`)

	rec := ts.GET("/api/v1/airports/search?query=zzzz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAirportSearch_RateLimited(t *testing.T) {
	ts := NewTestServer(t)
	ts.Upstream.enqueue(airportSearchPath, http.StatusTooManyRequests, `{}`)

	rec := ts.GET("/api/v1/airports/search?query=tokyo")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestPopularDestinations_EndToEnd(t *testing.T) {
	ts := NewTestServer(t)

	rec := ts.GET("/api/v1/destinations/popular")

	require.Equal(t, http.StatusOK, rec.Code)

	var airports []domain.Airport
	DecodeJSON(t, rec, &airports)

	require.NotEmpty(t, airports)
	assert.Zero(t, ts.Upstream.requestCount(airportSearchPath),
		"popular destinations are served without an upstream call")
}

func TestHealth(t *testing.T) {
	ts := NewTestServer(t)

	rec := ts.GET("/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
