// Package integration wires the full stack together against a stubbed
// upstream aggregator: HTTP facade, use cases, and the provider adapter all
// run for real; only the network edge is substituted.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	flighthttp "github.com/MikeAdelek/Google-Flight-Clone/internal/adapter/http"
	"github.com/MikeAdelek/Google-Flight-Clone/internal/adapter/skyscanner"
	"github.com/MikeAdelek/Google-Flight-Clone/internal/usecase"
)

// upstreamResponse is one canned reply from the stub aggregator.
type upstreamResponse struct {
	status int
	body   string
}

// stubUpstream plays the role of the sky-scrapper aggregator. Responses are
// queued per path and consumed in order; the last response on a path repeats
// once the queue drains.
type stubUpstream struct {
	mu        sync.Mutex
	responses map[string][]upstreamResponse
	requests  []*http.Request
}

func newStubUpstream() *stubUpstream {
	return &stubUpstream{responses: map[string][]upstreamResponse{}}
}

// enqueue adds a canned response for the given path.
func (s *stubUpstream) enqueue(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[path] = append(s.responses[path], upstreamResponse{status: status, body: body})
}

// requestCount returns how many requests hit the given path.
func (s *stubUpstream) requestCount(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, req := range s.requests {
		if req.URL.Path == path {
			count++
		}
	}
	return count
}

func (s *stubUpstream) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Clone(r.Context()))

		queue := s.responses[r.URL.Path]
		var resp upstreamResponse
		switch {
		case len(queue) == 0:
			resp = upstreamResponse{status: http.StatusNotFound, body: `{"message": "no stub configured"}`}
		case len(queue) == 1:
			resp = queue[0]
		default:
			resp = queue[0]
			s.responses[r.URL.Path] = queue[1:]
		}
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.status)
		_, _ = w.Write([]byte(resp.body))
	}
}

// TestServer runs the full facade over a stub upstream.
type TestServer struct {
	Echo     *echo.Echo
	Upstream *stubUpstream

	upstream *httptest.Server
}

// NewTestServer wires the real adapter, use cases and handler against a stub
// aggregator. Backoff is shortened so retry paths stay fast.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	stub := newStubUpstream()
	server := httptest.NewServer(stub.handler())
	t.Cleanup(server.Close)

	provider := skyscanner.NewClient(skyscanner.Config{
		BaseURL:           server.URL,
		APIKey:            "integration-key",
		APIHost:           "sky-scrapper.example",
		RequestsPerSecond: 1000,
		Burst:             1000,
	}, server.Client())

	flights := usecase.NewFlightSearchUseCase(provider, nil, nil, &usecase.Config{
		MaxAttempts: 3,
		BackoffUnit: 2 * time.Millisecond,
	})
	airports := usecase.NewAirportSearchUseCase(provider, nil)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	flighthttp.RegisterRoutes(e, flighthttp.NewFlightHandler(flights, airports))

	return &TestServer{Echo: e, Upstream: stub, upstream: server}
}

// GET performs a request against the facade and returns the recorder.
func (ts *TestServer) GET(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON unmarshals the response body into out.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

// Upstream endpoint paths mirrored from the adapter.
const (
	airportSearchPath = "/api/v1/flights/searchAirport"
	flightSearchPath  = "/api/v1/flights/searchFlights"
)
