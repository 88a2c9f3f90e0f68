package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/MikeAdelek/Google-Flight-Clone/internal/adapter/http/response"
	"github.com/MikeAdelek/Google-Flight-Clone/internal/domain"
	"github.com/MikeAdelek/Google-Flight-Clone/internal/usecase"
)

// FlightHandler handles HTTP requests for the flight search facade.
type FlightHandler struct {
	flights  usecase.FlightSearchUseCase
	airports usecase.AirportSearchUseCase
}

// NewFlightHandler creates a FlightHandler over the given use cases.
func NewFlightHandler(flights usecase.FlightSearchUseCase, airports usecase.AirportSearchUseCase) *FlightHandler {
	return &FlightHandler{
		flights:  flights,
		airports: airports,
	}
}

// SearchFlights handles GET /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search flights for a route and date, with retry and fallback handling
// @Tags flights
// @Produce json
// @Param origin query string true "Origin airport identifier"
// @Param destination query string true "Destination airport identifier"
// @Param date query string true "Travel date (YYYY-MM-DD)"
// @Param returnDate query string false "Return date (YYYY-MM-DD)"
// @Param cabinClass query string false "Cabin class" default(economy)
// @Param adults query int false "Adult passengers" default(1)
// @Success 200 {object} domain.SearchResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No flights found"
// @Failure 502 {object} response.ErrorDetail "Upstream failure"
// @Router /api/v1/flights/search [get]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.flights.Search(c.Request().Context(), req.ToSearchParams())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, result)
}

// SearchAirports handles GET /api/v1/airports/search
//
// @Summary Search airports
// @Description Look up airports by free-text query (minimum 2 characters)
// @Tags airports
// @Produce json
// @Param query query string true "Search text"
// @Success 200 {array} domain.Airport
// @Failure 400 {object} response.ErrorDetail "Query too short"
// @Router /api/v1/airports/search [get]
func (h *FlightHandler) SearchAirports(c echo.Context) error {
	var req SearchAirportsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	airports, err := h.airports.SearchAirports(c.Request().Context(), req.Query)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, airports)
}

// PopularDestinations handles GET /api/v1/destinations/popular
//
// @Summary Popular destinations
// @Description Static list of well-known airports for UI suggestions
// @Tags airports
// @Produce json
// @Success 200 {array} domain.Airport
// @Router /api/v1/destinations/popular [get]
func (h *FlightHandler) PopularDestinations(c echo.Context) error {
	return response.OK(c, h.airports.PopularDestinations())
}

// Health handles GET /health.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles structural validation errors with a 400.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps classified errors onto HTTP responses. Context errors
// take precedence since they describe the request, not the search.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if cerr, ok := domain.AsClassified(err); ok {
		return response.FromClassified(c, cerr)
	}

	return response.InternalServerError(c)
}
