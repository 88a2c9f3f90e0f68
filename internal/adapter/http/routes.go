package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the flight search facade routes.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	// Health check endpoint (no version prefix, for load balancers)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")

	api.GET("/flights/search", h.SearchFlights)
	api.GET("/airports/search", h.SearchAirports)
	api.GET("/destinations/popular", h.PopularDestinations)
}
