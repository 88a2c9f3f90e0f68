// Package main is the entry point for the flight search client service.
//
//	@title			Google Flight Clone API
//	@version		1.0.0
//	@description	Flight and airport search over a RapidAPI-compatible aggregator, with payload normalization, retry and fallback handling.
//
//	@host			localhost:8080
//	@BasePath		/api/v1
//
//	@schemes		http
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/MikeAdelek/Google-Flight-Clone/docs"

	flighthttp "github.com/MikeAdelek/Google-Flight-Clone/internal/adapter/http"
	"github.com/MikeAdelek/Google-Flight-Clone/internal/adapter/http/middleware"
	"github.com/MikeAdelek/Google-Flight-Clone/internal/adapter/skyscanner"
	"github.com/MikeAdelek/Google-Flight-Clone/internal/config"
	"github.com/MikeAdelek/Google-Flight-Clone/internal/infrastructure/logger"
	"github.com/MikeAdelek/Google-Flight-Clone/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-clone",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("upstream", cfg.RapidAPI.Host).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	// Upstream adapter: one client owns transport, classification and
	// normalization.
	provider := skyscanner.NewClient(
		skyscanner.Config{
			BaseURL:           cfg.RapidAPI.BaseURL,
			APIKey:            cfg.RapidAPI.Key,
			APIHost:           cfg.RapidAPI.Host,
			RequestsPerSecond: cfg.RapidAPI.RequestsPerSecond,
			Burst:             cfg.RapidAPI.Burst,
		},
		&http.Client{Timeout: cfg.RapidAPI.Timeout},
		skyscanner.WithLogger(log),
	)

	flightSearch := usecase.NewFlightSearchUseCase(provider, nil, log, &usecase.Config{
		MaxAttempts: cfg.Search.MaxAttempts,
		BackoffUnit: cfg.Search.BackoffUnit,
	})
	airportSearch := usecase.NewAirportSearchUseCase(provider, log)

	handler := flighthttp.NewFlightHandler(flightSearch, airportSearch)
	flighthttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// gracefulShutdown blocks until an interrupt signal arrives, then drains
// in-flight requests before exiting.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
