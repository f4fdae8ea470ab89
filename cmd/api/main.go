package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "geosuggest/internal/adapters/http_server"
	"geosuggest/internal/adapters/observability"
	"geosuggest/internal/app"
	"geosuggest/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// core service; fails here, not mid-request, when live mode lacks a key
	locations, err := app.NewLocationServiceFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("location service init failed")
	}
	log.Info().Str("mode", string(locations.Mode())).Msg("location service ready")

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Locations: locations})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
