package app

import (
	"context"
	"errors"

	"geosuggest/internal/adapters/googleplaces"
	"geosuggest/internal/domain"
	"geosuggest/internal/shared"
)

// LocationService answers free-text location queries with autocomplete
// suggestions, enriched with place details where available. The mode is
// fixed at construction; there is no runtime switching.
type LocationService struct {
	mode   domain.ServiceMode
	source domain.SuggestionSource
}

// NewLocationService wires a service around an injected provider client.
// A live service without a client is a configuration error, not a panic
// waiting to happen later.
func NewLocationService(mode domain.ServiceMode, client domain.PlacesClient, detailWorkers int) (*LocationService, error) {
	if mode == domain.ModeLive {
		if client == nil {
			return nil, domain.NewConfigError(errors.New("places client is required in live mode"))
		}
		return &LocationService{mode: mode, source: newLiveSource(client, detailWorkers)}, nil
	}
	return &LocationService{mode: domain.ModeMock, source: mockSource{}}, nil
}

// NewLocationServiceFromConfig derives the mode from the deployment
// environment and, when live, acquires the provider client itself.
func NewLocationServiceFromConfig(cfg shared.Config) (*LocationService, error) {
	mode := domain.ModeForEnv(cfg.AppEnv)
	if mode != domain.ModeLive {
		return NewLocationService(mode, nil, 0)
	}
	client, err := googleplaces.New(cfg.PlacesBaseURL, cfg.PlacesAPIKey)
	if err != nil {
		return nil, domain.NewConfigError(err)
	}
	return NewLocationService(mode, client, cfg.DetailWorkers)
}

func (s *LocationService) Mode() domain.ServiceMode { return s.mode }

// GetLocationSuggestions returns suggestions in provider order. Only an
// autocomplete failure is fatal; per-candidate detail failures surface as
// suggestions without details.
func (s *LocationService) GetLocationSuggestions(ctx context.Context, query string) ([]domain.LocationSuggestion, error) {
	return s.source.Suggestions(ctx, query)
}
