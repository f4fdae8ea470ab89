package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"geosuggest/internal/adapters/observability"
	"geosuggest/internal/domain"
)

// detailFields is the fixed set requested for every detail lookup.
// "type" and "geometry" are the provider's field names, not ours.
var detailFields = []string{
	"formatted_address",
	"geometry",
	"name",
	"type",
	"vicinity",
	"url",
	"website",
	"formatted_phone_number",
	"international_phone_number",
	"rating",
	"user_ratings_total",
	"price_level",
	"opening_hours",
	"wheelchair_accessible_entrance",
	"delivery",
	"dine_in",
	"editorial_summary",
}

// liveSource calls the upstream provider. The autocomplete call is the
// primary contract: if it fails the whole query fails. Detail lookups are
// an enhancement and fail per candidate only.
type liveSource struct {
	client  domain.PlacesClient
	workers int64
}

func newLiveSource(client domain.PlacesClient, workers int) *liveSource {
	if workers <= 0 {
		workers = 4
	}
	return &liveSource{client: client, workers: int64(workers)}
}

func (s *liveSource) Suggestions(ctx context.Context, query string) ([]domain.LocationSuggestion, error) {
	recs, err := s.client.Autocomplete(ctx, query)
	if err != nil {
		return nil, domain.NewAutocompleteError(err)
	}

	suggestions := make([]domain.LocationSuggestion, 0, len(recs))
	for _, rec := range recs {
		sug, err := mapSuggestion(rec)
		if err != nil {
			return nil, domain.NewAutocompleteError(fmt.Errorf("malformed prediction: %w", err))
		}
		suggestions = append(suggestions, sug)
	}

	// Enrich each candidate independently. Goroutine i writes only index i,
	// so provider order survives and one failure cannot touch its siblings.
	sem := semaphore.NewWeighted(s.workers)
	var wg sync.WaitGroup
	for i := range suggestions {
		if err := sem.Acquire(ctx, 1); err != nil {
			break // context canceled: return what we have, un-enriched
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer sem.Release(1)
			placeID := suggestions[i].PlaceID
			d, err := s.lookupDetails(ctx, placeID)
			if err != nil {
				observability.ObserveEnrichment("failed")
				log.Warn().Str("place_id", placeID).Err(err).Msg("detail enrichment failed")
				return
			}
			observability.ObserveEnrichment("ok")
			suggestions[i].Details = d
		}(i)
	}
	wg.Wait()

	return suggestions, nil
}

func (s *liveSource) lookupDetails(ctx context.Context, placeID string) (*domain.LocationDetails, error) {
	rec, err := s.client.Details(ctx, placeID, detailFields)
	if err != nil {
		return nil, err
	}
	d, err := mapDetails(rec)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
