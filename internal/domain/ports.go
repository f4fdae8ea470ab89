package domain

import "context"

// PlacesClient is the only surface allowed to perform provider I/O.
// Records are raw provider payloads; mapping into the domain model
// happens in the app layer.
type PlacesClient interface {
	Autocomplete(ctx context.Context, query string) ([]map[string]any, error)
	Details(ctx context.Context, placeID string, fields []string) (map[string]any, error)
}

// SuggestionSource produces suggestions for a query. There is one
// implementation per service mode, chosen once at construction.
type SuggestionSource interface {
	Suggestions(ctx context.Context, query string) ([]LocationSuggestion, error)
}
