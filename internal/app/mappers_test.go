package app

import "testing"

func TestMapSuggestion(t *testing.T) {
	rec := map[string]any{
		"place_id":    "abc123",
		"description": "Times Square, New York, NY, USA",
		"structured_formatting": map[string]any{
			"main_text":      "Times Square",
			"secondary_text": "New York, NY, USA",
		},
	}
	s, err := mapSuggestion(rec)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if s.PlaceID != "abc123" || s.MainText != "Times Square" {
		t.Fatalf("unexpected suggestion: %+v", s)
	}
	if s.SecondaryText == nil || *s.SecondaryText != "New York, NY, USA" {
		t.Fatalf("unexpected secondary text: %v", s.SecondaryText)
	}
}

func TestMapSuggestion_SecondaryTextAbsent(t *testing.T) {
	rec := map[string]any{
		"place_id":              "abc123",
		"description":           "Somewhere",
		"structured_formatting": map[string]any{"main_text": "Somewhere"},
	}
	s, err := mapSuggestion(rec)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if s.SecondaryText != nil {
		t.Fatalf("secondary text should be absent, got %q", *s.SecondaryText)
	}
}

func TestMapSuggestion_MissingPlaceID(t *testing.T) {
	if _, err := mapSuggestion(map[string]any{"description": "x"}); err == nil {
		t.Fatal("expected error for missing place_id")
	}
}

func TestMapDetails_Full(t *testing.T) {
	rec := map[string]any{
		"formatted_address": "Manhattan, NY 10036, USA",
		"name":              "Times Square",
		"geometry": map[string]any{
			"location": map[string]any{"lat": 40.758, "lng": -73.9855},
		},
		"types":                          []any{"tourist_attraction", "point_of_interest"},
		"vicinity":                       "Manhattan",
		"url":                            "https://maps.google.com/?cid=1",
		"website":                        "https://www.timessquarenyc.org/",
		"formatted_phone_number":         "(212) 555-0123",
		"international_phone_number":     "+1 212-555-0123",
		"rating":                         4.7,
		"user_ratings_total":             180000.0,
		"price_level":                    0.0,
		"wheelchair_accessible_entrance": true,
		"delivery":                       false,
		"dine_in":                        true,
		"opening_hours": map[string]any{
			"open_now":     true,
			"weekday_text": []any{"Monday: Open 24 hours"},
		},
		"editorial_summary": map[string]any{
			"language": "en",
			"overview": "Bustling destination in the heart of the Theater District.",
		},
	}
	d, err := mapDetails(rec)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.Latitude != 40.758 || d.Longitude != -73.9855 {
		t.Fatalf("unexpected coords: %f, %f", d.Latitude, d.Longitude)
	}
	if len(d.Types) != 2 || d.Types[0] != "tourist_attraction" {
		t.Fatalf("unexpected types: %v", d.Types)
	}
	if d.Rating == nil || *d.Rating != 4.7 {
		t.Fatalf("unexpected rating: %v", d.Rating)
	}
	if d.UserRatingsTotal == nil || *d.UserRatingsTotal != 180000 {
		t.Fatalf("unexpected ratings total: %v", d.UserRatingsTotal)
	}
	if d.PriceLevel == nil || *d.PriceLevel != 0 {
		t.Fatalf("price level 0 is valid and must be kept: %v", d.PriceLevel)
	}
	if d.EditorialSummary == nil || *d.EditorialSummary != "Bustling destination in the heart of the Theater District." {
		t.Fatalf("unexpected editorial summary: %v", d.EditorialSummary)
	}
	if d.OpeningHours == nil || d.OpeningHours.OpenNow == nil || !*d.OpeningHours.OpenNow {
		t.Fatalf("unexpected opening hours: %+v", d.OpeningHours)
	}
	if d.WheelchairAccessibleEntrance == nil || !*d.WheelchairAccessibleEntrance {
		t.Fatal("wheelchair flag lost")
	}
	if d.Delivery == nil || *d.Delivery {
		t.Fatal("delivery flag lost")
	}
}

func TestMapDetails_MinimalRecord(t *testing.T) {
	rec := map[string]any{
		"formatted_address": "Nowhere 1",
		"name":              "Nowhere",
		"geometry":          map[string]any{"location": map[string]any{"lat": 1.0, "lng": 2.0}},
	}
	d, err := mapDetails(rec)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.Types == nil || len(d.Types) != 0 {
		t.Fatalf("types must default to empty, got %v", d.Types)
	}
	if d.Rating != nil || d.PriceLevel != nil || d.OpeningHours != nil || d.EditorialSummary != nil {
		t.Fatalf("optional fields must stay absent: %+v", d)
	}
}

func TestMapDetails_MissingGeometry(t *testing.T) {
	rec := map[string]any{"formatted_address": "x", "name": "y"}
	if _, err := mapDetails(rec); err == nil {
		t.Fatal("expected error for missing geometry")
	}
}

func TestMapDetails_PriceLevelOutOfRange(t *testing.T) {
	rec := map[string]any{
		"formatted_address": "x",
		"name":              "y",
		"geometry":          map[string]any{"location": map[string]any{"lat": 1.0, "lng": 2.0}},
		"price_level":       5.0,
	}
	if _, err := mapDetails(rec); err == nil {
		t.Fatal("expected validation error for price_level 5")
	}
}
