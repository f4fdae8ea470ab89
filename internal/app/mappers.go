package app

import (
	"fmt"
	"strconv"
	"strings"

	"geosuggest/internal/domain"
)

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func ptrStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// lookupFloat: number at path (float64/int/string like "4,5").
func lookupFloat(m map[string]any, path string) *float64 {
	switch v := lookupAny(m, path).(type) {
	case float64:
		f := v
		return &f
	case int:
		f := float64(v)
		return &f
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
	}
	return nil
}

// lookupInt: integer at path (JSON numbers decode as float64).
func lookupInt(m map[string]any, path string) *int {
	if f := lookupFloat(m, path); f != nil {
		n := int(*f)
		return &n
	}
	return nil
}

func lookupBool(m map[string]any, path string) *bool {
	if v, ok := lookupAny(m, path).(bool); ok {
		b := v
		return &b
	}
	return nil
}

// lookupStrSlice: []string at path; never nil.
func lookupStrSlice(m map[string]any, path string) []string {
	out := []string{}
	if arr, ok := lookupAny(m, path).([]any); ok {
		for _, v := range arr {
			if s, ok := v.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

/********** record mapping **********/

// mapSuggestion builds the base suggestion from one autocomplete prediction.
// Predictions without a place_id are malformed provider output.
func mapSuggestion(rec map[string]any) (domain.LocationSuggestion, error) {
	placeID := lookupStr(rec, "place_id")
	if placeID == "" {
		return domain.LocationSuggestion{}, fmt.Errorf("prediction missing place_id")
	}
	return domain.LocationSuggestion{
		PlaceID:       placeID,
		Description:   lookupStr(rec, "description"),
		MainText:      lookupStr(rec, "structured_formatting.main_text"),
		SecondaryText: ptrStr(lookupStr(rec, "structured_formatting.secondary_text")),
	}, nil
}

// mapDetails normalizes one place detail record. Coordinates come from the
// nested geometry location; a record without them is unusable.
func mapDetails(rec map[string]any) (domain.LocationDetails, error) {
	lat := lookupFloat(rec, "geometry.location.lat")
	lng := lookupFloat(rec, "geometry.location.lng")
	if lat == nil || lng == nil {
		return domain.LocationDetails{}, fmt.Errorf("detail record missing geometry location")
	}

	d := domain.LocationDetails{
		Latitude:         *lat,
		Longitude:        *lng,
		FormattedAddress: lookupStr(rec, "formatted_address"),
		Name:             lookupStr(rec, "name"),
		Types:            lookupStrSlice(rec, "types"),

		Vicinity:                     ptrStr(lookupStr(rec, "vicinity")),
		URL:                          ptrStr(lookupStr(rec, "url")),
		Website:                      ptrStr(lookupStr(rec, "website")),
		FormattedPhoneNumber:         ptrStr(lookupStr(rec, "formatted_phone_number")),
		InternationalPhoneNumber:     ptrStr(lookupStr(rec, "international_phone_number")),
		Rating:                       lookupFloat(rec, "rating"),
		UserRatingsTotal:             lookupInt(rec, "user_ratings_total"),
		PriceLevel:                   lookupInt(rec, "price_level"),
		OpeningHours:                 mapOpeningHours(rec),
		WheelchairAccessibleEntrance: lookupBool(rec, "wheelchair_accessible_entrance"),
		Delivery:                     lookupBool(rec, "delivery"),
		DineIn:                       lookupBool(rec, "dine_in"),
		EditorialSummary:             ptrStr(lookupStr(rec, "editorial_summary.overview")),
	}
	if err := d.Validate(); err != nil {
		return domain.LocationDetails{}, err
	}
	return d, nil
}

func mapOpeningHours(rec map[string]any) *domain.OpeningHours {
	if lookupAny(rec, "opening_hours") == nil {
		return nil
	}
	return &domain.OpeningHours{
		OpenNow:     lookupBool(rec, "opening_hours.open_now"),
		WeekdayText: lookupStrSlice(rec, "opening_hours.weekday_text"),
	}
}
