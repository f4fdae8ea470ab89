package app

import (
	"context"

	"geosuggest/internal/domain"
)

// mockSource returns a fixed two-entry fixture for any query. Other
// components test against these exact values, so they are part of the
// service contract: change them and you break every consumer's tests.
type mockSource struct{}

func (mockSource) Suggestions(_ context.Context, _ string) ([]domain.LocationSuggestion, error) {
	return []domain.LocationSuggestion{
		{
			PlaceID:       "mock_place_1",
			Description:   "Mock Location 1, Test City",
			MainText:      "Mock Location 1",
			SecondaryText: ptrStr("Test City"),
			Details: &domain.LocationDetails{
				Latitude:         40.7128,
				Longitude:        -74.0060,
				FormattedAddress: "Mock Location 1, Test City, Test Country",
				Name:             "Mock Location 1",
				Types:            []string{"establishment", "point_of_interest"},

				Vicinity:                 ptrStr("Test City"),
				URL:                      ptrStr("https://maps.example.com/place/mock_place_1"),
				Website:                  ptrStr("https://mock-location-one.example.com"),
				FormattedPhoneNumber:     ptrStr("(212) 555-0101"),
				InternationalPhoneNumber: ptrStr("+1 212-555-0101"),
				Rating:                   ptrFloat(4.5),
				UserRatingsTotal:         ptrInt(1250),
				PriceLevel:               ptrInt(2),
				OpeningHours: &domain.OpeningHours{
					OpenNow: ptrBool(true),
					WeekdayText: []string{
						"Monday: 9:00 AM – 5:00 PM",
						"Tuesday: 9:00 AM – 5:00 PM",
						"Wednesday: 9:00 AM – 5:00 PM",
						"Thursday: 9:00 AM – 5:00 PM",
						"Friday: 9:00 AM – 5:00 PM",
						"Saturday: 10:00 AM – 4:00 PM",
						"Sunday: Closed",
					},
				},
				WheelchairAccessibleEntrance: ptrBool(true),
				Delivery:                     ptrBool(true),
				DineIn:                       ptrBool(true),
				EditorialSummary:             ptrStr("A well-known test landmark in the heart of Test City."),
			},
		},
		{
			PlaceID:       "mock_place_2",
			Description:   "Mock Location 2, Test City",
			MainText:      "Mock Location 2",
			SecondaryText: ptrStr("Test City"),
			Details: &domain.LocationDetails{
				Latitude:         51.5074,
				Longitude:        -0.1278,
				FormattedAddress: "Mock Location 2, Test City, Test Country",
				Name:             "Mock Location 2",
				Types:            []string{"restaurant", "food", "establishment"},

				Vicinity:                 ptrStr("Test City"),
				URL:                      ptrStr("https://maps.example.com/place/mock_place_2"),
				Website:                  ptrStr("https://mock-location-two.example.com"),
				FormattedPhoneNumber:     ptrStr("020 7946 0202"),
				InternationalPhoneNumber: ptrStr("+44 20 7946 0202"),
				Rating:                   ptrFloat(4.8),
				UserRatingsTotal:         ptrInt(640),
				PriceLevel:               ptrInt(3),
				OpeningHours: &domain.OpeningHours{
					OpenNow: ptrBool(false),
					WeekdayText: []string{
						"Monday: 12:00 – 10:00 PM",
						"Tuesday: 12:00 – 10:00 PM",
						"Wednesday: 12:00 – 10:00 PM",
						"Thursday: 12:00 – 10:00 PM",
						"Friday: 12:00 – 11:00 PM",
						"Saturday: 12:00 – 11:00 PM",
						"Sunday: 12:00 – 9:00 PM",
					},
				},
				WheelchairAccessibleEntrance: ptrBool(false),
				Delivery:                     ptrBool(false),
				DineIn:                       ptrBool(true),
				EditorialSummary:             ptrStr("An upscale dining spot favored by Test City regulars."),
			},
		},
	}, nil
}

func ptrFloat(f float64) *float64 { return &f }
func ptrInt(n int) *int           { return &n }
func ptrBool(b bool) *bool        { return &b }
