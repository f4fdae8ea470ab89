package domain

import "fmt"

// ServiceMode selects mock or live behavior; fixed at service construction.
type ServiceMode string

const (
	ModeMock ServiceMode = "mock"
	ModeLive ServiceMode = "live"
)

// ModeForEnv maps the deployment environment to a service mode.
// Anything other than "production" is mock.
func ModeForEnv(env string) ServiceMode {
	if env == "production" {
		return ModeLive
	}
	return ModeMock
}

type LocationSuggestion struct {
	PlaceID       string
	Description   string
	MainText      string
	SecondaryText *string
	Details       *LocationDetails // nil when enrichment failed or was not attempted
}

type LocationDetails struct {
	Latitude         float64
	Longitude        float64
	FormattedAddress string
	Name             string
	Types            []string // never nil

	Vicinity                     *string
	URL                          *string
	Website                      *string
	FormattedPhoneNumber         *string
	InternationalPhoneNumber     *string
	Rating                       *float64
	UserRatingsTotal             *int
	PriceLevel                   *int // 0..4
	OpeningHours                 *OpeningHours
	WheelchairAccessibleEntrance *bool
	Delivery                     *bool
	DineIn                       *bool
	EditorialSummary             *string
}

// OpeningHours carries the provider's opening-hours payload as-is.
type OpeningHours struct {
	OpenNow     *bool
	WeekdayText []string
}

// Validate enforces the invariants the provider data must satisfy.
// Out-of-range values are rejected, never clamped.
func (d *LocationDetails) Validate() error {
	if d.FormattedAddress == "" {
		return fmt.Errorf("formatted address is required")
	}
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.PriceLevel != nil && (*d.PriceLevel < 0 || *d.PriceLevel > 4) {
		return fmt.Errorf("price level %d out of range [0,4]", *d.PriceLevel)
	}
	if d.UserRatingsTotal != nil && *d.UserRatingsTotal < 0 {
		return fmt.Errorf("user ratings total %d is negative", *d.UserRatingsTotal)
	}
	return nil
}
