// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"geosuggest/internal/app"
	"geosuggest/internal/domain"
)

type Handlers struct{ Locations *app.LocationService }

var validate = validator.New()

type autocompleteRequest struct {
	Query string `json:"query" validate:"required,min=2,max=100"`
}

type autocompleteResponse struct {
	Suggestions []suggestionDTO `json:"suggestions"`
}

type suggestionDTO struct {
	PlaceID       string      `json:"place_id"`
	Description   string      `json:"description"`
	MainText      string      `json:"main_text"`
	SecondaryText *string     `json:"secondary_text"`
	Details       *detailsDTO `json:"details"`
}

type detailsDTO struct {
	Latitude                     float64          `json:"latitude"`
	Longitude                    float64          `json:"longitude"`
	FormattedAddress             string           `json:"formatted_address"`
	Name                         string           `json:"name"`
	Types                        []string         `json:"types"`
	Vicinity                     *string          `json:"vicinity"`
	URL                          *string          `json:"url"`
	Website                      *string          `json:"website"`
	FormattedPhoneNumber         *string          `json:"formatted_phone_number"`
	InternationalPhoneNumber     *string          `json:"international_phone_number"`
	Rating                       *float64         `json:"rating"`
	UserRatingsTotal             *int             `json:"user_ratings_total"`
	PriceLevel                   *int             `json:"price_level"`
	OpeningHours                 *openingHoursDTO `json:"opening_hours"`
	WheelchairAccessibleEntrance *bool            `json:"wheelchair_accessible_entrance"`
	Delivery                     *bool            `json:"delivery"`
	DineIn                       *bool            `json:"dine_in"`
	EditorialSummary             *string          `json:"editorial_summary"`
}

type openingHoursDTO struct {
	OpenNow     *bool    `json:"open_now"`
	WeekdayText []string `json:"weekday_text"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/api/v1/ping", h.ping)
	s.mux.Post("/api/v1/locations/autocomplete", h.autocomplete)
}

func (h *Handlers) ping(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"response": "pong"})
}

func (h *Handlers) autocomplete(w http.ResponseWriter, r *http.Request) {
	var req autocompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "request body must be JSON with a query field", nil)
		return
	}
	if err := validate.Struct(req); err != nil {
		details := map[string]string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				details[strings.ToLower(fe.Field())] = fe.Tag()
			}
		}
		writeError(w, http.StatusBadRequest, "validation_error", "query must be a string of 2 to 100 characters", details)
		return
	}

	suggestions, err := h.Locations.GetLocationSuggestions(r.Context(), req.Query)
	if err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			log.Error().Str("code", appErr.Code).Err(err).Msg("location suggestions failed")
			writeError(w, http.StatusInternalServerError, appErr.Code, appErr.Message, nil)
			return
		}
		log.Error().Err(err).Msg("location suggestions failed")
		writeError(w, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
		return
	}

	writeJSON(w, http.StatusOK, autocompleteResponse{Suggestions: toSuggestionDTOs(suggestions)})
}

func toSuggestionDTOs(in []domain.LocationSuggestion) []suggestionDTO {
	out := make([]suggestionDTO, 0, len(in))
	for _, s := range in {
		out = append(out, suggestionDTO{
			PlaceID:       s.PlaceID,
			Description:   s.Description,
			MainText:      s.MainText,
			SecondaryText: s.SecondaryText,
			Details:       toDetailsDTO(s.Details),
		})
	}
	return out
}

func toDetailsDTO(d *domain.LocationDetails) *detailsDTO {
	if d == nil {
		return nil
	}
	types := d.Types
	if types == nil {
		types = []string{}
	}
	dto := &detailsDTO{
		Latitude:                     d.Latitude,
		Longitude:                    d.Longitude,
		FormattedAddress:             d.FormattedAddress,
		Name:                         d.Name,
		Types:                        types,
		Vicinity:                     d.Vicinity,
		URL:                          d.URL,
		Website:                      d.Website,
		FormattedPhoneNumber:         d.FormattedPhoneNumber,
		InternationalPhoneNumber:     d.InternationalPhoneNumber,
		Rating:                       d.Rating,
		UserRatingsTotal:             d.UserRatingsTotal,
		PriceLevel:                   d.PriceLevel,
		WheelchairAccessibleEntrance: d.WheelchairAccessibleEntrance,
		Delivery:                     d.Delivery,
		DineIn:                       d.DineIn,
		EditorialSummary:             d.EditorialSummary,
	}
	if d.OpeningHours != nil {
		weekday := d.OpeningHours.WeekdayText
		if weekday == nil {
			weekday = []string{}
		}
		dto.OpeningHours = &openingHoursDTO{OpenNow: d.OpeningHours.OpenNow, WeekdayText: weekday}
	}
	return dto
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string, details any) {
	writeJSON(w, status, errorBody{Code: code, Message: message, Details: details})
}
