package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	server "geosuggest/internal/adapters/http_server"
	"geosuggest/internal/app"
	"geosuggest/internal/domain"
)

func newMockServer(t *testing.T) http.Handler {
	t.Helper()
	svc, err := app.NewLocationService(domain.ModeMock, nil, 0)
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	srv := server.New()
	srv.MountHandlers(&server.Handlers{Locations: svc})
	return srv.Mux()
}

func postAutocomplete(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/locations/autocomplete", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestPing(t *testing.T) {
	h := newMockServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["response"] != "pong" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAutocomplete_OK(t *testing.T) {
	h := newMockServer(t)
	rr := postAutocomplete(t, h, `{"query": "Times Square"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d, body: %s", rr.Code, rr.Body.String())
	}

	var body struct {
		Suggestions []struct {
			PlaceID       string  `json:"place_id"`
			SecondaryText *string `json:"secondary_text"`
			Details       *struct {
				FormattedAddress string   `json:"formatted_address"`
				Types            []string `json:"types"`
			} `json:"details"`
		} `json:"suggestions"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(body.Suggestions))
	}
	if body.Suggestions[0].PlaceID != "mock_place_1" {
		t.Fatalf("unexpected first place: %s", body.Suggestions[0].PlaceID)
	}
	first := body.Suggestions[0].Details
	if first == nil || first.FormattedAddress != "Mock Location 1, Test City, Test Country" {
		t.Fatalf("unexpected details: %+v", first)
	}
	if first.Types == nil {
		t.Fatal("types must serialize as an array, not null")
	}
}

func TestAutocomplete_ValidationErrors(t *testing.T) {
	h := newMockServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"too short", `{"query": "a"}`},
		{"too long", `{"query": "` + strings.Repeat("x", 101) + `"}`},
		{"missing", `{}`},
		{"not json", `query=paris`},
	}
	for _, tc := range cases {
		rr := postAutocomplete(t, h, tc.body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, rr.Code)
		}
		var body struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode: %v", tc.name, err)
		}
		if body.Code != "validation_error" {
			t.Fatalf("%s: unexpected code %q", tc.name, body.Code)
		}
	}
}

func TestHealthz(t *testing.T) {
	h := newMockServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
}
