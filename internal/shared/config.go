package shared

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	PlacesBaseURL string
	PlacesAPIKey  string
	DetailWorkers int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "development"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ""),
		PlacesBaseURL: env("GOOGLE_PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
		PlacesAPIKey:  env("GOOGLE_MAPS_API_KEY", ""),
		DetailWorkers: atoi("DETAIL_WORKERS", 4),
	}
	if c.PlacesAPIKey == "" {
		log.Warn().Msg("GOOGLE_MAPS_API_KEY is empty (required for production mode)")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
