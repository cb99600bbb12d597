// README: Config loader with env defaults for the bot, HTTP, DB, Redis, and geocoding.
package config

import (
	"os"
	"strconv"
	"time"
)

type GeocodeConfig struct {
	APIKey        string
	Language      string
	Region        string
	CityHint      string
	StateSuffix   string
	CountrySuffix string
	Timeout       time.Duration
	CacheTTL      time.Duration
}

type TripConfig struct {
	AvgSpeedKmh      float64
	DefaultLat       float64
	DefaultLng       float64
	DefaultPointName string
}

type Config struct {
	Telegram struct {
		Token string
	}
	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Geocode GeocodeConfig
	Trip    TripConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.Telegram.Token = envOrError("VIAGEM_TELEGRAM_TOKEN")
	cfg.HTTP.Addr = envOrDefault("VIAGEM_HTTP_ADDR", ":8080")
	cfg.DB.DSN = envOrDefault("VIAGEM_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("VIAGEM_REDIS_ADDR", "localhost:6379")

	cfg.Geocode.APIKey = envOrError("VIAGEM_GOOGLE_MAPS_KEY")
	cfg.Geocode.Language = envOrDefault("VIAGEM_GEOCODE_LANGUAGE", "pt-BR")
	cfg.Geocode.Region = envOrDefault("VIAGEM_GEOCODE_REGION", "br")
	cfg.Geocode.CityHint = envOrDefault("VIAGEM_GEOCODE_CITY_HINT", "Juiz de Fora")
	cfg.Geocode.StateSuffix = envOrDefault("VIAGEM_GEOCODE_STATE_SUFFIX", "MG, Brasil")
	cfg.Geocode.CountrySuffix = envOrDefault("VIAGEM_GEOCODE_COUNTRY_SUFFIX", "Brasil")
	cfg.Geocode.Timeout = time.Duration(envOrDefaultInt("VIAGEM_GEOCODE_TIMEOUT_SEC", 10)) * time.Second
	cfg.Geocode.CacheTTL = time.Duration(envOrDefaultInt("VIAGEM_GEOCODE_CACHE_TTL_SEC", 86400)) * time.Second

	cfg.Trip.AvgSpeedKmh = envOrDefaultFloat("VIAGEM_AVG_SPEED_KMH", 30.0)
	cfg.Trip.DefaultLat = envOrDefaultFloat("VIAGEM_DEFAULT_LAT", -21.7626)
	cfg.Trip.DefaultLng = envOrDefaultFloat("VIAGEM_DEFAULT_LNG", -43.3335)
	cfg.Trip.DefaultPointName = envOrDefault("VIAGEM_DEFAULT_POINT_NAME", "Praça Jaraguá, Juiz de Fora")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
