package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. It is loaded once at startup and
// passed into constructors; no other package reads the environment.
type Config struct {
	// GeminiAPIKey authenticates the cultural-context LLM. It is the only
	// credential the service refuses to start without.
	GeminiAPIKey string

	// AccuWeatherAPIKey enables live weather lookups. When empty the
	// weather adapter serves synthetic data.
	AccuWeatherAPIKey string

	// UseMockData forces synthetic data for all adapters even when keys
	// are present.
	UseMockData bool

	DatabaseURL string
	RedisURL    string
	BearerToken string
	Port        string
}

// Load reads configuration from a .env file (if present) and the
// environment. It fails on missing required values so the caller can refuse
// to start rather than run degraded.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional; real deployments use the environment

	cfg := &Config{
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		AccuWeatherAPIKey: os.Getenv("ACCUWEATHER_API_KEY"),
		UseMockData:       strings.EqualFold(os.Getenv("USE_MOCK_DATA"), "true"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		BearerToken:       os.Getenv("BEARER_TOKEN"),
		Port:              os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	for key, val := range map[string]string{
		"GEMINI_API_KEY": cfg.GeminiAPIKey,
		"DATABASE_URL":   cfg.DatabaseURL,
		"REDIS_URL":      cfg.RedisURL,
		"BEARER_TOKEN":   cfg.BearerToken,
	} {
		if val == "" {
			return nil, fmt.Errorf("required environment variable %s not set", key)
		}
	}

	return cfg, nil
}

// MockWeather reports whether the weather adapter should skip the live
// source entirely.
func (c *Config) MockWeather() bool {
	return c.UseMockData || c.AccuWeatherAPIKey == ""
}

// MockFlights reports whether the flight adapter should skip the live
// source entirely. The flight source needs no key, so only the explicit
// flag disables it.
func (c *Config) MockFlights() bool {
	return c.UseMockData
}
