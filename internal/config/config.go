package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	VenueAPI    VenueAPIConfig
	GeoIP       GeoIPConfig
	LogLevel    string
}

type VenueAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type GeoIPConfig struct {
	BaseURL string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("VENUE_API_TIMEOUT", "10s")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	timeout, err := time.ParseDuration(getEnvOrViper("VENUE_API_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid VENUE_API_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		VenueAPI: VenueAPIConfig{
			BaseURL: getEnvOrViper("VENUE_API_BASE_URL", "https://consumer-api.development.dev.woltapi.com/home-assignment-api/v1"),
			Timeout: timeout,
		},
		GeoIP: GeoIPConfig{
			BaseURL: getEnvOrViper("GEOIP_BASE_URL", "http://ip-api.com"),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.VenueAPI.BaseURL == "" {
		return nil, fmt.Errorf("VENUE_API_BASE_URL is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
