package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Remote API
	SpaceXBaseURL string
	FetchTimeout  time.Duration

	// Launch collection cache
	CacheTTL time.Duration

	// Local state
	StateDBPath string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		SpaceXBaseURL: getEnv("SPACEX_BASE_URL", "https://api.spacexdata.com/v4"),
		FetchTimeout:  time.Duration(getEnvAsInt("FETCH_TIMEOUT", 15)) * time.Second,

		CacheTTL: time.Duration(getEnvAsInt("CACHE_TTL", 300)) * time.Second,

		StateDBPath: getEnv("STATE_DB_PATH", "spacedex.db"),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
