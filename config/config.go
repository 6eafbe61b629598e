package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents the application configuration
type Config struct {
	// Bitly configuration
	BitlyToken string

	// Amazon Product Advertising API configuration
	AmazonAPIKey     string
	AmazonAPISecret  string
	AmazonPartnerTag string
	AmazonCountry    string

	// Search configuration
	SearchInterval  time.Duration
	SearchItemCount int
	SearchBatchSize int

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	searchInterval, _ := strconv.Atoi(getEnv("SEARCH_INTERVAL_SECONDS", "1"))
	searchItemCount, _ := strconv.Atoi(getEnv("SEARCH_ITEM_COUNT", "10"))
	searchBatchSize, _ := strconv.Atoi(getEnv("SEARCH_BATCH_SIZE", "120"))

	return Config{
		BitlyToken:       getEnv("BITLY_API_TOKEN", ""),
		AmazonAPIKey:     getEnv("AMAZON_API_KEY", ""),
		AmazonAPISecret:  getEnv("AMAZON_API_SECRET", ""),
		AmazonPartnerTag: getEnv("AMAZON_TAG", ""),
		AmazonCountry:    getEnv("AMAZON_COUNTRY", "JP"),
		SearchInterval:   time.Duration(searchInterval) * time.Second,
		SearchItemCount:  searchItemCount,
		SearchBatchSize:  searchBatchSize,
		Environment:      getEnv("KINDLELINK_ENVIRONMENT", "development"),
	}
}

// Validate checks that every required credential is present
func (c Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"BITLY_API_TOKEN", c.BitlyToken},
		{"AMAZON_API_KEY", c.AmazonAPIKey},
		{"AMAZON_API_SECRET", c.AmazonAPISecret},
		{"AMAZON_TAG", c.AmazonPartnerTag},
		{"AMAZON_COUNTRY", c.AmazonCountry},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("missing required environment variable: %s", r.name)
		}
	}
	if c.SearchBatchSize <= 0 {
		return fmt.Errorf("SEARCH_BATCH_SIZE must be positive, got %d", c.SearchBatchSize)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
