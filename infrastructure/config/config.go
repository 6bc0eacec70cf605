package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration. Values are fixed at
// process start and the struct is passed into constructors rather than
// read from globals, so tests can point the service at a mock store.
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Graph store configuration
	StoreEndpoint   string // base address of the SPARQL store, e.g. http://localhost:7200
	StoreRepository string // repository/namespace identifier
	StoreTimeout    time.Duration

	// URI minting
	BaseURI        string // namespace under which new term URIs are minted
	RootConceptURI string // well-known root concept for parentless terms

	// Logging
	LogLevel string

	// Feature flags
	EnableMetrics bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		StoreEndpoint:   getEnv("GRAPHDB_URL", "http://localhost:7200"),
		StoreRepository: getEnv("GRAPHDB_REPOSITORY", "taxonomy"),
		StoreTimeout:    time.Duration(getEnvInt("STORE_TIMEOUT_SECONDS", 10)) * time.Second,

		BaseURI:        getEnv("BASE_URI", "http://data.example.org/taxonomy/"),
		RootConceptURI: getEnv("ROOT_CONCEPT_URI", ""),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	// Parentless terms attach under the root concept inside the minting
	// namespace unless one is configured explicitly.
	if cfg.RootConceptURI == "" {
		cfg.RootConceptURI = cfg.BaseURI + "Root"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.StoreEndpoint == "" {
		return fmt.Errorf("GRAPHDB_URL is required")
	}
	if c.StoreRepository == "" {
		return fmt.Errorf("GRAPHDB_REPOSITORY is required")
	}
	if c.BaseURI == "" {
		return fmt.Errorf("BASE_URI is required")
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
