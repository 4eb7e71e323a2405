package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Catalog sources
const (
	CatalogSourceBuiltin  = "builtin"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	Database DatabaseConfig
	Backend  BackendConfig
	Catalog  CatalogConfig
	APIPort  string
	LogLevel string

	PollInterval time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

type BackendConfig struct {
	BaseURL           string
	RequestsPerSecond float64
	Timeout           time.Duration
}

type CatalogConfig struct {
	Source string
	File   string
}

func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			Name:     getEnv("DB_NAME", "robowarehouse"),
			User:     getEnv("DB_USER", "robowarehouse"),
			Password: getEnv("DB_PASSWORD", ""),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 5),
			MinConns: getEnvInt("DB_MIN_CONNS", 1),
		},
		Backend: BackendConfig{
			BaseURL:           getEnv("BACKEND_URL", "http://127.0.0.1:8000"),
			RequestsPerSecond: getEnvFloat("BACKEND_RPS", 10),
			Timeout:           time.Duration(getEnvInt("BACKEND_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Catalog: CatalogConfig{
			Source: getEnv("CATALOG_SOURCE", CatalogSourceBuiltin),
			File:   getEnv("CATALOG_FILE", "catalog.json"),
		},
		APIPort:      getEnv("API_PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		PollInterval: time.Duration(getEnvInt("POLL_INTERVAL_SECONDS", 4)) * time.Second,
	}
}

// Validate checks settings that have no sensible default
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogSourceBuiltin:
	case CatalogSourceFile:
		if c.Catalog.File == "" {
			return fmt.Errorf("CATALOG_FILE is required when CATALOG_SOURCE=%s", CatalogSourceFile)
		}
	case CatalogSourcePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when CATALOG_SOURCE=%s", CatalogSourcePostgres)
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.Catalog.Source)
	}

	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_URL is required")
	}
	if c.Backend.RequestsPerSecond <= 0 {
		return fmt.Errorf("BACKEND_RPS must be positive")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("POLL_INTERVAL_SECONDS must be positive")
	}
	return nil
}

// UsesDatabase reports whether a database connection is needed
func (c *Config) UsesDatabase() bool {
	return c.Catalog.Source == CatalogSourcePostgres
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
