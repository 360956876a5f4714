package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/Lixing-Zhang/room-scanner/backend/internal/scanner"
)

// MaxPointCount bounds how many points one scan may generate or accept
const MaxPointCount = 100000

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Scanner  ScannerConfig
	Metrics  MetricsConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type ScannerConfig struct {
	DelayMS       int    // artificial latency of the mock scan endpoint
	PointCount    int    // points generated when a scan request carries none
	Seed          uint64 // 0 seeds from the clock
	DefaultLocale string
}

type MetricsConfig struct {
	Enabled bool
}

// Load reads configuration from environment variables.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Scanner: ScannerConfig{
			DelayMS:       getEnvAsInt("SCAN_DELAY_MS", 1500),
			PointCount:    getEnvAsInt("SCAN_POINT_COUNT", 1000),
			Seed:          getEnvAsUint64("SCAN_SEED", 0),
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en-US"),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if c.Scanner.DelayMS < 0 {
		return fmt.Errorf("SCAN_DELAY_MS must not be negative, got %d", c.Scanner.DelayMS)
	}

	if c.Scanner.PointCount < scanner.MinPointsForDimensions || c.Scanner.PointCount > MaxPointCount {
		return fmt.Errorf("SCAN_POINT_COUNT must be between %d and %d, got %d",
			scanner.MinPointsForDimensions, MaxPointCount, c.Scanner.PointCount)
	}

	if _, err := language.Parse(strings.ReplaceAll(c.Scanner.DefaultLocale, "_", "-")); err != nil {
		return fmt.Errorf("invalid DEFAULT_LOCALE %q: %w", c.Scanner.DefaultLocale, err)
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one CORS origin must be configured")
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	value, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
