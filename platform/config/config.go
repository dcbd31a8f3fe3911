// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RateLimitConfig provides per-IP limits for public endpoints.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// PhoneConfig provides the formatter settings. Country and option values are
// raw strings; the phone module resolves them.
type PhoneConfig interface {
	GetPhoneAllowedCountries() []string
	GetPhoneAssumedCountry() string
	GetPhoneAllowedOptions() []string
	GetPhoneTemplatesFile() string
	GetPhoneNonBreakingSpace() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                   string
	HTTPAddr              string
	JWTAccessSecret       string
	CORSAllowAll          bool
	CORSOrigins           []string
	CORSAllowCreds        bool
	RateLimitRPS          float64
	RateLimitBurst        int
	PhoneAllowedCountries []string
	PhoneAssumedCountry   string
	PhoneAllowedOptions   []string
	PhoneTemplatesFile    string
	PhoneNonBreakingSpace bool
}

// =============================================================================
// Interface Implementations
// =============================================================================

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RateLimitConfig implementation
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// PhoneConfig implementation
func (c *Config) GetPhoneAllowedCountries() []string { return c.PhoneAllowedCountries }
func (c *Config) GetPhoneAssumedCountry() string     { return c.PhoneAssumedCountry }
func (c *Config) GetPhoneAllowedOptions() []string   { return c.PhoneAllowedOptions }
func (c *Config) GetPhoneTemplatesFile() string      { return c.PhoneTemplatesFile }
func (c *Config) GetPhoneNonBreakingSpace() bool     { return c.PhoneNonBreakingSpace }

// Load reads configuration from environment variables, after loading a .env
// file when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                   getEnv("APP_ENV", "development"),
		HTTPAddr:              getEnv("HTTP_ADDR", ":8080"),
		JWTAccessSecret:       getEnv("JWT_ACCESS_SECRET", ""),
		CORSAllowAll:          corsAllowAll,
		CORSOrigins:           corsOrigins,
		CORSAllowCreds:        strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		RateLimitRPS:          mustFloat(getEnv("RATE_LIMIT_RPS", "20")),
		RateLimitBurst:        mustInt(getEnv("RATE_LIMIT_BURST", "40")),
		PhoneAllowedCountries: splitCSV(getEnv("PHONE_ALLOWED_COUNTRIES", "")),
		PhoneAssumedCountry:   strings.TrimSpace(getEnv("PHONE_ASSUMED_COUNTRY", "")),
		PhoneAllowedOptions:   splitCSV(getEnv("PHONE_ALLOWED_OPTIONS", "default")),
		PhoneTemplatesFile:    strings.TrimSpace(getEnv("PHONE_TEMPLATES_FILE", "")),
		PhoneNonBreakingSpace: strings.EqualFold(getEnv("PHONE_NON_BREAKING_SPACE", "false"), "true"),
	}

	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if strings.EqualFold(cfg.Env, "production") && cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required in production")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return result
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
