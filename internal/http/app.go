// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"phonefmt/platform/config"
	"phonefmt/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.JWTConfig
	config.RateLimitConfig
}

// HealthChecker reports whether a module is ready to serve.
type HealthChecker interface {
	Ready() error
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration.
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is consulted by /api/health.
	Health HealthChecker
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
