// Package router builds the gin engine and mounts every module.
package router

import (
	"net/http"
	"time"

	apphttp "phonefmt/internal/http"
	"phonefmt/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RoleAdmin is required on every /api/v1/admin route.
const RoleAdmin = "admin"

// New creates the engine with shared middleware, the health endpoint and the
// routes of every module in app.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(app.Config)))

	engine.GET("/api/health", func(c *gin.Context) {
		if app.Health != nil {
			if err := app.Health.Ready(); err != nil {
				httpkit.Error(c, http.StatusServiceUnavailable, "not ready", err.Error())
				return
			}
		}
		httpkit.OK(c, gin.H{"status": "ok"})
	})

	limiter := httpkit.NewIPRateLimiterFromConfig(app.Config, app.Logger)
	v1 := engine.Group("/api/v1")

	var admin *gin.RouterGroup
	if app.Config.GetJWTAccessSecret() != "" {
		admin = v1.Group("/admin")
		admin.Use(httpkit.AuthRequired(app.Config), httpkit.RequireRole(RoleAdmin))
	} else {
		app.Logger.Warn("JWT_ACCESS_SECRET not configured; admin routes disabled")
	}

	ctx := &apphttp.RouterContext{
		Engine:      engine,
		V1:          v1,
		Admin:       admin,
		Config:      app.Config,
		RateLimiter: limiter,
	}
	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Info("module registered", "module", module.Name())
	}

	return engine
}

func corsConfig(cfg apphttp.RouterConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", httpkit.RequestIDHeader},
		ExposeHeaders:    []string{httpkit.RequestIDHeader},
		AllowCredentials: cfg.GetCORSAllowCreds(),
		MaxAge:           12 * time.Hour,
	}
	if cfg.GetCORSAllowAll() || len(cfg.GetCORSOrigins()) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.GetCORSOrigins()
	}
	return c
}
