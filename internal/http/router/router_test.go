package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apphttp "phonefmt/internal/http"
	"phonefmt/platform/config"
	"phonefmt/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type health struct{ err error }

func (h health) Ready() error { return h.err }

type recordingModule struct {
	ctx *apphttp.RouterContext
}

func (m *recordingModule) Name() string { return "recording" }

func (m *recordingModule) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.ctx = ctx
	ctx.V1.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func newApp(secret string, ready error, modules ...apphttp.Module) *apphttp.App {
	return &apphttp.App{
		Config: &config.Config{
			JWTAccessSecret: secret,
			RateLimitRPS:    100,
			RateLimitBurst:  100,
		},
		Logger:  logger.Discard(),
		Health:  health{err: ready},
		Modules: modules,
	}
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthReportsReadiness(t *testing.T) {
	rec := get(New(newApp("", nil)), "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(New(newApp("", errors.New("no phone templates loaded"))), "/api/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "no phone templates loaded")
}

func TestModulesAreMounted(t *testing.T) {
	module := &recordingModule{}
	rec := get(New(newApp("", nil, module)), "/api/v1/ping")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Nil(t, module.ctx.Admin, "admin group needs a JWT secret")
	assert.NotNil(t, module.ctx.RateLimiter)

	module = &recordingModule{}
	New(newApp("secret", nil, module))
	assert.NotNil(t, module.ctx.Admin)
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	app := newApp("", nil)
	app.Config.(*config.Config).CORSOrigins = []string{"http://localhost:4200"}
	engine := New(app)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:4200", rec.Header().Get("Access-Control-Allow-Origin"))
}
