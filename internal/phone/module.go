package phone

import (
	apphttp "phonefmt/internal/http"
	"phonefmt/internal/phonenumber"
	"phonefmt/platform/config"
	"phonefmt/platform/events"
	"phonefmt/platform/logger"
)

// Module wires the phone parsing and formatting HTTP routes.
type Module struct {
	handler *Handler
	service *Service
}

// NewModule builds the service from cfg. It fails when the configured
// countries, options or template file are invalid. Table replacements are
// announced on bus.
func NewModule(cfg config.PhoneConfig, bus events.Bus, log *logger.Logger) (*Module, error) {
	val, err := phonenumber.NewValidator()
	if err != nil {
		return nil, err
	}
	svc, err := NewService(cfg, val, bus, log)
	if err != nil {
		return nil, err
	}
	return &Module{handler: NewHandler(svc, val), service: svc}, nil
}

func (m *Module) Name() string {
	return "phone"
}

// Service returns the service layer for the health check.
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/phone")
	group.Use(ctx.RateLimiter.RateLimit())
	group.POST("/parse", m.handler.Parse)
	group.POST("/format", m.handler.Format)
	group.GET("/countries", m.handler.ListCountries)
	group.GET("/normalize", m.handler.Normalize)

	if ctx.Admin != nil {
		admin := ctx.Admin.Group("/phone")
		admin.GET("/templates", m.handler.GetTemplates)
		admin.PUT("/templates", m.handler.ReplaceTemplates)
	}
}

var _ apphttp.Module = (*Module)(nil)
