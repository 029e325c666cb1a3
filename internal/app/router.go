package app

import (
	apphttp "github.com/Owhab/nexacms-sub002/internal/http"
	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
)

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *apphttp.Server {
	return apphttp.NewServer(cfg.HTTPAddr, apphttp.RouterConfig{
		Log:               log,
		ServiceName:       cfg.Otel.ServiceName,
		CORSOrigins:       cfg.CORSAllowedOrigins,
		AuthMiddleware:    middleware.Auth,
		HealthHandler:     handlers.Health,
		AuthHandler:       handlers.Auth,
		NavigationHandler: handlers.Navigation,
		HeroHandler:       handlers.Hero,
	})
}
