package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/Owhab/nexacms-sub002/internal/http/handlers"
	httpMW "github.com/Owhab/nexacms-sub002/internal/http/middleware"
	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler     *httpH.HealthHandler
	AuthHandler       *httpH.AuthHandler
	NavigationHandler *httpH.NavigationHandler
	HeroHandler       *httpH.HeroHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "nexacms-api"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/login", cfg.AuthHandler.Login)
		}
	}

	admin := api.Group("/admin")
	{
		if cfg.AuthMiddleware != nil {
			admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
		}

		// Navigation
		if cfg.NavigationHandler != nil {
			admin.GET("/navigation", cfg.NavigationHandler.ListMenus)
			admin.POST("/navigation", cfg.NavigationHandler.CreateMenu)
			admin.GET("/navigation/:menuId/items", cfg.NavigationHandler.ListItems)
			admin.POST("/navigation/:menuId/items", cfg.NavigationHandler.CreateItem)
			admin.POST("/navigation/:menuId/items/reorder", cfg.NavigationHandler.Reorder)
		}

		// Hero sections
		if cfg.HeroHandler != nil {
			admin.GET("/hero/variants", cfg.HeroHandler.Variants)
			admin.GET("/hero/compatibility", cfg.HeroHandler.Compatibility)
			admin.POST("/hero/validate", cfg.HeroHandler.Validate)
			admin.POST("/hero/media/validate", cfg.HeroHandler.ValidateMedia)
			admin.GET("/hero/sections", cfg.HeroHandler.List)
			admin.GET("/hero/sections/:id", cfg.HeroHandler.Get)
			admin.PUT("/hero/sections/:id", cfg.HeroHandler.Put)
			admin.PATCH("/hero/sections/:id/fields", cfg.HeroHandler.PatchField)
			admin.POST("/hero/sections/:id/migrate", cfg.HeroHandler.Migrate)
			admin.POST("/hero/sections/:id/duplicate", cfg.HeroHandler.Duplicate)
		}
	}

	return r
}
