package app

import (
	"context"

	"gorm.io/gorm"

	httpH "github.com/Owhab/nexacms-sub002/internal/http/handlers"
	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Auth       *httpH.AuthHandler
	Navigation *httpH.NavigationHandler
	Hero       *httpH.HeroHandler
}

func wireHandlers(log *logger.Logger, db *gorm.DB, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(map[string]httpH.HealthCheck{
			"database": func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
		}),
		Auth:       httpH.NewAuthHandler(services.Auth),
		Navigation: httpH.NewNavigationHandler(services.Navigation),
		Hero:       httpH.NewHeroHandler(services.Hero),
	}
}
