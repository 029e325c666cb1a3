package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Owhab/nexacms-sub002/internal/modules/hero/migration"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/security"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/validation"
	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
	"github.com/Owhab/nexacms-sub002/internal/services"
)

type Services struct {
	Auth       services.AuthService
	Navigation services.NavigationService
	Hero       services.HeroService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	policy, err := security.LoadPolicy(cfg.MediaPolicyFile)
	if err != nil {
		return Services{}, fmt.Errorf("load media policy: %w", err)
	}
	if cfg.MediaPolicyFile != "" {
		log.Info("Loaded media policy", "path", cfg.MediaPolicyFile)
	}

	registry := schema.DefaultRegistry()

	return Services{
		Auth: services.NewAuthService(log, reposet.User, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		Navigation: services.NewNavigationService(
			db,
			log,
			reposet.NavigationMenu,
			reposet.NavigationItem,
			clients.TreeCache,
		),
		Hero: services.NewHeroService(
			log,
			reposet.HeroSection,
			registry,
			validation.NewValidator(registry, validation.DefaultValidatorSet()),
			security.NewValidator(policy, clients.MediaTools),
			migration.NewEngine(registry),
		),
	}, nil
}
