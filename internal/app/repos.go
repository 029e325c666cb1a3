package app

import (
	"gorm.io/gorm"

	"github.com/Owhab/nexacms-sub002/internal/data/repos"
	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
)

type Repos struct {
	User           repos.UserRepo
	NavigationMenu repos.NavigationMenuRepo
	NavigationItem repos.NavigationItemRepo
	HeroSection    repos.HeroSectionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:           repos.NewUserRepo(db, log),
		NavigationMenu: repos.NewNavigationMenuRepo(db, log),
		NavigationItem: repos.NewNavigationItemRepo(db, log),
		HeroSection:    repos.NewHeroSectionRepo(db, log),
	}
}
