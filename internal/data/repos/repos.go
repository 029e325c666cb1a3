package repos

import (
	"gorm.io/gorm"

	"github.com/Owhab/nexacms-sub002/internal/data/repos/hero"
	"github.com/Owhab/nexacms-sub002/internal/data/repos/navigation"
	"github.com/Owhab/nexacms-sub002/internal/data/repos/user"
	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
)

type UserRepo = user.UserRepo

type NavigationMenuRepo = navigation.MenuRepo
type NavigationItemRepo = navigation.ItemRepo

type HeroSectionRepo = hero.SectionRepo

func NewUserRepo(db *gorm.DB, log *logger.Logger) UserRepo { return user.NewUserRepo(db, log) }

func NewNavigationMenuRepo(db *gorm.DB, log *logger.Logger) NavigationMenuRepo {
	return navigation.NewMenuRepo(db, log)
}

func NewNavigationItemRepo(db *gorm.DB, log *logger.Logger) NavigationItemRepo {
	return navigation.NewItemRepo(db, log)
}

func NewHeroSectionRepo(db *gorm.DB, log *logger.Logger) HeroSectionRepo {
	return hero.NewSectionRepo(db, log)
}
