package domain

import (
	"github.com/Owhab/nexacms-sub002/internal/domain/hero"
	"github.com/Owhab/nexacms-sub002/internal/domain/navigation"
	"github.com/Owhab/nexacms-sub002/internal/domain/user"
)

const (
	RoleAdmin  = user.RoleAdmin
	RoleEditor = user.RoleEditor

	NavigationTargetSelf  = navigation.TargetSelf
	NavigationTargetBlank = navigation.TargetBlank
)

type User = user.User

type NavigationMenu = navigation.Menu
type NavigationItem = navigation.MenuItem

type HeroSection = hero.Section

// All lists every persisted model, in migration order.
func All() []any {
	return []any{
		&User{},
		&NavigationMenu{},
		&NavigationItem{},
		&HeroSection{},
	}
}
