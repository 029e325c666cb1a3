package navigation

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/Owhab/nexacms-sub002/internal/domain"
	"github.com/Owhab/nexacms-sub002/internal/platform/dbctx"
	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
)

type MenuRepo interface {
	Create(dbc dbctx.Context, menus []*types.NavigationMenu) ([]*types.NavigationMenu, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.NavigationMenu, error)
	List(dbc dbctx.Context) ([]*types.NavigationMenu, error)
	Touch(dbc dbctx.Context, id uuid.UUID) error
}

type menuRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMenuRepo(db *gorm.DB, baseLog *logger.Logger) MenuRepo {
	return &menuRepo{
		db:  db,
		log: baseLog.With("repo", "NavigationMenuRepo"),
	}
}

func (r *menuRepo) Create(dbc dbctx.Context, menus []*types.NavigationMenu) ([]*types.NavigationMenu, error) {
	if len(menus) == 0 {
		return []*types.NavigationMenu{}, nil
	}
	if err := dbc.Conn(r.db).Create(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

// GetByID returns nil, nil when the menu does not exist.
func (r *menuRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.NavigationMenu, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var m types.NavigationMenu
	err := dbc.Conn(r.db).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *menuRepo) List(dbc dbctx.Context) ([]*types.NavigationMenu, error) {
	var out []*types.NavigationMenu
	if err := dbc.Conn(r.db).
		Order("location ASC, name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Touch bumps updated_at after the menu's items change.
func (r *menuRepo) Touch(dbc dbctx.Context, id uuid.UUID) error {
	return dbc.Conn(r.db).
		Model(&types.NavigationMenu{}).
		Where("id = ?", id).
		Update("updated_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}
