package navigation

import (
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/Owhab/nexacms-sub002/internal/domain"
	"github.com/Owhab/nexacms-sub002/internal/platform/dbctx"
	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
)

type ItemRepo interface {
	Create(dbc dbctx.Context, items []*types.NavigationItem) ([]*types.NavigationItem, error)
	ListByMenu(dbc dbctx.Context, menuID uuid.UUID) ([]*types.NavigationItem, error)
	NextSiblingOrder(dbc dbctx.Context, menuID uuid.UUID, parentID *uuid.UUID) (int, error)
	UpdatePosition(dbc dbctx.Context, id uuid.UUID, parentID *uuid.UUID, order int) error
}

type itemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewItemRepo(db *gorm.DB, baseLog *logger.Logger) ItemRepo {
	return &itemRepo{
		db:  db,
		log: baseLog.With("repo", "NavigationItemRepo"),
	}
}

func (r *itemRepo) Create(dbc dbctx.Context, items []*types.NavigationItem) ([]*types.NavigationItem, error) {
	if len(items) == 0 {
		return []*types.NavigationItem{}, nil
	}
	if err := dbc.Conn(r.db).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByMenu returns every item of the menu, flat, ordered by sibling order.
func (r *itemRepo) ListByMenu(dbc dbctx.Context, menuID uuid.UUID) ([]*types.NavigationItem, error) {
	var out []*types.NavigationItem
	if menuID == uuid.Nil {
		return out, nil
	}
	if err := dbc.Conn(r.db).
		Where("menu_id = ?", menuID).
		Order("sort_order ASC, created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// NextSiblingOrder returns one past the highest order under parentID, or 0
// for an empty level.
func (r *itemRepo) NextSiblingOrder(dbc dbctx.Context, menuID uuid.UUID, parentID *uuid.UUID) (int, error) {
	q := dbc.Conn(r.db).
		Model(&types.NavigationItem{}).
		Where("menu_id = ?", menuID)
	if parentID == nil {
		q = q.Where("parent_id IS NULL")
	} else {
		q = q.Where("parent_id = ?", *parentID)
	}
	var maxOrder sql.NullInt64
	if err := q.Select("MAX(sort_order)").Row().Scan(&maxOrder); err != nil {
		return 0, err
	}
	if !maxOrder.Valid {
		return 0, nil
	}
	return int(maxOrder.Int64) + 1, nil
}

func (r *itemRepo) UpdatePosition(dbc dbctx.Context, id uuid.UUID, parentID *uuid.UUID, order int) error {
	var parent any
	if parentID != nil {
		parent = *parentID
	}
	return dbc.Conn(r.db).
		Model(&types.NavigationItem{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"parent_id":  parent,
			"sort_order": order,
		}).Error
}
