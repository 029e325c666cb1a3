package navigation

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TargetSelf  = "_self"
	TargetBlank = "_blank"
)

// MenuItem is one node of a menu tree. Sibling order is unique per
// (menu, parent), which is why reorders write in two phases.
type MenuItem struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	MenuID   uuid.UUID  `gorm:"type:uuid;not null;column:menu_id;uniqueIndex:idx_navigation_item_position,priority:1" json:"menuId"`
	ParentID *uuid.UUID `gorm:"type:uuid;column:parent_id;uniqueIndex:idx_navigation_item_position,priority:2;index" json:"parentId"`
	Order    int        `gorm:"not null;column:sort_order;uniqueIndex:idx_navigation_item_position,priority:3" json:"order"`

	Label    string     `gorm:"not null;column:label" json:"label"`
	URL      *string    `gorm:"column:url" json:"url,omitempty"`
	Target   string     `gorm:"not null;default:'_self';column:target" json:"target"`
	PageID   *uuid.UUID `gorm:"type:uuid;column:page_id" json:"pageId,omitempty"`
	IsActive bool       `gorm:"not null;default:true;column:is_active" json:"isActive"`

	Children []*MenuItem `gorm:"-" json:"children"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (MenuItem) TableName() string { return "navigation_item" }

func (i *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
