package navigation

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Menu is a named navigation tree placed at one site location (header, footer, ...).
type Menu struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"not null;column:name" json:"name"`
	Location string    `gorm:"not null;default:'header';column:location;index" json:"location"`
	IsActive bool      `gorm:"not null;default:true;column:is_active" json:"isActive"`

	// Items holds the root items with their children when a tree is loaded.
	Items []*MenuItem `gorm:"-" json:"items"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (Menu) TableName() string { return "navigation_menu" }

func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
