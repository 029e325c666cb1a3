package hero

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Section is the stored form of a hero record. Data holds the full wire JSON
// of the variant; Variant is duplicated into its own column for filtering.
type Section struct {
	ID      string         `gorm:"primaryKey;column:id" json:"id"`
	Variant string         `gorm:"not null;column:variant;index" json:"variant"`
	Data    datatypes.JSON `gorm:"not null;column:data" json:"data"`
	Version int            `gorm:"not null;default:1;column:version" json:"version"`

	UpdatedBy *uuid.UUID `gorm:"type:uuid;column:updated_by" json:"updatedBy,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (Section) TableName() string { return "hero_section" }
