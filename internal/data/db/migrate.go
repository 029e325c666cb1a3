package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/Owhab/nexacms-sub002/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(types.All()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
