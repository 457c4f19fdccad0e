package database

import (
	"gorm.io/gorm"

	"github.com/Amogh004/store-ratings-platform/internal/models"
)

// AutoMigrate creates or updates the schema for the three record types.
// Email uniqueness, the (user, store) rating uniqueness and the 1-5 value
// check all live in the schema, not in application code.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Rating{},
	)
}
