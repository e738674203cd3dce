package migration

import (
	"gorm.io/gorm"

	"guid-gatherer/models"
)

// Migrate creates missing tables and columns; it never drops anything.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Contractor{},
		&models.Supplier{},
		&models.Wholesaler{},
		&models.RetailSeller{},
	)
}
