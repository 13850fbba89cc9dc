package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
)

// Connect opens the transient application database. All data lives in
// memory for the lifetime of the process; nothing is ever written to disk.
// cache=shared keeps every pooled connection on the same database.
func Connect() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the schema for every domain entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Offense{},
		&models.Challan{},
		&models.ChallanOffense{},
		&models.CustomChallanField{},
	)
}
