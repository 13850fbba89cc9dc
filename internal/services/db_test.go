package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
)

// setupTestDB opens a fresh in-memory SQLite and migrates every domain model.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("could not open test DB: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Offense{},
		&models.Challan{},
		&models.ChallanOffense{},
		&models.CustomChallanField{},
	)
	if err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return db
}

// seedUsers inserts the three demo accounts.
func seedUsers(t *testing.T, db *gorm.DB) {
	t.Helper()
	users := []models.User{
		{ID: "admin1", Name: "Admin", Role: models.RoleAdmin, Password: "admin"},
		{ID: "emp1", Name: "Ravi Kumar", Role: models.RoleEmployee, Password: "password1"},
		{ID: "emp2", Name: "Sunita Sharma", Role: models.RoleEmployee, Password: "password2"},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("failed to seed users: %v", err)
	}
}

// seedOffenses inserts a small catalog.
func seedOffenses(t *testing.T, db *gorm.DB) {
	t.Helper()
	offenses := []models.Offense{
		{ID: "1", Name: "Driving without a valid license", Fine: 5000},
		{ID: "2", Name: "Driving without a helmet", Fine: 1000},
		{ID: "5", Name: "Overspeeding", Fine: 2000},
	}
	if err := db.Create(&offenses).Error; err != nil {
		t.Fatalf("failed to seed offenses: %v", err)
	}
}
