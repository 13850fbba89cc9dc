package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

// Seed loads the fixture data every fresh process starts from: three
// accounts, the offense catalog, a handful of historical challans and the
// default custom form field.
func Seed(db *gorm.DB) error {
	users := []models.User{
		{ID: "admin1", Name: "Admin", Role: models.RoleAdmin, Password: "admin"},
		{ID: "emp1", Name: "Ravi Kumar", Role: models.RoleEmployee, Password: "password1"},
		{ID: "emp2", Name: "Sunita Sharma", Role: models.RoleEmployee, Password: "password2"},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	offenses := []models.Offense{
		{ID: "1", Name: "Driving without a valid license", Fine: 5000},
		{ID: "2", Name: "Driving without a helmet", Fine: 1000},
		{ID: "3", Name: "Triple riding on a two-wheeler", Fine: 1000},
		{ID: "4", Name: "Jumping a red light", Fine: 5000},
		{ID: "5", Name: "Overspeeding", Fine: 2000},
		{ID: "6", Name: "Using a mobile phone while driving", Fine: 5000},
		{ID: "7", Name: "Driving without a seatbelt", Fine: 1000},
		{ID: "8", Name: "Driving under the influence of alcohol", Fine: 10000},
		{ID: "9", Name: "No Parking", Fine: 500},
		{ID: "10", Name: "Driving without insurance", Fine: 2000},
		{ID: "11", Name: "Driving without PUC certificate", Fine: 1500},
		{ID: "12", Name: "Not giving way to emergency vehicles", Fine: 10000},
	}
	if err := db.Create(&offenses).Error; err != nil {
		return err
	}

	now := time.Now()
	challans := []models.Challan{
		{
			ID:            "C1721200",
			VehicleNumber: "MH12AB3456",
			DriverName:    "Amit Singh",
			DriverLicense: "DL123456",
			Offenses: []models.ChallanOffense{
				{OffenseID: "2", Name: "Driving without a helmet", Fine: 1000, Position: 0},
			},
			TotalFine: 1000,
			Latitude:  floatPtr(19.0760),
			Longitude: floatPtr(72.8777),
			Date:      now.Add(-10 * time.Minute),
			IssuedBy:  "emp1",
		},
		{
			ID:            "C1721100",
			VehicleNumber: "GJ05CD7890",
			DriverName:    "Priya Patel",
			DriverLicense: "DL789012",
			Offenses: []models.ChallanOffense{
				{OffenseID: "4", Name: "Jumping a red light", Fine: 5000, Position: 0},
			},
			TotalFine: 5000,
			Latitude:  floatPtr(23.0225),
			Longitude: floatPtr(72.5714),
			Date:      now.Add(-35 * time.Minute),
			IssuedBy:  "emp2",
		},
		{
			ID:            "C1721000",
			VehicleNumber: "KA01GH5678",
			DriverName:    "Rajesh Kumar",
			DriverLicense: "DL567890",
			Offenses: []models.ChallanOffense{
				{OffenseID: "10", Name: "Driving without insurance", Fine: 2000, Position: 0},
			},
			TotalFine: 2000,
			Latitude:  floatPtr(12.9716),
			Longitude: floatPtr(77.5946),
			Date:      now.Add(-120 * time.Minute),
			IssuedBy:  "emp1",
		},
	}
	if err := db.Create(&challans).Error; err != nil {
		return err
	}

	field := models.CustomChallanField{Name: "Driver License Number"}
	return db.Create(&field).Error
}
