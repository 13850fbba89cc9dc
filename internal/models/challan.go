package models

import "time"

// Challan is an issued traffic citation. Records are append-only: once a
// challan is created it is never updated or deleted, and its offense
// snapshots keep the fines that applied at issuance time even if the
// catalog changes later.
type Challan struct {
	ID            string            `json:"id" gorm:"primaryKey;column:id;size:30"`
	VehicleNumber string            `json:"vehicleNumber" gorm:"column:vehicle_number;size:20;not null;index"`
	DriverName    string            `json:"driverName" gorm:"column:driver_name;size:255"`
	DriverLicense string            `json:"driverLicense" gorm:"column:driver_license;size:50"`
	Offenses      []ChallanOffense  `json:"offenses" gorm:"foreignKey:ChallanID;references:ID"`
	TotalFine     int               `json:"totalFine" gorm:"column:total_fine;not null"`
	Latitude      *float64          `json:"latitude,omitempty" gorm:"column:latitude"`
	Longitude     *float64          `json:"longitude,omitempty" gorm:"column:longitude"`
	Date          time.Time         `json:"date" gorm:"column:date;not null;index"`
	PhotoEvidence string            `json:"photoEvidence,omitempty" gorm:"column:photo_evidence;type:text"`
	IssuedBy      string            `json:"issuedBy" gorm:"column:issued_by;size:50;not null;index"`
	CustomFields  map[string]string `json:"customFields,omitempty" gorm:"column:custom_fields;serializer:json"`
	CreatedAt     time.Time         `json:"created_at" gorm:"autoCreateTime"`
}

func (Challan) TableName() string {
	return "challans"
}

// ChallanOffense is an ordered snapshot of a catalog offense as it stood
// when the challan was issued.
type ChallanOffense struct {
	ID        uint   `json:"-" gorm:"primaryKey;autoIncrement;column:id"`
	ChallanID string `json:"-" gorm:"column:challan_id;size:30;not null;index"`
	OffenseID string `json:"id" gorm:"column:offense_id;size:50;not null"`
	Name      string `json:"name" gorm:"column:name;size:255;not null"`
	Fine      int    `json:"fine" gorm:"column:fine;not null"`
	Position  int    `json:"-" gorm:"column:position;not null"`
}

func (ChallanOffense) TableName() string {
	return "challan_offenses"
}
