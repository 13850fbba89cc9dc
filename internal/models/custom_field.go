package models

// CustomChallanField names an extra labeled text input shown on the
// issue-challan form. Names are unique.
type CustomChallanField struct {
	Name string `json:"name" gorm:"primaryKey;column:name;size:255"`
}

func (CustomChallanField) TableName() string {
	return "custom_challan_fields"
}
