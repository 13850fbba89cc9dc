package models

// Offense is a catalog entry pairing a violation description with a
// fixed fine amount in rupees.
type Offense struct {
	ID   string `json:"id" gorm:"primaryKey;column:id;size:50"`
	Name string `json:"name" gorm:"column:name;size:255;not null"`
	Fine int    `json:"fine" gorm:"column:fine;not null"`
}

func (Offense) TableName() string {
	return "offenses"
}
