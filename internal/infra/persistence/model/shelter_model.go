package model

import "time"

// ShelterModel mirrors the 'shelters' table.
type ShelterModel struct {
	ID               int64   `gorm:"primaryKey;autoIncrement"`
	Name             string  `gorm:"type:varchar(255);not null;index"`
	Ward             string  `gorm:"type:varchar(100);index"`
	Address          string  `gorm:"type:varchar(255)"`
	Type             string  `gorm:"type:varchar(100)"`
	Capacity         *int
	Lat              float64 `gorm:"not null"`
	Lon              float64 `gorm:"not null"`
	Phone            string  `gorm:"type:varchar(50)"`
	OpeningCondition string  `gorm:"type:varchar(255)"`
	Source           string  `gorm:"type:varchar(100)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShelterModel) TableName() string {
	return "shelters"
}
