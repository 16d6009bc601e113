package model

import "time"

// FavoriteModel mirrors the 'favorites' table. user_id is null until the
// owning device is claimed by an account.
type FavoriteModel struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	Lat             float64 `gorm:"not null"`
	Lon             float64 `gorm:"not null"`
	Title           string  `gorm:"type:varchar(255);not null"`
	TerrainType     *string `gorm:"type:varchar(100)"`
	RiskScore       *int
	RiskDescription *string `gorm:"type:varchar(255)"`
	Explanation     *string `gorm:"type:text"`
	NearestShelter  *string `gorm:"type:varchar(255)"`
	SimpleWarnings  *string `gorm:"type:text"`
	DeviceID        *string `gorm:"type:varchar(255);index:idx_favorites_device_id"`
	UserID          *int64  `gorm:"index:idx_favorites_user_id"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
