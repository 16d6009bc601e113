package model

import (
	"time"
)

// UserModel mirrors the 'users' table. Email and device_id are unique when present.
type UserModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Email        *string `gorm:"type:varchar(255);uniqueIndex:idx_users_email"`
	PasswordHash string  `gorm:"type:varchar(255)"`
	Nickname     *string `gorm:"type:varchar(100)"`
	DeviceID     *string `gorm:"type:varchar(255);uniqueIndex:idx_users_device_id"`
	CreatedAt    time.Time
	LastSeen     time.Time `gorm:"column:last_seen"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
