package entity

import "time"

// Account is a user row. Accounts created by email/password registration carry
// credentials; accounts created by device registration carry only a device id
// and an optional nickname until they register.
type Account struct {
	ID           int64
	Email        string // Lower-cased, unique. Empty for device-only accounts.
	PasswordHash string
	Nickname     *string
	DeviceID     *string // Unique when set.
	CreatedAt    time.Time
	LastSeenAt   time.Time
}

// IsDeviceOnly reports whether the account has no login credentials yet.
func (a *Account) IsDeviceOnly() bool {
	return a.Email == ""
}
