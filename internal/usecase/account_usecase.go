package usecase

import (
	"context"

	"hazardmap/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Email    string
	Password string
	Nickname *string
	// DeviceID, when set, binds the device to the account and adopts its favorites.
	DeviceID string
}

// RegisterDeviceInput identifies an anonymous device and its optional nickname.
type RegisterDeviceInput struct {
	DeviceID string
	Nickname *string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the new account, its first access token and the
// number of device favorites adopted during registration.
type RegisterOutput struct {
	Account     *entity.Account
	AccessToken string
	TokenType   string
	Transferred int64
}

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	Account     *entity.Account
	AccessToken string
	TokenType   string
}

// AccountUsecase defines the email/password account operations.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Profile(ctx context.Context, identity entity.Identity) (*entity.Account, error)
	// RegisterDevice creates the device-only account for a device id, or
	// returns the existing one with its nickname refreshed.
	RegisterDevice(ctx context.Context, input *RegisterDeviceInput) (*entity.Account, error)
}
