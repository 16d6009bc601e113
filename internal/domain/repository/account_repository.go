package repository

import (
	"context"
	"time"

	"hazardmap/internal/domain/entity"
)

// AccountRepository persists registered users and device-only users.
type AccountRepository interface {
	// Create stores a new account. Returns ErrDuplicateEmail or
	// ErrDuplicateDevice on unique constraint violations.
	Create(ctx context.Context, account *entity.Account) error
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	FindByID(ctx context.Context, id int64) (*entity.Account, error)
	FindByDeviceID(ctx context.Context, deviceID string) (*entity.Account, error)
	// SetCredentials stores email, password hash and nickname on the existing
	// row account.ID. Returns ErrDuplicateEmail when the email is taken.
	SetCredentials(ctx context.Context, account *entity.Account) error
	UpdateNickname(ctx context.Context, id int64, nickname string) error
	TouchLastSeen(ctx context.Context, id int64, at time.Time) error
}
