package database

import (
	"context"
	"time"

	"hazardmap/internal/domain/entity"
	domainerrors "hazardmap/internal/domain/errors"
	"hazardmap/internal/domain/repository"
	"hazardmap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create persists a new account.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	userM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatesColumn(err, "device_id") {
				return repository.ErrDuplicateDevice
			}

			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = userM.ID
	account.CreatedAt = userM.CreatedAt
	account.LastSeenAt = userM.LastSeen

	return nil
}

// FindByEmail looks an account up by its lower-cased email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&userM), nil
}

// FindByID retrieves an account by its id. The read goes to the primary so a
// token minted right after registration resolves even when replicas lag.
func (repo *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by ID")
	}

	return toAccountDomain(&userM), nil
}

// FindByDeviceID looks an account up by the device it was registered from.
func (repo *accountRepository) FindByDeviceID(ctx context.Context, deviceID string) (*entity.Account, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("device_id = ?", deviceID).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by device")
	}

	return toAccountDomain(&userM), nil
}

// SetCredentials upgrades an existing row in place.
func (repo *accountRepository) SetCredentials(ctx context.Context, account *entity.Account) error {
	userM := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", account.ID).
		Updates(map[string]interface{}{
			"email":         userM.Email,
			"password_hash": userM.PasswordHash,
			"nickname":      userM.Nickname,
			"last_seen":     userM.LastSeen,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set account credentials")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// UpdateNickname replaces the account's nickname.
func (repo *accountRepository) UpdateNickname(ctx context.Context, id int64, nickname string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		UpdateColumn("nickname", nickname)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update nickname")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// TouchLastSeen records activity for the account.
func (repo *accountRepository) TouchLastSeen(ctx context.Context, id int64, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		UpdateColumn("last_seen", at)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update last seen")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.UserModel) *entity.Account {
	if data == nil {
		return nil
	}

	account := &entity.Account{
		ID:           data.ID,
		PasswordHash: data.PasswordHash,
		Nickname:     data.Nickname,
		DeviceID:     data.DeviceID,
		CreatedAt:    data.CreatedAt,
		LastSeenAt:   data.LastSeen,
	}
	if data.Email != nil {
		account.Email = *data.Email
	}

	return account
}

func fromAccountDomain(data *entity.Account) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:           data.ID,
		PasswordHash: data.PasswordHash,
		Nickname:     data.Nickname,
		DeviceID:     data.DeviceID,
		CreatedAt:    data.CreatedAt,
		LastSeen:     data.LastSeenAt,
	}
	if data.Email != "" {
		email := data.Email
		userM.Email = &email
	}

	return userM
}
