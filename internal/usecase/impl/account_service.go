package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "hazardmap/internal/delivery/context"
	"hazardmap/internal/domain/entity"
	domainerrors "hazardmap/internal/domain/errors"
	"hazardmap/internal/domain/repository"
	"hazardmap/internal/domain/service"
	"hazardmap/internal/infra/metrics"
	"hazardmap/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	notifier     *claimNotifier
	clock        clockwork.Clock
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Metrics      *metrics.Metrics
	Clock        clockwork.Clock
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		notifier: &claimNotifier{
			publisher: params.Publisher,
			metrics:   params.Metrics,
			clock:     params.Clock,
		},
		clock:  params.Clock,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the account and, when a device id is supplied, adopts the
// device's orphaned favorites in the same transaction.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email and password are required")
	}
	if len(input.Password) > service.MaxPasswordBytes {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("password is longer than 72 bytes")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	now := srv.clock.Now().UTC()
	account := &entity.Account{
		Email:        email,
		PasswordHash: hash,
		Nickname:     input.Nickname,
		CreatedAt:    now,
		LastSeenAt:   now,
	}
	if input.DeviceID != "" {
		deviceID := input.DeviceID
		account.DeviceID = &deviceID
	}

	var transferred int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.storeAccount(ctx, repoFactory.AccountRepo(), account); err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicateEmail):
				return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already registered")
			case errors.Is(err, repository.ErrDuplicateDevice):
				return domainerrors.ErrDeviceAlreadyRegistered.WrapMessage("device bound to another account")
			default:
				return errors.Wrap(err, "failed to create account")
			}
		}

		if input.DeviceID == "" {
			return nil
		}

		n, err := repoFactory.FavoriteRepo().TransferOrphaned(ctx, input.DeviceID, account.ID)
		if err != nil {
			return errors.Wrap(err, "failed to transfer orphaned favorites")
		}
		transferred = n

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	if input.DeviceID != "" {
		srv.notifier.notify(ctx, srv.log(ctx), account.ID, input.DeviceID, transferred, service.ClaimReasonRegister)
	}

	token, err := srv.tokenService.GenerateAccessToken(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Registration completed", slog.Int64("user_id", account.ID), slog.Int64("transferred", transferred))

	return &usecase.RegisterOutput{
		Account:     account,
		AccessToken: token,
		TokenType:   service.TokenType,
		Transferred: transferred,
	}, nil
}

// storeAccount inserts the account, or upgrades the device-only account that
// already holds its device id. A device owned by a credentialed account
// yields ErrDuplicateDevice.
func (srv *accountService) storeAccount(ctx context.Context, accounts repository.AccountRepository, account *entity.Account) error {
	if account.DeviceID == nil {
		return accounts.Create(ctx, account)
	}

	existing, err := accounts.FindByDeviceID(ctx, *account.DeviceID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return accounts.Create(ctx, account)
		}

		return err
	}

	if !existing.IsDeviceOnly() {
		return repository.ErrDuplicateDevice
	}

	account.ID = existing.ID
	account.CreatedAt = existing.CreatedAt
	if account.Nickname == nil {
		account.Nickname = existing.Nickname
	}

	srv.log(ctx).Info("Upgrading device account", slog.Int64("user_id", existing.ID))

	return accounts.SetCredentials(ctx, account)
}

// Login verifies the password and refreshes the account's last seen time.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login for unknown email", slog.String("email", email))

			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch", slog.Int64("user_id", account.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	now := srv.clock.Now().UTC()
	if err := srv.accountRepo.TouchLastSeen(ctx, account.ID, now); err != nil {
		srv.log(ctx).Warn("Failed to refresh last seen", slog.Int64("user_id", account.ID), slog.Any("error", err))
	} else {
		account.LastSeenAt = now
	}

	token, err := srv.tokenService.GenerateAccessToken(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{
		Account:     account,
		AccessToken: token,
		TokenType:   service.TokenType,
	}, nil
}

// Profile loads the authenticated account. A token for a deleted account is
// treated like any other invalid credential.
func (srv *accountService) Profile(ctx context.Context, identity entity.Identity) (*entity.Account, error) {
	if !identity.IsAuthenticated() {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	account, err := srv.accountRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUnauthorized)
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}

// RegisterDevice upserts the device-only account keyed by device id. A
// non-empty nickname replaces the stored one; an empty one leaves it as is.
func (srv *accountService) RegisterDevice(ctx context.Context, input *usecase.RegisterDeviceInput) (*entity.Account, error) {
	deviceID := strings.TrimSpace(input.DeviceID)
	if deviceID == "" {
		return nil, errors.WithStack(domainerrors.ErrDeviceIDRequired)
	}

	account, err := srv.accountRepo.FindByDeviceID(ctx, deviceID)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrAccountNotFound):
		account, err = srv.createDeviceAccount(ctx, deviceID, input.Nickname)
		if err != nil {
			return nil, err
		}
		if account != nil {
			srv.log(ctx).Info("Device registered", slog.Int64("user_id", account.ID))

			return account, nil
		}

		// Lost a race with a concurrent registration of the same device.
		if account, err = srv.accountRepo.FindByDeviceID(ctx, deviceID); err != nil {
			return nil, errors.Wrap(err, "failed to reload device account")
		}
	default:
		return nil, errors.Wrap(err, "failed to find device account")
	}

	if input.Nickname != nil && *input.Nickname != "" && !equalNickname(account.Nickname, *input.Nickname) {
		if err := srv.accountRepo.UpdateNickname(ctx, account.ID, *input.Nickname); err != nil {
			return nil, errors.Wrap(err, "failed to update nickname")
		}
		nickname := *input.Nickname
		account.Nickname = &nickname
	}

	return account, nil
}

// createDeviceAccount returns (nil, nil) when another request created the row first.
func (srv *accountService) createDeviceAccount(ctx context.Context, deviceID string, nickname *string) (*entity.Account, error) {
	now := srv.clock.Now().UTC()
	account := &entity.Account{
		DeviceID:   &deviceID,
		CreatedAt:  now,
		LastSeenAt: now,
	}
	if nickname != nil && *nickname != "" {
		account.Nickname = nickname
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to create device account")
	}

	return account, nil
}

func equalNickname(current *string, next string) bool {
	return current != nil && *current == next
}
