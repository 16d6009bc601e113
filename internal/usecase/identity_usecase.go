package usecase

import (
	"context"

	"hazardmap/internal/domain/entity"
)

// IdentityUsecase reconciles anonymous device ownership with accounts.
type IdentityUsecase interface {
	// TransferOrphaned moves every favorite of deviceID without an owning
	// account to userID and returns how many moved. Repeated calls are no-ops.
	TransferOrphaned(ctx context.Context, deviceID string, userID int64) (int64, error)

	// ClaimDevice transfers the identity's device favorites into its account.
	// The identity must be authenticated and carry a device id.
	ClaimDevice(ctx context.Context, identity entity.Identity) (int64, error)
}
