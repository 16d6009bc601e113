package impl

import (
	"context"
	"testing"

	"hazardmap/internal/domain/entity"
	domainerrors "hazardmap/internal/domain/errors"
	"hazardmap/internal/domain/service"
	"hazardmap/internal/infra/metrics"
	mockRepo "hazardmap/internal/mocks/repository"
	mockService "hazardmap/internal/mocks/service"
	"hazardmap/internal/usecase"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type identityServiceFixtures struct {
	service      usecase.IdentityUsecase
	favoriteRepo *mockRepo.MockFavoriteRepository
	publisher    *mockService.MockEventPublisher
	metrics      *metrics.Metrics
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	m := metrics.New()

	service := NewIdentityService(IdentityServiceParams{
		FavoriteRepo: favoriteRepo,
		Publisher:    publisher,
		Metrics:      m,
		Clock:        newTestClock(),
		Logger:       newDiscardLogger(),
	})

	return identityServiceFixtures{
		service:      service,
		favoriteRepo: favoriteRepo,
		publisher:    publisher,
		metrics:      m,
	}
}

func TestIdentityService_ClaimDevice_RequiresAuthentication(t *testing.T) {
	for _, state := range []entity.AuthState{entity.AuthAbsent, entity.AuthInvalid} {
		t.Run(state.String(), func(t *testing.T) {
			fx := createTestIdentityService(t)

			_, err := fx.service.ClaimDevice(context.Background(), entity.Identity{Auth: state, DeviceID: "d1"})
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		})
	}
}

func TestIdentityService_ClaimDevice_RequiresDevice(t *testing.T) {
	fx := createTestIdentityService(t)

	_, err := fx.service.ClaimDevice(context.Background(), entity.Identity{Auth: entity.AuthValid, UserID: 7})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceIDRequired)
}

func TestIdentityService_ClaimDevice_PublishesEvent(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.favoriteRepo.EXPECT().TransferOrphaned(ctx, "d1", int64(7)).Return(int64(3), nil)
	fx.publisher.EXPECT().
		PublishDeviceClaimed(ctx, mock.AnythingOfType("*service.DeviceClaimedEvent")).
		Run(func(_ context.Context, event *service.DeviceClaimedEvent) {
			assert.Equal(t, int64(7), event.UserID)
			assert.Equal(t, "d1", event.DeviceID)
			assert.Equal(t, int64(3), event.Transferred)
			assert.Equal(t, service.ClaimReasonClaim, event.Reason)
			assert.Equal(t, testNow, event.OccurredAt)
			assert.NotEmpty(t, event.EventID)
		}).
		Return(nil)

	n, err := fx.service.ClaimDevice(ctx, entity.Identity{Auth: entity.AuthValid, UserID: 7, DeviceID: "d1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, 3.0, testutil.ToFloat64(fx.metrics.FavoritesTransferred))
}

func TestIdentityService_TransferOrphaned_SecondRunIsNoop(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.favoriteRepo.EXPECT().TransferOrphaned(ctx, "d1", int64(7)).Return(int64(2), nil).Once()
	fx.favoriteRepo.EXPECT().TransferOrphaned(ctx, "d1", int64(7)).Return(int64(0), nil).Once()
	fx.publisher.EXPECT().PublishDeviceClaimed(ctx, mock.Anything).Return(nil).Once()

	first, err := fx.service.TransferOrphaned(ctx, "d1", 7)
	require.NoError(t, err)
	second, err := fx.service.TransferOrphaned(ctx, "d1", 7)
	require.NoError(t, err)

	assert.Equal(t, int64(2), first)
	assert.Equal(t, int64(0), second)
	assert.Equal(t, 2.0, testutil.ToFloat64(fx.metrics.DeviceClaims.WithLabelValues(service.ClaimReasonClaim)))
}

func TestIdentityService_TransferOrphaned_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.favoriteRepo.EXPECT().TransferOrphaned(ctx, "d1", int64(7)).Return(int64(1), nil)
	fx.publisher.EXPECT().PublishDeviceClaimed(ctx, mock.Anything).Return(errors.New("broker down"))

	n, err := fx.service.TransferOrphaned(ctx, "d1", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.EventPublishFailures))
}

func TestIdentityService_TransferOrphaned_EmptyDevice(t *testing.T) {
	fx := createTestIdentityService(t)

	_, err := fx.service.TransferOrphaned(context.Background(), "", 7)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceIDRequired)
}

func TestIdentityService_TransferOrphaned_RepositoryError(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.favoriteRepo.EXPECT().TransferOrphaned(ctx, "d1", int64(7)).Return(int64(0), errors.New("locked"))

	_, err := fx.service.TransferOrphaned(ctx, "d1", 7)
	require.Error(t, err)

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}
