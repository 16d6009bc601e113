package impl

import (
	"context"
	"testing"

	"hazardmap/internal/domain/entity"
	"hazardmap/internal/infra/metrics"
	mockRepo "hazardmap/internal/mocks/repository"
	"hazardmap/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shelterServiceFixtures struct {
	service     usecase.ShelterUsecase
	shelterRepo *mockRepo.MockShelterRepository
}

func createTestShelterService(t *testing.T) shelterServiceFixtures {
	shelterRepo := mockRepo.NewMockShelterRepository(t)
	service := NewShelterService(ShelterServiceParams{
		ShelterRepo: shelterRepo,
		Config:      newTestConfig(),
		Metrics:     metrics.New(),
		Logger:      newDiscardLogger(),
	})

	return shelterServiceFixtures{
		service:     service,
		shelterRepo: shelterRepo,
	}
}

// sheltersAlongMeridian returns n shelters placed north of the query point,
// stored farthest first.
func sheltersAlongMeridian(n int) []*entity.Shelter {
	shelters := make([]*entity.Shelter, 0, n)
	for i := n; i >= 1; i-- {
		shelters = append(shelters, &entity.Shelter{
			ID:   int64(n - i + 1),
			Name: "shelter",
			Lat:  osakaLat + float64(i)*0.001,
			Lon:  osakaLon,
		})
	}

	return shelters
}

func TestShelterService_Nearest_SortedAndDefaultLimit(t *testing.T) {
	fx := createTestShelterService(t)
	ctx := context.Background()

	fx.shelterRepo.EXPECT().ListAll(ctx).Return(sheltersAlongMeridian(5), nil)

	ranked, err := fx.service.Nearest(ctx, &usecase.NearestSheltersInput{Lat: osakaLat, Lon: osakaLon})
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, int64(5), ranked[0].ID)
	assert.Equal(t, int64(4), ranked[1].ID)
	assert.Equal(t, int64(3), ranked[2].ID)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].DistanceKm, ranked[i].DistanceKm)
	}
	assert.InDelta(t, 0.111, ranked[0].DistanceKm, 0.001)
}

func TestShelterService_Nearest_LimitClamping(t *testing.T) {
	tests := []struct {
		name  string
		limit *int
		want  int
	}{
		{name: "zero returns one", limit: ptr(0), want: 1},
		{name: "negative returns one", limit: ptr(-4), want: 1},
		{name: "within range", limit: ptr(7), want: 7},
		{name: "capped at twenty", limit: ptr(100), want: 20},
		{name: "default", limit: nil, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShelterService(t)
			ctx := context.Background()

			fx.shelterRepo.EXPECT().ListAll(ctx).Return(sheltersAlongMeridian(25), nil)

			ranked, err := fx.service.Nearest(ctx, &usecase.NearestSheltersInput{Lat: osakaLat, Lon: osakaLon, Limit: tt.limit})
			require.NoError(t, err)
			assert.Len(t, ranked, tt.want)
		})
	}
}

func TestShelterService_Nearest_EqualDistancesKeepStorageOrder(t *testing.T) {
	fx := createTestShelterService(t)
	ctx := context.Background()

	fx.shelterRepo.EXPECT().ListAll(ctx).Return([]*entity.Shelter{
		{ID: 1, Name: "far", Lat: osakaLat + 0.01, Lon: osakaLon},
		{ID: 2, Name: "twin-a", Lat: osakaLat + 0.002, Lon: osakaLon},
		{ID: 3, Name: "twin-b", Lat: osakaLat + 0.002, Lon: osakaLon},
	}, nil)

	ranked, err := fx.service.Nearest(ctx, &usecase.NearestSheltersInput{Lat: osakaLat, Lon: osakaLon, Limit: ptr(3)})
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "twin-a", ranked[0].Name)
	assert.Equal(t, "twin-b", ranked[1].Name)
	assert.Equal(t, "far", ranked[2].Name)
}

func TestShelterService_Nearest_Empty(t *testing.T) {
	fx := createTestShelterService(t)
	ctx := context.Background()

	fx.shelterRepo.EXPECT().ListAll(ctx).Return([]*entity.Shelter{}, nil)

	ranked, err := fx.service.Nearest(ctx, &usecase.NearestSheltersInput{Lat: osakaLat, Lon: osakaLon})
	require.NoError(t, err)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestShelterService_Nearest_RepositoryError(t *testing.T) {
	fx := createTestShelterService(t)
	ctx := context.Background()

	fx.shelterRepo.EXPECT().ListAll(ctx).Return(nil, errors.New("disk I/O error"))

	ranked, err := fx.service.Nearest(ctx, &usecase.NearestSheltersInput{Lat: osakaLat, Lon: osakaLon})
	require.Error(t, err)
	assert.Nil(t, ranked)
}
