package impl

import (
	"io"
	"log/slog"
	"time"

	"hazardmap/config"
	"hazardmap/internal/geo/spatial"

	"github.com/jonboulle/clockwork"
)

var testNow = time.Date(2025, time.March, 11, 14, 46, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(testNow)
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:     4,
			AccessTokenTTL: time.Hour,
		},
		Risk: &config.RiskConfig{
			MaxDistanceMeters: 400,
			DefaultLocale:     "ja",
		},
		Spatial: &config.SpatialConfig{
			Strategy: spatial.StrategyLinear,
		},
		Shelters: &config.ShelterConfig{
			DefaultLimit: 3,
			MaxLimit:     20,
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
