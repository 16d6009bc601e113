package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"hazardmap/config"
	"hazardmap/internal/delivery/api"
	apimiddleware "hazardmap/internal/delivery/api/middleware"
	"hazardmap/internal/delivery/api/router"
	"hazardmap/internal/delivery/api/router/handler"
	"hazardmap/internal/domain/entity"
	"hazardmap/internal/domain/service"
	"hazardmap/internal/geo"
	"hazardmap/internal/geo/spatial"
	"hazardmap/internal/infra/auth"
	"hazardmap/internal/infra/metrics"
	"hazardmap/internal/infra/persistence/database"
	"hazardmap/internal/infra/persistence/database/testdb"
	"hazardmap/internal/infra/pubsub"
	"hazardmap/internal/usecase/impl"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gorm.io/gorm"
)

const (
	umedaLat = 34.7025
	umedaLon = 135.4959
)

type testApp struct {
	handler http.Handler
	db      *gorm.DB
	tokens  service.TokenService
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth:     &config.AuthConfig{BcryptCost: 4, AccessTokenTTL: time.Hour},
		Risk:     &config.RiskConfig{MaxDistanceMeters: 400, DefaultLocale: "ja"},
		Spatial:  &config.SpatialConfig{Strategy: spatial.StrategyGrid, GridCellSizeMeters: 200},
		Shelters: &config.ShelterConfig{DefaultLimit: 3, MaxLimit: 20},
		PubSub:   &config.PubSubConfig{Provider: "none"},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "test-secret"

	return cfg
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := newTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lc := fxtest.NewLifecycle(t)
	clock := clockwork.NewFakeClockAt(time.Date(2025, time.March, 11, 14, 46, 0, 0, time.UTC))
	db := testdb.New(t)
	m := metrics.New()

	tokenSvc, err := auth.NewJWTService(cfg, clock)
	require.NoError(t, err)

	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: cfg,
		Logger: logger,
	})
	require.NoError(t, err)

	favoriteRepo := database.NewFavoriteRepository(db)
	accountRepo := database.NewAccountRepository(db)

	riskUC, err := impl.NewRiskService(impl.RiskServiceParams{
		HazardRepo: database.NewHazardRepository(db),
		Config:     cfg,
		Metrics:    m,
		Logger:     logger,
	})
	require.NoError(t, err)

	shelterUC := impl.NewShelterService(impl.ShelterServiceParams{
		ShelterRepo: database.NewShelterRepository(db),
		Config:      cfg,
		Metrics:     m,
		Logger:      logger,
	})

	favoriteUC := impl.NewFavoriteService(impl.FavoriteServiceParams{
		FavoriteRepo: favoriteRepo,
		Metrics:      m,
		Clock:        clock,
		Logger:       logger,
	})

	identityUC := impl.NewIdentityService(impl.IdentityServiceParams{
		FavoriteRepo: favoriteRepo,
		Publisher:    publisher,
		Metrics:      m,
		Clock:        clock,
		Logger:       logger,
	})

	accountUC := impl.NewAccountService(impl.AccountServiceParams{
		TxManager:    database.NewTransactionManager(db),
		AccountRepo:  accountRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenSvc,
		Publisher:    publisher,
		Metrics:      m,
		Clock:        clock,
		Logger:       logger,
	})

	srv, err := api.NewServer(api.ServerParams{
		Lc:     lc,
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			RiskHandler:        handler.NewRiskHandler(handler.RiskHandlerParams{RiskUC: riskUC, Logger: logger}),
			ShelterHandler:     handler.NewShelterHandler(handler.ShelterHandlerParams{ShelterUC: shelterUC, Logger: logger}),
			FavoriteHandler:    handler.NewFavoriteHandler(handler.FavoriteHandlerParams{FavoriteUC: favoriteUC, Logger: logger}),
			AuthHandler:        handler.NewAuthHandler(handler.AuthHandlerParams{AccountUC: accountUC, IdentityUC: identityUC, Logger: logger}),
			IdentityMiddleware: apimiddleware.NewIdentityMiddleware(tokenSvc, accountRepo),
			Metrics:            m,
		},
	})
	require.NoError(t, err)

	h, ok := srv.(interface{ Handler() http.Handler })
	require.True(t, ok)

	return &testApp{handler: h.Handler(), db: db, tokens: tokenSvc}
}

type requestOption func(*http.Request)

func withDevice(id string) requestOption {
	return func(r *http.Request) { r.Header.Set("X-Device-ID", id) }
}

func withBearer(token string) requestOption {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func withHeader(key, value string) requestOption {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

func (a *testApp) do(t *testing.T, method, target string, body any, opts ...requestOption) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.Nil(t, env.Error, rec.Body.String())
	assert.NotEmpty(t, env.Meta.RequestID)

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.NotNil(t, env.Error, rec.Body.String())

	return env.Error.Code
}

func (a *testApp) seedHazard(t *testing.T, lat, lon, elev, slope float64, overall int, description string) {
	t.Helper()

	p := geo.Project(lat, lon)
	record := &entity.HazardRecord{
		Lat:             lat,
		Lon:             lon,
		X:               p.X(),
		Y:               p.Y(),
		ElevScore:       &elev,
		SlopeScore:      &slope,
		OverallRisk:     overall,
		RiskDescription: description,
	}
	require.NoError(t, database.NewHazardRepository(a.db).Create(context.Background(), record))
}

func (a *testApp) seedShelter(t *testing.T, name string, lat, lon float64) {
	t.Helper()

	shelter := &entity.Shelter{Name: name, Ward: "北区", Type: "指定避難所", Lat: lat, Lon: lon}
	require.NoError(t, database.NewShelterRepository(a.db).Create(context.Background(), shelter))
}

func (a *testApp) register(t *testing.T, email, deviceID string) handler.RegisterResponse {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/auth/register", map[string]any{
		"email":     email,
		"password":  "correct horse",
		"device_id": deviceID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[handler.RegisterResponse](t, rec)
}

func TestServer_Health(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestServer_Risk(t *testing.T) {
	app := newTestApp(t)
	app.seedHazard(t, umedaLat, umedaLon, 30, 5, 4, "洪水,津波")

	t.Run("match in Japanese by default", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/risk?lat=34.7026&lon=135.4960", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		got := decode[handler.RiskResponse](t, rec)
		assert.Equal(t, "ok", got.Status)
		require.NotNil(t, got.OverallRisk)
		assert.Equal(t, 4, *got.OverallRisk)
		assert.Equal(t, "洪水,津波", got.RiskDescription)
		assert.Contains(t, got.Explanation, "洪水リスクが高い")
		assert.Contains(t, got.Explanation, "津波の可能性")
		require.NotNil(t, got.DistanceM)
		assert.Less(t, *got.DistanceM, 50.0)
		assert.Equal(t, "ja", got.Lang)
	})

	t.Run("english explanation", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/risk?lat=34.7026&lon=135.4960", nil, withHeader("Accept-Language", "en-US,en;q=0.9"))
		require.Equal(t, http.StatusOK, rec.Code)

		got := decode[handler.RiskResponse](t, rec)
		assert.Equal(t, "en", got.Lang)
		assert.Contains(t, got.Explanation, "flood risk tends to be high")
	})

	t.Run("no match far away", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/risk?lat=34.6500&lon=135.4300", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		got := decode[handler.RiskResponse](t, rec)
		assert.Equal(t, "no_match", got.Status)
		assert.Nil(t, got.OverallRisk)
		assert.Nil(t, got.DistanceM)
		assert.Empty(t, got.RiskDescription)
		assert.Equal(t, "一致する地点が見つかりませんでした。", got.Explanation)
	})

	t.Run("rejects non numeric coordinates", func(t *testing.T) {
		for _, target := range []string{"/risk?lat=abc&lon=135.5", "/risk?lon=135.5", "/risk?lat=NaN&lon=135.5"} {
			rec := app.do(t, http.MethodGet, target, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
			assert.Equal(t, "INVALID_COORDINATES", errorCode(t, rec))
		}
	})
}

func TestServer_RiskWithoutDescription(t *testing.T) {
	app := newTestApp(t)
	app.seedHazard(t, umedaLat, umedaLon, 30, 5, 3, "")

	rec := app.do(t, http.MethodGet, "/risk?lat=34.7025&lon=135.4959", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[handler.RiskResponse](t, rec)
	assert.Equal(t, "ok", got.Status)
	assert.Empty(t, got.RiskDescription)
	assert.Equal(t, "標高が低く、海や河川に近い地域で洪水リスクが高い傾向にあります。", got.Explanation)
}

func TestServer_SheltersNearest(t *testing.T) {
	app := newTestApp(t)
	app.seedShelter(t, "far", 34.7500, 135.5500)
	app.seedShelter(t, "near", 34.7030, 135.4960)
	app.seedShelter(t, "middle", 34.7100, 135.5000)
	app.seedShelter(t, "farther", 34.8000, 135.6000)

	query := url.Values{"lat": {"34.7025"}, "lon": {"135.4959"}}

	rec := app.do(t, http.MethodGet, "/shelters/nearest?"+query.Encode(), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[[]handler.ShelterResponse](t, rec)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"near", "middle", "far"}, []string{got[0].Name, got[1].Name, got[2].Name})
	assert.LessOrEqual(t, got[0].DistanceKm, got[1].DistanceKm)
	assert.LessOrEqual(t, got[1].DistanceKm, got[2].DistanceKm)

	query.Set("limit", "0")
	got = decode[[]handler.ShelterResponse](t, app.do(t, http.MethodGet, "/shelters/nearest?"+query.Encode(), nil))
	assert.Len(t, got, 1)

	query.Set("limit", "100")
	got = decode[[]handler.ShelterResponse](t, app.do(t, http.MethodGet, "/shelters/nearest?"+query.Encode(), nil))
	assert.Len(t, got, 4)

	query.Set("limit", "many")
	rec = app.do(t, http.MethodGet, "/shelters/nearest?"+query.Encode(), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_AnonymousFavoritesAreScopedByDevice(t *testing.T) {
	app := newTestApp(t)
	body := map[string]any{"lat": umedaLat, "lon": umedaLon, "title": "自宅", "risk_score": 3}

	rec := app.do(t, http.MethodPost, "/favorites", body, withDevice("device-a"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[handler.FavoriteResponse](t, rec)
	assert.NotZero(t, created.ID)
	require.NotNil(t, created.DeviceID)
	assert.Equal(t, "device-a", *created.DeviceID)
	assert.Nil(t, created.UserID)

	mine := decode[[]handler.FavoriteResponse](t, app.do(t, http.MethodGet, "/favorites", nil, withDevice("device-a")))
	require.Len(t, mine, 1)
	assert.Equal(t, "自宅", mine[0].Title)

	others := decode[[]handler.FavoriteResponse](t, app.do(t, http.MethodGet, "/favorites", nil, withDevice("device-b")))
	assert.Empty(t, others)

	nobody := decode[[]handler.FavoriteResponse](t, app.do(t, http.MethodGet, "/favorites", nil))
	assert.Empty(t, nobody)

	target := "/favorites/" + jsonNumber(created.ID)
	rec = app.do(t, http.MethodDelete, target, nil, withDevice("device-b"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "FAVORITE_NOT_FOUND", errorCode(t, rec))

	rec = app.do(t, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodDelete, target, nil, withDevice("device-a"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"status": "deleted"}, decode[map[string]string](t, rec))
}

func TestServer_FavoriteValidation(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/favorites", map[string]any{"lat": umedaLat, "lon": umedaLon}, withDevice("device-a"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))

	rec = app.do(t, http.MethodPost, "/favorites", map[string]any{"lat": umedaLat, "lon": umedaLon, "title": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DEVICE_ID_REQUIRED", errorCode(t, rec))

	rec = app.do(t, http.MethodDelete, "/favorites/abc", nil, withDevice("device-a"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_RegisterAdoptsDeviceFavorites(t *testing.T) {
	app := newTestApp(t)
	body := map[string]any{"lat": umedaLat, "lon": umedaLon, "title": "職場"}

	for range 2 {
		rec := app.do(t, http.MethodPost, "/favorites", body, withDevice("device-a"))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	reg := app.register(t, "Hanako@Example.com", "device-a")
	assert.NotZero(t, reg.ID)
	assert.Equal(t, "bearer", reg.TokenType)
	assert.Equal(t, int64(2), reg.Transferred)

	owned := decode[[]handler.FavoriteResponse](t, app.do(t, http.MethodGet, "/favorites", nil, withBearer(reg.AccessToken)))
	require.Len(t, owned, 2)
	for _, f := range owned {
		require.NotNil(t, f.UserID)
		assert.Equal(t, reg.ID, *f.UserID)
	}

	// Claimed rows are no longer visible to the bare device.
	deviceOnly := decode[[]handler.FavoriteResponse](t, app.do(t, http.MethodGet, "/favorites", nil, withDevice("device-a")))
	assert.Empty(t, deviceOnly)

	rec := app.do(t, http.MethodPost, "/auth/register", map[string]any{"email": "hanako@example.com", "password": "other"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ACCOUNT_ALREADY_EXISTS", errorCode(t, rec))
}

func TestServer_ClaimDevice(t *testing.T) {
	app := newTestApp(t)
	reg := app.register(t, "taro@example.com", "")

	rec := app.do(t, http.MethodPost, "/favorites", map[string]any{"lat": umedaLat, "lon": umedaLon, "title": "実家"}, withDevice("device-b"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(t, http.MethodPost, "/auth/claim_device", nil, withBearer(reg.AccessToken), withDevice("device-b"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := decode[handler.ClaimResponse](t, rec)
	assert.Equal(t, "ok", first.Status)
	assert.Equal(t, int64(1), first.Transferred)

	rec = app.do(t, http.MethodPost, "/auth/claim_device", nil, withBearer(reg.AccessToken), withDevice("device-b"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), decode[handler.ClaimResponse](t, rec).Transferred)

	rec = app.do(t, http.MethodPost, "/auth/claim_device", nil, withBearer(reg.AccessToken))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DEVICE_ID_REQUIRED", errorCode(t, rec))

	rec = app.do(t, http.MethodPost, "/auth/claim_device", nil, withDevice("device-b"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_TokenForMissingAccountCannotClaim(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/favorites", map[string]any{"lat": umedaLat, "lon": umedaLon, "title": "職場"}, withDevice("device-z"))
	require.Equal(t, http.StatusCreated, rec.Code)

	ghost, err := app.tokens.GenerateAccessToken(424242)
	require.NoError(t, err)

	rec = app.do(t, http.MethodPost, "/auth/claim_device", nil, withBearer(ghost), withDevice("device-z"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))

	rec = app.do(t, http.MethodGet, "/favorites", nil, withBearer(ghost), withDevice("device-z"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodGet, "/me", nil, withBearer(ghost))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	remaining := decode[[]handler.FavoriteResponse](t, app.do(t, http.MethodGet, "/favorites", nil, withDevice("device-z")))
	require.Len(t, remaining, 1)
	assert.Nil(t, remaining[0].UserID)
}

func TestServer_RegisterRejectsPasswordOverByteLimit(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/auth/register", map[string]any{
		"email":    "kana@example.com",
		"password": strings.Repeat("あ", 30),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))

	rec = app.do(t, http.MethodPost, "/auth/register", map[string]any{
		"email":    "kana@example.com",
		"password": strings.Repeat("あ", 24),
	})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestServer_DeviceRegistration(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/users/register", map[string]any{"device_id": "device-d", "nickname": "ゆき"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := decode[handler.DeviceAccountResponse](t, rec)
	assert.Equal(t, "ok", first.Status)
	assert.Equal(t, "device-d", first.DeviceID)
	require.NotNil(t, first.Nickname)
	assert.Equal(t, "ゆき", *first.Nickname)

	rec = app.do(t, http.MethodPost, "/users/register", map[string]any{"device_id": "device-d"})
	require.Equal(t, http.StatusOK, rec.Code)
	again := decode[handler.DeviceAccountResponse](t, rec)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "ゆき", *again.Nickname)

	rec = app.do(t, http.MethodPost, "/users/register", map[string]any{"device_id": "device-d", "nickname": "雪"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "雪", *decode[handler.DeviceAccountResponse](t, rec).Nickname)

	rec = app.do(t, http.MethodPost, "/users/register", map[string]any{"nickname": "no device"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))

	// Email registration from the same device upgrades the device account.
	reg := app.register(t, "yuki@example.com", "device-d")
	assert.Equal(t, first.ID, reg.ID)

	rec = app.do(t, http.MethodGet, "/me", nil, withBearer(reg.AccessToken))
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decode[handler.ProfileResponse](t, rec)
	assert.Equal(t, "yuki@example.com", profile.Email)
	assert.Equal(t, "雪", *profile.Nickname)

	// A credentialed account keeps its device.
	rec = app.do(t, http.MethodPost, "/auth/register", map[string]any{
		"email":     "other@example.com",
		"password":  "correct horse",
		"device_id": "device-d",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DEVICE_ALREADY_REGISTERED", errorCode(t, rec))
}

func TestServer_LoginAndProfile(t *testing.T) {
	app := newTestApp(t)
	reg := app.register(t, "jiro@example.com", "device-c")

	t.Run("json login", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/auth/login", map[string]any{"email": "JIRO@example.com", "password": "correct horse"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		got := decode[handler.TokenResponse](t, rec)
		assert.NotEmpty(t, got.AccessToken)
		assert.Equal(t, "bearer", got.TokenType)
	})

	t.Run("password form login", func(t *testing.T) {
		form := url.Values{"username": {"jiro@example.com"}, "password": {"correct horse"}}
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		app.handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.NotEmpty(t, decode[handler.TokenResponse](t, rec).AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/auth/login", map[string]any{"email": "jiro@example.com", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))
	})

	t.Run("profile", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/me", nil, withBearer(reg.AccessToken))
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[handler.ProfileResponse](t, rec)
		assert.Equal(t, reg.ID, got.ID)
		assert.Equal(t, "jiro@example.com", got.Email)
		require.NotNil(t, got.DeviceID)
		assert.Equal(t, "device-c", *got.DeviceID)
	})

	t.Run("profile without token", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/me", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestServer_InvalidTokenIsRejected(t *testing.T) {
	app := newTestApp(t)

	for _, opt := range []requestOption{
		withBearer("not-a-jwt"),
		withHeader("Authorization", "Basic Zm9vOmJhcg=="),
	} {
		rec := app.do(t, http.MethodGet, "/favorites", nil, opt, withDevice("device-a"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
	}
}

func TestServer_RequestIDAndMetrics(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/risk?lat=34.7&lon=135.5", nil, withHeader("X-Request-Id", "req-123"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))

	rec = app.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hazardmap_risk_lookups_total{outcome="no_match"} 1`)
}

func jsonNumber(id int64) string {
	raw, _ := json.Marshal(id)

	return string(raw)
}
