package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hazardmap/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestIdentity_DefaultsToAnonymous(t *testing.T) {
	c := newEchoContext()

	identity := GetIdentity(c)
	assert.Equal(t, entity.AuthAbsent, identity.Auth)
	assert.True(t, identity.Scope().IsNone())
}

func TestIdentity_RoundTrip(t *testing.T) {
	c := newEchoContext()
	SetIdentity(c, entity.Identity{Auth: entity.AuthValid, UserID: 3, DeviceID: "d1"})

	identity := GetIdentity(c)
	assert.Equal(t, int64(3), identity.UserID)
	assert.Equal(t, "d1", identity.DeviceID)
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	assert.NotEmpty(t, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestAcceptRequestID(t *testing.T) {
	assert.True(t, AcceptRequestID("req-1"))
	assert.True(t, AcceptRequestID("9f0c2a4e-1d3b-4c5a-8e7f-0a1b2c3d4e5f"))
	assert.False(t, AcceptRequestID(""))
	assert.False(t, AcceptRequestID("has space"))
	assert.False(t, AcceptRequestID("line\nbreak"))
	assert.False(t, AcceptRequestID(strings.Repeat("a", 129)))
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.DiscardHandler)
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}
