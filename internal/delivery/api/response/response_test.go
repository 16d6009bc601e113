package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "hazardmap/internal/domain/errors"
	"hazardmap/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAppError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		committed bool
		wantCode  int
	}{
		{name: "client error is rendered", err: errors.Wrap(domainerrors.ErrUnauthorized, "me"), committed: true, wantCode: http.StatusUnauthorized},
		{name: "server app error is returned", err: domainerrors.ErrInternalError},
		{name: "database error is returned", err: domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "insert favorite")},
		{name: "plain error is returned", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			err := HandleAppError(c, tt.err)

			assert.Equal(t, tt.committed, c.Response().Committed)
			if tt.committed {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCode, rec.Code)

				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
