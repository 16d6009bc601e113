package middleware

import (
	"strings"

	"hazardmap/internal/delivery/api/response"
	deliverycontext "hazardmap/internal/delivery/context"
	"hazardmap/internal/domain/entity"
	domainerrors "hazardmap/internal/domain/errors"
	"hazardmap/internal/domain/repository"
	"hazardmap/internal/domain/service"
	"hazardmap/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "bearer"

// IdentityMiddleware resolves who is calling from the Authorization and
// X-Device-ID headers. Resolution itself never rejects a request; the
// Reject/Require variants decide what an unusable identity means per route.
type IdentityMiddleware struct {
	tokenSvc    service.TokenService
	accountRepo repository.AccountRepository
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(tokenSvc service.TokenService, accountRepo repository.AccountRepository) *IdentityMiddleware {
	return &IdentityMiddleware{
		tokenSvc:    tokenSvc,
		accountRepo: accountRepo,
	}
}

// Resolve attaches the caller's entity.Identity to the echo context.
func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := entity.Identity{
			Auth:     entity.AuthAbsent,
			DeviceID: strings.TrimSpace(c.Request().Header.Get(deliverycontext.HeaderXDeviceID)),
		}

		if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
			token, ok := bearerToken(header)
			if !ok {
				identity.Auth = entity.AuthInvalid
			} else {
				result := m.tokenSvc.Authenticate(token)
				identity.Auth = result.State
				identity.UserID = result.UserID
			}
		}

		if identity.IsAuthenticated() {
			exists, err := m.accountExists(c, identity.UserID)
			if err != nil {
				return err
			}
			if !exists {
				identity.Auth = entity.AuthInvalid
				identity.UserID = 0
			}
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// accountExists reports whether a verified token still names a stored account.
// A signed token for a deleted or never created account is not an identity.
func (m *IdentityMiddleware) accountExists(c echo.Context, userID int64) (bool, error) {
	_, err := m.accountRepo.FindByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to resolve token account")
	}

	return true, nil
}

// RejectInvalid answers 401 when credentials were sent but did not verify.
// Anonymous requests pass through.
func (m *IdentityMiddleware) RejectInvalid(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetIdentity(c).Auth == entity.AuthInvalid {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		return next(c)
	}
}

// RequireAuth answers 401 unless the request carries a valid bearer token.
// It must be used after Resolve.
func (m *IdentityMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !deliverycontext.GetIdentity(c).IsAuthenticated() {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		return next(c)
	}
}

// bearerToken extracts the token of a "Bearer <token>" header. The scheme is
// matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}
