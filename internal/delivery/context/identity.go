package context

import (
	"hazardmap/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeyIdentity is the key for storing the resolved caller identity in echo.Context.
	KeyIdentity ContextKey = "identity"

	// HeaderXDeviceID carries the anonymous device identity.
	HeaderXDeviceID = "X-Device-ID"
)

// SetIdentity stores the resolved identity in echo.Context.
func SetIdentity(c echo.Context, identity entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the identity resolved for the request. A request that
// never went through identity resolution is anonymous.
func GetIdentity(c echo.Context) entity.Identity {
	if identity, ok := c.Get(string(KeyIdentity)).(entity.Identity); ok {
		return identity
	}

	return entity.Identity{Auth: entity.AuthAbsent}
}
