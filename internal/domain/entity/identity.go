package entity

// AuthState is the outcome of checking a request's bearer credentials.
type AuthState int

const (
	// AuthAbsent means the request carried no credentials.
	AuthAbsent AuthState = iota
	// AuthValid means the credentials resolved to an existing account.
	AuthValid
	// AuthInvalid means credentials were sent but could not be verified.
	AuthInvalid
)

// String implements fmt.Stringer.
func (s AuthState) String() string {
	switch s {
	case AuthValid:
		return "valid"
	case AuthInvalid:
		return "invalid"
	default:
		return "absent"
	}
}

// Identity is asserted per request by the authentication collaborator. It is never persisted.
type Identity struct {
	Auth     AuthState
	UserID   int64  // Meaningful only when Auth == AuthValid.
	DeviceID string // Empty when the request had no device header.
}

// IsAuthenticated reports whether a verified account backs the request.
func (i Identity) IsAuthenticated() bool {
	return i.Auth == AuthValid
}

// HasDevice reports whether the request carried a device identity.
func (i Identity) HasDevice() bool {
	return i.DeviceID != ""
}

// Scope resolves which records the identity may read or delete.
// An authenticated user is scoped to its account only; the device id is ignored.
func (i Identity) Scope() OwnerScope {
	if i.IsAuthenticated() {
		return OwnerScope{Kind: ScopeUser, UserID: i.UserID}
	}
	if i.HasDevice() {
		return OwnerScope{Kind: ScopeDevice, DeviceID: i.DeviceID}
	}

	return OwnerScope{Kind: ScopeNone}
}

// ScopeKind enumerates the ownership scopes a favorite query can run under.
type ScopeKind int

const (
	ScopeNone ScopeKind = iota
	ScopeUser
	ScopeDevice
)

// OwnerScope is the ownership filter applied to favorite reads and deletes.
type OwnerScope struct {
	Kind     ScopeKind
	UserID   int64
	DeviceID string
}

// IsNone reports whether the scope matches nothing.
func (s OwnerScope) IsNone() bool {
	return s.Kind == ScopeNone
}
