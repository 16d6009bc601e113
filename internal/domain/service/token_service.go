package service

import (
	"time"

	"hazardmap/internal/domain/entity"
)

// TokenType is the token_type value returned alongside issued tokens.
const TokenType = "bearer"

// AuthResult is the outcome of inspecting an Authorization header.
type AuthResult struct {
	State  entity.AuthState
	UserID int64
}

// TokenService issues and verifies bearer access tokens.
type TokenService interface {
	GenerateAccessToken(userID int64) (string, error)
	// Authenticate never fails: an empty token yields AuthAbsent and any
	// malformed, expired or foreign token yields AuthInvalid.
	Authenticate(token string) AuthResult
	AccessTokenTTL() time.Duration
}
