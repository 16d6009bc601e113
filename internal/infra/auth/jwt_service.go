// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"hazardmap/config"
	"hazardmap/internal/domain/entity"
	"hazardmap/internal/domain/service"
	"hazardmap/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

const accessTokenType = "access"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	clock        clockwork.Clock
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config, clock clockwork.Clock) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := cfg.Auth.AccessTokenTTL
	if ttl <= 0 {
		return nil, errors.New("access token ttl must be positive")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		clock:        clock,
	}, nil
}

// GenerateAccessToken signs an HS256 token whose subject is the decimal account id.
func (s *jwtService) GenerateAccessToken(userID int64) (string, error) {
	now := s.clock.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10), // Subject (who the token is for)
		"iat":  now.Unix(),                    // Issued At
		"exp":  now.Add(s.accessTTL).Unix(),   // Expiration Time
		"type": accessTokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Authenticate classifies a bearer token without returning an error.
func (s *jwtService) Authenticate(tokenString string) service.AuthResult {
	if tokenString == "" {
		return service.AuthResult{State: entity.AuthAbsent}
	}

	userID, err := s.parse(tokenString)
	if err != nil {
		return service.AuthResult{State: entity.AuthInvalid}
	}

	return service.AuthResult{State: entity.AuthValid, UserID: userID}
}

// AccessTokenTTL returns the configured lifetime of access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

func (s *jwtService) parse(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	},
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("unexpected claims type")
	}

	if tokenType, _ := claims["type"].(string); tokenType != accessTokenType {
		return 0, errors.New("not an access token")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read subject")
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, errors.New("subject is not an account id")
	}

	return userID, nil
}
