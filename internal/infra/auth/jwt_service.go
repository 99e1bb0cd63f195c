// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"alumnihub/config"
	"alumnihub/internal/domain/service"
	"alumnihub/internal/errors"
)

// sessionTokenTTL is the fixed validity window for every session token.
// There is no refresh flow; clients re-authenticate after expiry.
const sessionTokenTTL = 7 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface
// using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Token),
		ttl:    sessionTokenTTL,
	}, nil
}

// Issue creates a signed HS256 token carrying the account id, email and
// admin flag, expiring after the fixed window.
func (s *jwtService) Issue(alumniID uuid.UUID, email string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := &service.SessionClaims{
		AlumniID: alumniID,
		Email:    email,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify parses and validates a token string. Expiry is reported as
// service.ErrTokenExpired; every other failure collapses to
// service.ErrTokenInvalid so forged tokens reveal nothing.
func (s *jwtService) Verify(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	return claims, nil
}

// TokenDuration returns the fixed validity window.
func (s *jwtService) TokenDuration() time.Duration {
	return s.ttl
}
