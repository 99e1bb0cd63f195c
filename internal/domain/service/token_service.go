// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within
// a single entity.
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenExpired is returned by Verify for a well-formed token past its
// validity window. Distinct from ErrTokenInvalid so the caller can tell
// "please log in again" apart from a malformed or forged token.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid is returned by Verify for malformed or forged tokens.
var ErrTokenInvalid = errors.New("token invalid")

// SessionClaims is the identity bundle embedded in every session token.
type SessionClaims struct {
	AlumniID uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited session tokens.
// Tokens are stateless: validity is purely a function of signature and
// expiry, and there is no revocation list.
type TokenService interface {
	// Issue creates a signed token embedding the identity and admin flag.
	Issue(alumniID uuid.UUID, email string, isAdmin bool) (string, error)

	// Verify checks signature then expiry, returning the decoded claims,
	// ErrTokenExpired, or ErrTokenInvalid.
	Verify(token string) (*SessionClaims, error)

	// TokenDuration returns the fixed validity window, used for cookie max age.
	TokenDuration() time.Duration
}
