// Package middleware contains the HTTP middleware of the delivery layer.
package middleware

import (
	"strings"

	domainerrors "alumnihub/internal/domain/errors"
	"alumnihub/internal/domain/service"
	"alumnihub/internal/errors"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for handlers downstream.
const (
	// ContextKeyClaims holds the *service.SessionClaims of the caller.
	ContextKeyClaims = "sessionClaims"
)

// sessionCookieName is the cookie the browser client carries the token in.
const sessionCookieName = "token"

// AuthMiddleware validates the session token and gates admin routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// extractToken prefers the session cookie; the Authorization header is the
// fallback for non-browser clients.
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	return ""
}

// Authenticate validates the session token and stores the claims on the
// context. Expired tokens are reported distinctly so clients can prompt a
// re-login rather than treat the session as forged.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return domainerrors.ErrNoToken
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return domainerrors.ErrTokenExpired
			}

			return domainerrors.ErrTokenInvalid
		}

		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}

// RequireAdmin rejects callers whose token lacks the admin flag.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(ContextKeyClaims).(*service.SessionClaims)
		if !ok {
			return domainerrors.ErrNoToken
		}
		if !claims.IsAdmin {
			return domainerrors.ErrAdminRequired
		}

		return next(c)
	}
}

// GetClaims returns the session claims set by Authenticate, or nil on a
// public route.
func GetClaims(c echo.Context) *service.SessionClaims {
	claims, _ := c.Get(ContextKeyClaims).(*service.SessionClaims)

	return claims
}
