package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"alumnihub/config"
	domainerrors "alumnihub/internal/domain/errors"
	"alumnihub/internal/domain/service"
	"alumnihub/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Token = "test-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenSvc
}

func newEchoContext(req *http.Request) echo.Context {
	e := echo.New()

	return e.NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_CookieToken(t *testing.T) {
	tokenSvc := newTestTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	alumniID := uuid.New()
	token, err := tokenSvc.Issue(alumniID, "grace@example.com", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	c := newEchoContext(req)

	var seen *service.SessionClaims
	err = m.Authenticate(func(c echo.Context) error {
		seen = GetClaims(c)

		return okHandler(c)
	})(c)

	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, alumniID, seen.AlumniID)
	assert.Equal(t, "grace@example.com", seen.Email)
	assert.False(t, seen.IsAdmin)
}

func TestAuthenticate_BearerFallback(t *testing.T) {
	tokenSvc := newTestTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	token, err := tokenSvc.Issue(uuid.New(), "grace@example.com", true)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	c := newEchoContext(req)

	err = m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	require.NotNil(t, GetClaims(c))
	assert.True(t, GetClaims(c).IsAdmin)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	m := NewAuthMiddleware(newTestTokenService(t))

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	c := newEchoContext(req)

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrNoToken)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	m := NewAuthMiddleware(newTestTokenService(t))

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "not-a-jwt"})
	c := newEchoContext(req)

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestRequireAdmin(t *testing.T) {
	m := NewAuthMiddleware(newTestTokenService(t))

	t.Run("non-admin is rejected", func(t *testing.T) {
		c := newEchoContext(httptest.NewRequest(http.MethodGet, "/admin/pending", nil))
		c.Set(ContextKeyClaims, &service.SessionClaims{AlumniID: uuid.New(), IsAdmin: false})

		err := m.RequireAdmin(okHandler)(c)
		assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
	})

	t.Run("admin passes", func(t *testing.T) {
		c := newEchoContext(httptest.NewRequest(http.MethodGet, "/admin/pending", nil))
		c.Set(ContextKeyClaims, &service.SessionClaims{AlumniID: uuid.New(), IsAdmin: true})

		err := m.RequireAdmin(okHandler)(c)
		assert.NoError(t, err)
	})

	t.Run("no claims is rejected", func(t *testing.T) {
		c := newEchoContext(httptest.NewRequest(http.MethodGet, "/admin/pending", nil))

		err := m.RequireAdmin(okHandler)(c)
		assert.ErrorIs(t, err, domainerrors.ErrNoToken)
	})
}
