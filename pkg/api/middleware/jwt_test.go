package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims *Claims, secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (echo.Context, *httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, rec, handler(c)
}

func TestJWTMiddleware(t *testing.T) {
	t.Run("Success - valid token populates the context", func(t *testing.T) {
		token := signToken(t, &Claims{
			TenantID: 42,
			Email:    "user@example.com",
			Role:     "member",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, testSecret)

		c, rec, err := invoke(t, JWTMiddleware(testSecret), "Bearer "+token)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		tenantID, ok := TenantID(c)
		require.True(t, ok)
		assert.Equal(t, 42, tenantID)
		assert.Equal(t, "user@example.com", c.Get("email"))
	})

	t.Run("Failure - missing header", func(t *testing.T) {
		_, _, err := invoke(t, JWTMiddleware(testSecret), "")
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("Failure - malformed header", func(t *testing.T) {
		_, _, err := invoke(t, JWTMiddleware(testSecret), "Token abc")
		require.Error(t, err)
	})

	t.Run("Failure - expired token", func(t *testing.T) {
		token := signToken(t, &Claims{
			TenantID: 42,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}, testSecret)

		_, _, err := invoke(t, JWTMiddleware(testSecret), "Bearer "+token)
		require.Error(t, err)
	})

	t.Run("Failure - wrong signing key", func(t *testing.T) {
		token := signToken(t, &Claims{
			TenantID: 42,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, "other-secret")

		_, _, err := invoke(t, JWTMiddleware(testSecret), "Bearer "+token)
		require.Error(t, err)
	})
}

func TestAdminMiddleware(t *testing.T) {
	t.Run("Success - admin role passes", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("role", "admin")

		handler := AdminMiddleware()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Failure - non-admin role is forbidden", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("role", "member")

		handler := AdminMiddleware()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		err := handler(c)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})
}
