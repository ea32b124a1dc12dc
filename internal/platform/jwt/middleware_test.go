package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetUint(ContextUserID),
			"is_admin": c.GetBool(ContextIsAdmin),
		})
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	const secret = "test-secret"

	t.Run("valid token passes and populates the actor claims", func(t *testing.T) {
		t.Setenv(EnvKeyJWTSecret, secret)
		r := setupProtectedRouter()

		signed, err := NewGenerator(secret, time.Hour).GenerateToken(42, "admin@example.com", true)
		require.NoError(t, err, "failed to generate token")

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":42,"is_admin":true}`, w.Body.String())
	})

	t.Run("missing Authorization header returns 401", func(t *testing.T) {
		t.Setenv(EnvKeyJWTSecret, secret)
		r := setupProtectedRouter()

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed token returns 401", func(t *testing.T) {
		t.Setenv(EnvKeyJWTSecret, secret)
		r := setupProtectedRouter()

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret returns 401", func(t *testing.T) {
		t.Setenv(EnvKeyJWTSecret, secret)
		r := setupProtectedRouter()

		signed, err := NewGenerator("other-secret", time.Hour).GenerateToken(1, "a@example.com", false)
		require.NoError(t, err, "failed to generate token")

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token returns 401", func(t *testing.T) {
		t.Setenv(EnvKeyJWTSecret, secret)
		r := setupProtectedRouter()

		signed, err := NewGenerator(secret, -time.Minute).GenerateToken(1, "a@example.com", false)
		require.NoError(t, err, "failed to generate token")

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unexpected signing algorithm is rejected", func(t *testing.T) {
		t.Setenv(EnvKeyJWTSecret, secret)
		r := setupProtectedRouter()

		// alg=none tokens must never verify
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": 1})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err, "failed to build token")

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing server secret returns 500", func(t *testing.T) {
		t.Setenv(EnvKeyJWTSecret, "")
		r := setupProtectedRouter()

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer whatever")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
