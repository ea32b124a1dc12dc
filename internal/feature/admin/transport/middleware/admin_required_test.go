package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"shop_backend/internal/feature/admin/authz"
	jwtmw "shop_backend/internal/platform/jwt"
)

// setupRouter wires a protected route behind RequireResource, with a stub
// that plants the actor claims the way jwtmw.AuthRequired would.
func setupRouter(userID uint, isAdmin bool, resource authz.Resource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping",
		func(c *gin.Context) {
			c.Set(jwtmw.ContextUserID, userID)
			c.Set(jwtmw.ContextIsAdmin, isAdmin)
		},
		RequireResource(resource),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		},
	)
	return r
}

func TestRequireResource(t *testing.T) {
	t.Run("admin actor passes through", func(t *testing.T) {
		r := setupRouter(1, true, authz.ResourceDashboard)

		req, _ := http.NewRequest(http.MethodGet, "/admin/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "admin should reach the handler")
	})

	t.Run("non-admin actor is rejected with 403", func(t *testing.T) {
		r := setupRouter(2, false, authz.ResourceDashboard)

		req, _ := http.NewRequest(http.MethodGet, "/admin/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code, "non-admin must be rejected")
		assert.JSONEq(t, `{"error":"admin access required"}`, w.Body.String())
	})

	t.Run("missing claims are treated as anonymous and rejected", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/admin/ping", RequireResource(authz.ResourceOrders), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest(http.MethodGet, "/admin/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code, "anonymous requests must be rejected")
	})
}
