// Package middleware provides the admin access guard.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/admin/authz"
	jwtmw "shop_backend/internal/platform/jwt"
)

// RequireResource returns a Gin middleware that consults the authorization
// policy for the given resource. It expects jwtmw.AuthRequired to have run
// first and populated the actor claims in the context.
func RequireResource(resource authz.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := authz.Actor{
			UserID:  c.GetUint(jwtmw.ContextUserID),
			IsAdmin: c.GetBool(jwtmw.ContextIsAdmin),
		}
		if !authz.Allowed(actor, resource) {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "admin access required"})
			return
		}
		c.Next()
	}
}
