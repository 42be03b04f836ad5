// Package middleware carries the cross-cutting HTTP concerns of the REST API:
// authentication, permission checks, tenant resolution, rate limiting and
// request metrics.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/token"
)

// Context keys set by the middleware chain.
const (
	ContextClaims   = "claims"
	ContextTenantID = "tenantID"
)

// RequireAuth validates the Bearer token and stores its claims plus the
// tenant it belongs to on the request context.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}

		claims, err := token.Parse(jwtSecret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		ctx.Set(ContextClaims, claims)
		ctx.Set(ContextTenantID, claims.TenantID)
		ctx.Next()
	}
}

// RequirePermission rejects requests whose token lacks the permission.
// It must run after RequireAuth.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims := ClaimsFrom(ctx)
		if claims == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}
		if !claims.HasPermission(permission) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "permission denied"})
			return
		}
		ctx.Next()
	}
}

// ClaimsFrom returns the token claims stored by RequireAuth, or nil.
func ClaimsFrom(ctx *gin.Context) *token.Claims {
	value, ok := ctx.Get(ContextClaims)
	if !ok {
		return nil
	}
	claims, ok := value.(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}

// TenantID returns the tenant resolved for the request, or "".
func TenantID(ctx *gin.Context) string {
	return ctx.GetString(ContextTenantID)
}
