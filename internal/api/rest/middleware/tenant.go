package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
)

// TenantHeader names the store on public storefront requests.
const TenantHeader = "X-Tenant"

// ResolveTenant maps the X-Tenant header to an active tenant and stores its
// ID on the request context. Unknown or inactive tenants get a 404 so slugs
// cannot be probed apart from missing ones.
func ResolveTenant(tenantService identity.TenantService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		slug := ctx.GetHeader(TenantHeader)
		if slug == "" {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "missing X-Tenant header"})
			return
		}

		tenant, err := tenantService.GetBySlug(ctx, slug)
		if err != nil || !tenant.Active {
			ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "store not found"})
			return
		}

		ctx.Set(ContextTenantID, tenant.ID)
		ctx.Next()
	}
}
