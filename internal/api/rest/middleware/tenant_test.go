//go:build unit
// +build unit

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
)

type stubTenantService struct {
	tenants map[string]*identity.Tenant
}

func (s *stubTenantService) Register(ctx context.Context, slug, name string) (*identity.Tenant, error) {
	return nil, identity.ErrTenantNotFound
}

func (s *stubTenantService) GetBySlug(ctx context.Context, slug string) (*identity.Tenant, error) {
	tenant, ok := s.tenants[slug]
	if !ok {
		return nil, identity.ErrTenantNotFound
	}
	return tenant, nil
}

func (s *stubTenantService) List(ctx context.Context) ([]*identity.Tenant, error) {
	return nil, nil
}

func tenantTestRouter(tenants map[string]*identity.Tenant) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/store", ResolveTenant(&stubTenantService{tenants: tenants}), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"tenant": TenantID(ctx)})
	})

	return r
}

func TestResolveTenant_ActiveTenant(t *testing.T) {
	r := tenantTestRouter(map[string]*identity.Tenant{
		"mercado-central": {ID: "6f1e1d9a-7f48-4f44-9e6e-2f6a7a6b8c01", Slug: "mercado-central", Name: "Mercado Central", Active: true},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/store", nil)
	req.Header.Set(TenantHeader, "mercado-central")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "6f1e1d9a-7f48-4f44-9e6e-2f6a7a6b8c01")
}

func TestResolveTenant_MissingHeader(t *testing.T) {
	r := tenantTestRouter(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/store", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveTenant_UnknownSlug(t *testing.T) {
	r := tenantTestRouter(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/store", nil)
	req.Header.Set(TenantHeader, "nao-existe")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestResolveTenant_InactiveTenant(t *testing.T) {
	r := tenantTestRouter(map[string]*identity.Tenant{
		"mercado-central": {ID: "6f1e1d9a-7f48-4f44-9e6e-2f6a7a6b8c01", Slug: "mercado-central", Name: "Mercado Central", Active: false},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/store", nil)
	req.Header.Set(TenantHeader, "mercado-central")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
