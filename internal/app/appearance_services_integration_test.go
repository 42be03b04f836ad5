//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/appearance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTestSlide(t *testing.T, services *TestServices, tenantID string, active bool) *appearance.CatalogSlide {
	t.Helper()

	slide, err := services.Appearance.CreateSlide(context.Background(), &appearance.CatalogSlide{
		TenantID: tenantID,
		ImageURL: "https://cdn.loja.dev/banners/promo.png",
		Caption:  "Promoção da semana",
		Active:   active,
	})
	require.NoError(t, err)
	return slide
}

func TestAppearanceService_GetTheme_FallsBackToDefault(t *testing.T) {
	services := SetupTestServices(t)

	tenant, err := services.Tenant.Register(context.Background(), "mercado-central", "Mercado Central")
	require.NoError(t, err)

	theme, err := services.Appearance.GetTheme(context.Background(), tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mercado Central", theme.StoreName)
	assert.Equal(t, "#1F2937", theme.PrimaryColor)
	assert.False(t, theme.ShowWholesalePrices)
}

func TestAppearanceService_UpdateTheme(t *testing.T) {
	services := SetupTestServices(t)

	tenant, err := services.Tenant.Register(context.Background(), "mercado-central", "Mercado Central")
	require.NoError(t, err)

	err = services.Appearance.UpdateTheme(context.Background(), &appearance.ThemeSettings{
		TenantID:            tenant.ID,
		StoreName:           "Mercado do Bairro",
		PrimaryColor:        "#0F766E",
		SecondaryColor:      "#F59E0B",
		ShowWholesalePrices: true,
	})
	require.NoError(t, err)

	theme, err := services.Appearance.GetTheme(context.Background(), tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mercado do Bairro", theme.StoreName)
	assert.Equal(t, "#0F766E", theme.PrimaryColor)
	assert.True(t, theme.ShowWholesalePrices)
}

func TestAppearanceService_CreateSlide_AppendsPosition(t *testing.T) {
	services := SetupTestServices(t)

	tenant, err := services.Tenant.Register(context.Background(), "mercado-central", "Mercado Central")
	require.NoError(t, err)

	first := seedTestSlide(t, services, tenant.ID, true)
	second := seedTestSlide(t, services, tenant.ID, true)
	assert.Equal(t, 0, first.Position)
	assert.Equal(t, 1, second.Position)

	// Deleting the first slide leaves a gap; the next slide still lands after
	// the highest surviving position
	require.NoError(t, services.Appearance.DeleteSlide(context.Background(), tenant.ID, first.ID))
	third := seedTestSlide(t, services, tenant.ID, true)
	assert.Equal(t, 2, third.Position)
}

func TestAppearanceService_ReorderSlides(t *testing.T) {
	services := SetupTestServices(t)

	tenant, err := services.Tenant.Register(context.Background(), "mercado-central", "Mercado Central")
	require.NoError(t, err)

	first := seedTestSlide(t, services, tenant.ID, true)
	second := seedTestSlide(t, services, tenant.ID, true)

	require.NoError(t, services.Appearance.ReorderSlides(context.Background(), tenant.ID, []string{second.ID, first.ID}))

	listed, err := services.Appearance.ListSlides(context.Background(), tenant.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)

	err = services.Appearance.ReorderSlides(context.Background(), tenant.ID, []string{first.ID})
	assert.ErrorIs(t, err, appearance.ErrSlideSetMismatch)
}

func TestAppearanceService_Storefront(t *testing.T) {
	services := SetupTestServices(t)

	tenant, err := services.Tenant.Register(context.Background(), "mercado-central", "Mercado Central")
	require.NoError(t, err)

	seedTestSlide(t, services, tenant.ID, true)
	seedTestSlide(t, services, tenant.ID, false)

	view, err := services.Appearance.Storefront(context.Background(), tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mercado Central", view.Theme.StoreName)
	assert.Len(t, view.Slides, 1)
}
