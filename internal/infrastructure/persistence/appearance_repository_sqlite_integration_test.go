//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/appearance"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestSlide(tenantID string, position int) *appearance.CatalogSlide {
	return &appearance.CatalogSlide{
		ID:       uuid.NewString(),
		TenantID: tenantID,
		ImageURL: "https://cdn.loja.dev/banners/promo.png",
		Caption:  "Promoção da semana",
		Position: position,
		Active:   true,
	}
}

func TestThemeSqliteRepository_Get_NotFound(t *testing.T) {
	ctx := SetupTestDB(t)

	theme, err := ctx.ThemeRepo.Get(context.Background(), uuid.NewString())
	assert.Nil(t, theme)
	assert.ErrorIs(t, err, appearance.ErrThemeNotFound)
}

func TestThemeSqliteRepository_Upsert(t *testing.T) {
	ctx := SetupTestDB(t)

	tenantID := uuid.NewString()
	theme := appearance.DefaultTheme(tenantID, "Mercado Central")

	require.NoError(t, ctx.ThemeRepo.Upsert(context.Background(), theme))

	fetched, err := ctx.ThemeRepo.Get(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, "Mercado Central", fetched.StoreName)
	assert.Equal(t, "#1F2937", fetched.PrimaryColor)

	// A second upsert updates the existing row in place
	theme.PrimaryColor = "#0F766E"
	theme.ShowWholesalePrices = true
	require.NoError(t, ctx.ThemeRepo.Upsert(context.Background(), theme))

	updated, err := ctx.ThemeRepo.Get(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, "#0F766E", updated.PrimaryColor)
	assert.True(t, updated.ShowWholesalePrices)
}

func TestSlideSqliteRepository_CreateAndList(t *testing.T) {
	ctx := SetupTestDB(t)

	tenantID := uuid.NewString()
	second := buildTestSlide(tenantID, 1)
	first := buildTestSlide(tenantID, 0)
	inactive := buildTestSlide(tenantID, 2)
	inactive.Active = false

	require.NoError(t, ctx.SlideRepo.Create(context.Background(), second))
	require.NoError(t, ctx.SlideRepo.Create(context.Background(), first))
	require.NoError(t, ctx.SlideRepo.Create(context.Background(), inactive))

	listed, err := ctx.SlideRepo.List(context.Background(), tenantID, false)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, first.ID, listed[0].ID)
	assert.Equal(t, second.ID, listed[1].ID)

	activeOnly, err := ctx.SlideRepo.List(context.Background(), tenantID, true)
	require.NoError(t, err)
	assert.Len(t, activeOnly, 2)
}

func TestSlideSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t)

	slide, err := ctx.SlideRepo.GetByID(context.Background(), uuid.NewString(), uuid.NewString())
	assert.Nil(t, slide)
	assert.ErrorIs(t, err, appearance.ErrSlideNotFound)
}

func TestSlideSqliteRepository_Reorder(t *testing.T) {
	ctx := SetupTestDB(t)

	tenantID := uuid.NewString()
	first := buildTestSlide(tenantID, 0)
	second := buildTestSlide(tenantID, 1)
	require.NoError(t, ctx.SlideRepo.Create(context.Background(), first))
	require.NoError(t, ctx.SlideRepo.Create(context.Background(), second))

	err := ctx.SlideRepo.Reorder(context.Background(), tenantID, []string{second.ID, first.ID})
	require.NoError(t, err)

	listed, err := ctx.SlideRepo.List(context.Background(), tenantID, false)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}

func TestSlideSqliteRepository_Reorder_SetMismatch(t *testing.T) {
	ctx := SetupTestDB(t)

	tenantID := uuid.NewString()
	first := buildTestSlide(tenantID, 0)
	second := buildTestSlide(tenantID, 1)
	require.NoError(t, ctx.SlideRepo.Create(context.Background(), first))
	require.NoError(t, ctx.SlideRepo.Create(context.Background(), second))

	// Incomplete id set
	err := ctx.SlideRepo.Reorder(context.Background(), tenantID, []string{first.ID})
	assert.ErrorIs(t, err, appearance.ErrSlideSetMismatch)

	// Right size but an unknown id
	err = ctx.SlideRepo.Reorder(context.Background(), tenantID, []string{first.ID, uuid.NewString()})
	assert.ErrorIs(t, err, appearance.ErrSlideSetMismatch)

	// Positions stay untouched after the failed reorders
	listed, err := ctx.SlideRepo.List(context.Background(), tenantID, false)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)
}

func TestSlideSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t)

	tenantID := uuid.NewString()
	slide := buildTestSlide(tenantID, 0)
	require.NoError(t, ctx.SlideRepo.Create(context.Background(), slide))

	require.NoError(t, ctx.SlideRepo.DeleteByID(context.Background(), tenantID, slide.ID))

	_, err := ctx.SlideRepo.GetByID(context.Background(), tenantID, slide.ID)
	assert.ErrorIs(t, err, appearance.ErrSlideNotFound)
}
