//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_Create_DuplicateSKU(t *testing.T) {
	services := SetupTestServices(t)

	tenantID := uuid.NewString()
	product := SeedProduct(t, services, tenantID, 10)

	_, err := services.Product.Create(context.Background(), &catalog.Product{
		TenantID:    tenantID,
		SKU:         product.SKU,
		Name:        "Outro Produto",
		RetailPrice: 500,
		Active:      true,
	})
	assert.ErrorIs(t, err, catalog.ErrDuplicateSKU)
}

func TestProductService_Create_UnknownCategory(t *testing.T) {
	services := SetupTestServices(t)

	_, err := services.Product.Create(context.Background(), &catalog.Product{
		TenantID:    uuid.NewString(),
		CategoryID:  uuid.NewString(),
		SKU:         "REF-2L-001",
		Name:        "Refrigerante 2L",
		RetailPrice: 899,
		Active:      true,
	})
	assert.ErrorIs(t, err, catalog.ErrCategoryNotFound)
}

func TestProductService_Update_SKUCollision(t *testing.T) {
	services := SetupTestServices(t)

	tenantID := uuid.NewString()
	first := SeedProduct(t, services, tenantID, 10)
	second := SeedProduct(t, services, tenantID, 10)

	second.SKU = first.SKU
	err := services.Product.Update(context.Background(), second)
	assert.ErrorIs(t, err, catalog.ErrDuplicateSKU)
}

func TestProductService_AdjustStock(t *testing.T) {
	services := SetupTestServices(t)

	tenantID := uuid.NewString()
	product := SeedProduct(t, services, tenantID, 10)

	require.NoError(t, services.Product.AdjustStock(context.Background(), tenantID, product.ID, -4))

	stored, err := services.Product.GetByID(context.Background(), tenantID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, stored.Stock)

	err = services.Product.AdjustStock(context.Background(), tenantID, product.ID, -7)
	assert.ErrorIs(t, err, catalog.ErrInsufficientStock)

	// A zero delta is a no-op
	require.NoError(t, services.Product.AdjustStock(context.Background(), tenantID, product.ID, 0))
}

func TestCategoryService_Delete_InUse(t *testing.T) {
	services := SetupTestServices(t)

	tenantID := uuid.NewString()
	category, err := services.Category.Create(context.Background(), tenantID, "Bebidas", 0)
	require.NoError(t, err)

	product, err := services.Product.Create(context.Background(), &catalog.Product{
		TenantID:    tenantID,
		CategoryID:  category.ID,
		SKU:         "REF-2L-001",
		Name:        "Refrigerante 2L",
		RetailPrice: 899,
		Active:      true,
	})
	require.NoError(t, err)

	err = services.Category.Delete(context.Background(), tenantID, category.ID)
	assert.ErrorIs(t, err, catalog.ErrCategoryInUse)

	// Once the product is gone the category can be removed
	require.NoError(t, services.Product.Delete(context.Background(), tenantID, product.ID))
	require.NoError(t, services.Category.Delete(context.Background(), tenantID, category.ID))

	listed, err := services.Category.List(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestProductService_ListLowStock(t *testing.T) {
	services := SetupTestServices(t)

	tenantID := uuid.NewString()
	low := SeedProduct(t, services, tenantID, 2)
	SeedProduct(t, services, tenantID, 50)

	listed, err := services.Product.ListLowStock(context.Background(), tenantID, 5)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, low.ID, listed[0].ID)
}
