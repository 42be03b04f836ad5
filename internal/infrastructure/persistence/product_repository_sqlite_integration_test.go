//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/infrastructure/persistence/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t)

	tenantID := uuid.NewString()
	product := CreateTestProduct(t, tenantID, 10)

	err := ctx.ProductRepo.Create(context.Background(), product)
	require.NoError(t, err)

	var created models.ProductModel
	err = ctx.DB.First(&created, "id = ?", product.ID).Error
	require.NoError(t, err)
	assert.Equal(t, product.SKU, created.SKU)
	assert.Equal(t, 10, created.Stock)
}

func TestProductSqliteRepository_Create_InactiveStaysInactive(t *testing.T) {
	ctx := SetupTestDB(t)

	tenantID := uuid.NewString()
	product := CreateTestProduct(t, tenantID, 10)
	product.Active = false

	require.NoError(t, ctx.ProductRepo.Create(context.Background(), product))

	fetched, err := ctx.ProductRepo.GetByID(context.Background(), tenantID, product.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Active)

	// An uncategorized product stores NULL, not '', in the uuid column
	var created models.ProductModel
	require.NoError(t, ctx.DB.First(&created, "id = ?", product.ID).Error)
	assert.Nil(t, created.CategoryID)
}

func TestProductSqliteRepository_Create_ValidationError(t *testing.T) {
	ctx := SetupTestDB(t)

	invalidProduct := &catalog.Product{} // Missing required fields

	err := ctx.ProductRepo.Create(context.Background(), invalidProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestProductSqliteRepository_Create_DuplicateSKU(t *testing.T) {
	ctx := SetupTestDB(t)

	tenantID := uuid.NewString()
	product := CreateTestProduct(t, tenantID, 10)
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), product))

	duplicate := CreateTestProduct(t, tenantID, 5)
	duplicate.SKU = product.SKU
	err := ctx.ProductRepo.Create(context.Background(), duplicate)
	assert.Error(t, err)

	// The same SKU is fine under another tenant
	foreign := CreateTestProduct(t, uuid.NewString(), 5)
	foreign.SKU = product.SKU
	assert.NoError(t, ctx.ProductRepo.Create(context.Background(), foreign))
}

func TestProductSqliteRepository_GetBySKU(t *testing.T) {
	ctx := SetupTestDB(t)

	tenantID := uuid.NewString()
	product := CreateTestProduct(t, tenantID, 10)
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), product))

	fetched, err := ctx.ProductRepo.GetBySKU(context.Background(), tenantID, product.SKU)
	require.NoError(t, err)
	assert.Equal(t, product.ID, fetched.ID)

	_, err = ctx.ProductRepo.GetBySKU(context.Background(), tenantID, "SKU-MISSING")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestProductSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t)

	product, err := ctx.ProductRepo.GetByID(context.Background(), uuid.NewString(), uuid.NewString())
	assert.Nil(t, product)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestProductSqliteRepository_AdjustStock(t *testing.T) {
	ctx := SetupTestDB(t)

	tenantID := uuid.NewString()
	product := CreateTestProduct(t, tenantID, 10)
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), product))

	require.NoError(t, ctx.ProductRepo.AdjustStock(context.Background(), tenantID, product.ID, -4))
	require.NoError(t, ctx.ProductRepo.AdjustStock(context.Background(), tenantID, product.ID, 2))

	stored, err := ctx.ProductRepo.GetByID(context.Background(), tenantID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, stored.Stock)
}

func TestProductSqliteRepository_AdjustStock_InsufficientStock(t *testing.T) {
	ctx := SetupTestDB(t)

	tenantID := uuid.NewString()
	product := CreateTestProduct(t, tenantID, 3)
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), product))

	err := ctx.ProductRepo.AdjustStock(context.Background(), tenantID, product.ID, -4)
	assert.ErrorIs(t, err, catalog.ErrInsufficientStock)

	stored, err := ctx.ProductRepo.GetByID(context.Background(), tenantID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Stock)
}

func TestProductSqliteRepository_AdjustStock_NotFound(t *testing.T) {
	ctx := SetupTestDB(t)

	err := ctx.ProductRepo.AdjustStock(context.Background(), uuid.NewString(), uuid.NewString(), -1)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestProductSqliteRepository_List_WithFiltersAndSorting(t *testing.T) {
	ctx := SetupTestDB(t)

	tenantID := uuid.NewString()

	cheap := CreateTestProduct(t, tenantID, 10)
	cheap.Name = "Arroz 5kg"
	cheap.RetailPrice = 2590
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), cheap))

	expensive := CreateTestProduct(t, tenantID, 10)
	expensive.Name = "Azeite Extra Virgem"
	expensive.RetailPrice = 4590
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), expensive))

	inactive := CreateTestProduct(t, tenantID, 10)
	inactive.Name = "Arroz 1kg"
	inactive.Active = false
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), inactive))

	// Test filtering by name
	query := catalog.NewProductQuery()
	query.Search = "Arroz"
	found, err := ctx.ProductRepo.List(context.Background(), tenantID, query)
	require.NoError(t, err)
	assert.Len(t, found, 2)

	// Test active-only filtering
	query = catalog.NewProductQuery()
	query.ActiveOnly = true
	active, err := ctx.ProductRepo.List(context.Background(), tenantID, query)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	// Test sorting
	query = catalog.NewProductQuery()
	query.SortBy = "retail_price"
	query.SortOrder = "desc"
	sorted, err := ctx.ProductRepo.List(context.Background(), tenantID, query)
	require.NoError(t, err)
	require.Len(t, sorted, 3)
	assert.Equal(t, expensive.ID, sorted[0].ID)

	// Test pagination
	query = catalog.NewProductQuery()
	query.Limit = 1
	query.Offset = 1
	paged, err := ctx.ProductRepo.List(context.Background(), tenantID, query)
	require.NoError(t, err)
	assert.Len(t, paged, 1)
}

func TestProductSqliteRepository_ListLowStock(t *testing.T) {
	ctx := SetupTestDB(t)

	tenantID := uuid.NewString()

	low := CreateTestProduct(t, tenantID, 2)
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), low))

	lower := CreateTestProduct(t, tenantID, 0)
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), lower))

	plenty := CreateTestProduct(t, tenantID, 50)
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), plenty))

	inactive := CreateTestProduct(t, tenantID, 1)
	inactive.Active = false
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), inactive))

	listed, err := ctx.ProductRepo.ListLowStock(context.Background(), tenantID, 5)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, lower.ID, listed[0].ID)
	assert.Equal(t, low.ID, listed[1].ID)
}

func TestCategorySqliteRepository_CreateAndList(t *testing.T) {
	ctx := SetupTestDB(t)

	tenantID := uuid.NewString()

	second := &catalog.Category{ID: uuid.NewString(), TenantID: tenantID, Name: "Limpeza", Position: 1, Active: true}
	first := &catalog.Category{ID: uuid.NewString(), TenantID: tenantID, Name: "Bebidas", Position: 0, Active: true}
	require.NoError(t, ctx.CategoryRepo.Create(context.Background(), second))
	require.NoError(t, ctx.CategoryRepo.Create(context.Background(), first))

	listed, err := ctx.CategoryRepo.List(context.Background(), tenantID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Bebidas", listed[0].Name)
	assert.Equal(t, "Limpeza", listed[1].Name)
}

func TestProductSqliteRepository_CountByCategory(t *testing.T) {
	ctx := SetupTestDB(t)

	tenantID := uuid.NewString()
	category := &catalog.Category{ID: uuid.NewString(), TenantID: tenantID, Name: "Bebidas", Active: true}
	require.NoError(t, ctx.CategoryRepo.Create(context.Background(), category))

	product := CreateTestProduct(t, tenantID, 10)
	product.CategoryID = category.ID
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), product))

	count, err := ctx.ProductRepo.CountByCategory(context.Background(), tenantID, category.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = ctx.ProductRepo.CountByCategory(context.Background(), tenantID, uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
