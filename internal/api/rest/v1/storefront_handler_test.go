//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/appearance"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
)

func storefrontProduct() *catalog.Product {
	return &catalog.Product{
		ID:              "3d2c1b0a-6e5f-4a3b-9c8d-7e6f5a4b3c02",
		TenantID:        testTenantID,
		SKU:             "REF-2L-001",
		Name:            "Refrigerante Cola 2L",
		RetailPrice:     899,
		WholesalePrice:  749,
		WholesaleMinQty: 12,
		Stock:           120,
		Active:          true,
	}
}

func TestStorefrontHandler_ListProducts_HidesStockAndWholesale(t *testing.T) {
	mockCategoryService := new(MockCategoryService)
	mockProductService := new(MockProductService)
	mockAppearanceService := new(MockAppearanceService)
	handler := NewStorefrontHandler(mockCategoryService, mockProductService, mockAppearanceService)

	theme := appearance.DefaultTheme(testTenantID, "Mercado Central")

	mockProductService.
		On("List", mock.Anything, testTenantID, mock.AnythingOfType("*catalog.ProductQuery")).
		Return([]*catalog.Product{storefrontProduct()}, nil)
	mockAppearanceService.
		On("GetTheme", mock.Anything, testTenantID).
		Return(theme, nil)

	c, w := newTestContext(t, "GET", "/store/products", "")

	handler.ListProducts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"in_stock":true`)
	assert.NotContains(t, w.Body.String(), `"stock"`)
	assert.NotContains(t, w.Body.String(), "wholesale_price")
	mockProductService.AssertExpectations(t)
}

func TestStorefrontHandler_ListProducts_ShowsWholesaleWhenEnabled(t *testing.T) {
	mockCategoryService := new(MockCategoryService)
	mockProductService := new(MockProductService)
	mockAppearanceService := new(MockAppearanceService)
	handler := NewStorefrontHandler(mockCategoryService, mockProductService, mockAppearanceService)

	theme := appearance.DefaultTheme(testTenantID, "Mercado Central")
	theme.ShowWholesalePrices = true

	mockProductService.
		On("List", mock.Anything, testTenantID, mock.AnythingOfType("*catalog.ProductQuery")).
		Return([]*catalog.Product{storefrontProduct()}, nil)
	mockAppearanceService.
		On("GetTheme", mock.Anything, testTenantID).
		Return(theme, nil)

	c, w := newTestContext(t, "GET", "/store/products", "")

	handler.ListProducts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"wholesale_price":749`)
	assert.Contains(t, w.Body.String(), `"wholesale_min_qty":12`)
	mockProductService.AssertExpectations(t)
}

func TestStorefrontHandler_GetProduct_InactiveHidden(t *testing.T) {
	mockCategoryService := new(MockCategoryService)
	mockProductService := new(MockProductService)
	mockAppearanceService := new(MockAppearanceService)
	handler := NewStorefrontHandler(mockCategoryService, mockProductService, mockAppearanceService)

	product := storefrontProduct()
	product.Active = false

	mockProductService.
		On("GetByID", mock.Anything, testTenantID, product.ID).
		Return(product, nil)

	c, w := newTestContext(t, "GET", "/store/products/"+product.ID, "")
	c.Params = gin.Params{gin.Param{Key: "id", Value: product.ID}}

	handler.GetProduct(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockProductService.AssertExpectations(t)
}

func TestStorefrontHandler_ListCategories_FiltersInactive(t *testing.T) {
	mockCategoryService := new(MockCategoryService)
	mockProductService := new(MockProductService)
	mockAppearanceService := new(MockAppearanceService)
	handler := NewStorefrontHandler(mockCategoryService, mockProductService, mockAppearanceService)

	active := &catalog.Category{ID: "0a4f6c1e-9a15-4b2e-8d42-5b7a1c3d9e21", TenantID: testTenantID, Name: "Bebidas", Active: true}
	inactive := &catalog.Category{ID: "1b5a7d2f-8c26-4e3f-9d53-6c8b2d4e0f32", TenantID: testTenantID, Name: "Sazonal", Active: false}

	mockCategoryService.
		On("List", mock.Anything, testTenantID).
		Return([]*catalog.Category{active, inactive}, nil)

	c, w := newTestContext(t, "GET", "/store/categories", "")

	handler.ListCategories(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bebidas")
	assert.NotContains(t, w.Body.String(), "Sazonal")
	mockCategoryService.AssertExpectations(t)
}

func TestStorefrontHandler_Storefront_Success(t *testing.T) {
	mockCategoryService := new(MockCategoryService)
	mockProductService := new(MockProductService)
	mockAppearanceService := new(MockAppearanceService)
	handler := NewStorefrontHandler(mockCategoryService, mockProductService, mockAppearanceService)

	view := &appearance.StorefrontView{
		Theme: appearance.DefaultTheme(testTenantID, "Mercado Central"),
		Slides: []*appearance.CatalogSlide{
			{
				ID:       "2b3c4d5e-6f7a-4b8c-9d0e-1f2a3b4c5d08",
				TenantID: testTenantID,
				ImageURL: "https://cdn.mercado.dev/banners/promo.png",
				Active:   true,
			},
		},
	}

	mockAppearanceService.
		On("Storefront", mock.Anything, testTenantID).
		Return(view, nil)

	c, w := newTestContext(t, "GET", "/store", "")

	handler.Storefront(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mercado Central")
	assert.Contains(t, w.Body.String(), "promo.png")
	mockAppearanceService.AssertExpectations(t)
}
