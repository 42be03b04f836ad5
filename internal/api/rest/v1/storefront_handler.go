package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/api/rest/middleware"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/appearance"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
)

// StorefrontHandler defines the interface for the public catalog surface.
// Every route runs behind the tenant resolver; no authentication is needed.
type StorefrontHandler interface {
	Storefront(ctx *gin.Context)
	ListCategories(ctx *gin.Context)
	ListProducts(ctx *gin.Context)
	GetProduct(ctx *gin.Context)
}

type storefrontHandler struct {
	categoryService   catalog.CategoryService
	productService    catalog.ProductService
	appearanceService appearance.AppearanceService
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(
	categoryService catalog.CategoryService,
	productService catalog.ProductService,
	appearanceService appearance.AppearanceService,
) StorefrontHandler {
	return &storefrontHandler{
		categoryService:   categoryService,
		productService:    productService,
		appearanceService: appearanceService,
	}
}

// Storefront handles the GET request for the public appearance payload
// @Summary Retrieve the store theme and carousel
// @Tags Storefront
// @Produce json
// @Param X-Tenant header string true "Store slug"
// @Success 200 {object} StorefrontResponse
// @Failure 404 {object} ErrorResponse
// @Router /store [get]
func (handler *storefrontHandler) Storefront(ctx *gin.Context) {
	tenantID := middleware.TenantID(ctx)

	view, err := handler.appearanceService.Storefront(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: "store not found"})
		return
	}

	ctx.JSON(http.StatusOK, newStorefrontResponse(view))
}

// ListCategories handles the GET request for the public category list
// @Summary List the store's active categories
// @Tags Storefront
// @Produce json
// @Param X-Tenant header string true "Store slug"
// @Success 200 {array} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /store/categories [get]
func (handler *storefrontHandler) ListCategories(ctx *gin.Context) {
	tenantID := middleware.TenantID(ctx)

	categories, err := handler.categoryService.List(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	var listResponse = []CategoryResponse{}
	for _, category := range categories {
		if !category.Active {
			continue
		}
		listResponse = append(listResponse, newCategoryResponse(category))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// ListProducts handles the GET request for the public product list
// @Summary List the store's active products
// @Description Browse the public catalog. Stock levels stay private and wholesale prices appear only when the store exposes them.
// @Tags Storefront
// @Produce json
// @Param X-Tenant header string true "Store slug"
// @Param categoryId query string false "Category ID"
// @Param search query string false "Name or SKU fragment"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} StorefrontProductResponse
// @Failure 400 {object} ErrorResponse
// @Router /store/products [get]
func (handler *storefrontHandler) ListProducts(ctx *gin.Context) {
	tenantID := middleware.TenantID(ctx)

	query := buildProductQuery(ctx)
	query.ActiveOnly = true

	products, err := handler.productService.List(ctx, tenantID, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	showWholesale := handler.showWholesale(ctx, tenantID)

	var listResponse = []StorefrontProductResponse{}
	for _, product := range products {
		listResponse = append(listResponse, newStorefrontProductResponse(product, showWholesale))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetProduct handles the GET request for one public product
// @Summary Retrieve a product from the public catalog
// @Tags Storefront
// @Produce json
// @Param X-Tenant header string true "Store slug"
// @Param id path string true "Product ID"
// @Success 200 {object} StorefrontProductResponse
// @Failure 404 {object} ErrorResponse
// @Router /store/products/{id} [get]
func (handler *storefrontHandler) GetProduct(ctx *gin.Context) {
	productID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	product, err := handler.productService.GetByID(ctx, tenantID, productID)
	if err != nil || !product.Active {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("product with id %s not found", productID)})
		return
	}

	ctx.JSON(http.StatusOK, newStorefrontProductResponse(product, handler.showWholesale(ctx, tenantID)))
}

func (handler *storefrontHandler) showWholesale(ctx *gin.Context, tenantID string) bool {
	theme, err := handler.appearanceService.GetTheme(ctx, tenantID)
	if err != nil {
		return false
	}
	return theme.ShowWholesalePrices
}
