package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/api/rest/middleware"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
)

// CategoryHandler defines the interface for handling category operations
type CategoryHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type categoryHandler struct {
	categoryService catalog.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService catalog.CategoryService) CategoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
	}
}

// Create handles the POST request to create a category
// @Summary Create a category
// @Tags Catalog
// @Accept json
// @Produce json
// @Param requestBody body CategoryRequest true "Category data"
// @Success 201 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /categories [post]
func (handler *categoryHandler) Create(ctx *gin.Context) {
	var request CategoryRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid category data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	tenantID := middleware.TenantID(ctx)
	category, err := handler.categoryService.Create(ctx, tenantID, request.Name, request.Position)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error creating category: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, newCategoryResponse(category))
}

// List handles the GET request to list categories
// @Summary List the tenant's categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /categories [get]
func (handler *categoryHandler) List(ctx *gin.Context) {
	tenantID := middleware.TenantID(ctx)

	categories, err := handler.categoryService.List(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	var listResponse = []CategoryResponse{}
	for _, category := range categories {
		listResponse = append(listResponse, newCategoryResponse(category))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Update handles the PUT request to update a category
// @Summary Update a category
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param requestBody body CategoryRequest true "Category data"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id} [put]
func (handler *categoryHandler) Update(ctx *gin.Context) {
	categoryID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	var request CategoryRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid category data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}
	category := &catalog.Category{
		ID:       categoryID,
		TenantID: tenantID,
		Name:     request.Name,
		Position: request.Position,
		Active:   active,
	}

	if err := handler.categoryService.Update(ctx, category); err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("category with id %s not found", categoryID)})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error updating category: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newCategoryResponse(category))
}

// Delete handles the DELETE request to remove a category
// @Summary Delete a category
// @Description Delete a category that no product references anymore.
// @Tags Catalog
// @Produce json
// @Param id path string true "Category ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /categories/{id} [delete]
func (handler *categoryHandler) Delete(ctx *gin.Context) {
	categoryID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	if err := handler.categoryService.Delete(ctx, tenantID, categoryID); err != nil {
		if errors.Is(err, catalog.ErrCategoryInUse) {
			ctx.JSON(http.StatusConflict, ErrorResponse{Message: "category still has products"})
			return
		}
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error deleting category with id %s", categoryID)})
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted category with id %s", categoryID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}

// ProductHandler defines the interface for handling product operations
type ProductHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	AdjustStock(ctx *gin.Context)
	ListLowStock(ctx *gin.Context)
}

type productHandler struct {
	productService catalog.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService catalog.ProductService) ProductHandler {
	return &productHandler{
		productService: productService,
	}
}

// Create handles the POST request to create a product
// @Summary Create a product
// @Tags Catalog
// @Accept json
// @Produce json
// @Param requestBody body ProductRequest true "Product data"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /products [post]
func (handler *productHandler) Create(ctx *gin.Context) {
	var request ProductRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid product data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	tenantID := middleware.TenantID(ctx)
	product, err := handler.productService.Create(ctx, request.ToDomain(tenantID))
	if err != nil {
		if errors.Is(err, catalog.ErrDuplicateSKU) {
			ctx.JSON(http.StatusConflict, ErrorResponse{Message: fmt.Sprintf("sku %s already in use", request.SKU)})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error creating product: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, newProductResponse(product))
}

// List handles the GET request to list products with optional query parameters
// @Summary List products based on query parameters
// @Tags Catalog
// @Produce json
// @Param categoryId query string false "Category ID"
// @Param search query string false "Name or SKU fragment"
// @Param active query bool false "Only active products"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Router /products [get]
func (handler *productHandler) List(ctx *gin.Context) {
	tenantID := middleware.TenantID(ctx)
	query := buildProductQuery(ctx)

	products, err := handler.productService.List(ctx, tenantID, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	var listResponse = []ProductResponse{}
	for _, product := range products {
		listResponse = append(listResponse, newProductResponse(product))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a product by ID
// @Summary Retrieve a product by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (handler *productHandler) GetByID(ctx *gin.Context) {
	productID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	product, err := handler.productService.GetByID(ctx, tenantID, productID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("product with id %s not found", productID)})
		return
	}

	ctx.JSON(http.StatusOK, newProductResponse(product))
}

// Update handles the PUT request to update a product
// @Summary Update a product
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param requestBody body ProductRequest true "Product data"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [put]
func (handler *productHandler) Update(ctx *gin.Context) {
	productID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	var request ProductRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid product data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	product := request.ToDomain(tenantID)
	product.ID = productID

	if err := handler.productService.Update(ctx, product); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("product with id %s not found", productID)})
			return
		}
		if errors.Is(err, catalog.ErrDuplicateSKU) {
			ctx.JSON(http.StatusConflict, ErrorResponse{Message: fmt.Sprintf("sku %s already in use", request.SKU)})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error updating product: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newProductResponse(product))
}

// Delete handles the DELETE request to remove a product
// @Summary Delete a product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [delete]
func (handler *productHandler) Delete(ctx *gin.Context) {
	productID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	if err := handler.productService.Delete(ctx, tenantID, productID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error deleting product with id %s", productID)})
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted product with id %s", productID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}

// AdjustStock handles the POST request to apply a signed stock delta
// @Summary Adjust the stock of a product
// @Description Apply a signed delta to the stock level. Deltas that would push stock below zero are rejected.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param requestBody body AdjustStockRequest true "Stock delta"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /products/{id}/stock [post]
func (handler *productHandler) AdjustStock(ctx *gin.Context) {
	productID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	var request AdjustStockRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid stock data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := handler.productService.AdjustStock(ctx, tenantID, productID, request.Delta); err != nil {
		if errors.Is(err, catalog.ErrInsufficientStock) {
			ctx.JSON(http.StatusConflict, ErrorResponse{Message: "insufficient stock"})
			return
		}
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("product with id %s not found", productID)})
		return
	}

	product, err := handler.productService.GetByID(ctx, tenantID, productID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("product with id %s not found", productID)})
		return
	}

	ctx.JSON(http.StatusOK, newProductResponse(product))
}

// ListLowStock handles the GET request to list products at or below a threshold
// @Summary List products with low stock
// @Tags Catalog
// @Produce json
// @Param threshold query int false "Stock threshold (default 5)"
// @Success 200 {array} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Router /products/low-stock [get]
func (handler *productHandler) ListLowStock(ctx *gin.Context) {
	tenantID := middleware.TenantID(ctx)
	threshold := queryInt(ctx, "threshold", 5)

	products, err := handler.productService.ListLowStock(ctx, tenantID, threshold)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	var listResponse = []ProductResponse{}
	for _, product := range products {
		listResponse = append(listResponse, newProductResponse(product))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// buildProductQuery parses the shared product listing query parameters.
func buildProductQuery(ctx *gin.Context) *catalog.ProductQuery {
	query := catalog.NewProductQuery()

	if categoryID := ctx.Query("categoryId"); len(categoryID) > 0 {
		query.CategoryID = categoryID
	}

	if search := ctx.Query("search"); len(search) > 0 {
		query.Search = search
	}

	if active := ctx.Query("active"); active == "true" {
		query.ActiveOnly = true
	}

	query.Limit = queryInt(ctx, "limit", query.Limit)
	query.Offset = queryInt(ctx, "offset", query.Offset)

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	return query
}
