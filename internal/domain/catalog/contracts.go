package catalog

import (
	"context"
	"errors"
)

// Domain errors surfaced by catalog services and repositories.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateSKU      = errors.New("sku already in use for tenant")
	ErrCategoryInUse     = errors.New("category still has products")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrProductInactive   = errors.New("product is inactive")
)

// CategoryService manages storefront categories.
type CategoryService interface {
	Create(ctx context.Context, tenantID, name string, position int) (*Category, error)
	List(ctx context.Context, tenantID string) ([]*Category, error)
	Update(ctx context.Context, category *Category) error
	// Delete removes a category; it fails with ErrCategoryInUse while any
	// product still references it.
	Delete(ctx context.Context, tenantID, categoryID string) error
}

// ProductService manages the product catalog.
type ProductService interface {
	Create(ctx context.Context, product *Product) (*Product, error)
	List(ctx context.Context, tenantID string, query *ProductQuery) ([]*Product, error)
	GetByID(ctx context.Context, tenantID, productID string) (*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, tenantID, productID string) error
	// AdjustStock applies a signed delta to the stock level. A delta that
	// would push stock below zero fails with ErrInsufficientStock.
	AdjustStock(ctx context.Context, tenantID, productID string, delta int) error
	ListLowStock(ctx context.Context, tenantID string, threshold int) ([]*Product, error)
}

// CategoryRepository defines the interface for Category-related operations
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	List(ctx context.Context, tenantID string) ([]*Category, error)
	GetByID(ctx context.Context, tenantID, categoryID string) (*Category, error)
	Update(ctx context.Context, category *Category) error
	DeleteByID(ctx context.Context, tenantID, categoryID string) error
}

// ProductRepository defines the interface for Product-related operations
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	List(ctx context.Context, tenantID string, query *ProductQuery) ([]*Product, error)
	GetByID(ctx context.Context, tenantID, productID string) (*Product, error)
	GetBySKU(ctx context.Context, tenantID, sku string) (*Product, error)
	Update(ctx context.Context, product *Product) error
	DeleteByID(ctx context.Context, tenantID, productID string) error
	CountByCategory(ctx context.Context, tenantID, categoryID string) (int64, error)
	// AdjustStock atomically applies a signed stock delta with a guard
	// against negative stock.
	AdjustStock(ctx context.Context, tenantID, productID string, delta int) error
	ListLowStock(ctx context.Context, tenantID string, threshold int) ([]*Product, error)
}
