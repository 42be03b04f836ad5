package app

import (
	"context"
	"fmt"
	"time"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"

	"github.com/google/uuid"
)

// categoryService implements the CategoryService interface
type categoryService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
	logger       logger.Logger
}

// NewCategoryService creates a new categoryService instance
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
	logger logger.Logger,
) (catalog.CategoryService, error) {
	return &categoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger,
	}, nil
}

func (s *categoryService) Create(ctx context.Context, tenantID, name string, position int) (*catalog.Category, error) {
	category := &catalog.Category{
		ID:       uuid.New().String(),
		TenantID: tenantID,
		Name:     name,
		Position: position,
		Active:   true,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return category, nil
}

func (s *categoryService) List(ctx context.Context, tenantID string) ([]*catalog.Category, error) {
	return s.categoryRepo.List(ctx, tenantID)
}

func (s *categoryService) Update(ctx context.Context, category *catalog.Category) error {
	if _, err := s.categoryRepo.GetByID(ctx, category.TenantID, category.ID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return s.categoryRepo.Update(ctx, category)
}

// Delete removes a category; it fails with ErrCategoryInUse while any
// product still references it.
func (s *categoryService) Delete(ctx context.Context, tenantID, categoryID string) error {
	if _, err := s.categoryRepo.GetByID(ctx, tenantID, categoryID); err != nil {
		return fmt.Errorf("%w", err)
	}

	count, err := s.productRepo.CountByCategory(ctx, tenantID, categoryID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if count > 0 {
		return catalog.ErrCategoryInUse
	}

	return s.categoryRepo.DeleteByID(ctx, tenantID, categoryID)
}

// productService implements the ProductService interface
type productService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	logger       logger.Logger
}

// NewProductService creates a new productService instance
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	logger logger.Logger,
) (catalog.ProductService, error) {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}, nil
}

func (s *productService) Create(ctx context.Context, product *catalog.Product) (*catalog.Product, error) {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	if product.CategoryID != "" {
		if _, err := s.categoryRepo.GetByID(ctx, product.TenantID, product.CategoryID); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	if _, err := s.productRepo.GetBySKU(ctx, product.TenantID, product.SKU); err == nil {
		return nil, catalog.ErrDuplicateSKU
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return product, nil
}

func (s *productService) List(ctx context.Context, tenantID string, query *catalog.ProductQuery) ([]*catalog.Product, error) {
	if query == nil {
		query = catalog.NewProductQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return s.productRepo.List(ctx, tenantID, query)
}

func (s *productService) GetByID(ctx context.Context, tenantID, productID string) (*catalog.Product, error) {
	return s.productRepo.GetByID(ctx, tenantID, productID)
}

func (s *productService) Update(ctx context.Context, product *catalog.Product) error {
	existing, err := s.productRepo.GetByID(ctx, product.TenantID, product.ID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if product.SKU != existing.SKU {
		if _, err := s.productRepo.GetBySKU(ctx, product.TenantID, product.SKU); err == nil {
			return catalog.ErrDuplicateSKU
		}
	}

	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now().UTC()
	return s.productRepo.Update(ctx, product)
}

func (s *productService) Delete(ctx context.Context, tenantID, productID string) error {
	if _, err := s.productRepo.GetByID(ctx, tenantID, productID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return s.productRepo.DeleteByID(ctx, tenantID, productID)
}

// AdjustStock applies a signed delta to the stock level. A delta that would
// push stock below zero fails with ErrInsufficientStock.
func (s *productService) AdjustStock(ctx context.Context, tenantID, productID string, delta int) error {
	if delta == 0 {
		return nil
	}
	if err := s.productRepo.AdjustStock(ctx, tenantID, productID, delta); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.logger.Info("Adjusted stock of product ", productID, " by ", delta)
	return nil
}

func (s *productService) ListLowStock(ctx context.Context, tenantID string, threshold int) ([]*catalog.Product, error) {
	if threshold < 0 {
		threshold = 0
	}
	return s.productRepo.ListLowStock(ctx, tenantID, threshold)
}
