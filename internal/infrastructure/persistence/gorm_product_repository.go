package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/infrastructure/persistence/models"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProductRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProductRepository creates a new GORM-based ProductRepository implementation
func NewGormProductRepository(db *gorm.DB, logger logger.Logger) (catalog.ProductRepository, error) {
	return &gormProductRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProductModel{}
	model.FromDomain(product)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Info("Created product with sku ", product.SKU)
	return nil
}

func (r *gormProductRepository) List(ctx context.Context, tenantID string, query *catalog.ProductQuery) ([]*catalog.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ProductModel
	dbQuery := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("tenant_id = ?", tenantID)

	if query.CategoryID != "" {
		dbQuery = dbQuery.Where("category_id = ?", query.CategoryID)
	}
	if query.ActiveOnly {
		dbQuery = dbQuery.Where("active = ?", true)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		dbQuery = dbQuery.Where("name LIKE ? OR sku LIKE ?", pattern, pattern)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	domainList := make([]*catalog.Product, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormProductRepository) GetByID(ctx context.Context, tenantID, productID string) (*catalog.Product, error) {
	var model models.ProductModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, productID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProductRepository) GetBySKU(ctx context.Context, tenantID, sku string) (*catalog.Product, error) {
	var model models.ProductModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND sku = ?", tenantID, sku).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProductModel{}
	model.FromDomain(product)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	r.logger.Info("Updated product with id ", product.ID)
	return nil
}

func (r *gormProductRepository) DeleteByID(ctx context.Context, tenantID, productID string) error {
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, productID).
		Delete(&models.ProductModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	r.logger.Info("Deleted product with id ", productID)
	return nil
}

func (r *gormProductRepository) CountByCategory(ctx context.Context, tenantID, categoryID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("tenant_id = ? AND category_id = ?", tenantID, categoryID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *gormProductRepository) AdjustStock(ctx context.Context, tenantID, productID string, delta int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return adjustStockTx(tx, tenantID, productID, delta)
	})
}

func (r *gormProductRepository) ListLowStock(ctx context.Context, tenantID string, threshold int) ([]*catalog.Product, error) {
	var modelList []*models.ProductModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND active = ? AND stock <= ?", tenantID, true, threshold).
		Order("stock asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch low stock products: %w", err)
	}

	domainList := make([]*catalog.Product, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

// adjustStockTx applies a signed stock delta inside tx. The guard in the
// WHERE clause keeps stock from going negative without a read-modify-write
// race.
func adjustStockTx(tx *gorm.DB, tenantID, productID string, delta int) error {
	result := tx.Model(&models.ProductModel{}).
		Where("tenant_id = ? AND id = ? AND stock + ? >= 0", tenantID, productID, delta).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to adjust stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.ProductModel{}).
			Where("tenant_id = ? AND id = ?", tenantID, productID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check product: %w", err)
		}
		if count == 0 {
			return catalog.ErrProductNotFound
		}
		return catalog.ErrInsufficientStock
	}
	return nil
}
