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

type gormCategoryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCategoryRepository creates a new GORM-based CategoryRepository implementation
func NewGormCategoryRepository(db *gorm.DB, logger logger.Logger) (catalog.CategoryRepository, error) {
	return &gormCategoryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCategoryRepository) Create(ctx context.Context, category *catalog.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CategoryModel{}
	model.FromDomain(category)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	r.logger.Info("Created category with id ", category.ID)
	return nil
}

func (r *gormCategoryRepository) List(ctx context.Context, tenantID string) ([]*catalog.Category, error) {
	var modelList []*models.CategoryModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("position asc, name asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	domainList := make([]*catalog.Category, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormCategoryRepository) GetByID(ctx context.Context, tenantID, categoryID string) (*catalog.Category, error) {
	var model models.CategoryModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, categoryID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCategoryRepository) Update(ctx context.Context, category *catalog.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CategoryModel{}
	model.FromDomain(category)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	r.logger.Info("Updated category with id ", category.ID)
	return nil
}

func (r *gormCategoryRepository) DeleteByID(ctx context.Context, tenantID, categoryID string) error {
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, categoryID).
		Delete(&models.CategoryModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	r.logger.Info("Deleted category with id ", categoryID)
	return nil
}
