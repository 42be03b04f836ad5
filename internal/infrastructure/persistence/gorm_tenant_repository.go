package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/infrastructure/persistence/models"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTenantRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTenantRepository creates a new GORM-based TenantRepository implementation
func NewGormTenantRepository(db *gorm.DB, logger logger.Logger) (identity.TenantRepository, error) {
	return &gormTenantRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTenantRepository) Create(ctx context.Context, tenant *identity.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TenantModel{}
	model.FromDomain(tenant)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	r.logger.Info("Created tenant with slug ", tenant.Slug)
	return nil
}

func (r *gormTenantRepository) GetByID(ctx context.Context, tenantID string) (*identity.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).Where("id = ?", tenantID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, identity.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to fetch tenant: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTenantRepository) GetBySlug(ctx context.Context, slug string) (*identity.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, identity.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to fetch tenant: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTenantRepository) List(ctx context.Context) ([]*identity.Tenant, error) {
	var modelList []*models.TenantModel
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tenants: %w", err)
	}

	domainList := make([]*identity.Tenant, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormTenantRepository) Update(ctx context.Context, tenant *identity.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TenantModel{}
	model.FromDomain(tenant)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	r.logger.Info("Updated tenant with id ", tenant.ID)
	return nil
}
