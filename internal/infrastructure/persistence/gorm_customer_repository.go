package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/customers"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/infrastructure/persistence/models"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCustomerRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCustomerRepository creates a new GORM-based CustomerRepository implementation
func NewGormCustomerRepository(db *gorm.DB, logger logger.Logger) (customers.CustomerRepository, error) {
	return &gormCustomerRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCustomerRepository) Create(ctx context.Context, customer *customers.Customer) error {
	if err := customer.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CustomerModel{}
	model.FromDomain(customer)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	r.logger.Info("Created customer with id ", customer.ID)
	return nil
}

func (r *gormCustomerRepository) List(ctx context.Context, tenantID string, query *customers.CustomerQuery) ([]*customers.Customer, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.CustomerModel
	dbQuery := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("tenant_id = ?", tenantID)

	if query.ActiveOnly {
		dbQuery = dbQuery.Where("active = ?", true)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		dbQuery = dbQuery.Where("name LIKE ? OR phone LIKE ? OR document LIKE ?", pattern, pattern, pattern)
	}

	dbQuery = dbQuery.Order("name asc")
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}

	domainList := make([]*customers.Customer, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormCustomerRepository) GetByID(ctx context.Context, tenantID, customerID string) (*customers.Customer, error) {
	var model models.CustomerModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, customerID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customers.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCustomerRepository) Update(ctx context.Context, customer *customers.Customer) error {
	if err := customer.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CustomerModel{}
	model.FromDomain(customer)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	r.logger.Info("Updated customer with id ", customer.ID)
	return nil
}
