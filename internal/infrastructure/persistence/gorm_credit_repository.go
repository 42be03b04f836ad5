package persistence

import (
	"context"
	"fmt"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/customers"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/infrastructure/persistence/models"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCreditRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCreditRepository creates a new GORM-based CreditRepository implementation
func NewGormCreditRepository(db *gorm.DB, logger logger.Logger) (customers.CreditRepository, error) {
	return &gormCreditRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCreditRepository) ListEntries(ctx context.Context, tenantID, customerID string, limit, offset int) ([]*customers.CreditEntry, error) {
	var modelList []*models.CreditEntryModel
	dbQuery := r.db.WithContext(ctx).
		Where("tenant_id = ? AND customer_id = ?", tenantID, customerID).
		Order("created_at desc, id desc")

	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}
	if offset > 0 {
		dbQuery = dbQuery.Offset(offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch credit entries: %w", err)
	}

	domainList := make([]*customers.CreditEntry, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormCreditRepository) Balance(ctx context.Context, tenantID, customerID string) (int64, error) {
	var balance int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		balance, txErr = openBalanceTx(tx, tenantID, customerID)
		return txErr
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *gormCreditRepository) PostPayment(ctx context.Context, entry *customers.CreditEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if entry.Kind != customers.EntryPagamento {
		return fmt.Errorf("unsupported entry kind for payment: %s", entry.Kind)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		balance, err := openBalanceTx(tx, entry.TenantID, entry.CustomerID)
		if err != nil {
			return err
		}
		if entry.Amount > balance {
			return customers.ErrPaymentExceedsBalance
		}

		entry.Balance = balance - entry.Amount

		model := &models.CreditEntryModel{}
		model.FromDomain(entry)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create credit entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Posted payment of ", entry.Amount, " for customer ", entry.CustomerID)
	return nil
}

// openBalanceTx computes the customer's open fiado balance inside tx.
// Summing the signed amounts rather than trusting the last stored running
// balance keeps the result correct even when entries share a timestamp.
func openBalanceTx(tx *gorm.DB, tenantID, customerID string) (int64, error) {
	var balance int64
	err := tx.Model(&models.CreditEntryModel{}).
		Select("COALESCE(SUM(CASE WHEN kind = ? THEN amount ELSE -amount END), 0)", customers.EntryDebito).
		Where("tenant_id = ? AND customer_id = ?", tenantID, customerID).
		Scan(&balance).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute balance: %w", err)
	}
	return balance, nil
}
