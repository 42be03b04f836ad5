package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/customers"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/orders"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/infrastructure/persistence/models"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ledger notes for entries posted by the order lifecycle.
const (
	noteFiadoSale     = "venda fiado"
	noteFiadoReversal = "estorno de cancelamento"
)

type gormOrderRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOrderRepository creates a new GORM-based OrderRepository implementation
func NewGormOrderRepository(db *gorm.DB, logger logger.Logger) (orders.OrderRepository, error) {
	return &gormOrderRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOrderRepository) Create(ctx context.Context, order *orders.Order, plan *orders.PostingPlan) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := nextOrderNumberTx(tx, order.TenantID)
		if err != nil {
			return err
		}
		order.Number = number

		model := &models.OrderModel{}
		model.FromDomain(order)
		for i := range model.Items {
			model.Items[i].ID = uuid.New().String()
		}

		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		return applyPostingPlanTx(tx, order.TenantID, plan)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Created order #", order.Number, " with id ", order.ID)
	return nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, tenantID, orderID string) (*orders.Order, error) {
	var model models.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ? AND id = ?", tenantID, orderID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, orders.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormOrderRepository) List(ctx context.Context, tenantID string, query *orders.OrderQuery) ([]*orders.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.OrderModel
	dbQuery := r.db.WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ?", tenantID)

	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.Origin != "" {
		dbQuery = dbQuery.Where("origin = ?", query.Origin)
	}
	if query.CustomerID != "" {
		dbQuery = dbQuery.Where("customer_id = ?", query.CustomerID)
	}
	if !query.From.IsZero() {
		dbQuery = dbQuery.Where("created_at >= ?", query.From)
	}
	if !query.To.IsZero() {
		dbQuery = dbQuery.Where("created_at <= ?", query.To)
	}

	dbQuery = dbQuery.Order("number desc")
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	domainList := make([]*orders.Order, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormOrderRepository) Transition(ctx context.Context, tenantID, orderID, from, to string, plan *orders.PostingPlan) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Guarding on the expected current status makes the transition
		// safe against a concurrent lifecycle call on the same order.
		result := tx.Model(&models.OrderModel{}).
			Where("tenant_id = ? AND id = ? AND status = ?", tenantID, orderID, from).
			Updates(map[string]interface{}{
				"status":     to,
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update order status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.OrderModel{}).
				Where("tenant_id = ? AND id = ?", tenantID, orderID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check order: %w", err)
			}
			if count == 0 {
				return orders.ErrOrderNotFound
			}
			return orders.ErrOrderChanged
		}

		return applyPostingPlanTx(tx, tenantID, plan)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Order ", orderID, " moved from ", from, " to ", to)
	return nil
}

// nextOrderNumberTx assigns the next sequential order number for the tenant.
func nextOrderNumberTx(tx *gorm.DB, tenantID string) (int64, error) {
	var number int64
	err := tx.Model(&models.OrderModel{}).
		Select("COALESCE(MAX(number), 0) + 1").
		Where("tenant_id = ?", tenantID).
		Scan(&number).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute order number: %w", err)
	}
	return number, nil
}

// applyPostingPlanTx applies the stock and receivable postings of a status
// transition inside tx, so the status write and its side effects commit or
// roll back together.
func applyPostingPlanTx(tx *gorm.DB, tenantID string, plan *orders.PostingPlan) error {
	if plan.Empty() {
		return nil
	}

	for _, delta := range plan.StockDeltas {
		if err := adjustStockTx(tx, tenantID, delta.ProductID, delta.Delta); err != nil {
			return err
		}
	}

	if plan.Receivable != nil {
		return postReceivableTx(tx, tenantID, plan.Receivable)
	}
	return nil
}

// postReceivableTx posts a fiado debit or its estorno to the credit ledger.
// Debits are checked against the customer's credit limit.
func postReceivableTx(tx *gorm.DB, tenantID string, posting *orders.ReceivablePosting) error {
	var customer models.CustomerModel
	err := tx.Where("tenant_id = ? AND id = ?", tenantID, posting.CustomerID).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customers.ErrCustomerNotFound
		}
		return fmt.Errorf("failed to fetch customer: %w", err)
	}

	balance, err := openBalanceTx(tx, tenantID, posting.CustomerID)
	if err != nil {
		return err
	}

	entry := models.CreditEntryModel{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		CustomerID: posting.CustomerID,
		OrderID:    models.NullableID(posting.OrderID),
		Amount:     posting.Amount,
		CreatedAt:  time.Now().UTC(),
	}

	if posting.Reversal {
		entry.Kind = customers.EntryEstorno
		entry.Note = noteFiadoReversal
		entry.Balance = balance - posting.Amount
	} else {
		if balance+posting.Amount > customer.CreditLimit {
			return customers.ErrCreditLimitExceeded
		}
		entry.Kind = customers.EntryDebito
		entry.Note = noteFiadoSale
		entry.Balance = balance + posting.Amount
	}

	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to create credit entry: %w", err)
	}
	return nil
}
