package app

import (
	"context"
	"fmt"
	"time"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/customers"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/orders"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"

	"github.com/google/uuid"
)

// orderService implements the OrderService interface
type orderService struct {
	orderRepo orders.OrderRepository
	logger    logger.Logger
}

// NewOrderService creates a new orderService instance
func NewOrderService(orderRepo orders.OrderRepository, logger logger.Logger) (orders.OrderService, error) {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger,
	}, nil
}

func (s *orderService) Create(ctx context.Context, order *orders.Order) (*orders.Order, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	order.ComputeTotals()

	if err := order.Validate(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order, nil); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return order, nil
}

func (s *orderService) GetByID(ctx context.Context, tenantID, orderID string) (*orders.Order, error) {
	return s.orderRepo.GetByID(ctx, tenantID, orderID)
}

func (s *orderService) List(ctx context.Context, tenantID string, query *orders.OrderQuery) ([]*orders.Order, error) {
	if query == nil {
		query = orders.NewOrderQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return s.orderRepo.List(ctx, tenantID, query)
}

// UpdateStatus moves the order to the next status, applying stock and
// receivable postings atomically.
func (s *orderService) UpdateStatus(ctx context.Context, tenantID, orderID, next string) (*orders.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, tenantID, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	plan, err := orders.PlanTransition(order, next)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Transition(ctx, tenantID, orderID, order.Status, next, plan); err != nil {
		return nil, err
	}

	s.logger.Info("Order ", orderID, " moved from ", order.Status, " to ", next)
	return s.orderRepo.GetByID(ctx, tenantID, orderID)
}

func (s *orderService) Cancel(ctx context.Context, tenantID, orderID string) (*orders.Order, error) {
	return s.UpdateStatus(ctx, tenantID, orderID, orders.StatusCancelado)
}

// quickSaleService implements the QuickSaleService interface for the PDV
type quickSaleService struct {
	orderRepo    orders.OrderRepository
	productRepo  catalog.ProductRepository
	customerRepo customers.CustomerRepository
	logger       logger.Logger
}

// NewQuickSaleService creates a new quickSaleService instance
func NewQuickSaleService(
	orderRepo orders.OrderRepository,
	productRepo catalog.ProductRepository,
	customerRepo customers.CustomerRepository,
	logger logger.Logger,
) (orders.QuickSaleService, error) {
	return &quickSaleService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}, nil
}

// Sale resolves the items against the catalog and creates an order directly
// in confirmed status. Stock consumption and any fiado debit are applied in
// the same transaction; any failure voids the whole sale.
func (s *quickSaleService) Sale(ctx context.Context, tenantID string, input *orders.QuickSaleInput) (*orders.Order, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("sale requires at least one item")
	}

	if input.CustomerID != "" {
		if _, err := s.customerRepo.GetByID(ctx, tenantID, input.CustomerID); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	items := make([]orders.OrderItem, 0, len(input.Items))
	for _, entry := range input.Items {
		product, err := s.resolveProduct(ctx, tenantID, entry)
		if err != nil {
			return nil, err
		}
		if !product.Active {
			return nil, catalog.ErrProductInactive
		}
		if product.Stock < entry.Quantity {
			return nil, catalog.ErrInsufficientStock
		}
		items = append(items, orders.OrderItem{
			ProductID: product.ID,
			SKU:       product.SKU,
			Name:      product.Name,
			Quantity:  entry.Quantity,
			UnitPrice: product.UnitPriceFor(entry.Quantity),
		})
	}

	now := time.Now().UTC()
	order := &orders.Order{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		CustomerID:    input.CustomerID,
		CustomerName:  input.CustomerName,
		Status:        orders.StatusConfirmado,
		Origin:        orders.OriginPDV,
		PaymentMethod: input.PaymentMethod,
		Items:         items,
		Discount:      input.Discount,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	order.ComputeTotals()

	if err := order.Validate(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order, orders.ConfirmationPlan(order)); err != nil {
		return nil, err
	}

	s.logger.Info("Registered PDV sale ", order.ID, " totaling ", order.Total)
	return order, nil
}

func (s *quickSaleService) resolveProduct(ctx context.Context, tenantID string, entry orders.QuickSaleItem) (*catalog.Product, error) {
	if entry.Quantity <= 0 {
		return nil, fmt.Errorf("item quantity must be positive")
	}
	if entry.ProductID != "" {
		return s.productRepo.GetByID(ctx, tenantID, entry.ProductID)
	}
	if entry.SKU != "" {
		return s.productRepo.GetBySKU(ctx, tenantID, entry.SKU)
	}
	return nil, fmt.Errorf("item requires a product id or sku")
}
