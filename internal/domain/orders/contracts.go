package orders

import "context"

// OrderService manages order retrieval and lifecycle.
type OrderService interface {
	Create(ctx context.Context, order *Order) (*Order, error)
	GetByID(ctx context.Context, tenantID, orderID string) (*Order, error)
	List(ctx context.Context, tenantID string, query *OrderQuery) ([]*Order, error)
	// UpdateStatus moves the order to the next status, applying stock and
	// receivable postings atomically.
	UpdateStatus(ctx context.Context, tenantID, orderID, next string) (*Order, error)
	Cancel(ctx context.Context, tenantID, orderID string) (*Order, error)
}

// QuickSaleItem references a product by ID or SKU for PDV entry.
type QuickSaleItem struct {
	ProductID string
	SKU       string
	Quantity  int
}

// QuickSaleInput is the payload of a PDV sale.
type QuickSaleInput struct {
	Items         []QuickSaleItem
	CustomerID    string
	CustomerName  string
	PaymentMethod string
	Discount      int64
	Notes         string
}

// QuickSaleService creates confirmed in-store sales in one step.
type QuickSaleService interface {
	// Sale resolves the items against the catalog and creates an order
	// directly in confirmed status. Stock consumption and any fiado debit
	// are applied in the same transaction; any failure voids the whole sale.
	Sale(ctx context.Context, tenantID string, input *QuickSaleInput) (*Order, error)
}

// OrderRepository defines the interface for Order-related operations
type OrderRepository interface {
	// Create persists the order, assigning the next per-tenant order number.
	// A non-empty plan is applied in the same transaction.
	Create(ctx context.Context, order *Order, plan *PostingPlan) error
	GetByID(ctx context.Context, tenantID, orderID string) (*Order, error)
	List(ctx context.Context, tenantID string, query *OrderQuery) ([]*Order, error)
	// Transition writes the new status guarded by the expected current
	// status and applies the posting plan atomically.
	Transition(ctx context.Context, tenantID, orderID, from, to string, plan *PostingPlan) error
}
