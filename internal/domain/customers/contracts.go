package customers

import (
	"context"
	"errors"
)

// Domain errors surfaced by customer services and repositories.
var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrCreditLimitExceeded   = errors.New("credit limit exceeded")
	ErrPaymentExceedsBalance = errors.New("payment exceeds open balance")
)

// CustomerService manages the customer registry.
type CustomerService interface {
	Create(ctx context.Context, customer *Customer) (*Customer, error)
	List(ctx context.Context, tenantID string, query *CustomerQuery) ([]*Customer, error)
	GetByID(ctx context.Context, tenantID, customerID string) (*Customer, error)
	Update(ctx context.Context, customer *Customer) error
	Deactivate(ctx context.Context, tenantID, customerID string) error
}

// CreditService exposes the fiado ledger.
type CreditService interface {
	// Statement lists ledger entries for a customer, newest first.
	Statement(ctx context.Context, tenantID, customerID string, limit, offset int) ([]*CreditEntry, error)
	Balance(ctx context.Context, tenantID, customerID string) (int64, error)
	// RegisterPayment posts a pagamento entry lowering the open balance.
	// Payments larger than the open balance fail with
	// ErrPaymentExceedsBalance.
	RegisterPayment(ctx context.Context, tenantID, customerID string, amount int64, note string) (*CreditEntry, error)
}

// CustomerRepository defines the interface for Customer-related operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	List(ctx context.Context, tenantID string, query *CustomerQuery) ([]*Customer, error)
	GetByID(ctx context.Context, tenantID, customerID string) (*Customer, error)
	Update(ctx context.Context, customer *Customer) error
}

// CreditRepository defines the interface for fiado ledger operations. Debits
// and estornos tied to orders are posted by the order repository inside the
// order transaction; payments come through here.
type CreditRepository interface {
	ListEntries(ctx context.Context, tenantID, customerID string, limit, offset int) ([]*CreditEntry, error)
	Balance(ctx context.Context, tenantID, customerID string) (int64, error)
	PostPayment(ctx context.Context, entry *CreditEntry) error
}
