package app

import (
	"context"
	"fmt"
	"time"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/customers"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"

	"github.com/google/uuid"
)

// customerService implements the CustomerService interface
type customerService struct {
	customerRepo customers.CustomerRepository
	logger       logger.Logger
}

// NewCustomerService creates a new customerService instance
func NewCustomerService(customerRepo customers.CustomerRepository, logger logger.Logger) (customers.CustomerService, error) {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger,
	}, nil
}

func (s *customerService) Create(ctx context.Context, customer *customers.Customer) (*customers.Customer, error) {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	customer.Active = true
	customer.CreatedAt = now
	customer.UpdatedAt = now

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return customer, nil
}

func (s *customerService) List(ctx context.Context, tenantID string, query *customers.CustomerQuery) ([]*customers.Customer, error) {
	if query == nil {
		query = customers.NewCustomerQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return s.customerRepo.List(ctx, tenantID, query)
}

func (s *customerService) GetByID(ctx context.Context, tenantID, customerID string) (*customers.Customer, error) {
	return s.customerRepo.GetByID(ctx, tenantID, customerID)
}

func (s *customerService) Update(ctx context.Context, customer *customers.Customer) error {
	existing, err := s.customerRepo.GetByID(ctx, customer.TenantID, customer.ID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	customer.CreatedAt = existing.CreatedAt
	customer.UpdatedAt = time.Now().UTC()
	return s.customerRepo.Update(ctx, customer)
}

func (s *customerService) Deactivate(ctx context.Context, tenantID, customerID string) error {
	customer, err := s.customerRepo.GetByID(ctx, tenantID, customerID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	customer.Active = false
	customer.UpdatedAt = time.Now().UTC()
	return s.customerRepo.Update(ctx, customer)
}

// creditService implements the CreditService interface over the fiado ledger
type creditService struct {
	creditRepo   customers.CreditRepository
	customerRepo customers.CustomerRepository
	logger       logger.Logger
}

// NewCreditService creates a new creditService instance
func NewCreditService(
	creditRepo customers.CreditRepository,
	customerRepo customers.CustomerRepository,
	logger logger.Logger,
) (customers.CreditService, error) {
	return &creditService{
		creditRepo:   creditRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}, nil
}

// Statement lists ledger entries for a customer, newest first.
func (s *creditService) Statement(ctx context.Context, tenantID, customerID string, limit, offset int) ([]*customers.CreditEntry, error) {
	if _, err := s.customerRepo.GetByID(ctx, tenantID, customerID); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.creditRepo.ListEntries(ctx, tenantID, customerID, limit, offset)
}

func (s *creditService) Balance(ctx context.Context, tenantID, customerID string) (int64, error) {
	if _, err := s.customerRepo.GetByID(ctx, tenantID, customerID); err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	return s.creditRepo.Balance(ctx, tenantID, customerID)
}

// RegisterPayment posts a pagamento entry lowering the open balance. Payments
// larger than the open balance fail with ErrPaymentExceedsBalance.
func (s *creditService) RegisterPayment(ctx context.Context, tenantID, customerID string, amount int64, note string) (*customers.CreditEntry, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	if _, err := s.customerRepo.GetByID(ctx, tenantID, customerID); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	entry := &customers.CreditEntry{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		CustomerID: customerID,
		Kind:       customers.EntryPagamento,
		Amount:     amount,
		Note:       note,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.creditRepo.PostPayment(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("Registered payment of ", amount, " for customer ", customerID)
	return entry, nil
}
