package customers

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Credit entry kinds. A "debito" raises the customer's open balance, a
// "pagamento" lowers it, an "estorno" reverses a previous debit.
const (
	EntryDebito    = "debito"
	EntryPagamento = "pagamento"
	EntryEstorno   = "estorno"
)

// Customer is a storefront or in-store buyer. CreditLimit caps the open
// fiado balance in centavos; zero means fiado is not extended.
type Customer struct {
	ID          string `validate:"required,uuid"`
	TenantID    string `validate:"required,uuid"`
	Name        string `validate:"required,max=160"`
	Phone       string `validate:"omitempty,max=20"`
	Email       string `validate:"omitempty,email"`
	Document    string `validate:"omitempty,max=20"`
	CreditLimit int64  `validate:"gte=0"`
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate for validating Customer struct
func (c *Customer) Validate() error {
	validate := validator.New()

	err := validate.Struct(c)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// CreditEntry is one append-only row of the fiado ledger. Amount is always
// positive; the kind carries the sign. Balance is the customer's open balance
// after this entry.
type CreditEntry struct {
	ID         string `validate:"required,uuid"`
	TenantID   string `validate:"required,uuid"`
	CustomerID string `validate:"required,uuid"`
	OrderID    string `validate:"omitempty,uuid"`
	Kind       string `validate:"required,oneof=debito pagamento estorno"`
	Amount     int64  `validate:"required,gt=0"`
	Balance    int64
	Note       string
	CreatedAt  time.Time
}

// Signed returns the amount with the sign implied by the entry kind.
func (e *CreditEntry) Signed() int64 {
	if e.Kind == EntryDebito {
		return e.Amount
	}
	return -e.Amount
}

// Validate for validating CreditEntry struct
func (e *CreditEntry) Validate() error {
	validate := validator.New()

	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("validation failed for CreditEntry: %w", err)
	}

	return nil
}

// CustomerQuery carries filter and pagination parameters for customer listings.
type CustomerQuery struct {
	Search     string
	ActiveOnly bool
	Limit      int `validate:"gte=0,lte=200"`
	Offset     int `validate:"gte=0"`
}

// NewCustomerQuery creates a CustomerQuery with default pagination.
func NewCustomerQuery() *CustomerQuery {
	return &CustomerQuery{Limit: 50}
}

// Validate for validating CustomerQuery struct
func (q *CustomerQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for CustomerQuery: %w", err)
	}

	return nil
}
