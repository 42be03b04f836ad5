package orders

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// OrderItem is one line of an order. Unit price and line total are frozen at
// the time the order is created; later catalog price changes never touch
// existing orders.
type OrderItem struct {
	ProductID string `validate:"required,uuid"`
	SKU       string `validate:"required"`
	Name      string `validate:"required"`
	Quantity  int    `validate:"required,gt=0"`
	UnitPrice int64  `validate:"gte=0"`
	LineTotal int64  `validate:"gte=0"`
}

// Order represents a sale (or quote) placed through the storefront or the PDV.
// Monetary values are in centavos.
type Order struct {
	ID            string      `validate:"required,uuid"`
	TenantID      string      `validate:"required,uuid"`
	Number        int64
	CustomerID    string      `validate:"omitempty,uuid"`
	CustomerName  string
	CustomerPhone string
	Status        string      `validate:"required,oneof=orcamento pendente confirmado entregue cancelado"`
	Origin        string      `validate:"required,oneof=loja pdv"`
	PaymentMethod string      `validate:"required,oneof=dinheiro cartao pix fiado"`
	Items         []OrderItem `validate:"required,min=1,dive"`
	Subtotal      int64       `validate:"gte=0"`
	Discount      int64       `validate:"gte=0"`
	Total         int64       `validate:"gte=0"`
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ComputeTotals recalculates line totals, subtotal and total from the items
// and the discount.
func (o *Order) ComputeTotals() {
	var subtotal int64
	for i := range o.Items {
		o.Items[i].LineTotal = o.Items[i].UnitPrice * int64(o.Items[i].Quantity)
		subtotal += o.Items[i].LineTotal
	}
	o.Subtotal = subtotal
	o.Total = subtotal - o.Discount
	if o.Total < 0 {
		o.Total = 0
	}
}

// Validate for validating Order struct
func (o *Order) Validate() error {
	validate := validator.New()

	err := validate.Struct(o)
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

	if o.PaymentMethod == PaymentFiado && o.CustomerID == "" {
		return ErrFiadoRequiresCustomer
	}
	if o.Discount > o.Subtotal {
		return fmt.Errorf("discount %d exceeds subtotal %d", o.Discount, o.Subtotal)
	}

	return nil
}

// OrderQuery carries filter and pagination parameters for order listings.
type OrderQuery struct {
	Status     string `validate:"omitempty,oneof=orcamento pendente confirmado entregue cancelado"`
	Origin     string `validate:"omitempty,oneof=loja pdv"`
	CustomerID string `validate:"omitempty,uuid"`
	From       time.Time
	To         time.Time
	Limit      int `validate:"gte=0,lte=200"`
	Offset     int `validate:"gte=0"`
}

// NewOrderQuery creates an OrderQuery with default pagination.
func NewOrderQuery() *OrderQuery {
	return &OrderQuery{Limit: 50}
}

// Validate for validating OrderQuery struct
func (q *OrderQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for OrderQuery: %w", err)
	}

	return nil
}
