package cart

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// CartItem is one line of a shopping cart. UnitPrice reflects the retail or
// wholesale price for the current quantity and is recomputed whenever the
// quantity changes.
type CartItem struct {
	ProductID string `validate:"required,uuid"`
	SKU       string
	Name      string
	Quantity  int   `validate:"required,gt=0"`
	UnitPrice int64 `validate:"gte=0"`
	LineTotal int64 `validate:"gte=0"`
}

// Cart is a server-side shopping cart keyed by an opaque session key so
// anonymous storefront visitors keep their cart across requests.
type Cart struct {
	ID         string     `validate:"required,uuid"`
	TenantID   string     `validate:"required,uuid"`
	SessionKey string     `validate:"required,min=8,max=64"`
	CustomerID string     `validate:"omitempty,uuid"`
	Items      []CartItem `validate:"dive"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Total returns the sum of all line totals in centavos.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.LineTotal
	}
	return total
}

// ItemIndex returns the index of the line holding the product, or -1.
func (c *Cart) ItemIndex(productID string) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// Validate for validating Cart struct
func (c *Cart) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for Cart: %w", err)
	}

	return nil
}
