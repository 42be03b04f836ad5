package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Category groups products on the storefront.
type Category struct {
	ID       string `validate:"required,uuid"`
	TenantID string `validate:"required,uuid"`
	Name     string `validate:"required,max=80"`
	Position int    `validate:"gte=0"`
	Active   bool
}

// Validate for validating Category struct
func (c *Category) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for Category: %w", err)
	}

	return nil
}

// Product is a catalog item. All monetary values are in centavos to avoid
// floating point rounding; the wholesale price applies from WholesaleMinQty
// units upwards.
type Product struct {
	ID              string `validate:"required,uuid"`
	TenantID        string `validate:"required,uuid"`
	CategoryID      string `validate:"omitempty,uuid"`
	SKU             string `validate:"required,max=40"`
	Name            string `validate:"required,max=160"`
	Description     string
	RetailPrice     int64 `validate:"gte=0"`
	WholesalePrice  int64 `validate:"gte=0"`
	WholesaleMinQty int   `validate:"gte=0"`
	Stock           int   `validate:"gte=0"`
	ImageURL        string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UnitPriceFor returns the price charged per unit for the given quantity,
// selecting the wholesale price once the wholesale threshold is reached.
func (p *Product) UnitPriceFor(quantity int) int64 {
	if p.WholesaleMinQty > 0 && quantity >= p.WholesaleMinQty && p.WholesalePrice > 0 {
		return p.WholesalePrice
	}
	return p.RetailPrice
}

// Validate for validating Product struct
func (p *Product) Validate() error {
	validate := validator.New()

	err := validate.Struct(p)
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

	if p.WholesaleMinQty > 0 && p.WholesalePrice == 0 {
		return fmt.Errorf("wholesale price required when wholesale min quantity is set")
	}

	return nil
}

// ProductQuery carries filter, sort and pagination parameters for listings.
type ProductQuery struct {
	CategoryID string `validate:"omitempty,uuid"`
	Search     string
	ActiveOnly bool
	SortBy     string `validate:"omitempty,oneof=name sku retail_price stock created_at"`
	SortOrder  string `validate:"omitempty,oneof=asc desc"`
	Limit      int    `validate:"gte=0,lte=200"`
	Offset     int    `validate:"gte=0"`
}

// NewProductQuery creates a ProductQuery with default pagination.
func NewProductQuery() *ProductQuery {
	return &ProductQuery{
		SortBy:    "name",
		SortOrder: "asc",
		Limit:     50,
	}
}

// Validate for validating ProductQuery struct
func (q *ProductQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for ProductQuery: %w", err)
	}

	return nil
}
