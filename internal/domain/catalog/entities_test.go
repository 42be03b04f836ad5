//go:build unit
// +build unit

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() *Product {
	return &Product{
		ID:              "3d2c1b0a-6e5f-4a3b-9c8d-7e6f5a4b3c02",
		TenantID:        "6f1e1d9a-7f48-4f44-9e6e-2f6a7a6b8c01",
		SKU:             "REF-2L-001",
		Name:            "Refrigerante Cola 2L",
		RetailPrice:     899,
		WholesalePrice:  749,
		WholesaleMinQty: 12,
		Stock:           120,
		Active:          true,
	}
}

func TestProduct_UnitPriceFor(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		expected int64
	}{
		{"Single unit uses retail", 1, 899},
		{"Below threshold uses retail", 11, 899},
		{"At threshold uses wholesale", 12, 749},
		{"Above threshold uses wholesale", 50, 749},
	}

	product := validProduct()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, product.UnitPriceFor(tt.quantity))
		})
	}
}

func TestProduct_UnitPriceFor_NoWholesaleTier(t *testing.T) {
	product := validProduct()
	product.WholesalePrice = 0
	product.WholesaleMinQty = 0

	require.Equal(t, int64(899), product.UnitPriceFor(100))
}

func TestProduct_Validate(t *testing.T) {
	require.NoError(t, validProduct().Validate())

	noSKU := validProduct()
	noSKU.SKU = ""
	err := noSKU.Validate()
	assert.NotNil(t, err, "Expected validation errors for product without SKU")
	assert.Contains(t, err.Error(), "Field: SKU, Tag: required")

	negativeStock := validProduct()
	negativeStock.Stock = -1
	err = negativeStock.Validate()
	assert.NotNil(t, err, "Expected validation errors for negative stock")
	assert.Contains(t, err.Error(), "Field: Stock, Tag: gte")
}

func TestProduct_Validate_WholesaleTierNeedsPrice(t *testing.T) {
	product := validProduct()
	product.WholesalePrice = 0

	err := product.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "wholesale price required")
}

func TestProductQuery_Validate(t *testing.T) {
	query := NewProductQuery()
	require.Equal(t, "name", query.SortBy)
	require.Equal(t, "asc", query.SortOrder)
	require.Equal(t, 50, query.Limit)
	require.NoError(t, query.Validate())

	query.SortBy = "price"
	require.Error(t, query.Validate())

	query = NewProductQuery()
	query.Limit = 1000
	require.Error(t, query.Validate())
}

func TestCategory_Validate(t *testing.T) {
	category := &Category{
		ID:       "0a4f6c1e-9a15-4b2e-8d42-5b7a1c3d9e21",
		TenantID: "6f1e1d9a-7f48-4f44-9e6e-2f6a7a6b8c01",
		Name:     "Bebidas",
		Active:   true,
	}
	require.NoError(t, category.Validate())

	category.Name = ""
	require.Error(t, category.Validate())
}
