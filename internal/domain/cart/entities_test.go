//go:build unit
// +build unit

package cart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleCart() *Cart {
	return &Cart{
		ID:         "5a4b3c2d-1e0f-4a9b-8c7d-6e5f4a3b2c04",
		TenantID:   "6f1e1d9a-7f48-4f44-9e6e-2f6a7a6b8c01",
		SessionKey: "visitor-session-0001",
		Items: []CartItem{
			{ProductID: "3d2c1b0a-6e5f-4a3b-9c8d-7e6f5a4b3c02", SKU: "REF-2L-001", Quantity: 2, UnitPrice: 899, LineTotal: 1798},
			{ProductID: "4e3d2c1b-7f6a-4b5c-8d9e-0a1b2c3d4e09", SKU: "ARROZ-5KG-001", Quantity: 1, UnitPrice: 2590, LineTotal: 2590},
		},
	}
}

func TestCart_Total(t *testing.T) {
	c := sampleCart()
	require.Equal(t, int64(4388), c.Total())

	c.Items = nil
	require.Equal(t, int64(0), c.Total())
}

func TestCart_ItemIndex(t *testing.T) {
	c := sampleCart()

	require.Equal(t, 0, c.ItemIndex("3d2c1b0a-6e5f-4a3b-9c8d-7e6f5a4b3c02"))
	require.Equal(t, 1, c.ItemIndex("4e3d2c1b-7f6a-4b5c-8d9e-0a1b2c3d4e09"))
	require.Equal(t, -1, c.ItemIndex("missing"))
}

func TestCart_Validate(t *testing.T) {
	c := sampleCart()
	require.NoError(t, c.Validate())

	c.SessionKey = "short"
	require.Error(t, c.Validate())

	c = sampleCart()
	c.Items[0].Quantity = 0
	require.Error(t, c.Validate())
}
