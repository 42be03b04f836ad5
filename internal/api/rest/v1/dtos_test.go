//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/orders"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   LoginRequest
		shouldErr bool
	}{
		{"Valid", LoginRequest{TenantSlug: "mercado-central", Email: "ana@mercado.dev", Password: "s3nh4forte"}, false},
		{"Missing slug", LoginRequest{Email: "ana@mercado.dev", Password: "s3nh4forte"}, true},
		{"Malformed email", LoginRequest{TenantSlug: "mercado-central", Email: "not-an-email", Password: "s3nh4forte"}, true},
		{"Missing password", LoginRequest{TenantSlug: "mercado-central", Email: "ana@mercado.dev"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   CreateUserRequest
		shouldErr bool
	}{
		{"Valid admin", CreateUserRequest{Name: "Ana", Email: "ana@mercado.dev", Password: "s3nh4forte", Role: "admin"}, false},
		{"Valid seller", CreateUserRequest{Name: "Sergio", Email: "sergio@mercado.dev", Password: "s3nh4forte", Role: "seller"}, false},
		{"Short password", CreateUserRequest{Name: "Ana", Email: "ana@mercado.dev", Password: "curta", Role: "admin"}, true},
		{"Unknown role", CreateUserRequest{Name: "Ana", Email: "ana@mercado.dev", Password: "s3nh4forte", Role: "supervisor"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestProductRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   ProductRequest
		shouldErr bool
	}{
		{"Valid retail only", ProductRequest{SKU: "REF-2L-001", Name: "Refrigerante Cola 2L", RetailPrice: 899, Stock: 120}, false},
		{"Valid with wholesale", ProductRequest{SKU: "REF-2L-001", Name: "Refrigerante Cola 2L", RetailPrice: 899, WholesalePrice: 749, WholesaleMinQty: 12}, false},
		{"Missing SKU", ProductRequest{Name: "Refrigerante Cola 2L", RetailPrice: 899}, true},
		{"Negative price", ProductRequest{SKU: "REF-2L-001", Name: "Refrigerante Cola 2L", RetailPrice: -1}, true},
		{"Bad category id", ProductRequest{SKU: "REF-2L-001", Name: "Refrigerante Cola 2L", CategoryID: "not-a-uuid"}, true},
		{"Bad image url", ProductRequest{SKU: "REF-2L-001", Name: "Refrigerante Cola 2L", ImageURL: "not a url"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestProductRequest_ToDomain_DefaultsActive(t *testing.T) {
	request := ProductRequest{SKU: "REF-2L-001", Name: "Refrigerante Cola 2L", RetailPrice: 899}

	product := request.ToDomain(testTenantID)

	require.True(t, product.Active)
	require.Equal(t, testTenantID, product.TenantID)

	inactive := false
	request.Active = &inactive
	product = request.ToDomain(testTenantID)

	require.False(t, product.Active)
}

func TestCheckoutRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   CheckoutRequest
		shouldErr bool
	}{
		{"Valid pix", CheckoutRequest{CustomerName: "Maria Souza", PaymentMethod: "pix"}, false},
		{"Valid quote", CheckoutRequest{CustomerName: "Maria Souza", PaymentMethod: "dinheiro", AsQuote: true}, false},
		{"Missing name", CheckoutRequest{PaymentMethod: "pix"}, true},
		{"Unknown payment", CheckoutRequest{CustomerName: "Maria Souza", PaymentMethod: "cheque"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestQuickSaleRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   QuickSaleRequest
		shouldErr bool
	}{
		{
			"Valid by SKU",
			QuickSaleRequest{Items: []QuickSaleItemRequest{{SKU: "REF-2L-001", Quantity: 2}}, PaymentMethod: "dinheiro"},
			false,
		},
		{
			"Valid by product id",
			QuickSaleRequest{Items: []QuickSaleItemRequest{{ProductID: "3d2c1b0a-6e5f-4a3b-9c8d-7e6f5a4b3c02", Quantity: 1}}, PaymentMethod: "cartao"},
			false,
		},
		{
			"No items",
			QuickSaleRequest{PaymentMethod: "dinheiro"},
			true,
		},
		{
			"Item without reference",
			QuickSaleRequest{Items: []QuickSaleItemRequest{{Quantity: 2}}, PaymentMethod: "dinheiro"},
			true,
		},
		{
			"Negative discount",
			QuickSaleRequest{Items: []QuickSaleItemRequest{{SKU: "REF-2L-001", Quantity: 2}}, PaymentMethod: "dinheiro", Discount: -1},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestQuickSaleRequest_ToDomain(t *testing.T) {
	request := QuickSaleRequest{
		Items:         []QuickSaleItemRequest{{SKU: "REF-2L-001", Quantity: 2}},
		CustomerName:  "Maria Souza",
		PaymentMethod: "dinheiro",
		Discount:      100,
	}

	input := request.ToDomain()

	require.Len(t, input.Items, 1)
	require.Equal(t, "REF-2L-001", input.Items[0].SKU)
	require.Equal(t, 2, input.Items[0].Quantity)
	require.Equal(t, int64(100), input.Discount)
}

func TestThemeRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   ThemeRequest
		shouldErr bool
	}{
		{"Valid", ThemeRequest{StoreName: "Mercado Central", PrimaryColor: "#112233", SecondaryColor: "#445566"}, false},
		{"Bad color", ThemeRequest{StoreName: "Mercado Central", PrimaryColor: "azul", SecondaryColor: "#445566"}, true},
		{"Missing name", ThemeRequest{PrimaryColor: "#112233", SecondaryColor: "#445566"}, true},
		{"Bad logo url", ThemeRequest{StoreName: "Mercado Central", PrimaryColor: "#112233", SecondaryColor: "#445566", LogoURL: "not a url"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestOrderResponse_FromDomain(t *testing.T) {
	order := testOrder(orders.StatusPendente)

	response := newOrderResponse(order)

	require.Equal(t, order.ID, response.ID)
	require.Equal(t, int64(42), response.Number)
	require.Len(t, response.Items, 1)
	require.Equal(t, int64(1798), response.Total)
}

func TestErrorResponse_Creation(t *testing.T) {
	errResp := ErrorResponse{
		Message: "Test error",
	}

	require.Equal(t, "Test error", errResp.Message)
}
