//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/cart"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/orders"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionKey = "visitor-session-0001"

func TestCartService_GetOrCreate(t *testing.T) {
	services := SetupTestServices(t)

	tenantID := uuid.NewString()
	created, err := services.Cart.GetOrCreate(context.Background(), tenantID, testSessionKey)
	require.NoError(t, err)
	assert.Empty(t, created.Items)

	again, err := services.Cart.GetOrCreate(context.Background(), tenantID, testSessionKey)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
}

func TestCartService_AddItem_MergesLines(t *testing.T) {
	services := SetupTestServices(t)

	tenantID := uuid.NewString()
	product := SeedProduct(t, services, tenantID, 50)

	_, err := services.Cart.AddItem(context.Background(), tenantID, testSessionKey, product.ID, 2)
	require.NoError(t, err)

	c, err := services.Cart.AddItem(context.Background(), tenantID, testSessionKey, product.ID, 3)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, int64(899), c.Items[0].UnitPrice)
	assert.Equal(t, int64(4495), c.Total())
}

func TestCartService_AddItem_WholesalePriceKicksIn(t *testing.T) {
	services := SetupTestServices(t)

	tenantID := uuid.NewString()
	product, err := services.Product.Create(context.Background(), &catalog.Product{
		TenantID:        tenantID,
		SKU:             "REF-2L-001",
		Name:            "Refrigerante 2L",
		RetailPrice:     899,
		WholesalePrice:  749,
		WholesaleMinQty: 12,
		Stock:           100,
		Active:          true,
	})
	require.NoError(t, err)

	c, err := services.Cart.AddItem(context.Background(), tenantID, testSessionKey, product.ID, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(899), c.Items[0].UnitPrice)

	// Crossing the wholesale threshold reprices the whole line
	c, err = services.Cart.AddItem(context.Background(), tenantID, testSessionKey, product.ID, 6)
	require.NoError(t, err)
	assert.Equal(t, 12, c.Items[0].Quantity)
	assert.Equal(t, int64(749), c.Items[0].UnitPrice)
	assert.Equal(t, int64(8988), c.Total())

	// Dropping below it falls back to retail
	c, err = services.Cart.UpdateItemQuantity(context.Background(), tenantID, testSessionKey, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(899), c.Items[0].UnitPrice)
}

func TestCartService_AddItem_InactiveProduct(t *testing.T) {
	services := SetupTestServices(t)

	tenantID := uuid.NewString()
	product := SeedProduct(t, services, tenantID, 10)
	product.Active = false
	require.NoError(t, services.Product.Update(context.Background(), product))

	_, err := services.Cart.AddItem(context.Background(), tenantID, testSessionKey, product.ID, 1)
	assert.ErrorIs(t, err, catalog.ErrProductInactive)
}

func TestCartService_RemoveItem(t *testing.T) {
	services := SetupTestServices(t)

	tenantID := uuid.NewString()
	product := SeedProduct(t, services, tenantID, 10)

	_, err := services.Cart.AddItem(context.Background(), tenantID, testSessionKey, product.ID, 2)
	require.NoError(t, err)

	c, err := services.Cart.RemoveItem(context.Background(), tenantID, testSessionKey, product.ID)
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	_, err = services.Cart.RemoveItem(context.Background(), tenantID, testSessionKey, product.ID)
	assert.ErrorIs(t, err, cart.ErrItemNotFound)
}

func TestCheckoutService_Checkout(t *testing.T) {
	services := SetupTestServices(t)

	tenantID := uuid.NewString()
	product := SeedProduct(t, services, tenantID, 10)

	_, err := services.Cart.AddItem(context.Background(), tenantID, testSessionKey, product.ID, 2)
	require.NoError(t, err)

	order, err := services.Checkout.Checkout(context.Background(), tenantID, testSessionKey, &cart.CheckoutInput{
		CustomerName:  "Maria Souza",
		CustomerPhone: "11988887777",
		PaymentMethod: orders.PaymentPix,
	})
	require.NoError(t, err)
	assert.Equal(t, orders.StatusPendente, order.Status)
	assert.Equal(t, orders.OriginLoja, order.Origin)
	assert.Equal(t, int64(1), order.Number)
	assert.Equal(t, int64(1798), order.Total)

	// Checkout leaves the cart empty; stock only moves on confirmation
	c, err := services.Cart.GetOrCreate(context.Background(), tenantID, testSessionKey)
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	stored, err := services.Product.GetByID(context.Background(), tenantID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Stock)
}

func TestCheckoutService_Checkout_AsQuote(t *testing.T) {
	services := SetupTestServices(t)

	tenantID := uuid.NewString()
	product := SeedProduct(t, services, tenantID, 10)

	_, err := services.Cart.AddItem(context.Background(), tenantID, testSessionKey, product.ID, 1)
	require.NoError(t, err)

	order, err := services.Checkout.Checkout(context.Background(), tenantID, testSessionKey, &cart.CheckoutInput{
		CustomerName:  "Maria Souza",
		PaymentMethod: orders.PaymentDinheiro,
		AsQuote:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, orders.StatusOrcamento, order.Status)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	services := SetupTestServices(t)

	tenantID := uuid.NewString()
	_, err := services.Cart.GetOrCreate(context.Background(), tenantID, testSessionKey)
	require.NoError(t, err)

	order, err := services.Checkout.Checkout(context.Background(), tenantID, testSessionKey, &cart.CheckoutInput{
		PaymentMethod: orders.PaymentPix,
	})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, cart.ErrEmptyCart)
}

func TestCheckoutService_Checkout_InsufficientStock(t *testing.T) {
	services := SetupTestServices(t)

	tenantID := uuid.NewString()
	product := SeedProduct(t, services, tenantID, 5)

	_, err := services.Cart.AddItem(context.Background(), tenantID, testSessionKey, product.ID, 3)
	require.NoError(t, err)

	// Stock drains between adding to cart and checking out
	require.NoError(t, services.Product.AdjustStock(context.Background(), tenantID, product.ID, -4))

	_, err = services.Checkout.Checkout(context.Background(), tenantID, testSessionKey, &cart.CheckoutInput{
		PaymentMethod: orders.PaymentPix,
	})
	assert.ErrorIs(t, err, catalog.ErrInsufficientStock)
}

func TestCheckoutService_Checkout_FiadoRequiresCustomer(t *testing.T) {
	services := SetupTestServices(t)

	tenantID := uuid.NewString()
	product := SeedProduct(t, services, tenantID, 10)

	_, err := services.Cart.AddItem(context.Background(), tenantID, testSessionKey, product.ID, 1)
	require.NoError(t, err)

	_, err = services.Checkout.Checkout(context.Background(), tenantID, testSessionKey, &cart.CheckoutInput{
		CustomerName:  "Maria Souza",
		PaymentMethod: orders.PaymentFiado,
	})
	assert.ErrorIs(t, err, orders.ErrFiadoRequiresCustomer)
}
