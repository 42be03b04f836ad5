//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/cart"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/orders"
)

const testSessionKey = "visitor-session-0001"

func testCart() *cart.Cart {
	return &cart.Cart{
		ID:         "5a4b3c2d-1e0f-4a9b-8c7d-6e5f4a3b2c04",
		TenantID:   testTenantID,
		SessionKey: testSessionKey,
		Items: []cart.CartItem{
			{
				ProductID: "3d2c1b0a-6e5f-4a3b-9c8d-7e6f5a4b3c02",
				SKU:       "REF-2L-001",
				Name:      "Refrigerante Cola 2L",
				Quantity:  2,
				UnitPrice: 899,
				LineTotal: 1798,
			},
		},
	}
}

func TestCartHandler_Get_Success(t *testing.T) {
	mockCartService := new(MockCartService)
	mockCheckoutService := new(MockCheckoutService)
	handler := NewCartHandler(mockCartService, mockCheckoutService)

	mockCartService.
		On("GetOrCreate", mock.Anything, testTenantID, testSessionKey).
		Return(testCart(), nil)

	c, w := newTestContext(t, "GET", "/cart", "")
	c.Request.Header.Set(SessionHeader, testSessionKey)

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "REF-2L-001")
	assert.Contains(t, w.Body.String(), `"total":1798`)
	mockCartService.AssertExpectations(t)
}

func TestCartHandler_Get_MissingSessionHeader(t *testing.T) {
	mockCartService := new(MockCartService)
	mockCheckoutService := new(MockCheckoutService)
	handler := NewCartHandler(mockCartService, mockCheckoutService)

	c, w := newTestContext(t, "GET", "/cart", "")

	handler.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "X-Cart-Session")
	mockCartService.AssertNotCalled(t, "GetOrCreate")
}

func TestCartHandler_AddItem_ProductNotFound(t *testing.T) {
	mockCartService := new(MockCartService)
	mockCheckoutService := new(MockCheckoutService)
	handler := NewCartHandler(mockCartService, mockCheckoutService)

	productID := "3d2c1b0a-6e5f-4a3b-9c8d-7e6f5a4b3c02"

	mockCartService.
		On("AddItem", mock.Anything, testTenantID, testSessionKey, productID, 2).
		Return(nil, catalog.ErrProductNotFound)

	requestBody := `{"product_id": "` + productID + `", "quantity": 2}`
	c, w := newTestContext(t, "POST", "/cart/items", requestBody)
	c.Request.Header.Set(SessionHeader, testSessionKey)

	handler.AddItem(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockCartService.AssertExpectations(t)
}

func TestCartHandler_UpdateItem_ItemNotFound(t *testing.T) {
	mockCartService := new(MockCartService)
	mockCheckoutService := new(MockCheckoutService)
	handler := NewCartHandler(mockCartService, mockCheckoutService)

	productID := "3d2c1b0a-6e5f-4a3b-9c8d-7e6f5a4b3c02"

	mockCartService.
		On("UpdateItemQuantity", mock.Anything, testTenantID, testSessionKey, productID, 3).
		Return(nil, cart.ErrItemNotFound)

	c, w := newTestContext(t, "PUT", "/cart/items/"+productID, `{"quantity": 3}`)
	c.Request.Header.Set(SessionHeader, testSessionKey)
	c.Params = gin.Params{gin.Param{Key: "productId", Value: productID}}

	handler.UpdateItem(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockCartService.AssertExpectations(t)
}

func TestCartHandler_Checkout_Success(t *testing.T) {
	mockCartService := new(MockCartService)
	mockCheckoutService := new(MockCheckoutService)
	handler := NewCartHandler(mockCartService, mockCheckoutService)

	order := testOrder(orders.StatusPendente)

	mockCheckoutService.
		On("Checkout", mock.Anything, testTenantID, testSessionKey, mock.AnythingOfType("*cart.CheckoutInput")).
		Return(order, nil)

	requestBody := `{"customer_name": "Maria Souza", "payment_method": "pix"}`
	c, w := newTestContext(t, "POST", "/checkout", requestBody)
	c.Request.Header.Set(SessionHeader, testSessionKey)

	handler.Checkout(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "pendente")
	mockCheckoutService.AssertExpectations(t)
}

func TestCartHandler_Checkout_EmptyCart(t *testing.T) {
	mockCartService := new(MockCartService)
	mockCheckoutService := new(MockCheckoutService)
	handler := NewCartHandler(mockCartService, mockCheckoutService)

	mockCheckoutService.
		On("Checkout", mock.Anything, testTenantID, testSessionKey, mock.AnythingOfType("*cart.CheckoutInput")).
		Return(nil, cart.ErrEmptyCart)

	requestBody := `{"customer_name": "Maria Souza", "payment_method": "dinheiro"}`
	c, w := newTestContext(t, "POST", "/checkout", requestBody)
	c.Request.Header.Set(SessionHeader, testSessionKey)

	handler.Checkout(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")
	mockCheckoutService.AssertExpectations(t)
}
