package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/api/rest/middleware"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/cart"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
)

// SessionHeader carries the opaque cart session key of an anonymous visitor.
const SessionHeader = "X-Cart-Session"

// CartHandler defines the interface for handling cart and checkout operations
type CartHandler interface {
	Get(ctx *gin.Context)
	AddItem(ctx *gin.Context)
	UpdateItem(ctx *gin.Context)
	RemoveItem(ctx *gin.Context)
	Clear(ctx *gin.Context)
	Checkout(ctx *gin.Context)
}

type cartHandler struct {
	cartService     cart.CartService
	checkoutService cart.CheckoutService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService cart.CartService, checkoutService cart.CheckoutService) CartHandler {
	return &cartHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
	}
}

func sessionKey(ctx *gin.Context) (string, bool) {
	key := ctx.GetHeader(SessionHeader)
	if len(key) < 8 || len(key) > 64 {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "missing or malformed X-Cart-Session header"})
		return "", false
	}
	return key, true
}

// Get handles the GET request to fetch the visitor's cart
// @Summary Retrieve the cart of the current session
// @Tags Cart
// @Produce json
// @Param X-Tenant header string true "Store slug"
// @Param X-Cart-Session header string true "Cart session key"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart [get]
func (handler *cartHandler) Get(ctx *gin.Context) {
	key, ok := sessionKey(ctx)
	if !ok {
		return
	}
	tenantID := middleware.TenantID(ctx)

	c, err := handler.cartService.GetOrCreate(ctx, tenantID, key)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error fetching cart: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newCartResponse(c))
}

// AddItem handles the POST request to add a product to the cart
// @Summary Add a product to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Tenant header string true "Store slug"
// @Param X-Cart-Session header string true "Cart session key"
// @Param requestBody body CartItemRequest true "Product and quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items [post]
func (handler *cartHandler) AddItem(ctx *gin.Context) {
	key, ok := sessionKey(ctx)
	if !ok {
		return
	}
	tenantID := middleware.TenantID(ctx)

	var request CartItemRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid cart data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	c, err := handler.cartService.AddItem(ctx, tenantID, key, request.ProductID, request.Quantity)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("product with id %s not found", request.ProductID)})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error adding item: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newCartResponse(c))
}

// UpdateItem handles the PUT request to change a line's quantity
// @Summary Update the quantity of a cart line
// @Description Set the quantity of one cart line. Quantity zero removes the line.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Tenant header string true "Store slug"
// @Param X-Cart-Session header string true "Cart session key"
// @Param productId path string true "Product ID"
// @Param requestBody body CartQuantityRequest true "New quantity"
// @Success 200 {object} CartResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{productId} [put]
func (handler *cartHandler) UpdateItem(ctx *gin.Context) {
	key, ok := sessionKey(ctx)
	if !ok {
		return
	}
	productID := ctx.Param("productId")
	tenantID := middleware.TenantID(ctx)

	var request CartQuantityRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid cart data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	c, err := handler.cartService.UpdateItemQuantity(ctx, tenantID, key, productID, request.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) || errors.Is(err, cart.ErrCartNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("item %s not in cart", productID)})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error updating item: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newCartResponse(c))
}

// RemoveItem handles the DELETE request to remove a line from the cart
// @Summary Remove a product from the cart
// @Tags Cart
// @Produce json
// @Param X-Tenant header string true "Store slug"
// @Param X-Cart-Session header string true "Cart session key"
// @Param productId path string true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{productId} [delete]
func (handler *cartHandler) RemoveItem(ctx *gin.Context) {
	key, ok := sessionKey(ctx)
	if !ok {
		return
	}
	productID := ctx.Param("productId")
	tenantID := middleware.TenantID(ctx)

	c, err := handler.cartService.RemoveItem(ctx, tenantID, key, productID)
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) || errors.Is(err, cart.ErrCartNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("item %s not in cart", productID)})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error removing item: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newCartResponse(c))
}

// Clear handles the DELETE request to empty the cart
// @Summary Empty the cart of the current session
// @Tags Cart
// @Produce json
// @Param X-Tenant header string true "Store slug"
// @Param X-Cart-Session header string true "Cart session key"
// @Success 204 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart [delete]
func (handler *cartHandler) Clear(ctx *gin.Context) {
	key, ok := sessionKey(ctx)
	if !ok {
		return
	}
	tenantID := middleware.TenantID(ctx)

	if err := handler.cartService.Clear(ctx, tenantID, key); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error clearing cart: %v", err.Error())})
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = "cart cleared"
	ctx.JSON(http.StatusNoContent, infoResponse)
}

// Checkout handles the POST request to convert the cart into an order
// @Summary Check out the cart
// @Description Validate stock, reprice every line from the catalog and create the order, then clear the cart.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Tenant header string true "Store slug"
// @Param X-Cart-Session header string true "Cart session key"
// @Param requestBody body CheckoutRequest true "Checkout data"
// @Success 201 {object} OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /checkout [post]
func (handler *cartHandler) Checkout(ctx *gin.Context) {
	key, ok := sessionKey(ctx)
	if !ok {
		return
	}
	tenantID := middleware.TenantID(ctx)

	var request CheckoutRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid checkout data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	input := &cart.CheckoutInput{
		CustomerID:    request.CustomerID,
		CustomerName:  request.CustomerName,
		CustomerPhone: request.CustomerPhone,
		PaymentMethod: request.PaymentMethod,
		Notes:         request.Notes,
		AsQuote:       request.AsQuote,
	}

	order, err := handler.checkoutService.Checkout(ctx, tenantID, key, input)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrEmptyCart):
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "cart is empty"})
		case errors.Is(err, catalog.ErrInsufficientStock):
			ctx.JSON(http.StatusConflict, ErrorResponse{Message: "insufficient stock"})
		default:
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("checkout failed: %v", err.Error())})
		}
		return
	}

	ctx.JSON(http.StatusCreated, newOrderResponse(order))
}
