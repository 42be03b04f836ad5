package cart

import (
	"context"
	"errors"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/orders"
)

// Domain errors surfaced by cart services and repositories.
var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not in cart")
	ErrEmptyCart    = errors.New("cart is empty")
)

// CheckoutInput carries the customer data entered at checkout. AsQuote
// creates the order as an "orcamento" instead of a pending sale.
type CheckoutInput struct {
	CustomerID    string
	CustomerName  string
	CustomerPhone string
	PaymentMethod string
	Notes         string
	AsQuote       bool
}

// CartService manages server-side shopping carts.
type CartService interface {
	// GetOrCreate returns the cart for the session key, creating an empty
	// one on first use.
	GetOrCreate(ctx context.Context, tenantID, sessionKey string) (*Cart, error)
	// AddItem adds a product to the cart, merging quantity into an existing
	// line. Prices are read from the catalog at call time.
	AddItem(ctx context.Context, tenantID, sessionKey, productID string, quantity int) (*Cart, error)
	UpdateItemQuantity(ctx context.Context, tenantID, sessionKey, productID string, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, tenantID, sessionKey, productID string) (*Cart, error)
	Clear(ctx context.Context, tenantID, sessionKey string) error
}

// CheckoutService converts carts into orders.
type CheckoutService interface {
	// Checkout validates stock for every cart line, reprices the lines from
	// the catalog and creates the order, then clears the cart.
	Checkout(ctx context.Context, tenantID, sessionKey string, input *CheckoutInput) (*orders.Order, error)
}

// CartRepository defines the interface for Cart-related operations
type CartRepository interface {
	GetBySessionKey(ctx context.Context, tenantID, sessionKey string) (*Cart, error)
	Create(ctx context.Context, cart *Cart) error
	// Save persists the cart header and replaces its items.
	Save(ctx context.Context, cart *Cart) error
	DeleteByID(ctx context.Context, tenantID, cartID string) error
}
