package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/cart"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/orders"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"

	"github.com/google/uuid"
)

// cartService implements the CartService interface
type cartService struct {
	cartRepo    cart.CartRepository
	productRepo catalog.ProductRepository
	logger      logger.Logger
}

// NewCartService creates a new cartService instance
func NewCartService(
	cartRepo cart.CartRepository,
	productRepo catalog.ProductRepository,
	logger logger.Logger,
) (cart.CartService, error) {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}, nil
}

// GetOrCreate returns the cart for the session key, creating an empty one on
// first use.
func (s *cartService) GetOrCreate(ctx context.Context, tenantID, sessionKey string) (*cart.Cart, error) {
	existing, err := s.cartRepo.GetBySessionKey(ctx, tenantID, sessionKey)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, cart.ErrCartNotFound) {
		return nil, fmt.Errorf("%w", err)
	}

	now := time.Now().UTC()
	created := &cart.Cart{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		SessionKey: sessionKey,
		Items:      []cart.CartItem{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.cartRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return created, nil
}

// AddItem adds a product to the cart, merging quantity into an existing line.
// Prices are read from the catalog at call time.
func (s *cartService) AddItem(ctx context.Context, tenantID, sessionKey, productID string, quantity int) (*cart.Cart, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	c, err := s.GetOrCreate(ctx, tenantID, sessionKey)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, tenantID, productID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if !product.Active {
		return nil, catalog.ErrProductInactive
	}

	if idx := c.ItemIndex(productID); idx >= 0 {
		c.Items[idx].Quantity += quantity
	} else {
		c.Items = append(c.Items, cart.CartItem{
			ProductID: product.ID,
			SKU:       product.SKU,
			Name:      product.Name,
			Quantity:  quantity,
		})
	}

	if err := s.reprice(ctx, c); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return c, nil
}

func (s *cartService) UpdateItemQuantity(ctx context.Context, tenantID, sessionKey, productID string, quantity int) (*cart.Cart, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative")
	}
	if quantity == 0 {
		return s.RemoveItem(ctx, tenantID, sessionKey, productID)
	}

	c, err := s.cartRepo.GetBySessionKey(ctx, tenantID, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	idx := c.ItemIndex(productID)
	if idx < 0 {
		return nil, cart.ErrItemNotFound
	}
	c.Items[idx].Quantity = quantity

	if err := s.reprice(ctx, c); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return c, nil
}

func (s *cartService) RemoveItem(ctx context.Context, tenantID, sessionKey, productID string) (*cart.Cart, error) {
	c, err := s.cartRepo.GetBySessionKey(ctx, tenantID, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	idx := c.ItemIndex(productID)
	if idx < 0 {
		return nil, cart.ErrItemNotFound
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)

	if err := s.reprice(ctx, c); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return c, nil
}

func (s *cartService) Clear(ctx context.Context, tenantID, sessionKey string) error {
	c, err := s.cartRepo.GetBySessionKey(ctx, tenantID, sessionKey)
	if err != nil {
		if errors.Is(err, cart.ErrCartNotFound) {
			return nil
		}
		return fmt.Errorf("%w", err)
	}

	c.Items = []cart.CartItem{}
	c.UpdatedAt = time.Now().UTC()
	return s.cartRepo.Save(ctx, c)
}

// reprice refreshes every line's unit price from the catalog so wholesale
// pricing tracks the current quantities.
func (s *cartService) reprice(ctx context.Context, c *cart.Cart) error {
	for i := range c.Items {
		product, err := s.productRepo.GetByID(ctx, c.TenantID, c.Items[i].ProductID)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		c.Items[i].UnitPrice = product.UnitPriceFor(c.Items[i].Quantity)
		c.Items[i].LineTotal = c.Items[i].UnitPrice * int64(c.Items[i].Quantity)
	}
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// checkoutService implements the CheckoutService interface
type checkoutService struct {
	cartRepo    cart.CartRepository
	productRepo catalog.ProductRepository
	orderRepo   orders.OrderRepository
	logger      logger.Logger
}

// NewCheckoutService creates a new checkoutService instance
func NewCheckoutService(
	cartRepo cart.CartRepository,
	productRepo catalog.ProductRepository,
	orderRepo orders.OrderRepository,
	logger logger.Logger,
) (cart.CheckoutService, error) {
	return &checkoutService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}, nil
}

// Checkout validates stock for every cart line, reprices the lines from the
// catalog and creates the order, then clears the cart.
func (s *checkoutService) Checkout(ctx context.Context, tenantID, sessionKey string, input *cart.CheckoutInput) (*orders.Order, error) {
	c, err := s.cartRepo.GetBySessionKey(ctx, tenantID, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if len(c.Items) == 0 {
		return nil, cart.ErrEmptyCart
	}

	items := make([]orders.OrderItem, 0, len(c.Items))
	for _, line := range c.Items {
		product, err := s.productRepo.GetByID(ctx, tenantID, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if !product.Active {
			return nil, catalog.ErrProductInactive
		}
		if product.Stock < line.Quantity {
			return nil, catalog.ErrInsufficientStock
		}
		items = append(items, orders.OrderItem{
			ProductID: product.ID,
			SKU:       product.SKU,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: product.UnitPriceFor(line.Quantity),
		})
	}

	status := orders.StatusPendente
	if input.AsQuote {
		status = orders.StatusOrcamento
	}

	now := time.Now().UTC()
	order := &orders.Order{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		CustomerID:    input.CustomerID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Status:        status,
		Origin:        orders.OriginLoja,
		PaymentMethod: input.PaymentMethod,
		Items:         items,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	order.ComputeTotals()

	if err := order.Validate(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order, nil); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	c.Items = []cart.CartItem{}
	c.UpdatedAt = now
	if err := s.cartRepo.Save(ctx, c); err != nil {
		s.logger.Warn("Failed to clear cart ", c.ID, " after checkout: ", err.Error())
	}

	s.logger.Info("Checked out cart ", c.ID, " into order ", order.ID)
	return order, nil
}
