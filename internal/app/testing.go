//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/appearance"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/cart"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/customers"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/orders"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/infrastructure/persistence"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Test constants for issuing access tokens
const (
	TestJWTSecret = "integration-test-secret"
	TestTokenTTL  = 30 * time.Minute
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	Auth       identity.AuthService
	Tenant     identity.TenantService
	User       identity.UserService
	Category   catalog.CategoryService
	Product    catalog.ProductService
	Cart       cart.CartService
	Checkout   cart.CheckoutService
	Order      orders.OrderService
	QuickSale  orders.QuickSaleService
	Customer   customers.CustomerService
	Credit     customers.CreditService
	Appearance appearance.AppearanceService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t)

	authService, err := NewAuthService(dbContext.TenantRepo, dbContext.UserRepo, TestJWTSecret, TestTokenTTL, log)
	require.NoError(t, err, "Failed to create AuthService")

	tenantService, err := NewTenantService(dbContext.TenantRepo, log)
	require.NoError(t, err, "Failed to create TenantService")

	userService, err := NewUserService(dbContext.UserRepo, log)
	require.NoError(t, err, "Failed to create UserService")

	categoryService, err := NewCategoryService(dbContext.CategoryRepo, dbContext.ProductRepo, log)
	require.NoError(t, err, "Failed to create CategoryService")

	productService, err := NewProductService(dbContext.ProductRepo, dbContext.CategoryRepo, log)
	require.NoError(t, err, "Failed to create ProductService")

	cartService, err := NewCartService(dbContext.CartRepo, dbContext.ProductRepo, log)
	require.NoError(t, err, "Failed to create CartService")

	checkoutService, err := NewCheckoutService(dbContext.CartRepo, dbContext.ProductRepo, dbContext.OrderRepo, log)
	require.NoError(t, err, "Failed to create CheckoutService")

	orderService, err := NewOrderService(dbContext.OrderRepo, log)
	require.NoError(t, err, "Failed to create OrderService")

	quickSaleService, err := NewQuickSaleService(dbContext.OrderRepo, dbContext.ProductRepo, dbContext.CustomerRepo, log)
	require.NoError(t, err, "Failed to create QuickSaleService")

	customerService, err := NewCustomerService(dbContext.CustomerRepo, log)
	require.NoError(t, err, "Failed to create CustomerService")

	creditService, err := NewCreditService(dbContext.CreditRepo, dbContext.CustomerRepo, log)
	require.NoError(t, err, "Failed to create CreditService")

	appearanceService, err := NewAppearanceService(dbContext.ThemeRepo, dbContext.SlideRepo, dbContext.TenantRepo, log)
	require.NoError(t, err, "Failed to create AppearanceService")

	return &TestServices{
		Auth:       authService,
		Tenant:     tenantService,
		User:       userService,
		Category:   categoryService,
		Product:    productService,
		Cart:       cartService,
		Checkout:   checkoutService,
		Order:      orderService,
		QuickSale:  quickSaleService,
		Customer:   customerService,
		Credit:     creditService,
		Appearance: appearanceService,
		DBContext:  dbContext,
	}
}

// SeedProduct registers an active product through the catalog service
func SeedProduct(t *testing.T, services *TestServices, tenantID string, stock int) *catalog.Product {
	t.Helper()

	product, err := services.Product.Create(context.Background(), &catalog.Product{
		TenantID:    tenantID,
		SKU:         "SKU-" + uuid.NewString()[:8],
		Name:        "Refrigerante 2L",
		RetailPrice: 899,
		Stock:       stock,
		Active:      true,
	})
	require.NoError(t, err, "Failed to seed product")
	return product
}

// SeedCustomer registers a customer through the customer service
func SeedCustomer(t *testing.T, services *TestServices, tenantID string, creditLimit int64) *customers.Customer {
	t.Helper()

	customer, err := services.Customer.Create(context.Background(), &customers.Customer{
		TenantID:    tenantID,
		Name:        "Maria Souza",
		Phone:       "11988887777",
		CreditLimit: creditLimit,
	})
	require.NoError(t, err, "Failed to seed customer")
	return customer
}
