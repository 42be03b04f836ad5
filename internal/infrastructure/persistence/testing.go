//go:build integration
// +build integration

package persistence

import (
	"testing"
	"time"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/appearance"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/cart"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/customers"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/orders"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/config"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and every repository built on it
type TestContext struct {
	DB           *gorm.DB
	TenantRepo   identity.TenantRepository
	UserRepo     identity.UserRepository
	CategoryRepo catalog.CategoryRepository
	ProductRepo  catalog.ProductRepository
	CartRepo     cart.CartRepository
	OrderRepo    orders.OrderRepository
	CustomerRepo customers.CustomerRepository
	CreditRepo   customers.CreditRepository
	ThemeRepo    appearance.ThemeRepository
	SlideRepo    appearance.SlideRepository
}

// SetupTestDB initializes an in-memory test database with the full schema
// and all repositories wired to it.
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	log := testutil.SetupTestLogger(t)

	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	t.Cleanup(func() {
		_ = CloseDB(db)
	})

	ctx := &TestContext{DB: db}

	ctx.TenantRepo, err = NewGormTenantRepository(db, log)
	require.NoError(t, err)
	ctx.UserRepo, err = NewGormUserRepository(db, log)
	require.NoError(t, err)
	ctx.CategoryRepo, err = NewGormCategoryRepository(db, log)
	require.NoError(t, err)
	ctx.ProductRepo, err = NewGormProductRepository(db, log)
	require.NoError(t, err)
	ctx.CartRepo, err = NewGormCartRepository(db, log)
	require.NoError(t, err)
	ctx.OrderRepo, err = NewGormOrderRepository(db, log)
	require.NoError(t, err)
	ctx.CustomerRepo, err = NewGormCustomerRepository(db, log)
	require.NoError(t, err)
	ctx.CreditRepo, err = NewGormCreditRepository(db, log)
	require.NoError(t, err)
	ctx.ThemeRepo, err = NewGormThemeRepository(db, log)
	require.NoError(t, err)
	ctx.SlideRepo, err = NewGormSlideRepository(db, log)
	require.NoError(t, err)

	return ctx
}

// CreateTestTenant builds an active tenant with a unique slug
func CreateTestTenant(t *testing.T) *identity.Tenant {
	t.Helper()

	id := uuid.NewString()
	return &identity.Tenant{
		ID:        id,
		Slug:      "loja-" + id[:8],
		Name:      "Loja de Teste",
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
}

// CreateTestUser builds an active user with the default permissions of its role
func CreateTestUser(t *testing.T, tenantID, role string) *identity.User {
	t.Helper()

	id := uuid.NewString()
	return &identity.User{
		ID:           id,
		TenantID:     tenantID,
		Name:         "Usuario de Teste",
		Email:        id[:8] + "@loja.dev",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         role,
		Permissions:  identity.DefaultPermissions(role),
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
}

// CreateTestProduct builds an active product with the given stock level
func CreateTestProduct(t *testing.T, tenantID string, stock int) *catalog.Product {
	t.Helper()

	id := uuid.NewString()
	return &catalog.Product{
		ID:          id,
		TenantID:    tenantID,
		SKU:         "SKU-" + id[:8],
		Name:        "Refrigerante 2L",
		RetailPrice: 899,
		Stock:       stock,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}
}

// CreateTestCustomer builds an active customer with the given credit limit
func CreateTestCustomer(t *testing.T, tenantID string, creditLimit int64) *customers.Customer {
	t.Helper()

	return &customers.Customer{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		Name:        "Maria Souza",
		Phone:       "11988887777",
		CreditLimit: creditLimit,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}
}

// CreateTestOrder builds a pending storefront order holding one line of the
// given product, with totals computed
func CreateTestOrder(t *testing.T, tenantID string, product *catalog.Product, quantity int) *orders.Order {
	t.Helper()

	order := &orders.Order{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		Status:        orders.StatusPendente,
		Origin:        orders.OriginLoja,
		PaymentMethod: orders.PaymentPix,
		Items: []orders.OrderItem{
			{
				ProductID: product.ID,
				SKU:       product.SKU,
				Name:      product.Name,
				Quantity:  quantity,
				UnitPrice: product.UnitPriceFor(quantity),
			},
		},
		CreatedAt: time.Now().UTC(),
	}
	order.ComputeTotals()
	return order
}
