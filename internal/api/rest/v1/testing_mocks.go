//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/appearance"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/cart"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/customers"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/orders"
)

// MockAuthService is a mock implementation of identity.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, tenantSlug, email, password string) (*identity.Session, error) {
	args := m.Called(ctx, tenantSlug, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Session), args.Error(1)
}

// MockTenantService is a mock implementation of identity.TenantService
type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) Register(ctx context.Context, slug, name string) (*identity.Tenant, error) {
	args := m.Called(ctx, slug, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tenant), args.Error(1)
}

func (m *MockTenantService) GetBySlug(ctx context.Context, slug string) (*identity.Tenant, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tenant), args.Error(1)
}

func (m *MockTenantService) List(ctx context.Context) ([]*identity.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identity.Tenant), args.Error(1)
}

// MockUserService is a mock implementation of identity.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, tenantID, name, email, password, role string, permissions []string) (*identity.User, error) {
	args := m.Called(ctx, tenantID, name, email, password, role, permissions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, tenantID string) ([]*identity.User, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identity.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, tenantID, userID string) (*identity.User, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserService) Deactivate(ctx context.Context, tenantID, userID string) error {
	args := m.Called(ctx, tenantID, userID)
	return args.Error(0)
}

// MockCategoryService is a mock implementation of catalog.CategoryService
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Create(ctx context.Context, tenantID, name string, position int) (*catalog.Category, error) {
	args := m.Called(ctx, tenantID, name, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryService) List(ctx context.Context, tenantID string) ([]*catalog.Category, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryService) Delete(ctx context.Context, tenantID, categoryID string) error {
	args := m.Called(ctx, tenantID, categoryID)
	return args.Error(0)
}

// MockProductService is a mock implementation of catalog.ProductService
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, product *catalog.Product) (*catalog.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, tenantID string, query *catalog.ProductQuery) ([]*catalog.Product, error) {
	args := m.Called(ctx, tenantID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, tenantID, productID string) (*catalog.Product, error) {
	args := m.Called(ctx, tenantID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductService) Delete(ctx context.Context, tenantID, productID string) error {
	args := m.Called(ctx, tenantID, productID)
	return args.Error(0)
}

func (m *MockProductService) AdjustStock(ctx context.Context, tenantID, productID string, delta int) error {
	args := m.Called(ctx, tenantID, productID, delta)
	return args.Error(0)
}

func (m *MockProductService) ListLowStock(ctx context.Context, tenantID string, threshold int) ([]*catalog.Product, error) {
	args := m.Called(ctx, tenantID, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

// MockCartService is a mock implementation of cart.CartService
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetOrCreate(ctx context.Context, tenantID, sessionKey string) (*cart.Cart, error) {
	args := m.Called(ctx, tenantID, sessionKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, tenantID, sessionKey, productID string, quantity int) (*cart.Cart, error) {
	args := m.Called(ctx, tenantID, sessionKey, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) UpdateItemQuantity(ctx context.Context, tenantID, sessionKey, productID string, quantity int) (*cart.Cart, error) {
	args := m.Called(ctx, tenantID, sessionKey, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, tenantID, sessionKey, productID string) (*cart.Cart, error) {
	args := m.Called(ctx, tenantID, sessionKey, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) Clear(ctx context.Context, tenantID, sessionKey string) error {
	args := m.Called(ctx, tenantID, sessionKey)
	return args.Error(0)
}

// MockCheckoutService is a mock implementation of cart.CheckoutService
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, tenantID, sessionKey string, input *cart.CheckoutInput) (*orders.Order, error) {
	args := m.Called(ctx, tenantID, sessionKey, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

// MockOrderService is a mock implementation of orders.OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, order *orders.Order) (*orders.Order, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, tenantID, orderID string) (*orders.Order, error) {
	args := m.Called(ctx, tenantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, tenantID string, query *orders.OrderQuery) ([]*orders.Order, error) {
	args := m.Called(ctx, tenantID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orders.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, tenantID, orderID, next string) (*orders.Order, error) {
	args := m.Called(ctx, tenantID, orderID, next)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) Cancel(ctx context.Context, tenantID, orderID string) (*orders.Order, error) {
	args := m.Called(ctx, tenantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

// MockQuickSaleService is a mock implementation of orders.QuickSaleService
type MockQuickSaleService struct {
	mock.Mock
}

func (m *MockQuickSaleService) Sale(ctx context.Context, tenantID string, input *orders.QuickSaleInput) (*orders.Order, error) {
	args := m.Called(ctx, tenantID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

// MockCustomerService is a mock implementation of customers.CustomerService
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Create(ctx context.Context, customer *customers.Customer) (*customers.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customers.Customer), args.Error(1)
}

func (m *MockCustomerService) List(ctx context.Context, tenantID string, query *customers.CustomerQuery) ([]*customers.Customer, error) {
	args := m.Called(ctx, tenantID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customers.Customer), args.Error(1)
}

func (m *MockCustomerService) GetByID(ctx context.Context, tenantID, customerID string) (*customers.Customer, error) {
	args := m.Called(ctx, tenantID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customers.Customer), args.Error(1)
}

func (m *MockCustomerService) Update(ctx context.Context, customer *customers.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerService) Deactivate(ctx context.Context, tenantID, customerID string) error {
	args := m.Called(ctx, tenantID, customerID)
	return args.Error(0)
}

// MockCreditService is a mock implementation of customers.CreditService
type MockCreditService struct {
	mock.Mock
}

func (m *MockCreditService) Statement(ctx context.Context, tenantID, customerID string, limit, offset int) ([]*customers.CreditEntry, error) {
	args := m.Called(ctx, tenantID, customerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customers.CreditEntry), args.Error(1)
}

func (m *MockCreditService) Balance(ctx context.Context, tenantID, customerID string) (int64, error) {
	args := m.Called(ctx, tenantID, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCreditService) RegisterPayment(ctx context.Context, tenantID, customerID string, amount int64, note string) (*customers.CreditEntry, error) {
	args := m.Called(ctx, tenantID, customerID, amount, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customers.CreditEntry), args.Error(1)
}

// MockAppearanceService is a mock implementation of appearance.AppearanceService
type MockAppearanceService struct {
	mock.Mock
}

func (m *MockAppearanceService) GetTheme(ctx context.Context, tenantID string) (*appearance.ThemeSettings, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appearance.ThemeSettings), args.Error(1)
}

func (m *MockAppearanceService) UpdateTheme(ctx context.Context, theme *appearance.ThemeSettings) error {
	args := m.Called(ctx, theme)
	return args.Error(0)
}

func (m *MockAppearanceService) CreateSlide(ctx context.Context, slide *appearance.CatalogSlide) (*appearance.CatalogSlide, error) {
	args := m.Called(ctx, slide)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appearance.CatalogSlide), args.Error(1)
}

func (m *MockAppearanceService) ListSlides(ctx context.Context, tenantID string) ([]*appearance.CatalogSlide, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*appearance.CatalogSlide), args.Error(1)
}

func (m *MockAppearanceService) UpdateSlide(ctx context.Context, slide *appearance.CatalogSlide) error {
	args := m.Called(ctx, slide)
	return args.Error(0)
}

func (m *MockAppearanceService) DeleteSlide(ctx context.Context, tenantID, slideID string) error {
	args := m.Called(ctx, tenantID, slideID)
	return args.Error(0)
}

func (m *MockAppearanceService) ReorderSlides(ctx context.Context, tenantID string, slideIDs []string) error {
	args := m.Called(ctx, tenantID, slideIDs)
	return args.Error(0)
}

func (m *MockAppearanceService) Storefront(ctx context.Context, tenantID string) (*appearance.StorefrontView, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appearance.StorefrontView), args.Error(1)
}
