package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/api/rest/middleware"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/appearance"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/cart"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/customers"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/orders"
)

// Services bundles the application services the API routes depend on.
type Services struct {
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
}

// SetupRoutes sets up all the API routes for version 1. Storefront routes
// resolve the tenant from the X-Tenant header; back-office routes carry it in
// the access token.
func SetupRoutes(r *gin.Engine, services Services, jwtSecret string) {
	v1 := r.Group(BasePath)

	// Auth Routes
	authHandler := NewAuthHandler(services.Auth)
	v1.POST("/auth/login", authHandler.Login)

	// Storefront Routes (public, tenant via X-Tenant header)
	storefront := v1.Group("", middleware.ResolveTenant(services.Tenant))
	storefrontHandler := NewStorefrontHandler(services.Category, services.Product, services.Appearance)
	storefront.GET("/store", storefrontHandler.Storefront)
	storefront.GET("/store/categories", storefrontHandler.ListCategories)
	storefront.GET("/store/products", storefrontHandler.ListProducts)
	storefront.GET("/store/products/:id", storefrontHandler.GetProduct)

	// Cart and Checkout Routes (public, tenant via X-Tenant header)
	cartHandler := NewCartHandler(services.Cart, services.Checkout)
	storefront.GET("/cart", cartHandler.Get)
	storefront.DELETE("/cart", cartHandler.Clear)
	storefront.POST("/cart/items", cartHandler.AddItem)
	storefront.PUT("/cart/items/:productId", cartHandler.UpdateItem)
	storefront.DELETE("/cart/items/:productId", cartHandler.RemoveItem)
	storefront.POST("/checkout", cartHandler.Checkout)

	// Back-office Routes (tenant via access token)
	admin := v1.Group("", middleware.RequireAuth(jwtSecret))

	// User Routes
	userHandler := NewUserHandler(services.User)
	users := admin.Group("", middleware.RequirePermission(identity.PermissionUsers))
	users.POST("/users", userHandler.Create)
	users.GET("/users", userHandler.List)
	users.GET("/users/:id", userHandler.GetByID)
	users.PUT("/users/:id", userHandler.Update)
	users.DELETE("/users/:id", userHandler.Deactivate)

	// Catalog Routes
	categoryHandler := NewCategoryHandler(services.Category)
	productHandler := NewProductHandler(services.Product)
	catalogGroup := admin.Group("", middleware.RequirePermission(identity.PermissionCatalog))
	catalogGroup.POST("/categories", categoryHandler.Create)
	catalogGroup.GET("/categories", categoryHandler.List)
	catalogGroup.PUT("/categories/:id", categoryHandler.Update)
	catalogGroup.DELETE("/categories/:id", categoryHandler.Delete)
	catalogGroup.POST("/products", productHandler.Create)
	catalogGroup.GET("/products", productHandler.List)
	catalogGroup.GET("/products/low-stock", productHandler.ListLowStock)
	catalogGroup.GET("/products/:id", productHandler.GetByID)
	catalogGroup.PUT("/products/:id", productHandler.Update)
	catalogGroup.DELETE("/products/:id", productHandler.Delete)
	catalogGroup.POST("/products/:id/stock", productHandler.AdjustStock)

	// Order Routes
	orderHandler := NewOrderHandler(services.Order)
	orderGroup := admin.Group("", middleware.RequirePermission(identity.PermissionOrders))
	orderGroup.GET("/orders", orderHandler.List)
	orderGroup.GET("/orders/:id", orderHandler.GetByID)
	orderGroup.POST("/orders/:id/status", orderHandler.UpdateStatus)
	orderGroup.POST("/orders/:id/cancel", orderHandler.Cancel)

	// PDV Routes
	pdvHandler := NewPDVHandler(services.QuickSale)
	pdvGroup := admin.Group("", middleware.RequirePermission(identity.PermissionPDV))
	pdvGroup.POST("/pdv/sales", pdvHandler.Sale)

	// Customer Routes
	customerHandler := NewCustomerHandler(services.Customer)
	customerGroup := admin.Group("", middleware.RequirePermission(identity.PermissionCustomers))
	customerGroup.POST("/customers", customerHandler.Create)
	customerGroup.GET("/customers", customerHandler.List)
	customerGroup.GET("/customers/:id", customerHandler.GetByID)
	customerGroup.PUT("/customers/:id", customerHandler.Update)
	customerGroup.DELETE("/customers/:id", customerHandler.Deactivate)

	// Credit Routes
	creditHandler := NewCreditHandler(services.Credit)
	creditGroup := admin.Group("", middleware.RequirePermission(identity.PermissionCredit))
	creditGroup.GET("/customers/:id/statement", creditHandler.Statement)
	creditGroup.POST("/customers/:id/payments", creditHandler.RegisterPayment)

	// Appearance Routes
	appearanceHandler := NewAppearanceHandler(services.Appearance)
	appearanceGroup := admin.Group("", middleware.RequirePermission(identity.PermissionAppearance))
	appearanceGroup.GET("/appearance/theme", appearanceHandler.GetTheme)
	appearanceGroup.PUT("/appearance/theme", appearanceHandler.UpdateTheme)
	appearanceGroup.POST("/appearance/slides", appearanceHandler.CreateSlide)
	appearanceGroup.GET("/appearance/slides", appearanceHandler.ListSlides)
	appearanceGroup.PUT("/appearance/slides/:id", appearanceHandler.UpdateSlide)
	appearanceGroup.DELETE("/appearance/slides/:id", appearanceHandler.DeleteSlide)
	appearanceGroup.POST("/appearance/slides/reorder", appearanceHandler.ReorderSlides)
}
