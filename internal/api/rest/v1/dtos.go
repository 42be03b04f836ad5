package v1

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/appearance"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/cart"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/customers"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/orders"
)

// ErrorResponse struct for API error responses
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse struct for API info responses
type InfoResponse struct {
	Message string `json:"message"`
}

// queryInt parses an integer query parameter, returning fallback when the
// parameter is absent or malformed.
func queryInt(ctx *gin.Context, name string, fallback int) int {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	TenantSlug string `json:"tenant_slug" validate:"required,max=60"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for LoginRequest: %w", err)
	}
	return nil
}

// SessionResponse is the result of a successful login.
type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// CreateUserRequest is the payload of POST /users.
type CreateUserRequest struct {
	Name        string   `json:"name" validate:"required,max=120"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	Role        string   `json:"role" validate:"required,oneof=admin manager seller"`
	Permissions []string `json:"permissions" validate:"omitempty,dive,required"`
}

// Validate for validating CreateUserRequest struct
func (r *CreateUserRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for CreateUserRequest: %w", err)
	}
	return nil
}

// UpdateUserRequest is the payload of PUT /users/:id.
type UpdateUserRequest struct {
	Name        string   `json:"name" validate:"required,max=120"`
	Role        string   `json:"role" validate:"required,oneof=admin manager seller"`
	Permissions []string `json:"permissions" validate:"omitempty,dive,required"`
	Active      bool     `json:"active"`
}

// Validate for validating UpdateUserRequest struct
func (r *UpdateUserRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for UpdateUserRequest: %w", err)
	}
	return nil
}

// UserResponse is the public shape of a back-office user.
type UserResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func newUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		Permissions: user.Permissions,
		Active:      user.Active,
		CreatedAt:   user.CreatedAt,
	}
}

// CategoryRequest is the payload of category create and update calls.
type CategoryRequest struct {
	Name     string `json:"name" validate:"required,max=80"`
	Position int    `json:"position" validate:"gte=0"`
	Active   *bool  `json:"active"`
}

// Validate for validating CategoryRequest struct
func (r *CategoryRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for CategoryRequest: %w", err)
	}
	return nil
}

// CategoryResponse is the public shape of a category.
type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

func newCategoryResponse(category *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:       category.ID,
		Name:     category.Name,
		Position: category.Position,
		Active:   category.Active,
	}
}

// ProductRequest is the payload of product create and update calls. Monetary
// values are in centavos.
type ProductRequest struct {
	CategoryID      string `json:"category_id" validate:"omitempty,uuid"`
	SKU             string `json:"sku" validate:"required,max=40"`
	Name            string `json:"name" validate:"required,max=160"`
	Description     string `json:"description"`
	RetailPrice     int64  `json:"retail_price" validate:"gte=0"`
	WholesalePrice  int64  `json:"wholesale_price" validate:"gte=0"`
	WholesaleMinQty int    `json:"wholesale_min_qty" validate:"gte=0"`
	Stock           int    `json:"stock" validate:"gte=0"`
	ImageURL        string `json:"image_url" validate:"omitempty,url"`
	Active          *bool  `json:"active"`
}

// Validate for validating ProductRequest struct
func (r *ProductRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for ProductRequest: %w", err)
	}
	return nil
}

// ToDomain converts the request into a Product for the given tenant.
func (r *ProductRequest) ToDomain(tenantID string) *catalog.Product {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &catalog.Product{
		TenantID:        tenantID,
		CategoryID:      r.CategoryID,
		SKU:             r.SKU,
		Name:            r.Name,
		Description:     r.Description,
		RetailPrice:     r.RetailPrice,
		WholesalePrice:  r.WholesalePrice,
		WholesaleMinQty: r.WholesaleMinQty,
		Stock:           r.Stock,
		ImageURL:        r.ImageURL,
		Active:          active,
	}
}

// AdjustStockRequest is the payload of POST /products/:id/stock.
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// Validate for validating AdjustStockRequest struct
func (r *AdjustStockRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for AdjustStockRequest: %w", err)
	}
	return nil
}

// ProductResponse is the back-office shape of a product.
type ProductResponse struct {
	ID              string    `json:"id"`
	CategoryID      string    `json:"category_id,omitempty"`
	SKU             string    `json:"sku"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	RetailPrice     int64     `json:"retail_price"`
	WholesalePrice  int64     `json:"wholesale_price"`
	WholesaleMinQty int       `json:"wholesale_min_qty"`
	Stock           int       `json:"stock"`
	ImageURL        string    `json:"image_url,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

func newProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:              product.ID,
		CategoryID:      product.CategoryID,
		SKU:             product.SKU,
		Name:            product.Name,
		Description:     product.Description,
		RetailPrice:     product.RetailPrice,
		WholesalePrice:  product.WholesalePrice,
		WholesaleMinQty: product.WholesaleMinQty,
		Stock:           product.Stock,
		ImageURL:        product.ImageURL,
		Active:          product.Active,
		CreatedAt:       product.CreatedAt,
	}
}

// StorefrontProductResponse is the public shape of a product. Stock levels
// stay private; only availability is exposed. Wholesale prices are included
// only when the tenant theme allows it.
type StorefrontProductResponse struct {
	ID              string `json:"id"`
	CategoryID      string `json:"category_id,omitempty"`
	SKU             string `json:"sku"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	RetailPrice     int64  `json:"retail_price"`
	WholesalePrice  int64  `json:"wholesale_price,omitempty"`
	WholesaleMinQty int    `json:"wholesale_min_qty,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`
	InStock         bool   `json:"in_stock"`
}

func newStorefrontProductResponse(product *catalog.Product, showWholesale bool) StorefrontProductResponse {
	response := StorefrontProductResponse{
		ID:          product.ID,
		CategoryID:  product.CategoryID,
		SKU:         product.SKU,
		Name:        product.Name,
		Description: product.Description,
		RetailPrice: product.RetailPrice,
		ImageURL:    product.ImageURL,
		InStock:     product.Stock > 0,
	}
	if showWholesale {
		response.WholesalePrice = product.WholesalePrice
		response.WholesaleMinQty = product.WholesaleMinQty
	}
	return response
}

// CartItemRequest is the payload of POST /cart/items.
type CartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// Validate for validating CartItemRequest struct
func (r *CartItemRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for CartItemRequest: %w", err)
	}
	return nil
}

// CartQuantityRequest is the payload of PUT /cart/items/:productId.
type CartQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// Validate for validating CartQuantityRequest struct
func (r *CartQuantityRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for CartQuantityRequest: %w", err)
	}
	return nil
}

// CartItemResponse is one line of a cart.
type CartItemResponse struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	LineTotal int64  `json:"line_total"`
}

// CartResponse is the public shape of a cart.
type CartResponse struct {
	ID    string             `json:"id"`
	Items []CartItemResponse `json:"items"`
	Total int64              `json:"total"`
}

func newCartResponse(c *cart.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartItemResponse{
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
	}
	return CartResponse{
		ID:    c.ID,
		Items: items,
		Total: c.Total(),
	}
}

// CheckoutRequest is the payload of POST /checkout.
type CheckoutRequest struct {
	CustomerID    string `json:"customer_id" validate:"omitempty,uuid"`
	CustomerName  string `json:"customer_name" validate:"required,max=160"`
	CustomerPhone string `json:"customer_phone" validate:"omitempty,max=20"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=dinheiro cartao pix fiado"`
	Notes         string `json:"notes" validate:"omitempty,max=500"`
	AsQuote       bool   `json:"as_quote"`
}

// Validate for validating CheckoutRequest struct
func (r *CheckoutRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for CheckoutRequest: %w", err)
	}
	return nil
}

// UpdateOrderStatusRequest is the payload of POST /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=orcamento pendente confirmado entregue cancelado"`
}

// Validate for validating UpdateOrderStatusRequest struct
func (r *UpdateOrderStatusRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for UpdateOrderStatusRequest: %w", err)
	}
	return nil
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	LineTotal int64  `json:"line_total"`
}

// OrderResponse is the public shape of an order.
type OrderResponse struct {
	ID            string              `json:"id"`
	Number        int64               `json:"number"`
	CustomerID    string              `json:"customer_id,omitempty"`
	CustomerName  string              `json:"customer_name,omitempty"`
	CustomerPhone string              `json:"customer_phone,omitempty"`
	Status        string              `json:"status"`
	Origin        string              `json:"origin"`
	PaymentMethod string              `json:"payment_method"`
	Items         []OrderItemResponse `json:"items"`
	Subtotal      int64               `json:"subtotal"`
	Discount      int64               `json:"discount"`
	Total         int64               `json:"total"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

func newOrderResponse(order *orders.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
	}
	return OrderResponse{
		ID:            order.ID,
		Number:        order.Number,
		CustomerID:    order.CustomerID,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		Status:        order.Status,
		Origin:        order.Origin,
		PaymentMethod: order.PaymentMethod,
		Items:         items,
		Subtotal:      order.Subtotal,
		Discount:      order.Discount,
		Total:         order.Total,
		Notes:         order.Notes,
		CreatedAt:     order.CreatedAt,
	}
}

// QuickSaleItemRequest references a product by ID or SKU for PDV entry.
type QuickSaleItemRequest struct {
	ProductID string `json:"product_id" validate:"omitempty,uuid"`
	SKU       string `json:"sku" validate:"omitempty,max=40"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// QuickSaleRequest is the payload of POST /pdv/sales.
type QuickSaleRequest struct {
	Items         []QuickSaleItemRequest `json:"items" validate:"required,min=1,dive"`
	CustomerID    string                 `json:"customer_id" validate:"omitempty,uuid"`
	CustomerName  string                 `json:"customer_name" validate:"omitempty,max=160"`
	PaymentMethod string                 `json:"payment_method" validate:"required,oneof=dinheiro cartao pix fiado"`
	Discount      int64                  `json:"discount" validate:"gte=0"`
	Notes         string                 `json:"notes" validate:"omitempty,max=500"`
}

// Validate for validating QuickSaleRequest struct
func (r *QuickSaleRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for QuickSaleRequest: %w", err)
	}
	for _, item := range r.Items {
		if item.ProductID == "" && item.SKU == "" {
			return fmt.Errorf("every item requires a product id or sku")
		}
	}
	return nil
}

// ToDomain converts the request into a QuickSaleInput.
func (r *QuickSaleRequest) ToDomain() *orders.QuickSaleInput {
	items := make([]orders.QuickSaleItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, orders.QuickSaleItem{
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
		})
	}
	return &orders.QuickSaleInput{
		Items:         items,
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		PaymentMethod: r.PaymentMethod,
		Discount:      r.Discount,
		Notes:         r.Notes,
	}
}

// CustomerRequest is the payload of customer create and update calls.
type CustomerRequest struct {
	Name        string `json:"name" validate:"required,max=160"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	Document    string `json:"document" validate:"omitempty,max=20"`
	CreditLimit int64  `json:"credit_limit" validate:"gte=0"`
}

// Validate for validating CustomerRequest struct
func (r *CustomerRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for CustomerRequest: %w", err)
	}
	return nil
}

// CustomerResponse is the public shape of a customer.
type CustomerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Document    string    `json:"document,omitempty"`
	CreditLimit int64     `json:"credit_limit"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func newCustomerResponse(customer *customers.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          customer.ID,
		Name:        customer.Name,
		Phone:       customer.Phone,
		Email:       customer.Email,
		Document:    customer.Document,
		CreditLimit: customer.CreditLimit,
		Active:      customer.Active,
		CreatedAt:   customer.CreatedAt,
	}
}

// PaymentRequest is the payload of POST /customers/:id/payments.
type PaymentRequest struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Note   string `json:"note" validate:"omitempty,max=200"`
}

// Validate for validating PaymentRequest struct
func (r *PaymentRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for PaymentRequest: %w", err)
	}
	return nil
}

// CreditEntryResponse is one row of a fiado statement.
type CreditEntryResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id,omitempty"`
	Kind      string    `json:"kind"`
	Amount    int64     `json:"amount"`
	Balance   int64     `json:"balance"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newCreditEntryResponse(entry *customers.CreditEntry) CreditEntryResponse {
	return CreditEntryResponse{
		ID:        entry.ID,
		OrderID:   entry.OrderID,
		Kind:      entry.Kind,
		Amount:    entry.Amount,
		Balance:   entry.Balance,
		Note:      entry.Note,
		CreatedAt: entry.CreatedAt,
	}
}

// StatementResponse is the fiado statement of one customer.
type StatementResponse struct {
	Balance int64                 `json:"balance"`
	Entries []CreditEntryResponse `json:"entries"`
}

// ThemeRequest is the payload of PUT /appearance/theme.
type ThemeRequest struct {
	StoreName           string `json:"store_name" validate:"required,max=120"`
	LogoURL             string `json:"logo_url" validate:"omitempty,url"`
	PrimaryColor        string `json:"primary_color" validate:"required,hexcolor"`
	SecondaryColor      string `json:"secondary_color" validate:"required,hexcolor"`
	WhatsApp            string `json:"whatsapp" validate:"omitempty,max=20"`
	ShowWholesalePrices bool   `json:"show_wholesale_prices"`
}

// Validate for validating ThemeRequest struct
func (r *ThemeRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for ThemeRequest: %w", err)
	}
	return nil
}

// ToDomain converts the request into ThemeSettings for the given tenant.
func (r *ThemeRequest) ToDomain(tenantID string) *appearance.ThemeSettings {
	return &appearance.ThemeSettings{
		TenantID:            tenantID,
		StoreName:           r.StoreName,
		LogoURL:             r.LogoURL,
		PrimaryColor:        r.PrimaryColor,
		SecondaryColor:      r.SecondaryColor,
		WhatsApp:            r.WhatsApp,
		ShowWholesalePrices: r.ShowWholesalePrices,
	}
}

// ThemeResponse is the public shape of a theme.
type ThemeResponse struct {
	StoreName           string `json:"store_name"`
	LogoURL             string `json:"logo_url,omitempty"`
	PrimaryColor        string `json:"primary_color"`
	SecondaryColor      string `json:"secondary_color"`
	WhatsApp            string `json:"whatsapp,omitempty"`
	ShowWholesalePrices bool   `json:"show_wholesale_prices"`
}

func newThemeResponse(theme *appearance.ThemeSettings) ThemeResponse {
	return ThemeResponse{
		StoreName:           theme.StoreName,
		LogoURL:             theme.LogoURL,
		PrimaryColor:        theme.PrimaryColor,
		SecondaryColor:      theme.SecondaryColor,
		WhatsApp:            theme.WhatsApp,
		ShowWholesalePrices: theme.ShowWholesalePrices,
	}
}

// SlideRequest is the payload of slide create and update calls.
type SlideRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
	Caption  string `json:"caption" validate:"omitempty,max=160"`
	LinkURL  string `json:"link_url" validate:"omitempty,url"`
	Active   *bool  `json:"active"`
}

// Validate for validating SlideRequest struct
func (r *SlideRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for SlideRequest: %w", err)
	}
	return nil
}

// ReorderSlidesRequest is the payload of POST /appearance/slides/reorder.
type ReorderSlidesRequest struct {
	SlideIDs []string `json:"slide_ids" validate:"required,min=1,dive,uuid"`
}

// Validate for validating ReorderSlidesRequest struct
func (r *ReorderSlidesRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for ReorderSlidesRequest: %w", err)
	}
	return nil
}

// SlideResponse is the public shape of a carousel slide.
type SlideResponse struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption,omitempty"`
	LinkURL  string `json:"link_url,omitempty"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

func newSlideResponse(slide *appearance.CatalogSlide) SlideResponse {
	return SlideResponse{
		ID:       slide.ID,
		ImageURL: slide.ImageURL,
		Caption:  slide.Caption,
		LinkURL:  slide.LinkURL,
		Position: slide.Position,
		Active:   slide.Active,
	}
}

// StorefrontResponse is the public appearance payload of one store.
type StorefrontResponse struct {
	Theme  ThemeResponse   `json:"theme"`
	Slides []SlideResponse `json:"slides"`
}

func newStorefrontResponse(view *appearance.StorefrontView) StorefrontResponse {
	slides := make([]SlideResponse, 0, len(view.Slides))
	for _, slide := range view.Slides {
		slides = append(slides, newSlideResponse(slide))
	}
	return StorefrontResponse{
		Theme:  newThemeResponse(view.Theme),
		Slides: slides,
	}
}
