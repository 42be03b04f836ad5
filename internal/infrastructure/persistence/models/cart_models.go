package models

import (
	"time"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/cart"
)

// CartModel is the GORM database model for shopping carts
type CartModel struct {
	ID         string    `gorm:"primaryKey;type:uuid"`
	TenantID   string    `gorm:"not null;index;uniqueIndex:idx_carts_tenant_session,priority:1;type:uuid"`
	SessionKey string    `gorm:"not null;uniqueIndex:idx_carts_tenant_session,priority:2;type:varchar(64)"`
	CustomerID *string   `gorm:"type:uuid"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	Items []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel is the GORM database model for cart lines
type CartItemModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CartID    string `gorm:"not null;index;type:uuid"`
	ProductID string `gorm:"not null;type:uuid"`
	SKU       string `gorm:"not null;type:varchar(40)"`
	Name      string `gorm:"not null;type:varchar(160)"`
	Quantity  int    `gorm:"not null"`
	UnitPrice int64  `gorm:"not null;type:bigint"`
	LineTotal int64  `gorm:"not null;type:bigint"`
}

// TableName specifies the table name for GORM
func (CartItemModel) TableName() string {
	return "cart_items"
}

// ToDomain converts GORM model to domain entity
func (m *CartModel) ToDomain() *cart.Cart {
	items := make([]cart.CartItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = cart.CartItem{
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}
	return &cart.Cart{
		ID:         m.ID,
		TenantID:   m.TenantID,
		SessionKey: m.SessionKey,
		CustomerID: IDValue(m.CustomerID),
		Items:      items,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model. Item IDs are assigned by
// the repository when the lines are replaced.
func (m *CartModel) FromDomain(c *cart.Cart) {
	m.ID = c.ID
	m.TenantID = c.TenantID
	m.SessionKey = c.SessionKey
	m.CustomerID = NullableID(c.CustomerID)
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
	m.Items = make([]CartItemModel, len(c.Items))
	for i, item := range c.Items {
		m.Items[i] = CartItemModel{
			CartID:    c.ID,
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}
}
