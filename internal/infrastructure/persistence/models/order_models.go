package models

import (
	"time"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/orders"
)

// OrderModel is the GORM database model for orders. Number is sequential per
// tenant and assigned inside the create transaction.
type OrderModel struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	TenantID      string    `gorm:"not null;index;uniqueIndex:idx_orders_tenant_number,priority:1;type:uuid"`
	Number        int64     `gorm:"not null;uniqueIndex:idx_orders_tenant_number,priority:2"`
	CustomerID    *string   `gorm:"index;type:uuid"`
	CustomerName  string    `gorm:"type:varchar(160)"`
	CustomerPhone string    `gorm:"type:varchar(20)"`
	Status        string    `gorm:"not null;index;type:varchar(20)"`
	Origin        string    `gorm:"not null;type:varchar(10)"`
	PaymentMethod string    `gorm:"not null;type:varchar(20)"`
	Subtotal      int64     `gorm:"not null;type:bigint"`
	Discount      int64     `gorm:"not null;default:0;type:bigint"`
	Total         int64     `gorm:"not null;type:bigint"`
	Notes         string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null;index"`
	UpdatedAt     time.Time `gorm:"not null"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM database model for order lines
type OrderItemModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	OrderID   string `gorm:"not null;index;type:uuid"`
	ProductID string `gorm:"not null;index;type:uuid"`
	SKU       string `gorm:"not null;type:varchar(40)"`
	Name      string `gorm:"not null;type:varchar(160)"`
	Quantity  int    `gorm:"not null"`
	UnitPrice int64  `gorm:"not null;type:bigint"`
	LineTotal int64  `gorm:"not null;type:bigint"`
}

// TableName specifies the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts GORM model to domain entity
func (m *OrderModel) ToDomain() *orders.Order {
	items := make([]orders.OrderItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = orders.OrderItem{
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}
	return &orders.Order{
		ID:            m.ID,
		TenantID:      m.TenantID,
		Number:        m.Number,
		CustomerID:    IDValue(m.CustomerID),
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		Status:        m.Status,
		Origin:        m.Origin,
		PaymentMethod: m.PaymentMethod,
		Items:         items,
		Subtotal:      m.Subtotal,
		Discount:      m.Discount,
		Total:         m.Total,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model. Item IDs are assigned by
// the repository on create.
func (m *OrderModel) FromDomain(o *orders.Order) {
	m.ID = o.ID
	m.TenantID = o.TenantID
	m.Number = o.Number
	m.CustomerID = NullableID(o.CustomerID)
	m.CustomerName = o.CustomerName
	m.CustomerPhone = o.CustomerPhone
	m.Status = o.Status
	m.Origin = o.Origin
	m.PaymentMethod = o.PaymentMethod
	m.Subtotal = o.Subtotal
	m.Discount = o.Discount
	m.Total = o.Total
	m.Notes = o.Notes
	m.CreatedAt = o.CreatedAt
	m.UpdatedAt = o.UpdatedAt
	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i] = OrderItemModel{
			OrderID:   o.ID,
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}
}
