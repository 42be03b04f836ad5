package models

import (
	"time"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
)

// CategoryModel is the GORM database model for catalog categories
type CategoryModel struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	TenantID string `gorm:"not null;index;type:uuid"`
	Name     string `gorm:"not null;type:varchar(80)"`
	Position int    `gorm:"not null;default:0"`
	Active   bool   `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts GORM model to domain entity
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		ID:       m.ID,
		TenantID: m.TenantID,
		Name:     m.Name,
		Position: m.Position,
		Active:   m.Active,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.ID = c.ID
	m.TenantID = c.TenantID
	m.Name = c.Name
	m.Position = c.Position
	m.Active = c.Active
}

// ProductModel is the GORM database model for catalog products. Prices are
// stored in centavos.
type ProductModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	TenantID        string    `gorm:"not null;index;uniqueIndex:idx_products_tenant_sku,priority:1;type:uuid"`
	CategoryID      *string   `gorm:"index;type:uuid"`
	SKU             string    `gorm:"not null;uniqueIndex:idx_products_tenant_sku,priority:2;type:varchar(40)"`
	Name            string    `gorm:"not null;type:varchar(160)"`
	Description     string    `gorm:"type:text"`
	RetailPrice     int64     `gorm:"not null;type:bigint"`
	WholesalePrice  int64     `gorm:"not null;default:0;type:bigint"`
	WholesaleMinQty int       `gorm:"not null;default:0"`
	Stock           int       `gorm:"not null;default:0"`
	ImageURL        string    `gorm:"type:text"`
	Active          bool      `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts GORM model to domain entity
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		ID:              m.ID,
		TenantID:        m.TenantID,
		CategoryID:      IDValue(m.CategoryID),
		SKU:             m.SKU,
		Name:            m.Name,
		Description:     m.Description,
		RetailPrice:     m.RetailPrice,
		WholesalePrice:  m.WholesalePrice,
		WholesaleMinQty: m.WholesaleMinQty,
		Stock:           m.Stock,
		ImageURL:        m.ImageURL,
		Active:          m.Active,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.ID = p.ID
	m.TenantID = p.TenantID
	m.CategoryID = NullableID(p.CategoryID)
	m.SKU = p.SKU
	m.Name = p.Name
	m.Description = p.Description
	m.RetailPrice = p.RetailPrice
	m.WholesalePrice = p.WholesalePrice
	m.WholesaleMinQty = p.WholesaleMinQty
	m.Stock = p.Stock
	m.ImageURL = p.ImageURL
	m.Active = p.Active
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}
