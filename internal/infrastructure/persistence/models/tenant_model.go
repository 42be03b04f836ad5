package models

import (
	"time"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
)

// TenantModel is the GORM database model for tenants (infrastructure concern)
type TenantModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Slug      string    `gorm:"not null;uniqueIndex;type:varchar(40)"`
	Name      string    `gorm:"not null;type:varchar(120)"`
	Active    bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (TenantModel) TableName() string {
	return "tenants"
}

// ToDomain converts GORM model to domain entity
func (m *TenantModel) ToDomain() *identity.Tenant {
	return &identity.Tenant{
		ID:        m.ID,
		Slug:      m.Slug,
		Name:      m.Name,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TenantModel) FromDomain(t *identity.Tenant) {
	m.ID = t.ID
	m.Slug = t.Slug
	m.Name = t.Name
	m.Active = t.Active
	m.CreatedAt = t.CreatedAt
}
