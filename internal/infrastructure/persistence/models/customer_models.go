package models

import (
	"time"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/customers"
)

// CustomerModel is the GORM database model for customers
type CustomerModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	TenantID    string    `gorm:"not null;index;type:uuid"`
	Name        string    `gorm:"not null;type:varchar(160)"`
	Phone       string    `gorm:"type:varchar(20)"`
	Email       string    `gorm:"type:varchar(160)"`
	Document    string    `gorm:"type:varchar(20)"`
	CreditLimit int64     `gorm:"not null;default:0;type:bigint"`
	Active      bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts GORM model to domain entity
func (m *CustomerModel) ToDomain() *customers.Customer {
	return &customers.Customer{
		ID:          m.ID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		Phone:       m.Phone,
		Email:       m.Email,
		Document:    m.Document,
		CreditLimit: m.CreditLimit,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CustomerModel) FromDomain(c *customers.Customer) {
	m.ID = c.ID
	m.TenantID = c.TenantID
	m.Name = c.Name
	m.Phone = c.Phone
	m.Email = c.Email
	m.Document = c.Document
	m.CreditLimit = c.CreditLimit
	m.Active = c.Active
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// CreditEntryModel is the GORM database model for the append-only fiado
// ledger. Balance is the customer's open balance after this entry.
type CreditEntryModel struct {
	ID         string    `gorm:"primaryKey;type:uuid"`
	TenantID   string    `gorm:"not null;index;type:uuid"`
	CustomerID string    `gorm:"not null;index;type:uuid"`
	OrderID    *string   `gorm:"index;type:uuid"`
	Kind       string    `gorm:"not null;type:varchar(20)"`
	Amount     int64     `gorm:"not null;type:bigint"`
	Balance    int64     `gorm:"not null;type:bigint"`
	Note       string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (CreditEntryModel) TableName() string {
	return "credit_entries"
}

// ToDomain converts GORM model to domain entity
func (m *CreditEntryModel) ToDomain() *customers.CreditEntry {
	return &customers.CreditEntry{
		ID:         m.ID,
		TenantID:   m.TenantID,
		CustomerID: m.CustomerID,
		OrderID:    IDValue(m.OrderID),
		Kind:       m.Kind,
		Amount:     m.Amount,
		Balance:    m.Balance,
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CreditEntryModel) FromDomain(e *customers.CreditEntry) {
	m.ID = e.ID
	m.TenantID = e.TenantID
	m.CustomerID = e.CustomerID
	m.OrderID = NullableID(e.OrderID)
	m.Kind = e.Kind
	m.Amount = e.Amount
	m.Balance = e.Balance
	m.Note = e.Note
	m.CreatedAt = e.CreatedAt
}
