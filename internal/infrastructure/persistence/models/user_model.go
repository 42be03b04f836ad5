package models

import (
	"strings"
	"time"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
)

// UserModel is the GORM database model for back-office users
// (infrastructure concern). Permissions are stored comma-joined.
type UserModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	TenantID     string    `gorm:"not null;index;uniqueIndex:idx_users_tenant_email,priority:1;type:uuid"`
	Name         string    `gorm:"not null;type:varchar(120)"`
	Email        string    `gorm:"not null;uniqueIndex:idx_users_tenant_email,priority:2;type:varchar(160)"`
	PasswordHash string    `gorm:"not null;type:varchar(100)"`
	Role         string    `gorm:"not null;type:varchar(20)"`
	Permissions  string    `gorm:"type:text"`
	Active       bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *identity.User {
	var permissions []string
	if m.Permissions != "" {
		permissions = strings.Split(m.Permissions, ",")
	}
	return &identity.User{
		ID:           m.ID,
		TenantID:     m.TenantID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		Permissions:  permissions,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *identity.User) {
	m.ID = u.ID
	m.TenantID = u.TenantID
	m.Name = u.Name
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
	m.Permissions = strings.Join(u.Permissions, ",")
	m.Active = u.Active
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}
