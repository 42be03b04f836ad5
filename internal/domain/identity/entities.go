package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Role constants
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleSeller  = "seller"
)

// Permission constants gating back-office areas
const (
	PermissionCatalog    = "catalog"
	PermissionOrders     = "orders"
	PermissionPDV        = "pdv"
	PermissionCustomers  = "customers"
	PermissionCredit     = "credit"
	PermissionUsers      = "users"
	PermissionAppearance = "appearance"
)

// AllPermissions lists every known permission string.
var AllPermissions = []string{
	PermissionCatalog,
	PermissionOrders,
	PermissionPDV,
	PermissionCustomers,
	PermissionCredit,
	PermissionUsers,
	PermissionAppearance,
}

// DefaultPermissions returns the permission set granted to a role when a user
// is created without an explicit permission list.
func DefaultPermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return append([]string{}, AllPermissions...)
	case RoleManager:
		return []string{
			PermissionCatalog,
			PermissionOrders,
			PermissionPDV,
			PermissionCustomers,
			PermissionCredit,
			PermissionAppearance,
		}
	case RoleSeller:
		return []string{
			PermissionOrders,
			PermissionPDV,
			PermissionCustomers,
		}
	default:
		return nil
	}
}

// Tenant represents a single white-label store served by the platform.
type Tenant struct {
	ID        string `validate:"required,uuid"`
	Slug      string `validate:"required,min=2,max=40,lowercase"`
	Name      string `validate:"required,max=120"`
	Active    bool
	CreatedAt time.Time
}

// Validate for validating Tenant struct
func (t *Tenant) Validate() error {
	validate := validator.New()

	err := validate.Struct(t)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// User represents a back-office operator scoped to one tenant.
type User struct {
	ID           string `validate:"required,uuid"`
	TenantID     string `validate:"required,uuid"`
	Name         string `validate:"required,max=120"`
	Email        string `validate:"required,email"`
	PasswordHash string `validate:"required"`
	Role         string `validate:"required,oneof=admin manager seller"`
	Permissions  []string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPermission reports whether the user carries the given permission.
func (u *User) HasPermission(permission string) bool {
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	for _, p := range u.Permissions {
		if !validPermission(p) {
			return fmt.Errorf("unknown permission: %s", p)
		}
	}

	return nil
}

func validPermission(p string) bool {
	for _, known := range AllPermissions {
		if p == known {
			return true
		}
	}
	return false
}
