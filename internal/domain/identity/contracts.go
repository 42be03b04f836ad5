package identity

import (
	"context"
	"errors"
	"time"
)

// Domain errors surfaced by identity services and repositories.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered for tenant")
	ErrLastAdmin          = errors.New("cannot deactivate the last active admin")
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrUserNotFound       = errors.New("user not found")
)

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// AuthService authenticates back-office users and issues access tokens.
type AuthService interface {
	// Login verifies the credentials for the tenant identified by slug and
	// returns a signed session token with the user it belongs to.
	Login(ctx context.Context, tenantSlug, email, password string) (*Session, error)
}

// TenantService manages the stores served by the platform.
type TenantService interface {
	Register(ctx context.Context, slug, name string) (*Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
	List(ctx context.Context) ([]*Tenant, error)
}

// UserService manages back-office users within one tenant.
type UserService interface {
	// Create registers a user; password is hashed before it is stored and an
	// empty permission list falls back to the role defaults.
	Create(ctx context.Context, tenantID, name, email, password, role string, permissions []string) (*User, error)
	List(ctx context.Context, tenantID string) ([]*User, error)
	GetByID(ctx context.Context, tenantID, userID string) (*User, error)
	Update(ctx context.Context, user *User) error
	// Deactivate disables a user. Deactivating the last active admin of a
	// tenant returns ErrLastAdmin.
	Deactivate(ctx context.Context, tenantID, userID string) error
}

// TenantRepository defines the interface for Tenant-related operations
type TenantRepository interface {
	Create(ctx context.Context, tenant *Tenant) error
	GetByID(ctx context.Context, tenantID string) (*Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
	List(ctx context.Context) ([]*Tenant, error)
	Update(ctx context.Context, tenant *Tenant) error
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, tenantID, userID string) (*User, error)
	GetByEmail(ctx context.Context, tenantID, email string) (*User, error)
	List(ctx context.Context, tenantID string) ([]*User, error)
	Update(ctx context.Context, user *User) error
	CountActiveAdmins(ctx context.Context, tenantID string) (int64, error)
}
