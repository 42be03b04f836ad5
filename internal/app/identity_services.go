package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// authService implements the AuthService interface for back-office logins
type authService struct {
	tenantRepo identity.TenantRepository
	userRepo   identity.UserRepository
	jwtSecret  string
	tokenTTL   time.Duration
	logger     logger.Logger
}

// NewAuthService creates a new authService instance
func NewAuthService(
	tenantRepo identity.TenantRepository,
	userRepo identity.UserRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	logger logger.Logger,
) (identity.AuthService, error) {
	return &authService{
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		logger:     logger,
	}, nil
}

// Login verifies the credentials for the tenant identified by slug and
// returns a signed session token with the user it belongs to.
func (s *authService) Login(ctx context.Context, tenantSlug, email, password string) (*identity.Session, error) {
	tenant, err := s.tenantRepo.GetBySlug(ctx, tenantSlug)
	if err != nil {
		if errors.Is(err, identity.ErrTenantNotFound) {
			return nil, identity.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w", err)
	}
	if !tenant.Active {
		return nil, identity.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, tenant.ID, email)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, identity.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w", err)
	}
	if !user.Active {
		return nil, identity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Failed login attempt for ", email, " on tenant ", tenantSlug)
		return nil, identity.ErrInvalidCredentials
	}

	signed, expiresAt, err := token.Issue(s.jwtSecret, s.tokenTTL, user)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("User ", user.ID, " logged in on tenant ", tenant.Slug)
	return &identity.Session{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// tenantService implements the TenantService interface
type tenantService struct {
	tenantRepo identity.TenantRepository
	logger     logger.Logger
}

// NewTenantService creates a new tenantService instance
func NewTenantService(tenantRepo identity.TenantRepository, logger logger.Logger) (identity.TenantService, error) {
	return &tenantService{
		tenantRepo: tenantRepo,
		logger:     logger,
	}, nil
}

func (s *tenantService) Register(ctx context.Context, slug, name string) (*identity.Tenant, error) {
	tenant := &identity.Tenant{
		ID:        uuid.New().String(),
		Slug:      slug,
		Name:      name,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return tenant, nil
}

func (s *tenantService) GetBySlug(ctx context.Context, slug string) (*identity.Tenant, error) {
	return s.tenantRepo.GetBySlug(ctx, slug)
}

func (s *tenantService) List(ctx context.Context) ([]*identity.Tenant, error) {
	return s.tenantRepo.List(ctx)
}

// userService implements the UserService interface
type userService struct {
	userRepo identity.UserRepository
	logger   logger.Logger
}

// NewUserService creates a new userService instance
func NewUserService(userRepo identity.UserRepository, logger logger.Logger) (identity.UserService, error) {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

// Create registers a user; password is hashed before it is stored and an
// empty permission list falls back to the role defaults.
func (s *userService) Create(ctx context.Context, tenantID, name, email, password, role string, permissions []string) (*identity.User, error) {
	if len(password) < 8 {
		return nil, fmt.Errorf("password must have at least 8 characters")
	}

	if _, err := s.userRepo.GetByEmail(ctx, tenantID, email); err == nil {
		return nil, identity.ErrDuplicateEmail
	} else if !errors.Is(err, identity.ErrUserNotFound) {
		return nil, fmt.Errorf("%w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if len(permissions) == 0 {
		permissions = identity.DefaultPermissions(role)
	}

	now := time.Now().UTC()
	user := &identity.User{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Permissions:  permissions,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return user, nil
}

func (s *userService) List(ctx context.Context, tenantID string) ([]*identity.User, error) {
	return s.userRepo.List(ctx, tenantID)
}

func (s *userService) GetByID(ctx context.Context, tenantID, userID string) (*identity.User, error) {
	return s.userRepo.GetByID(ctx, tenantID, userID)
}

func (s *userService) Update(ctx context.Context, user *identity.User) error {
	user.UpdatedAt = time.Now().UTC()
	return s.userRepo.Update(ctx, user)
}

// Deactivate disables a user, refusing to remove the tenant's last active
// admin.
func (s *userService) Deactivate(ctx context.Context, tenantID, userID string) error {
	user, err := s.userRepo.GetByID(ctx, tenantID, userID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if user.Role == identity.RoleAdmin && user.Active {
		count, err := s.userRepo.CountActiveAdmins(ctx, tenantID)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		if count <= 1 {
			return identity.ErrLastAdmin
		}
	}

	user.Active = false
	user.UpdatedAt = time.Now().UTC()
	return s.userRepo.Update(ctx, user)
}
