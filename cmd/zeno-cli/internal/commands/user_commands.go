package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/app"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/infrastructure/persistence"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"
)

// UserCommandHandler encapsulates logic for administering back-office users via CLI.
type UserCommandHandler struct {
	tenantService identity.TenantService
	userService   identity.UserService
	logger        logger.Logger
}

// NewUserCommandHandler initializes and returns a UserCommandHandler instance
// connected to the configured database.
func NewUserCommandHandler() (*UserCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	db, err := openDatabase()
	if err != nil {
		return nil, err
	}

	tenantRepo, err := persistence.NewGormTenantRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant repository: %w", err)
	}
	userRepo, err := persistence.NewGormUserRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	tenantService, err := app.NewTenantService(tenantRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant service: %w", err)
	}
	userService, err := app.NewUserService(userRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	return &UserCommandHandler{
		tenantService: tenantService,
		userService:   userService,
		logger:        loggerInstance,
	}, nil
}

// CreateUserCmd registers a back-office user on a store
func (commandHandler *UserCommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) {
	tenantSlug, err := cmd.Flags().GetString("tenant")
	if err != nil || tenantSlug == "" {
		commandHandler.logger.Error("invalid tenant flag ", err)
		return
	}

	name, err := cmd.Flags().GetString("name")
	if err != nil || name == "" {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}

	email, err := cmd.Flags().GetString("email")
	if err != nil || email == "" {
		commandHandler.logger.Error("invalid email flag ", err)
		return
	}

	password, err := cmd.Flags().GetString("password")
	if err != nil || password == "" {
		commandHandler.logger.Error("invalid password flag ", err)
		return
	}

	role, err := cmd.Flags().GetString("role")
	if err != nil || role == "" {
		commandHandler.logger.Error("invalid role flag ", err)
		return
	}

	tenant, err := commandHandler.tenantService.GetBySlug(cmd.Context(), tenantSlug)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	user, err := commandHandler.userService.Create(cmd.Context(), tenant.ID, name, email, password, role, nil)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Created user ", user.Email, " with id ", user.ID, " on tenant ", tenant.Slug)
}

// InitUserCommands registers user-related commands
func InitUserCommands(rootCmd *cobra.Command) error {
	handler, err := NewUserCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create user command handler %w", err)
	}

	var createUserCmd = &cobra.Command{
		Use:   "create-user",
		Short: "Register a back-office user on a store",
		Run:   handler.CreateUserCmd,
	}
	createUserCmd.Flags().StringP("tenant", "", "", "Store slug")
	createUserCmd.Flags().StringP("name", "", "", "User display name")
	createUserCmd.Flags().StringP("email", "", "", "Login email")
	createUserCmd.Flags().StringP("password", "", "", "Login password (min 8 characters)")
	createUserCmd.Flags().StringP("role", "", identity.RoleAdmin, "Role (admin, manager or seller)")
	rootCmd.AddCommand(createUserCmd)

	return nil
}
