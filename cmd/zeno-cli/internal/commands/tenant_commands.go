package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/app"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/infrastructure/persistence"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"
)

// TenantCommandHandler encapsulates logic for administering tenants via CLI.
type TenantCommandHandler struct {
	tenantService identity.TenantService
	logger        logger.Logger
}

// NewTenantCommandHandler initializes and returns a TenantCommandHandler
// instance connected to the configured database.
func NewTenantCommandHandler() (*TenantCommandHandler, error) {
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

	tenantService, err := app.NewTenantService(tenantRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant service: %w", err)
	}

	return &TenantCommandHandler{
		tenantService: tenantService,
		logger:        loggerInstance,
	}, nil
}

// CreateTenantCmd registers a new store
func (commandHandler *TenantCommandHandler) CreateTenantCmd(cmd *cobra.Command, _ []string) {
	slug, err := cmd.Flags().GetString("slug")
	if err != nil || slug == "" {
		commandHandler.logger.Error("invalid slug flag ", err)
		return
	}

	name, err := cmd.Flags().GetString("name")
	if err != nil || name == "" {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}

	tenant, err := commandHandler.tenantService.Register(cmd.Context(), slug, name)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Created tenant ", tenant.Slug, " with id ", tenant.ID)
}

// ListTenantsCmd prints all registered stores
func (commandHandler *TenantCommandHandler) ListTenantsCmd(cmd *cobra.Command, _ []string) {
	tenants, err := commandHandler.tenantService.List(cmd.Context())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, tenant := range tenants {
		status := "active"
		if !tenant.Active {
			status = "inactive"
		}
		fmt.Printf("%s  %-20s  %-30s  %s\n", tenant.ID, tenant.Slug, tenant.Name, status)
	}
}

// InitTenantCommands registers tenant-related commands
func InitTenantCommands(rootCmd *cobra.Command) error {
	handler, err := NewTenantCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create tenant command handler %w", err)
	}

	var createTenantCmd = &cobra.Command{
		Use:   "create-tenant",
		Short: "Register a new store",
		Run:   handler.CreateTenantCmd,
	}
	createTenantCmd.Flags().StringP("slug", "", "", "URL-safe store identifier")
	createTenantCmd.Flags().StringP("name", "", "", "Store display name")
	rootCmd.AddCommand(createTenantCmd)

	var listTenantsCmd = &cobra.Command{
		Use:   "list-tenants",
		Short: "List all registered stores",
		Run:   handler.ListTenantsCmd,
	}
	rootCmd.AddCommand(listTenantsCmd)

	return nil
}
