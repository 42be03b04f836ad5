package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/app"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/infrastructure/persistence"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"
)

// CatalogCommandHandler encapsulates logic for seeding catalog data via CLI.
type CatalogCommandHandler struct {
	tenantService   identity.TenantService
	categoryService catalog.CategoryService
	productService  catalog.ProductService
	logger          logger.Logger
}

// NewCatalogCommandHandler initializes and returns a CatalogCommandHandler
// instance connected to the configured database.
func NewCatalogCommandHandler() (*CatalogCommandHandler, error) {
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
	categoryRepo, err := persistence.NewGormCategoryRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create category repository: %w", err)
	}
	productRepo, err := persistence.NewGormProductRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create product repository: %w", err)
	}

	tenantService, err := app.NewTenantService(tenantRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant service: %w", err)
	}
	categoryService, err := app.NewCategoryService(categoryRepo, productRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}
	productService, err := app.NewProductService(productRepo, categoryRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %w", err)
	}

	return &CatalogCommandHandler{
		tenantService:   tenantService,
		categoryService: categoryService,
		productService:  productService,
		logger:          loggerInstance,
	}, nil
}

// SeedCatalogCmd populates a store with demo categories and products
func (commandHandler *CatalogCommandHandler) SeedCatalogCmd(cmd *cobra.Command, _ []string) {
	tenantSlug, err := cmd.Flags().GetString("tenant")
	if err != nil || tenantSlug == "" {
		commandHandler.logger.Error("invalid tenant flag ", err)
		return
	}

	tenant, err := commandHandler.tenantService.GetBySlug(cmd.Context(), tenantSlug)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	bebidas, err := commandHandler.categoryService.Create(cmd.Context(), tenant.ID, "Bebidas", 0)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	mercearia, err := commandHandler.categoryService.Create(cmd.Context(), tenant.ID, "Mercearia", 1)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	seedProducts := []*catalog.Product{
		{
			TenantID:        tenant.ID,
			CategoryID:      bebidas.ID,
			SKU:             "REF-2L-001",
			Name:            "Refrigerante Cola 2L",
			RetailPrice:     899,
			WholesalePrice:  749,
			WholesaleMinQty: 12,
			Stock:           120,
			Active:          true,
		},
		{
			TenantID:        tenant.ID,
			CategoryID:      bebidas.ID,
			SKU:             "AGUA-500-001",
			Name:            "Agua Mineral 500ml",
			RetailPrice:     250,
			WholesalePrice:  180,
			WholesaleMinQty: 24,
			Stock:           300,
			Active:          true,
		},
		{
			TenantID:        tenant.ID,
			CategoryID:      mercearia.ID,
			SKU:             "ARROZ-5KG-001",
			Name:            "Arroz Branco 5kg",
			RetailPrice:     2590,
			WholesalePrice:  2290,
			WholesaleMinQty: 10,
			Stock:           80,
			Active:          true,
		},
		{
			TenantID:    tenant.ID,
			CategoryID:  mercearia.ID,
			SKU:         "FEIJAO-1KG-001",
			Name:        "Feijao Carioca 1kg",
			RetailPrice: 850,
			Stock:       150,
			Active:      true,
		},
	}

	for _, product := range seedProducts {
		if _, err := commandHandler.productService.Create(cmd.Context(), product); err != nil {
			commandHandler.logger.Error(err)
			return
		}
	}

	commandHandler.logger.Info("Seeded ", len(seedProducts), " products on tenant ", tenant.Slug)
}

// InitCatalogCommands registers catalog-related commands
func InitCatalogCommands(rootCmd *cobra.Command) error {
	handler, err := NewCatalogCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create catalog command handler %w", err)
	}

	var seedCatalogCmd = &cobra.Command{
		Use:   "seed-catalog",
		Short: "Populate a store with demo categories and products",
		Run:   handler.SeedCatalogCmd,
	}
	seedCatalogCmd.Flags().StringP("tenant", "", "", "Store slug")
	rootCmd.AddCommand(seedCatalogCmd)

	return nil
}
