package persistence

import (
	"fmt"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every storefront table.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.TenantModel{},
		&models.UserModel{},
		&models.CategoryModel{},
		&models.ProductModel{},
		&models.CartModel{},
		&models.CartItemModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.CustomerModel{},
		&models.CreditEntryModel{},
		&models.ThemeModel{},
		&models.SlideModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
