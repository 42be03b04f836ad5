package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/cart"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/infrastructure/persistence/models"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormCartRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCartRepository creates a new GORM-based CartRepository implementation
func NewGormCartRepository(db *gorm.DB, logger logger.Logger) (cart.CartRepository, error) {
	return &gormCartRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCartRepository) GetBySessionKey(ctx context.Context, tenantID, sessionKey string) (*cart.Cart, error) {
	var model models.CartModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ? AND session_key = ?", tenantID, sessionKey).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCartRepository) Create(ctx context.Context, c *cart.Cart) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CartModel{}
	model.FromDomain(c)
	for i := range model.Items {
		model.Items[i].ID = uuid.New().String()
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}

	r.logger.Info("Created cart with id ", c.ID)
	return nil
}

// Save persists the cart header and replaces all item rows. Cart lines are
// few, so delete-and-reinsert stays simpler than diffing.
func (r *gormCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CartModel{}
	model.FromDomain(c)
	items := model.Items
	model.Items = nil
	for i := range items {
		items[i].ID = uuid.New().String()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model).Error; err != nil {
			return fmt.Errorf("failed to save cart: %w", err)
		}
		if err := tx.Where("cart_id = ?", c.ID).Delete(&models.CartItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart items: %w", err)
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("failed to insert cart items: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Saved cart with id ", c.ID)
	return nil
}

func (r *gormCartRepository) DeleteByID(ctx context.Context, tenantID, cartID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete cart items: %w", err)
		}
		if err := tx.Where("tenant_id = ? AND id = ?", tenantID, cartID).Delete(&models.CartModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted cart with id ", cartID)
	return nil
}
