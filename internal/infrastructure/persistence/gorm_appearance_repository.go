package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/appearance"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/infrastructure/persistence/models"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormThemeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormThemeRepository creates a new GORM-based ThemeRepository implementation
func NewGormThemeRepository(db *gorm.DB, logger logger.Logger) (appearance.ThemeRepository, error) {
	return &gormThemeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormThemeRepository) Get(ctx context.Context, tenantID string) (*appearance.ThemeSettings, error) {
	var model models.ThemeModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appearance.ErrThemeNotFound
		}
		return nil, fmt.Errorf("failed to fetch theme: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormThemeRepository) Upsert(ctx context.Context, theme *appearance.ThemeSettings) error {
	if err := theme.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ThemeModel{}
	model.FromDomain(theme)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}},
			UpdateAll: true,
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert theme: %w", err)
	}

	r.logger.Info("Updated theme for tenant ", theme.TenantID)
	return nil
}

type gormSlideRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSlideRepository creates a new GORM-based SlideRepository implementation
func NewGormSlideRepository(db *gorm.DB, logger logger.Logger) (appearance.SlideRepository, error) {
	return &gormSlideRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSlideRepository) Create(ctx context.Context, slide *appearance.CatalogSlide) error {
	if err := slide.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SlideModel{}
	model.FromDomain(slide)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create slide: %w", err)
	}

	r.logger.Info("Created slide with id ", slide.ID)
	return nil
}

func (r *gormSlideRepository) List(ctx context.Context, tenantID string, activeOnly bool) ([]*appearance.CatalogSlide, error) {
	var modelList []*models.SlideModel
	dbQuery := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if activeOnly {
		dbQuery = dbQuery.Where("active = ?", true)
	}

	if err := dbQuery.Order("position asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch slides: %w", err)
	}

	domainList := make([]*appearance.CatalogSlide, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormSlideRepository) GetByID(ctx context.Context, tenantID, slideID string) (*appearance.CatalogSlide, error) {
	var model models.SlideModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, slideID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appearance.ErrSlideNotFound
		}
		return nil, fmt.Errorf("failed to fetch slide: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSlideRepository) Update(ctx context.Context, slide *appearance.CatalogSlide) error {
	if err := slide.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SlideModel{}
	model.FromDomain(slide)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update slide: %w", err)
	}

	r.logger.Info("Updated slide with id ", slide.ID)
	return nil
}

func (r *gormSlideRepository) DeleteByID(ctx context.Context, tenantID, slideID string) error {
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, slideID).
		Delete(&models.SlideModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete slide: %w", err)
	}

	r.logger.Info("Deleted slide with id ", slideID)
	return nil
}

func (r *gormSlideRepository) Reorder(ctx context.Context, tenantID string, slideIDs []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []string
		err := tx.Model(&models.SlideModel{}).
			Where("tenant_id = ?", tenantID).
			Pluck("id", &existing).Error
		if err != nil {
			return fmt.Errorf("failed to fetch slide ids: %w", err)
		}

		if len(existing) != len(slideIDs) {
			return appearance.ErrSlideSetMismatch
		}
		known := make(map[string]bool, len(existing))
		for _, id := range existing {
			known[id] = true
		}
		for _, id := range slideIDs {
			if !known[id] {
				return appearance.ErrSlideSetMismatch
			}
			delete(known, id)
		}

		for position, id := range slideIDs {
			err := tx.Model(&models.SlideModel{}).
				Where("tenant_id = ? AND id = ?", tenantID, id).
				UpdateColumn("position", position).Error
			if err != nil {
				return fmt.Errorf("failed to reposition slide %s: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Reordered ", len(slideIDs), " slides for tenant ", tenantID)
	return nil
}
