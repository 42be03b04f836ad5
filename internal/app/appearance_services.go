package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/appearance"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"

	"github.com/google/uuid"
)

// appearanceService implements the AppearanceService interface
type appearanceService struct {
	themeRepo  appearance.ThemeRepository
	slideRepo  appearance.SlideRepository
	tenantRepo identity.TenantRepository
	logger     logger.Logger
}

// NewAppearanceService creates a new appearanceService instance
func NewAppearanceService(
	themeRepo appearance.ThemeRepository,
	slideRepo appearance.SlideRepository,
	tenantRepo identity.TenantRepository,
	logger logger.Logger,
) (appearance.AppearanceService, error) {
	return &appearanceService{
		themeRepo:  themeRepo,
		slideRepo:  slideRepo,
		tenantRepo: tenantRepo,
		logger:     logger,
	}, nil
}

// GetTheme returns the stored theme, falling back to the defaults derived
// from the tenant name while nothing has been customized.
func (s *appearanceService) GetTheme(ctx context.Context, tenantID string) (*appearance.ThemeSettings, error) {
	theme, err := s.themeRepo.Get(ctx, tenantID)
	if err == nil {
		return theme, nil
	}
	if !errors.Is(err, appearance.ErrThemeNotFound) {
		return nil, fmt.Errorf("%w", err)
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return appearance.DefaultTheme(tenant.ID, tenant.Name), nil
}

func (s *appearanceService) UpdateTheme(ctx context.Context, theme *appearance.ThemeSettings) error {
	theme.UpdatedAt = time.Now().UTC()
	return s.themeRepo.Upsert(ctx, theme)
}

func (s *appearanceService) CreateSlide(ctx context.Context, slide *appearance.CatalogSlide) (*appearance.CatalogSlide, error) {
	if slide.ID == "" {
		slide.ID = uuid.New().String()
	}

	existing, err := s.slideRepo.List(ctx, slide.TenantID, false)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	// Append after the highest position; deletions may leave gaps
	slide.Position = 0
	for _, other := range existing {
		if other.Position >= slide.Position {
			slide.Position = other.Position + 1
		}
	}

	if err := s.slideRepo.Create(ctx, slide); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return slide, nil
}

func (s *appearanceService) ListSlides(ctx context.Context, tenantID string) ([]*appearance.CatalogSlide, error) {
	return s.slideRepo.List(ctx, tenantID, false)
}

func (s *appearanceService) UpdateSlide(ctx context.Context, slide *appearance.CatalogSlide) error {
	existing, err := s.slideRepo.GetByID(ctx, slide.TenantID, slide.ID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	slide.Position = existing.Position
	return s.slideRepo.Update(ctx, slide)
}

func (s *appearanceService) DeleteSlide(ctx context.Context, tenantID, slideID string) error {
	if _, err := s.slideRepo.GetByID(ctx, tenantID, slideID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return s.slideRepo.DeleteByID(ctx, tenantID, slideID)
}

// ReorderSlides rewrites slide positions following the given ID order. The
// list must contain exactly the tenant's slides.
func (s *appearanceService) ReorderSlides(ctx context.Context, tenantID string, slideIDs []string) error {
	return s.slideRepo.Reorder(ctx, tenantID, slideIDs)
}

// Storefront returns the theme plus active slides for public rendering.
func (s *appearanceService) Storefront(ctx context.Context, tenantID string) (*appearance.StorefrontView, error) {
	theme, err := s.GetTheme(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	slides, err := s.slideRepo.List(ctx, tenantID, true)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &appearance.StorefrontView{
		Theme:  theme,
		Slides: slides,
	}, nil
}
