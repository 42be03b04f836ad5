package appearance

import (
	"context"
	"errors"
)

// Domain errors surfaced by appearance services and repositories.
var (
	ErrThemeNotFound    = errors.New("theme not configured")
	ErrSlideNotFound    = errors.New("slide not found")
	ErrSlideSetMismatch = errors.New("reorder list does not match existing slides")
)

// StorefrontView is the public appearance payload served to the storefront.
type StorefrontView struct {
	Theme  *ThemeSettings
	Slides []*CatalogSlide
}

// AppearanceService manages white-label customization.
type AppearanceService interface {
	GetTheme(ctx context.Context, tenantID string) (*ThemeSettings, error)
	UpdateTheme(ctx context.Context, theme *ThemeSettings) error
	CreateSlide(ctx context.Context, slide *CatalogSlide) (*CatalogSlide, error)
	ListSlides(ctx context.Context, tenantID string) ([]*CatalogSlide, error)
	UpdateSlide(ctx context.Context, slide *CatalogSlide) error
	DeleteSlide(ctx context.Context, tenantID, slideID string) error
	// ReorderSlides rewrites slide positions following the given ID order.
	// The list must contain exactly the tenant's slides.
	ReorderSlides(ctx context.Context, tenantID string, slideIDs []string) error
	// Storefront returns the theme plus active slides for public rendering.
	Storefront(ctx context.Context, tenantID string) (*StorefrontView, error)
}

// ThemeRepository defines the interface for ThemeSettings operations
type ThemeRepository interface {
	Get(ctx context.Context, tenantID string) (*ThemeSettings, error)
	Upsert(ctx context.Context, theme *ThemeSettings) error
}

// SlideRepository defines the interface for CatalogSlide operations
type SlideRepository interface {
	Create(ctx context.Context, slide *CatalogSlide) error
	List(ctx context.Context, tenantID string, activeOnly bool) ([]*CatalogSlide, error)
	GetByID(ctx context.Context, tenantID, slideID string) (*CatalogSlide, error)
	Update(ctx context.Context, slide *CatalogSlide) error
	DeleteByID(ctx context.Context, tenantID, slideID string) error
	// Reorder atomically rewrites positions following the given ID order.
	Reorder(ctx context.Context, tenantID string, slideIDs []string) error
}
