package models

import (
	"time"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/appearance"
)

// ThemeModel is the GORM database model for per-tenant theme settings.
// One row per tenant.
type ThemeModel struct {
	TenantID            string    `gorm:"primaryKey;type:uuid"`
	StoreName           string    `gorm:"not null;type:varchar(120)"`
	LogoURL             string    `gorm:"type:text"`
	PrimaryColor        string    `gorm:"not null;type:varchar(7)"`
	SecondaryColor      string    `gorm:"not null;type:varchar(7)"`
	WhatsApp            string    `gorm:"type:varchar(20)"`
	ShowWholesalePrices bool      `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ThemeModel) TableName() string {
	return "theme_settings"
}

// ToDomain converts GORM model to domain entity
func (m *ThemeModel) ToDomain() *appearance.ThemeSettings {
	return &appearance.ThemeSettings{
		TenantID:            m.TenantID,
		StoreName:           m.StoreName,
		LogoURL:             m.LogoURL,
		PrimaryColor:        m.PrimaryColor,
		SecondaryColor:      m.SecondaryColor,
		WhatsApp:            m.WhatsApp,
		ShowWholesalePrices: m.ShowWholesalePrices,
		UpdatedAt:           m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ThemeModel) FromDomain(t *appearance.ThemeSettings) {
	m.TenantID = t.TenantID
	m.StoreName = t.StoreName
	m.LogoURL = t.LogoURL
	m.PrimaryColor = t.PrimaryColor
	m.SecondaryColor = t.SecondaryColor
	m.WhatsApp = t.WhatsApp
	m.ShowWholesalePrices = t.ShowWholesalePrices
	m.UpdatedAt = t.UpdatedAt
}

// SlideModel is the GORM database model for storefront carousel slides
type SlideModel struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	TenantID string `gorm:"not null;index;type:uuid"`
	ImageURL string `gorm:"not null;type:text"`
	Caption  string `gorm:"type:varchar(160)"`
	LinkURL  string `gorm:"type:text"`
	Position int    `gorm:"not null;default:0"`
	Active   bool   `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SlideModel) TableName() string {
	return "catalog_slides"
}

// ToDomain converts GORM model to domain entity
func (m *SlideModel) ToDomain() *appearance.CatalogSlide {
	return &appearance.CatalogSlide{
		ID:       m.ID,
		TenantID: m.TenantID,
		ImageURL: m.ImageURL,
		Caption:  m.Caption,
		LinkURL:  m.LinkURL,
		Position: m.Position,
		Active:   m.Active,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SlideModel) FromDomain(s *appearance.CatalogSlide) {
	m.ID = s.ID
	m.TenantID = s.TenantID
	m.ImageURL = s.ImageURL
	m.Caption = s.Caption
	m.LinkURL = s.LinkURL
	m.Position = s.Position
	m.Active = s.Active
}
