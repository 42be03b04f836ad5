package appearance

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ThemeSettings is the white-label configuration of a tenant's storefront.
// One row per tenant, created on first update.
type ThemeSettings struct {
	TenantID            string `validate:"required,uuid"`
	StoreName           string `validate:"required,max=120"`
	LogoURL             string `validate:"omitempty,url"`
	PrimaryColor        string `validate:"required,hexcolor"`
	SecondaryColor      string `validate:"required,hexcolor"`
	WhatsApp            string `validate:"omitempty,max=20"`
	ShowWholesalePrices bool
	UpdatedAt           time.Time
}

// Validate for validating ThemeSettings struct
func (t *ThemeSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("validation failed for ThemeSettings: %w", err)
	}

	return nil
}

// CatalogSlide is one banner of the storefront carousel.
type CatalogSlide struct {
	ID       string `validate:"required,uuid"`
	TenantID string `validate:"required,uuid"`
	ImageURL string `validate:"required,url"`
	Caption  string `validate:"omitempty,max=160"`
	LinkURL  string `validate:"omitempty,url"`
	Position int    `validate:"gte=0"`
	Active   bool
}

// Validate for validating CatalogSlide struct
func (s *CatalogSlide) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CatalogSlide: %w", err)
	}

	return nil
}

// DefaultTheme returns the theme used before a tenant customizes anything.
func DefaultTheme(tenantID, storeName string) *ThemeSettings {
	return &ThemeSettings{
		TenantID:       tenantID,
		StoreName:      storeName,
		PrimaryColor:   "#1F2937",
		SecondaryColor: "#F59E0B",
	}
}
