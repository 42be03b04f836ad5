package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// AuthSettings holds settings for issuing and validating access tokens
type AuthSettings struct {
	JWTSecret       string `yaml:"jwt_secret" validate:"required,min=16"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes" validate:"required,min=5,max=1440"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	return nil
}
