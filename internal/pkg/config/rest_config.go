package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// RateLimitSettings bounds request rates on the public storefront endpoints
type RateLimitSettings struct {
	RequestsPerSecond int `yaml:"requests_per_second"`
	Burst             int `yaml:"burst"`
}

// RestConfig aggregates all settings required by the REST API process
type RestConfig struct {
	Port      string            `yaml:"port"`
	Database  DatabaseSettings  `yaml:"database"`
	Logger    LoggerSettings    `yaml:"logger"`
	Auth      AuthSettings      `yaml:"auth"`
	RateLimit RateLimitSettings `yaml:"rate_limit"`
}

// InitializeRestConfig loads the REST API configuration from a YAML file,
// applies environment variable overrides and validates the result.
func InitializeRestConfig(path string) (*RestConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *RestConfig) applyEnvOverrides() {
	if v := os.Getenv("ZENO_PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("ZENO_DB_TYPE"); v != "" {
		c.Database.Type = v
	}
	if v := os.Getenv("ZENO_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("ZENO_DB_NAME"); v != "" {
		c.Database.Name = v
	}
	if v := os.Getenv("ZENO_JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("ZENO_TOKEN_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			c.Auth.TokenTTLMinutes = minutes
		}
	}
}

func (c *RestConfig) applyDefaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.Auth.TokenTTLMinutes == 0 {
		c.Auth.TokenTTLMinutes = 480
	}
	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 20
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 40
	}
}

// Validate checks every settings section of the REST configuration
func (c *RestConfig) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("invalid database settings: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("invalid logger settings: %w", err)
	}
	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("invalid auth settings: %w", err)
	}
	return nil
}
