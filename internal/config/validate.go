package config

import (
	"fmt"
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if c.Server.PublicURL != "" {
		if err := validateAbsoluteURL(c.Server.PublicURL); err != nil {
			return fmt.Errorf("server.public_url: %w", err)
		}
	}

	if c.Storage.PublicBaseURL != "" {
		if err := validateAbsoluteURL(c.Storage.PublicBaseURL); err != nil {
			return fmt.Errorf("storage.public_base_url: %w", err)
		}
	}
	if c.Storage.MaxImageBytes <= 0 {
		return fmt.Errorf("storage.max_image_bytes must be > 0 (got %d)", c.Storage.MaxImageBytes)
	}

	if err := c.Pagination.validate(); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 when enabled (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (p *PaginationConfig) validate() error {
	if p.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", p.DefaultPageSize)
	}
	if p.MaxPageSize < p.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", p.MaxPageSize, p.DefaultPageSize)
	}
	return nil
}

func validateAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q is not an absolute URL", raw)
	}
	return nil
}
