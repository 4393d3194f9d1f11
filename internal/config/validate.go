package config

import (
	"fmt"
	"net/url"
	"strings"
)

// maxResultLimit bounds search.result_limit so a single request cannot
// assemble an arbitrarily large page.
const maxResultLimit = 10000

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.TokensEnabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if _, err := url.Parse(c.Exhibit.ImageBaseURL); err != nil {
		return fmt.Errorf("exhibit.image_base_url: %w", err)
	}

	return nil
}

func (s *SearchConfig) validate() error {
	if s.ResultLimit <= 0 {
		return fmt.Errorf("result_limit must be > 0 (got %d)", s.ResultLimit)
	}
	if s.ResultLimit > maxResultLimit {
		return fmt.Errorf("result_limit must be <= %d (got %d)", maxResultLimit, s.ResultLimit)
	}

	if s.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate_limit_per_minute must be >= 0 (got %d)", s.RateLimitPerMinute)
	}

	s.AnonymousIdentity = strings.TrimSpace(s.AnonymousIdentity)
	if s.AnonymousIdentity == "" {
		return fmt.Errorf("anonymous_identity must not be empty")
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.QueryTimeout < 0 {
		return fmt.Errorf("query_timeout must be >= 0 (got %v)", d.QueryTimeout)
	}
	if d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
	}
	return nil
}
