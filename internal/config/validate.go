package config

import (
	"fmt"
	"strings"
)

// maxDescriptionLength is the upper bound of short descriptions on the wire.
const maxDescriptionLength = 200

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	if !IsSupportedDriver(c.Database.Driver) {
		return fmt.Errorf("database.driver must be one of %v (got %q)", SupportedDrivers(), c.Database.Driver)
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be > 0 (got %d)", c.Database.MaxOpenConns)
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("rate_limit.requests_per_second must be > 0 (got %v)", c.RateLimit.RequestsPerSecond)
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst)
		}
	}

	return nil
}

func (s *SearchConfig) validate() error {
	if s.MaxQueryLength <= 0 {
		return fmt.Errorf("max_query_length must be > 0 (got %d)", s.MaxQueryLength)
	}
	if s.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be > 0 (got %d)", s.DefaultLimit)
	}
	if s.MaxLimit < s.DefaultLimit {
		return fmt.Errorf("max_limit must be >= default_limit (got %d < %d)", s.MaxLimit, s.DefaultLimit)
	}
	if s.DescriptionLength <= 0 || s.DescriptionLength > maxDescriptionLength {
		return fmt.Errorf("description_length must be in 1..%d (got %d)", maxDescriptionLength, s.DescriptionLength)
	}
	if s.SuggestionLimit <= 0 {
		return fmt.Errorf("suggestion_limit must be > 0 (got %d)", s.SuggestionLimit)
	}
	return nil
}
