package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be in [4, 31] (got %d)", c.Auth.BcryptCost)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Analyzer.validate(); err != nil {
		return fmt.Errorf("analyzer: %w", err)
	}
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if c.Redis.Enabled() && c.Redis.LockTTL <= 0 {
		return fmt.Errorf("redis.lock_ttl must be > 0 (got %v)", c.Redis.LockTTL)
	}
	if (c.Events.ProjectID == "") != (c.Events.Topic == "") {
		return fmt.Errorf("events.project_id and events.topic must be set together")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (a *AnalyzerConfig) validate() error {
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	if a.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", a.MaxTokens)
	}
	if a.MaxImagePx < 0 {
		return fmt.Errorf("max_image_px must be >= 0 (got %d)", a.MaxImagePx)
	}
	if a.BreakerThreshold <= 0 {
		return fmt.Errorf("breaker_threshold must be > 0 (got %d)", a.BreakerThreshold)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Backend {
	case StorageLocal:
		if s.LocalDir == "" {
			return fmt.Errorf("local_dir is required for the local backend")
		}
	case StorageGCS:
		if s.GCSBucket == "" {
			return fmt.Errorf("gcs_bucket is required for the gcs backend")
		}
	default:
		return fmt.Errorf("unknown backend %q", s.Backend)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.Login <= 0 || r.Verify <= 0 {
		return fmt.Errorf("login and verify must be > 0 (got %d, %d)", r.Login, r.Verify)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %v)", r.CleanupInterval)
	}
	return nil
}
