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
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %s)", c.Auth.TokenTTL)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Forms.validate(); err != nil {
		return fmt.Errorf("forms: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (f *FormsConfig) validate() error {
	if f.TrashRetentionDays <= 0 {
		return fmt.Errorf("trash_retention_days must be > 0 (got %d)", f.TrashRetentionDays)
	}
	if f.WriteRateLimit < 0 {
		return fmt.Errorf("write_rate_limit must be >= 0 (got %d)", f.WriteRateLimit)
	}
	if f.HistoryLimit <= 0 || f.HistoryLimit > 500 {
		return fmt.Errorf("history_limit must be in 1..500 (got %d)", f.HistoryLimit)
	}
	return nil
}
