package config

import "fmt"

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Port)
	}

	if c.APIURL == "" && !c.UseMockService {
		return fmt.Errorf("config: TRANSLATION_API_URL is required when the mock service is disabled")
	}

	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: invalid log_format %q (must be text or json)", c.LogFormat)
	}

	h := c.GetHistoryConfig()
	switch h.Driver {
	case "sqlite":
		if h.Path == "" {
			return fmt.Errorf("config: history path is required for the sqlite driver")
		}
	case "postgres":
		if h.DSN == "" {
			return fmt.Errorf("config: history dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unknown history driver %q", h.Driver)
	}

	return nil
}

// ValidateAdmin checks the additional requirements for serving the admin
// panel. The panel is development-only and always password protected.
func (c *Config) ValidateAdmin() error {
	if !c.IsDevelopment() {
		return nil
	}
	if c.AdminPassword == "" {
		return fmt.Errorf("config: ADMIN_PASSWORD must be set in environment or .env\nHint: copy .env.example to .env and fill in the values")
	}
	return nil
}
