package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// Package-level koanf instance and config file tracking.
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config
)

// bareEnvVars maps the deployment guide's environment variable names to
// config keys. Everything else must use the BUCOLIN_ prefix.
var bareEnvVars = map[string]string{
	"TRANSLATION_API_URL": "api_url",
	"TRANSLATION_API_KEY": "api_key",
	"USE_MOCK_SERVICE":    "use_mock_service",
	"ADMIN_PASSWORD":      "admin_password",
	"ENVIRONMENT":         "environment",
	"SECRET_KEY":          "secret_key",
}

// findConfigFile finds the config file to use.
// Priority: explicit path > bucolin.yaml > bucolin.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"bucolin.yaml", "bucolin.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from file, .env, environment variables, and
// flags. Precedence (highest to lowest): flags > env vars > .env > config
// file > defaults.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"api_url":          DefaultAPIURL,
		"use_mock_service": true,
		"environment":      DefaultEnvironment,
		"secret_key":       DefaultSecretKey,
		"port":             DefaultPort,
		"verbose":          false,
		"log_format":       "text",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Load .env if present (cp .env.example .env).
	// Missing file is fine; godotenv never overrides existing env vars.
	_ = godotenv.Load()

	// 4. Load environment variables. The documented variables keep their
	// bare names; everything else is namespaced with BUCOLIN_.
	if err := k.Load(env.Provider("", ".", func(s string) string {
		if key, ok := bareEnvVars[s]; ok {
			return key
		}
		if strings.HasPrefix(s, "BUCOLIN_") {
			return strings.ToLower(strings.TrimPrefix(s, "BUCOLIN_"))
		}
		return ""
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 5. Load flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			key := strings.ReplaceAll(f.Name, "-", "_")

			// --mock flag maps to the use_mock_service key
			if key == "mock" {
				return "use_mock_service", posflag.FlagVal(flags, f)
			}

			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 6. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	currentConfig = &cfg
	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration.
func GetCurrentConfig() *Config {
	return currentConfig
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
