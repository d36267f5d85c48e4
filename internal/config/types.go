// Package config provides configuration management for the BUCOLIN
// translator website.
//
// Public application constants are safe to ship in the binary; everything
// secret or deployment-specific is loaded at startup from (in order of
// precedence) CLI flags, environment variables, an optional .env file, and
// an optional bucolin.yaml config file.
package config

import "time"

// Public application constants.
const (
	AppName    = "BUCOLIN Historical Turkish Translator"
	AppVersion = "1.0.0"

	SourceLanguage = "ottoman_turkish"
	TargetLanguage = "modern_turkish"

	MaxTextLength = 5000

	MockProcessingTime      = 800 * time.Millisecond
	MockConfidenceThreshold = 0.7

	HuggingFaceURL = "https://huggingface.co/BUCOLIN"
	UniversityURL  = "https://www.boun.edu.tr"
)

// Default configuration values.
const (
	DefaultAPIURL      = "http://localhost:8000/translate"
	DefaultEnvironment = "development"
	DefaultSecretKey   = "dev-key-change-in-production"
	DefaultPort        = 8501
	DefaultHistoryPath = ".bucolin/history.db"
)

// Config holds all runtime configuration options.
type Config struct {
	APIURL         string         `koanf:"api_url"`
	APIKey         string         `koanf:"api_key"`
	UseMockService bool           `koanf:"use_mock_service"`
	AdminPassword  string         `koanf:"admin_password"`
	Environment    string         `koanf:"environment"`
	SecretKey      string         `koanf:"secret_key"`
	Port           int            `koanf:"port"`
	LexiconPath    string         `koanf:"lexicon_path"`
	Watch          bool           `koanf:"watch"`
	Verbose        bool           `koanf:"verbose"`
	LogFormat      string         `koanf:"log_format"`
	History        *HistoryConfig `koanf:"history"`
}

// HistoryConfig configures the translation history store.
type HistoryConfig struct {
	Driver string `koanf:"driver"` // "sqlite" or "postgres"
	Path   string `koanf:"path"`   // sqlite file path
	DSN    string `koanf:"dsn"`    // postgres connection string
}

// IsDevelopment reports whether the app runs in development mode.
// The admin panel is only reachable in development.
func (c *Config) IsDevelopment() bool {
	return c.Environment == DefaultEnvironment
}

// ServiceLabel returns the human-readable name of the active backend.
func (c *Config) ServiceLabel() string {
	if c.UseMockService {
		return "Mock Service (Development)"
	}
	return "AI Model (Production)"
}

// GetHistoryConfig returns the history config with defaults applied.
func (c *Config) GetHistoryConfig() *HistoryConfig {
	if c.History == nil {
		return &HistoryConfig{Driver: "sqlite", Path: DefaultHistoryPath}
	}
	h := c.History
	if h.Driver == "" {
		h.Driver = "sqlite"
	}
	if h.Driver == "sqlite" && h.Path == "" {
		h.Path = DefaultHistoryPath
	}
	return h
}
