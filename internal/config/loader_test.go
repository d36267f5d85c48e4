package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.True(t, cfg.UseMockService)
	assert.Equal(t, DefaultEnvironment, cfg.Environment)
	assert.Equal(t, DefaultSecretKey, cfg.SecretKey)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bucolin.yaml")
	content := `
api_url: http://translate.internal:9000/translate
use_mock_service: false
port: 9001
history:
  driver: sqlite
  path: /tmp/history.db
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0600))

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "http://translate.internal:9000/translate", cfg.APIURL)
	assert.False(t, cfg.UseMockService)
	assert.Equal(t, 9001, cfg.Port)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
	assert.Equal(t, "/tmp/history.db", cfg.GetHistoryConfig().Path)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	ResetConfig()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bucolin.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("use_mock_service: false\n"), 0600))

	t.Setenv("USE_MOCK_SERVICE", "true")
	t.Setenv("TRANSLATION_API_URL", "http://env-host:8000/translate")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.True(t, cfg.UseMockService)
	assert.Equal(t, "http://env-host:8000/translate", cfg.APIURL)
	assert.Equal(t, "hunter2", cfg.AdminPassword)
}

func TestLoadConfigPrefixedEnv(t *testing.T) {
	ResetConfig()

	t.Setenv("BUCOLIN_PORT", "3000")
	t.Setenv("BUCOLIN_LOG_FORMAT", "json")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	ResetConfig()

	t.Setenv("BUCOLIN_PORT", "3000")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 0, "")
	flags.Bool("mock", false, "")
	require.NoError(t, flags.Parse([]string{"--port", "4000", "--mock=false"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.False(t, cfg.UseMockService)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid defaults",
			cfg:  Config{Port: 8501, UseMockService: true, APIURL: DefaultAPIURL},
		},
		{
			name:    "invalid port",
			cfg:     Config{Port: -1, UseMockService: true},
			wantErr: "invalid port",
		},
		{
			name:    "missing api url without mock",
			cfg:     Config{Port: 8501},
			wantErr: "TRANSLATION_API_URL is required",
		},
		{
			name:    "bad log format",
			cfg:     Config{Port: 8501, UseMockService: true, LogFormat: "xml"},
			wantErr: "invalid log_format",
		},
		{
			name:    "bad history driver",
			cfg:     Config{Port: 8501, UseMockService: true, History: &HistoryConfig{Driver: "mysql"}},
			wantErr: "unknown history driver",
		},
		{
			name:    "postgres without dsn",
			cfg:     Config{Port: 8501, UseMockService: true, History: &HistoryConfig{Driver: "postgres"}},
			wantErr: "history dsn is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateAdmin(t *testing.T) {
	dev := Config{Environment: "development"}
	require.Error(t, dev.ValidateAdmin())

	dev.AdminPassword = "secret"
	require.NoError(t, dev.ValidateAdmin())

	prod := Config{Environment: "production"}
	require.NoError(t, prod.ValidateAdmin())
}

func TestServiceLabel(t *testing.T) {
	cfg := Config{UseMockService: true}
	assert.Equal(t, "Mock Service (Development)", cfg.ServiceLabel())

	cfg.UseMockService = false
	assert.Equal(t, "AI Model (Production)", cfg.ServiceLabel())
}
