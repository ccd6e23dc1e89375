package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetEnv tests the getEnv helper function
func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		want         string
	}{
		{
			name:         "returns env value when set",
			key:          "PROTO2XSD_TEST_VAR",
			defaultValue: "default",
			envValue:     "custom",
			want:         "custom",
		},
		{
			name:         "returns default when env not set",
			key:          "PROTO2XSD_TEST_VAR_NOT_SET",
			defaultValue: "default",
			want:         "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			}
			assert.Equal(t, tt.want, getEnv(tt.key, tt.defaultValue))
		})
	}
}

// TestGetEnvInt tests the getEnvInt helper function
func TestGetEnvInt(t *testing.T) {
	t.Setenv("PROTO2XSD_TEST_INT", "12")
	t.Setenv("PROTO2XSD_TEST_BAD_INT", "twelve")

	assert.Equal(t, 12, getEnvInt("PROTO2XSD_TEST_INT", 3))
	assert.Equal(t, 3, getEnvInt("PROTO2XSD_TEST_BAD_INT", 3))
	assert.Equal(t, 3, getEnvInt("PROTO2XSD_TEST_INT_NOT_SET", 3))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "./proto2xsd", cfg.BaseDir)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "siti.", cfg.AliasStripPrefix)
	assert.Equal(t, 4, cfg.Indent)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 128, cfg.CacheSize)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("yaml file overlays defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "proto2xsd.yaml")
		require.NoError(t, os.WriteFile(path, []byte("base_dir: /srv/protos\nindent: 2\n"), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "/srv/protos", cfg.BaseDir)
		assert.Equal(t, 2, cfg.Indent)
		assert.Equal(t, "siti.", cfg.AliasStripPrefix)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "proto2xsd.yaml")
		require.NoError(t, os.WriteFile(path, []byte("base_dir: /srv/protos\nlog_level: warn\n"), 0644))
		t.Setenv("PROTO2XSD_BASE_DIR", "/env/protos")
		t.Setenv("PROTO2XSD_CACHE_SIZE", "8")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "/env/protos", cfg.BaseDir)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, 8, cfg.CacheSize)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("indent: [1, 2"), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv("PROTO2XSD_INDENT", "-1")

		_, err := LoadConfig("")
		assert.ErrorContains(t, err, "indent")
	})
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PROTO2XSD_TEST_DOTENV=from-file\n"), 0644))
	t.Setenv("PROTO2XSD_TEST_DOTENV", "")
	os.Unsetenv("PROTO2XSD_TEST_DOTENV")

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("PROTO2XSD_TEST_DOTENV"))

	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base dir", func(c *Config) { c.BaseDir = "" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"zero indent", func(c *Config) { c.Indent = 0 }},
		{"zero cache", func(c *Config) { c.CacheSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
