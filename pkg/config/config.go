package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/platinummonkey/proto2xsd/pkg/emitter"
	"github.com/platinummonkey/proto2xsd/pkg/namespace"
	"github.com/platinummonkey/proto2xsd/pkg/source"
	"gopkg.in/yaml.v3"
)

// DotEnvFile is loaded into the environment by LoadConfig when present
const DotEnvFile = ".env"

// Config holds all application configuration
type Config struct {
	// BaseDir is the directory inputs and imports are resolved against
	BaseDir string `yaml:"base_dir"`
	// OutputDir receives generated schemas
	OutputDir string `yaml:"output_dir"`
	// AliasStripPrefix is removed from import file names when deriving prefixes
	AliasStripPrefix string `yaml:"alias_strip_prefix"`
	// Indent is the number of spaces per nesting level in generated schemas
	Indent int `yaml:"indent"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
	// CacheSize is the number of source files kept in memory
	CacheSize int `yaml:"cache_size"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseDir:          source.DefaultBaseDir,
		OutputDir:        ".",
		AliasStripPrefix: namespace.DefaultStripPrefix,
		Indent:           emitter.DefaultIndent,
		LogLevel:         "info",
		CacheSize:        source.DefaultCacheSize,
	}
}

// LoadConfig loads configuration from defaults, the YAML file at path (when
// path is not empty) and environment variables
func LoadConfig(path string) (*Config, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.loadEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDotEnv populates the environment from a .env file, if there is one
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// loadFile overlays the YAML file at path. Keys missing from the file keep
// their current value.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// loadEnv overlays environment variables
func (c *Config) loadEnv() {
	c.BaseDir = getEnv("PROTO2XSD_BASE_DIR", c.BaseDir)
	c.OutputDir = getEnv("PROTO2XSD_OUTPUT_DIR", c.OutputDir)
	c.AliasStripPrefix = getEnv("PROTO2XSD_ALIAS_STRIP_PREFIX", c.AliasStripPrefix)
	c.Indent = getEnvInt("PROTO2XSD_INDENT", c.Indent)
	c.LogLevel = getEnv("PROTO2XSD_LOG_LEVEL", c.LogLevel)
	c.CacheSize = getEnvInt("PROTO2XSD_CACHE_SIZE", c.CacheSize)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.BaseDir == "" {
		return fmt.Errorf("base directory is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.Indent <= 0 {
		return fmt.Errorf("indent must be positive, got %d", c.Indent)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("cache size must be positive, got %d", c.CacheSize)
	}
	return nil
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
