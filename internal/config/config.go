package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the searchd API configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Engine  EngineConfig  `yaml:"engine"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
	// RatePerMinute caps search requests per client; 0 disables limiting.
	RatePerMinute int `yaml:"rate_per_minute"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// EngineConfig holds search engine settings, fixed for the engine's lifetime.
type EngineConfig struct {
	EnableFuzzy     *bool   `yaml:"enable_fuzzy"`
	EnableAnalytics *bool   `yaml:"enable_analytics"`
	MaxResults      int     `yaml:"max_results"`
	FuzzyThreshold  float64 `yaml:"fuzzy_threshold"` // max normalized edit distance, 0..1
	DebounceMs      int     `yaml:"debounce_ms"`
	SeedDemoData    *bool   `yaml:"seed_demo_data"`
}

// FuzzyEnabled resolves the enable_fuzzy toggle (default true).
func (e EngineConfig) FuzzyEnabled() bool { return e.EnableFuzzy == nil || *e.EnableFuzzy }

// AnalyticsEnabled resolves the enable_analytics toggle (default true).
func (e EngineConfig) AnalyticsEnabled() bool { return e.EnableAnalytics == nil || *e.EnableAnalytics }

// DemoDataEnabled resolves the seed_demo_data toggle (default true).
func (e EngineConfig) DemoDataEnabled() bool { return e.SeedDemoData == nil || *e.SeedDemoData }

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Engine.MaxResults <= 0 {
		c.Engine.MaxResults = 50
	}
	if c.Engine.FuzzyThreshold <= 0 || c.Engine.FuzzyThreshold > 1 {
		c.Engine.FuzzyThreshold = 0.6
	}
	if c.Engine.DebounceMs <= 0 {
		c.Engine.DebounceMs = 300
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Auth.RatePerMinute < 0 {
		return fmt.Errorf("auth.rate_per_minute must not be negative, got %d", c.Auth.RatePerMinute)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
