// Package config handles configuration loading and management for maestro.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for maestro.
type Config struct {
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	Defaults  DefaultsConfig  `mapstructure:"defaults"`
	Retry     RetryConfig     `mapstructure:"retry"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	APIKey     string `mapstructure:"api_key"`
	Model      string `mapstructure:"model"`
	UseBedrock bool   `mapstructure:"use_bedrock"`
	AWSRegion  string `mapstructure:"aws_region"`
	AWSProfile string `mapstructure:"aws_profile"`
}

// DefaultsConfig holds default values for maestro runs.
type DefaultsConfig struct {
	Policy        string        `mapstructure:"policy"`
	TokenBudget   int64         `mapstructure:"token_budget"`
	MaxWorkers    int           `mapstructure:"max_workers"`
	WorkerTimeout time.Duration `mapstructure:"worker_timeout"`
}

// RetryConfig holds worker retry settings.
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	Backoff     time.Duration `mapstructure:"backoff"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (ANTHROPIC_API_KEY, MAESTRO_*)
// 2. Project config (.maestro.yaml in current directory or parent)
// 3. User config (~/.config/maestro/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			// Project config takes precedence over user config
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("MAESTRO")

	v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY")
	v.BindEnv("anthropic.model", "MAESTRO_MODEL")
	v.BindEnv("anthropic.use_bedrock", "MAESTRO_USE_BEDROCK")
	v.BindEnv("anthropic.aws_region", "AWS_REGION")
	v.BindEnv("anthropic.aws_profile", "AWS_PROFILE")
	v.BindEnv("defaults.policy", "MAESTRO_POLICY")
	v.BindEnv("defaults.token_budget", "MAESTRO_TOKEN_BUDGET")
	v.BindEnv("defaults.max_workers", "MAESTRO_MAX_WORKERS")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Expand ${VAR} references
	cfg.Anthropic.APIKey = expandEnv(cfg.Anthropic.APIKey)

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Anthropic.APIKey = expandEnv(cfg.Anthropic.APIKey)

	return cfg, nil
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(userConfigDir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(configPath)

	v.Set("anthropic.api_key", cfg.Anthropic.APIKey)
	v.Set("anthropic.model", cfg.Anthropic.Model)
	v.Set("anthropic.use_bedrock", cfg.Anthropic.UseBedrock)
	v.Set("anthropic.aws_region", cfg.Anthropic.AWSRegion)
	v.Set("anthropic.aws_profile", cfg.Anthropic.AWSProfile)
	v.Set("defaults.policy", cfg.Defaults.Policy)
	v.Set("defaults.token_budget", cfg.Defaults.TokenBudget)
	v.Set("defaults.max_workers", cfg.Defaults.MaxWorkers)
	v.Set("defaults.worker_timeout", cfg.Defaults.WorkerTimeout.String())
	v.Set("retry.max_attempts", cfg.Retry.MaxAttempts)
	v.Set("retry.backoff", cfg.Retry.Backoff.String())

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", "")
	v.SetDefault("anthropic.use_bedrock", false)
	v.SetDefault("anthropic.aws_region", "")
	v.SetDefault("anthropic.aws_profile", "")

	v.SetDefault("defaults.policy", "balanced")
	v.SetDefault("defaults.token_budget", 100000)
	v.SetDefault("defaults.max_workers", 5)
	v.SetDefault("defaults.worker_timeout", "10m")

	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.backoff", "2s")
}

// getUserConfigDir returns the XDG config directory for maestro.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "maestro")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "maestro")
	}
	return filepath.Join(home, ".config", "maestro")
}

// findProjectConfig searches for .maestro.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".maestro.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// expandEnv expands ${VAR} references in a string.
func expandEnv(s string) string {
	return os.ExpandEnv(s)
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Policy:        "balanced",
			TokenBudget:   100000,
			MaxWorkers:    5,
			WorkerTimeout: 10 * time.Minute,
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			Backoff:     2 * time.Second,
		},
	}
}
