package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/maestro-cli/maestro/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify maestro configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/maestro/config.yaml
Project-specific overrides can be placed in .maestro.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		switch len(args) {
		case 0:
			displayAllConfig(cfg)
		case 1:
			displayConfigKey(cfg, args[0])
		default:
			setConfigKey(cfg, args[0], args[1])
		}
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cfg *config.Config) {
	// Mask API key if set
	apiKeyDisplay := "(not set)"
	if cfg.Anthropic.APIKey != "" {
		apiKeyDisplay = "****"
	}

	fmt.Printf("anthropic.api_key: %s\n", apiKeyDisplay)
	fmt.Printf("anthropic.model: %s\n", cfg.Anthropic.Model)
	fmt.Printf("anthropic.use_bedrock: %t\n", cfg.Anthropic.UseBedrock)
	fmt.Printf("anthropic.aws_region: %s\n", cfg.Anthropic.AWSRegion)
	fmt.Printf("anthropic.aws_profile: %s\n", cfg.Anthropic.AWSProfile)
	fmt.Printf("defaults.policy: %s\n", cfg.Defaults.Policy)
	fmt.Printf("defaults.token_budget: %d\n", cfg.Defaults.TokenBudget)
	fmt.Printf("defaults.max_workers: %d\n", cfg.Defaults.MaxWorkers)
	fmt.Printf("defaults.worker_timeout: %s\n", cfg.Defaults.WorkerTimeout)
	fmt.Printf("retry.max_attempts: %d\n", cfg.Retry.MaxAttempts)
	fmt.Printf("retry.backoff: %s\n", cfg.Retry.Backoff)
}

// displayConfigKey prints a single configuration value.
func displayConfigKey(cfg *config.Config, key string) {
	value, err := getConfigValue(cfg, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(value)
}

// setConfigKey sets a configuration value and saves the config.
func setConfigKey(cfg *config.Config, key, value string) {
	if err := setConfigValue(cfg, key, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Set %s = %s\n", key, value)
}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "anthropic.api_key":
		if cfg.Anthropic.APIKey == "" {
			return "(not set)", nil
		}
		return "****", nil
	case "anthropic.model":
		return cfg.Anthropic.Model, nil
	case "anthropic.use_bedrock":
		return strconv.FormatBool(cfg.Anthropic.UseBedrock), nil
	case "anthropic.aws_region":
		return cfg.Anthropic.AWSRegion, nil
	case "anthropic.aws_profile":
		return cfg.Anthropic.AWSProfile, nil
	case "defaults.policy":
		return cfg.Defaults.Policy, nil
	case "defaults.token_budget":
		return strconv.FormatInt(cfg.Defaults.TokenBudget, 10), nil
	case "defaults.max_workers":
		return strconv.Itoa(cfg.Defaults.MaxWorkers), nil
	case "defaults.worker_timeout":
		return cfg.Defaults.WorkerTimeout.String(), nil
	case "retry.max_attempts":
		return strconv.Itoa(cfg.Retry.MaxAttempts), nil
	case "retry.backoff":
		return cfg.Retry.Backoff.String(), nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

// setConfigValue sets a configuration value by dot-notation key.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "anthropic.api_key":
		cfg.Anthropic.APIKey = value
	case "anthropic.model":
		cfg.Anthropic.Model = value
	case "anthropic.use_bedrock":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %s", key, value)
		}
		cfg.Anthropic.UseBedrock = b
	case "anthropic.aws_region":
		cfg.Anthropic.AWSRegion = value
	case "anthropic.aws_profile":
		cfg.Anthropic.AWSProfile = value
	case "defaults.policy":
		cfg.Defaults.Policy = value
	case "defaults.token_budget":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid number for %s: %s", key, value)
		}
		cfg.Defaults.TokenBudget = n
	case "defaults.max_workers":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid number for %s: %s", key, value)
		}
		cfg.Defaults.MaxWorkers = n
	case "defaults.worker_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %s", key, value)
		}
		cfg.Defaults.WorkerTimeout = d
	case "retry.max_attempts":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid number for %s: %s", key, value)
		}
		cfg.Retry.MaxAttempts = n
	case "retry.backoff":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %s", key, value)
		}
		cfg.Retry.Backoff = d
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
