package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Defaults.Policy != "balanced" {
		t.Errorf("expected default policy 'balanced', got %q", cfg.Defaults.Policy)
	}

	if cfg.Defaults.TokenBudget != 100000 {
		t.Errorf("expected default token budget 100000, got %d", cfg.Defaults.TokenBudget)
	}

	if cfg.Defaults.MaxWorkers != 5 {
		t.Errorf("expected default max workers 5, got %d", cfg.Defaults.MaxWorkers)
	}

	if cfg.Defaults.WorkerTimeout != 10*time.Minute {
		t.Errorf("expected worker timeout 10m, got %v", cfg.Defaults.WorkerTimeout)
	}

	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("expected retry max attempts 3, got %d", cfg.Retry.MaxAttempts)
	}

	if cfg.Retry.Backoff != 2*time.Second {
		t.Errorf("expected retry backoff 2s, got %v", cfg.Retry.Backoff)
	}
}

func TestLoadFromPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
anthropic:
  api_key: test-key
  model: claude-sonnet-4-20250514
  use_bedrock: true
  aws_region: us-west-2
defaults:
  policy: conservative
  token_budget: 50000
  max_workers: 3
  worker_timeout: 5m
retry:
  max_attempts: 5
  backoff: 1s
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Anthropic.APIKey != "test-key" {
		t.Errorf("api_key = %q, want 'test-key'", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet-4-20250514" {
		t.Errorf("model = %q, want 'claude-sonnet-4-20250514'", cfg.Anthropic.Model)
	}
	if !cfg.Anthropic.UseBedrock {
		t.Error("use_bedrock = false, want true")
	}
	if cfg.Anthropic.AWSRegion != "us-west-2" {
		t.Errorf("aws_region = %q, want 'us-west-2'", cfg.Anthropic.AWSRegion)
	}
	if cfg.Defaults.Policy != "conservative" {
		t.Errorf("policy = %q, want 'conservative'", cfg.Defaults.Policy)
	}
	if cfg.Defaults.TokenBudget != 50000 {
		t.Errorf("token_budget = %d, want 50000", cfg.Defaults.TokenBudget)
	}
	if cfg.Defaults.MaxWorkers != 3 {
		t.Errorf("max_workers = %d, want 3", cfg.Defaults.MaxWorkers)
	}
	if cfg.Defaults.WorkerTimeout != 5*time.Minute {
		t.Errorf("worker_timeout = %v, want 5m", cfg.Defaults.WorkerTimeout)
	}
	if cfg.Retry.MaxAttempts != 5 {
		t.Errorf("retry.max_attempts = %d, want 5", cfg.Retry.MaxAttempts)
	}
	if cfg.Retry.Backoff != time.Second {
		t.Errorf("retry.backoff = %v, want 1s", cfg.Retry.Backoff)
	}
}

func TestLoadFromPath_PartialConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Only set one value; the rest should fall back to defaults.
	configContent := `
defaults:
  max_workers: 8
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Defaults.MaxWorkers != 8 {
		t.Errorf("max_workers = %d, want 8", cfg.Defaults.MaxWorkers)
	}
	if cfg.Defaults.Policy != "balanced" {
		t.Errorf("policy = %q, want default 'balanced'", cfg.Defaults.Policy)
	}
	if cfg.Defaults.TokenBudget != 100000 {
		t.Errorf("token_budget = %d, want default 100000", cfg.Defaults.TokenBudget)
	}
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/config.yaml")
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadFromPath_ExpandsAPIKeyEnv(t *testing.T) {
	t.Setenv("MAESTRO_TEST_API_KEY", "expanded-key")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
anthropic:
  api_key: ${MAESTRO_TEST_API_KEY}
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Anthropic.APIKey != "expanded-key" {
		t.Errorf("api_key = %q, want 'expanded-key'", cfg.Anthropic.APIKey)
	}
}

func TestGetUserConfigPath(t *testing.T) {
	original := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", original)

	os.Setenv("XDG_CONFIG_HOME", "/custom/config")
	path := GetUserConfigPath()
	expected := "/custom/config/maestro/config.yaml"
	if path != expected {
		t.Errorf("GetUserConfigPath() = %q, want %q", path, expected)
	}

	os.Unsetenv("XDG_CONFIG_HOME")
	path = GetUserConfigPath()
	home, _ := os.UserHomeDir()
	expected = filepath.Join(home, ".config", "maestro", "config.yaml")
	if path != expected {
		t.Errorf("GetUserConfigPath() = %q, want %q", path, expected)
	}
}
