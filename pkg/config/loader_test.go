package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoader_LoadDefaults(t *testing.T) {
	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Connection.Address != "localhost:50051" {
		t.Errorf("expected default address 'localhost:50051', got %s", cfg.Connection.Address)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Log.Level)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("expected default max attempts 3, got %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Health.Timeout != 60*time.Second {
		t.Errorf("expected default health timeout 60s, got %v", cfg.Health.Timeout)
	}
}

func TestLoader_LoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "acp.yaml")

	configContent := `
connection:
  address: acp-server:50052
log:
  level: debug
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	if err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	loader := NewLoader(WithConfigPaths(configPath))
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Connection.Address != "acp-server:50052" {
		t.Errorf("expected address 'acp-server:50052', got %s", cfg.Connection.Address)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Log.Level)
	}
}

func TestLoader_LoadFromEnv(t *testing.T) {
	os.Setenv("ACP_CONNECTION_ADDRESS", "env-server:50053")
	defer os.Unsetenv("ACP_CONNECTION_ADDRESS")

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Connection.Address != "env-server:50053" {
		t.Errorf("expected address 'env-server:50053', got %s", cfg.Connection.Address)
	}
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "acp.yaml")

	configContent := `
connection:
  address: file-server:50054
`
	os.WriteFile(configPath, []byte(configContent), 0644)

	os.Setenv("ACP_CONNECTION_ADDRESS", "env-override:50055")
	defer os.Unsetenv("ACP_CONNECTION_ADDRESS")

	cfg, err := NewLoader(WithConfigPaths(configPath)).Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Connection.Address != "env-override:50055" {
		t.Errorf("expected env override, got %s", cfg.Connection.Address)
	}
}

func TestLoader_WithEnvPrefix(t *testing.T) {
	os.Setenv("CUSTOM_CONNECTION_ADDRESS", "custom-prefix:50056")
	defer os.Unsetenv("CUSTOM_CONNECTION_ADDRESS")

	cfg, err := NewLoader(WithEnvPrefix("CUSTOM_")).Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Connection.Address != "custom-prefix:50056" {
		t.Errorf("expected 'custom-prefix:50056', got %s", cfg.Connection.Address)
	}
}

func TestMustLoad_Success(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustLoad should not panic with valid config")
		}
	}()

	cfg := MustLoad()
	if cfg == nil {
		t.Error("expected non-nil config")
	}
}

func TestLoad_Simple(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg == nil {
		t.Error("expected non-nil config")
	}
}

func TestLoader_ConfigEnvVar(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "custom-config.yaml")

	configContent := `
connection:
  address: config-env-var-server:50057
`
	os.WriteFile(configPath, []byte(configContent), 0644)

	os.Setenv("ACP_CONFIG_PATH", configPath)
	defer os.Unsetenv("ACP_CONFIG_PATH")

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Connection.Address != "config-env-var-server:50057" {
		t.Errorf("expected 'config-env-var-server:50057', got %s", cfg.Connection.Address)
	}
}
