package acpinstance_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansys/acp-client-go/acpinstance"
	"github.com/ansys/acp-client-go/pkg/config"
)

func TestFromSettingsRejectsNil(t *testing.T) {
	_, err := acpinstance.FromSettings(nil)
	require.Error(t, err)
}

func TestFromSettingsCopiesConnectionAndRetry(t *testing.T) {
	settings := &config.Config{
		Connection: config.ConnectionConfig{
			Address:     "127.0.0.1:50051",
			DialTimeout: 5 * time.Second,
		},
		Retry: config.RetryConfig{
			MaxAttempts:    4,
			InitialBackoff: 250 * time.Millisecond,
		},
		Health: config.HealthConfig{
			Timeout:        30 * time.Second,
			PollInterval:   time.Second,
			PerCallTimeout: 5 * time.Second,
		},
		Log: config.LogConfig{Level: "info"},
	}

	cfg, err := acpinstance.FromSettings(settings)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:50051", cfg.Dial.Address)
	assert.Equal(t, 5*time.Second, cfg.Dial.DialTimeout)
	assert.Equal(t, uint(4), cfg.Dial.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Dial.RetryBackoff)
	assert.Equal(t, 30*time.Second, cfg.Health.Timeout)
	assert.Nil(t, cfg.Dial.TransportCredentials)
	assert.Nil(t, cfg.Dial.PerRPCCredentials)
}

func TestFromSettingsWiresTokenFromFile(t *testing.T) {
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token")
	require.NoError(t, os.WriteFile(tokenPath, []byte("secret-token\n"), 0600))

	settings := &config.Config{
		Connection: config.ConnectionConfig{Address: "127.0.0.1:50051"},
		Auth:       config.AuthConfig{TokenFile: tokenPath},
		Log:        config.LogConfig{Level: "info"},
	}

	cfg, err := acpinstance.FromSettings(settings)
	require.NoError(t, err)
	require.NotNil(t, cfg.Dial.PerRPCCredentials)

	md, err := cfg.Dial.PerRPCCredentials.GetRequestMetadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", md["authorization"])
}

func TestFromSettingsEnablesMetricsWhenConfigured(t *testing.T) {
	settings := &config.Config{
		Connection: config.ConnectionConfig{Address: "127.0.0.1:50051"},
		Metrics:    config.MetricsConfig{Enabled: true, Namespace: "acp_fromconfig_test"},
		Log:        config.LogConfig{Level: "info"},
	}

	cfg, err := acpinstance.FromSettings(settings)
	require.NoError(t, err)
	assert.True(t, cfg.EnableMetrics)
	assert.NotNil(t, cfg.Metrics)
}
