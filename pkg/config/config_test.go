package config

import (
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				Connection: ConnectionConfig{Address: "localhost:50051"},
				Log:        LogConfig{Level: "info"},
			},
			wantErr: false,
		},
		{
			name: "missing address",
			cfg: Config{
				Log: LogConfig{Level: "info"},
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			cfg: Config{
				Connection: ConnectionConfig{Address: "localhost:50051"},
				Log:        LogConfig{Level: "invalid"},
			},
			wantErr: true,
		},
		{
			name: "valid debug level",
			cfg: Config{
				Connection: ConnectionConfig{Address: "localhost:50051"},
				Log:        LogConfig{Level: "debug"},
			},
			wantErr: false,
		},
		{
			name: "retry configured without backoff",
			cfg: Config{
				Connection: ConnectionConfig{Address: "localhost:50051"},
				Log:        LogConfig{Level: "info"},
				Retry:      RetryConfig{MaxAttempts: 3},
			},
			wantErr: true,
		},
		{
			name: "retry configured with backoff",
			cfg: Config{
				Connection: ConnectionConfig{Address: "localhost:50051"},
				Log:        LogConfig{Level: "info"},
				Retry:      RetryConfig{MaxAttempts: 3, InitialBackoff: 100 * time.Millisecond},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTLSConfig(t *testing.T) {
	cfg := TLSConfig{
		Enabled:  true,
		CertFile: "/tmp/cert.pem",
		KeyFile:  "/tmp/key.pem",
		CAFile:   "/tmp/ca.pem",
	}

	if !cfg.Enabled {
		t.Error("expected TLS to be enabled")
	}
	if cfg.CertFile != "/tmp/cert.pem" {
		t.Errorf("unexpected CertFile: %s", cfg.CertFile)
	}
}

func TestHealthConfig(t *testing.T) {
	cfg := HealthConfig{
		Timeout:        60 * time.Second,
		PollInterval:   3 * time.Second,
		PerCallTimeout: 20 * time.Second,
	}

	if cfg.Timeout != 60*time.Second {
		t.Errorf("unexpected Timeout: %v", cfg.Timeout)
	}
}

func TestMetricsConfig(t *testing.T) {
	cfg := MetricsConfig{
		Enabled:   true,
		Namespace: "acp_client",
	}

	if !cfg.Enabled {
		t.Error("expected metrics to be enabled")
	}
	if cfg.Namespace != "acp_client" {
		t.Errorf("unexpected Namespace: %s", cfg.Namespace)
	}
}
