// Package config loads the connection, authentication, and ambient
// observability settings a client process needs to reach an ACP server,
// layering defaults, an optional YAML file, and environment variables.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the top-level settings bundle returned by Load.
type Config struct {
	Connection ConnectionConfig `koanf:"connection"`
	Auth       AuthConfig       `koanf:"auth"`
	Health     HealthConfig     `koanf:"health"`
	Retry      RetryConfig      `koanf:"retry"`
	Log        LogConfig        `koanf:"log"`
	Metrics    MetricsConfig    `koanf:"metrics"`
	Tracing    TracingConfig    `koanf:"tracing"`
}

// ConnectionConfig describes the server this client dials.
type ConnectionConfig struct {
	Address     string        `koanf:"address"`
	DialTimeout time.Duration `koanf:"dial_timeout"`
	TLS         TLSConfig     `koanf:"tls"`
}

// TLSConfig configures transport security for the dialed channel.
type TLSConfig struct {
	Enabled            bool   `koanf:"enabled"`
	CertFile           string `koanf:"cert_file"`
	KeyFile            string `koanf:"key_file"`
	CAFile             string `koanf:"ca_file"`
	InsecureSkipVerify bool   `koanf:"insecure_skip_verify"`
}

// AuthConfig configures the bearer token attached to every outgoing RPC,
// when the server requires one.
type AuthConfig struct {
	Token     string `koanf:"token"`
	TokenFile string `koanf:"token_file"`
}

// HealthConfig bounds how long Connect waits for the server to report
// SERVING before giving up.
type HealthConfig struct {
	Timeout        time.Duration `koanf:"timeout"`
	PollInterval   time.Duration `koanf:"poll_interval"`
	PerCallTimeout time.Duration `koanf:"per_call_timeout"`
}

// RetryConfig configures the unary retry interceptor.
type RetryConfig struct {
	MaxAttempts    uint          `koanf:"max_attempts"`
	InitialBackoff time.Duration `koanf:"initial_backoff"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level      string `koanf:"level"`  // debug, info, warn, error
	Format     string `koanf:"format"` // json, text
	Output     string `koanf:"output"` // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig toggles the client-side Prometheus interceptor.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace"`
	Subsystem string `koanf:"subsystem"`
}

// TracingConfig toggles the client-side OpenTelemetry interceptor.
type TracingConfig struct {
	Enabled     bool    `koanf:"enabled"`
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	SampleRate  float64 `koanf:"sample_rate"`
}

// Validate checks the fields Load cannot sensibly default.
func (c *Config) Validate() error {
	var errs []string

	if c.Connection.Address == "" {
		errs = append(errs, "connection.address is required")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}

	if c.Retry.MaxAttempts > 0 && c.Retry.InitialBackoff <= 0 {
		errs = append(errs, "retry.initial_backoff must be positive when retry.max_attempts is set")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
