package acpinstance

import (
	"crypto/tls"
	"crypto/x509"
	"os"
	"strings"

	"google.golang.org/grpc/credentials"

	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/pkg/config"
	"github.com/ansys/acp-client-go/pkg/logger"
	"github.com/ansys/acp-client-go/pkg/metrics"
)

func certPoolFromFile(path string) (*x509.CertPool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.KindInvalidArgument, "acpinstance: reading connection.tls.ca_file: "+err.Error())
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(raw) {
		return nil, apperror.New(apperror.KindInvalidArgument, "acpinstance: connection.tls.ca_file contains no valid certificates")
	}
	return pool, nil
}

// FromSettings builds the transport, health-check, authentication, and
// observability portions of a Config from a loaded pkg/config.Config.
// ServerVersion, FileTransfer, and Factories are not settings-driven (they
// depend on the caller's generated client code) and must still be set by
// the caller on the returned Config before passing it to Connect.
func FromSettings(settings *config.Config) (Config, error) {
	if settings == nil {
		return Config{}, apperror.New(apperror.KindInvalidArgument, "acpinstance: settings must not be nil")
	}

	dial := DialConfig{
		Address:      settings.Connection.Address,
		DialTimeout:  settings.Connection.DialTimeout,
		MaxRetries:   settings.Retry.MaxAttempts,
		RetryBackoff: settings.Retry.InitialBackoff,
	}

	if settings.Connection.TLS.Enabled {
		creds, err := tlsCredentialsFromConfig(settings.Connection.TLS)
		if err != nil {
			return Config{}, err
		}
		dial.TransportCredentials = creds
	}

	token := settings.Auth.Token
	if settings.Auth.TokenFile != "" {
		raw, err := os.ReadFile(settings.Auth.TokenFile)
		if err != nil {
			return Config{}, apperror.Wrap(err, apperror.KindInvalidArgument, "acpinstance: reading auth.token_file: "+err.Error())
		}
		token = strings.TrimSpace(string(raw))
	}
	if token != "" {
		dial.PerRPCCredentials = NewTokenCredentials(token, settings.Connection.TLS.Enabled)
	}

	health := HealthCheckConfig{
		Timeout:        settings.Health.Timeout,
		PollInterval:   settings.Health.PollInterval,
		PerCallTimeout: settings.Health.PerCallTimeout,
	}

	logger.InitWithConfig(logger.Config{
		Level:      settings.Log.Level,
		Format:     settings.Log.Format,
		Output:     settings.Log.Output,
		FilePath:   settings.Log.FilePath,
		MaxSize:    settings.Log.MaxSize,
		MaxBackups: settings.Log.MaxBackups,
		MaxAge:     settings.Log.MaxAge,
		Compress:   settings.Log.Compress,
	})

	cfg := Config{
		Dial:          dial,
		Health:        health,
		EnableLogging: true,
		EnableMetrics: settings.Metrics.Enabled,
		EnableTracing: settings.Tracing.Enabled,
	}
	if settings.Metrics.Enabled {
		cfg.Metrics = metrics.InitMetrics(settings.Metrics.Namespace, settings.Metrics.Subsystem)
	}
	return cfg, nil
}

func tlsCredentialsFromConfig(cfg config.TLSConfig) (credentials.TransportCredentials, error) {
	tlsConfig := &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}

	if cfg.CAFile != "" {
		pool, err := certPoolFromFile(cfg.CAFile)
		if err != nil {
			return nil, err
		}
		tlsConfig.RootCAs = pool
	}

	if cfg.CertFile != "" && cfg.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, apperror.Wrap(err, apperror.KindInvalidArgument, "acpinstance: loading client certificate: "+err.Error())
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return credentials.NewTLS(tlsConfig), nil
}
