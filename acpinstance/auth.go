package acpinstance

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ansys/acp-client-go/pkg/apperror"
)

// TokenCredentials implements grpc.PerRPCCredentials, attaching a bearer
// token to every outgoing RPC as "authorization: Bearer <token>". The token
// itself is an opaque string as far as this client is concerned: whatever
// issued it (an ACP server's own auth endpoint, a reverse proxy, a secrets
// manager) is outside this library's scope. The jwt/v5 dependency is used
// only to read the token's expiry claim, for Expired, against the
// standard registered "exp" claim.
type TokenCredentials struct {
	token       string
	expiresAt   time.Time
	requireTLS  bool
}

// NewTokenCredentials wraps a pre-issued bearer token. requireTLS should be
// true for any connection that is not to localhost or an otherwise trusted
// channel, since per-RPC credentials are sent in cleartext over an insecure
// transport.
func NewTokenCredentials(token string, requireTLS bool) *TokenCredentials {
	return &TokenCredentials{token: token, requireTLS: requireTLS, expiresAt: parseExpiry(token)}
}

// GetRequestMetadata implements credentials.PerRPCCredentials.
func (c *TokenCredentials) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	if c.token == "" {
		return nil, apperror.New(apperror.KindPermissionDenied, "no bearer token configured")
	}
	return map[string]string{"authorization": "Bearer " + c.token}, nil
}

// RequireTransportSecurity implements credentials.PerRPCCredentials.
func (c *TokenCredentials) RequireTransportSecurity() bool {
	return c.requireTLS
}

// Expired reports whether the token's claimed expiry, if any, has passed.
// A token with no parseable expiry claim is treated as never expiring.
func (c *TokenCredentials) Expired() bool {
	return !c.expiresAt.IsZero() && time.Now().After(c.expiresAt)
}

// parseExpiry reads the "exp" claim out of token without verifying its
// signature: this client does not hold the signing key, it only presents a
// token issued elsewhere, so signature verification is not its job. A
// malformed or claimless token yields the zero time.
func parseExpiry(token string) time.Time {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
