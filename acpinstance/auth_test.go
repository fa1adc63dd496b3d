package acpinstance_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansys/acp-client-go/acpinstance"
)

func signTestToken(t *testing.T, expiry time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiry)}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenCredentialsGetRequestMetadata(t *testing.T) {
	creds := acpinstance.NewTokenCredentials("abc123", false)
	md, err := creds.GetRequestMetadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", md["authorization"])
}

func TestTokenCredentialsEmptyTokenErrors(t *testing.T) {
	creds := acpinstance.NewTokenCredentials("", false)
	_, err := creds.GetRequestMetadata(context.Background())
	assert.Error(t, err)
}

func TestTokenCredentialsRequireTransportSecurity(t *testing.T) {
	assert.True(t, acpinstance.NewTokenCredentials("tok", true).RequireTransportSecurity())
	assert.False(t, acpinstance.NewTokenCredentials("tok", false).RequireTransportSecurity())
}

func TestTokenCredentialsExpired(t *testing.T) {
	expired := signTestToken(t, time.Now().Add(-time.Hour))
	fresh := signTestToken(t, time.Now().Add(time.Hour))

	assert.True(t, acpinstance.NewTokenCredentials(expired, false).Expired())
	assert.False(t, acpinstance.NewTokenCredentials(fresh, false).Expired())
}

func TestTokenCredentialsOpaqueTokenNeverExpires(t *testing.T) {
	assert.False(t, acpinstance.NewTokenCredentials("not-a-jwt", false).Expired())
}
