package jwt

import (
	"testing"
	"time"

	"github.com/presensia/presensi-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	return NewJWTService("test-secret", "15m", "720h").(*JWTService)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService(t)

	token, expiresAt, err := svc.GenerateRefreshToken(42)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	userID, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestAccessTokenRejectedAsRefresh(t *testing.T) {
	svc := newTestService(t)

	token, _, err := svc.GenerateAccessToken(42, "budi", user.RoleOperator)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestRevokedTokenFailsValidation(t *testing.T) {
	svc := newTestService(t)

	token, _, err := svc.GenerateRefreshToken(42)
	require.NoError(t, err)
	assert.False(t, svc.IsTokenRevoked(token))

	svc.RevokeToken(token)

	assert.True(t, svc.IsTokenRevoked(token))
	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestRevokeTokenPrunesExpiredEntries(t *testing.T) {
	svc := newTestService(t)

	svc.mu.Lock()
	svc.revokedTokens["stale"] = time.Now().Add(-time.Hour).Unix()
	svc.mu.Unlock()

	// An entry past its expiry no longer counts as revoked.
	assert.False(t, svc.IsTokenRevoked("stale"))

	token, _, err := svc.GenerateRefreshToken(42)
	require.NoError(t, err)
	svc.RevokeToken(token)

	svc.mu.RLock()
	_, staleKept := svc.revokedTokens["stale"]
	exp, fresh := svc.revokedTokens[token]
	svc.mu.RUnlock()

	assert.False(t, staleKept, "expired revocation entries must be dropped on insert")
	require.True(t, fresh)
	assert.Greater(t, exp, time.Now().Unix())
}
