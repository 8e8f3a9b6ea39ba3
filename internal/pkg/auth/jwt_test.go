package auth

import (
	"testing"

	"github.com/hamzak/maktab/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret-key",
		TokenIssuer: "maktab.test",
	})
}

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	user := &models.User{ID: 42, UserRole: models.RoleBranchAdmin}

	token, err := svc.GenerateSessionToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, models.RoleBranchAdmin, claims.UserRole)
}

func TestSessionTokenWrongKey(t *testing.T) {
	svc := newTestService()
	other := NewJWTService(JWTConfig{SecretKey: "different-key", TokenIssuer: "maktab.test"})

	token, err := svc.GenerateSessionToken(&models.User{ID: 1, UserRole: models.RoleSuperAdmin})
	require.NoError(t, err)

	_, err = other.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestSessionTokenEmpty(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateSessionToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateSessionToken("not.a.token")
	assert.Error(t, err)
}

func TestResetTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateResetToken(7)
	require.NoError(t, err)

	claims, err := svc.ValidateResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestResetTokenWrongKey(t *testing.T) {
	svc := newTestService()
	other := NewJWTService(JWTConfig{SecretKey: "different-key", TokenIssuer: "maktab.test"})

	token, err := svc.GenerateResetToken(7)
	require.NoError(t, err)

	_, err = other.ValidateResetToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	// Standard Bearer prefix
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// Raw token, as the admin clients send it
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
