package auth

import (
	"testing"
	"time"

	"staffauth/config"
	"staffauth/internal/domain/entity"
	"staffauth/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, accessTTL, refreshTTL time.Duration) service.TokenService {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  accessTTL,
			RefreshTokenTTL: refreshTTL,
		},
	}
	cfg.SecretKey.Signing = "test-signing-key-do-not-reuse"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func testUser() *entity.User {
	return &entity.User{ID: uuid.New(), Email: "ada@example.com"}
}

func TestNewJWTService_EmptyKey(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour},
	}

	svc, err := NewJWTService(cfg)

	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_AccessToken_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t, 15*time.Minute, 7*24*time.Hour)
	user := testUser()

	tokenString, err := svc.GenerateAccessToken(user, "203.0.113.7", "staffauth-test/1.0")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.ValidateAccessToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Subject)
	assert.Equal(t, "203.0.113.7", claims.ClientIP)
	assert.Equal(t, "staffauth-test/1.0", claims.UserAgent)
	assert.Equal(t, service.TokenTypeAccess, claims.TokenType)
}

func TestJWTService_ValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	svc := newTestJWTService(t, 15*time.Minute, 7*24*time.Hour)
	user := testUser()

	refreshToken, err := svc.GenerateRefreshToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(refreshToken)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RefreshToken_OmitsClientBinding(t *testing.T) {
	svc := newTestJWTService(t, 15*time.Minute, 7*24*time.Hour)
	user := testUser()

	tokenString, err := svc.GenerateRefreshToken(user)
	require.NoError(t, err)

	// Refresh tokens carry the subject only; a network or device change must
	// not invalidate them.
	assert.True(t, svc.IsTokenValid(tokenString, user))
	assert.Equal(t, user.Email, svc.ExtractSubject(tokenString))
}

func TestJWTService_ExtractSubject(t *testing.T) {
	svc := newTestJWTService(t, 15*time.Minute, 7*24*time.Hour)
	user := testUser()

	tokenString, err := svc.GenerateAccessToken(user, "", "")
	require.NoError(t, err)

	assert.Equal(t, user.Email, svc.ExtractSubject(tokenString))
	assert.Empty(t, svc.ExtractSubject("not-a-jwt"))
	assert.Empty(t, svc.ExtractSubject(""))
}

func TestJWTService_ExtractSubject_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, -time.Minute, 7*24*time.Hour)
	user := testUser()

	tokenString, err := svc.GenerateAccessToken(user, "", "")
	require.NoError(t, err)

	// The subject stays readable after expiry; only verification fails.
	assert.Equal(t, user.Email, svc.ExtractSubject(tokenString))
	assert.False(t, svc.IsTokenValid(tokenString, user))
}

func TestJWTService_IsTokenValid_SubjectMismatch(t *testing.T) {
	svc := newTestJWTService(t, 15*time.Minute, 7*24*time.Hour)
	user := testUser()

	tokenString, err := svc.GenerateAccessToken(user, "", "")
	require.NoError(t, err)

	other := &entity.User{ID: uuid.New(), Email: "grace@example.com"}
	assert.False(t, svc.IsTokenValid(tokenString, other))
}

func TestJWTService_IsTokenValid_WrongKey(t *testing.T) {
	svc := newTestJWTService(t, 15*time.Minute, 7*24*time.Hour)
	user := testUser()

	tokenString, err := svc.GenerateAccessToken(user, "", "")
	require.NoError(t, err)

	otherCfg := &config.Config{
		Auth: &config.AuthConfig{AccessTokenTTL: 15 * time.Minute, RefreshTokenTTL: time.Hour},
	}
	otherCfg.SecretKey.Signing = "a-different-key"
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	assert.False(t, otherSvc.IsTokenValid(tokenString, user))
}

func TestJWTService_Durations(t *testing.T) {
	svc := newTestJWTService(t, 15*time.Minute, 7*24*time.Hour)

	assert.Equal(t, 15*time.Minute, svc.AccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, svc.RefreshTokenDuration())
}
