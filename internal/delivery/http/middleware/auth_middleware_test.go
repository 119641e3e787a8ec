package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staffauth/config"
	deliverycontext "staffauth/internal/delivery/context"
	"staffauth/internal/domain/entity"
	"staffauth/internal/domain/repository"
	"staffauth/internal/domain/service"
	"staffauth/internal/infra/auth"
	mockRepo "staffauth/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authMiddlewareFixtures holds all test dependencies for auth middleware tests.
type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   service.TokenService
	tokenRepo  *mockRepo.MockTokenRepository
	user       *entity.User
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	cfg.SecretKey.Signing = "test-signing-key-do-not-reuse"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	tokenRepo := mockRepo.NewMockTokenRepository(t)

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, tokenRepo),
		tokenSvc:   tokenSvc,
		tokenRepo:  tokenRepo,
		user:       &entity.User{ID: uuid.New(), Email: "ada@example.com"},
	}
}

func (fx authMiddlewareFixtures) invoke(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true

		userID, ok := deliverycontext.GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, fx.user.ID, userID)

		return c.NoContent(http.StatusOK)
	}

	err := fx.middleware.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, reached
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	tokenString, err := fx.tokenSvc.GenerateAccessToken(fx.user, "203.0.113.7", "staffauth-test/1.0")
	require.NoError(t, err)

	fx.tokenRepo.EXPECT().FindByToken(mock.Anything, tokenString).
		Return(&entity.Token{UserID: fx.user.ID, Token: tokenString, Expired: false, Revoked: false}, nil)

	rec, reached := fx.invoke(t, "Bearer "+tokenString)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// A token whose signature still verifies must be refused once its persisted
// record has been flagged, e.g. after a later login rotated it away.
func TestAuthMiddleware_RevokedTokenRejected(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	tokenString, err := fx.tokenSvc.GenerateAccessToken(fx.user, "203.0.113.7", "staffauth-test/1.0")
	require.NoError(t, err)

	fx.tokenRepo.EXPECT().FindByToken(mock.Anything, tokenString).
		Return(&entity.Token{UserID: fx.user.ID, Token: tokenString, Expired: true, Revoked: true}, nil)

	rec, reached := fx.invoke(t, "Bearer "+tokenString)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_REVOKED")
}

func TestAuthMiddleware_UnknownTokenRejected(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	tokenString, err := fx.tokenSvc.GenerateAccessToken(fx.user, "203.0.113.7", "staffauth-test/1.0")
	require.NoError(t, err)

	fx.tokenRepo.EXPECT().FindByToken(mock.Anything, tokenString).
		Return(nil, repository.ErrTokenNotFound)

	rec, reached := fx.invoke(t, "Bearer "+tokenString)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec, reached := fx.invoke(t, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	for _, header := range []string{"Bearer not-a-jwt", "Basic abc", "garbage"} {
		rec, reached := fx.invoke(t, header)

		assert.False(t, reached, "header %q must not reach the handler", header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	fx.tokenRepo.AssertNotCalled(t, "FindByToken")
}
