// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"staffauth/config"
	"staffauth/internal/domain/entity"
	"staffauth/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using
// HS256-signed JWTs. The signing key is held for the process lifetime and is
// never hot-reloaded.
type jwtService struct {
	signingKey []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService is the constructor for jwtService. An empty signing key is a
// fatal configuration error and fails construction.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Signing == "" {
		return nil, errors.New("jwt signing key must be provided")
	}

	return &jwtService{
		signingKey: []byte(cfg.SecretKey.Signing),
		accessTTL:  cfg.Auth.AccessTokenTTL,
		refreshTTL: cfg.Auth.RefreshTokenTTL,
	}, nil
}

// GenerateAccessToken mints a short-lived token for the user. The requesting
// client's IP address and user-agent string are embedded as contextual
// binding claims.
func (s *jwtService) GenerateAccessToken(user *entity.User, clientIP, userAgent string) (string, error) {
	now := time.Now()
	claims := service.Claims{
		UserID:    user.ID,
		ClientIP:  clientIP,
		UserAgent: userAgent,
		TokenType: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			// The store is keyed by token string, so same-second issuances
			// must still produce distinct tokens.
			ID:        uuid.NewString(),
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// GenerateRefreshToken mints a long-lived token binding the subject only, so
// a session can be refreshed across network and device changes.
func (s *jwtService) GenerateRefreshToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := service.Claims{
		UserID:    user.ID,
		TokenType: service.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign refresh token")
	}

	return signed, nil
}

// ExtractSubject decodes the subject claim without verifying the signature,
// so the subject of an already-expired token can still be read. Returns ""
// for anything that does not parse as a JWT.
func (s *jwtService) ExtractSubject(tokenString string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return ""
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return ""
	}

	return subject
}

// IsTokenValid verifies signature and expiry and checks that the decoded
// subject matches the user's email. Any failure yields false, never an error.
func (s *jwtService) IsTokenValid(tokenString string, user *entity.User) bool {
	claims, err := s.parse(tokenString)
	if err != nil {
		return false
	}

	return claims.Subject == user.Email
}

// ValidateAccessToken fully verifies an access token and returns its claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != service.TokenTypeAccess {
		return nil, errors.Errorf("unexpected token type %q", claims.TokenType)
	}

	return claims, nil
}

// AccessTokenDuration returns the configured access token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// RefreshTokenDuration returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// parse verifies the signature and registered claims (including expiry) and
// returns the decoded custom claims.
func (s *jwtService) parse(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.signingKey, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}
