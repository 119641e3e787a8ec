package service

import (
	"time"

	"staffauth/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token type claim values.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims carried by issued JWTs. Access tokens
// additionally embed the requesting client's IP and user-agent as
// contextual binding claims; refresh tokens bind the subject only so a
// session survives network and device changes.
type Claims struct {
	UserID    uuid.UUID `json:"uid"`
	ClientIP  string    `json:"ip,omitempty"`
	UserAgent string    `json:"ua,omitempty"`
	TokenType string    `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting and verifying signed tokens.
// The signing key is process-wide, injected at construction.
type TokenService interface {
	// GenerateAccessToken mints a short-lived token whose subject is the
	// user's email and whose claims bind the requesting client's IP address
	// and user-agent string.
	GenerateAccessToken(user *entity.User, clientIP, userAgent string) (string, error)

	// GenerateRefreshToken mints a long-lived token binding the subject only.
	GenerateRefreshToken(user *entity.User) (string, error)

	// ExtractSubject decodes the subject claim without verifying the
	// signature. Returns "" for a malformed token; never errors.
	ExtractSubject(tokenString string) string

	// IsTokenValid verifies signature and expiry and checks that the decoded
	// subject matches the user's email. Returns false, never an error, on any
	// mismatch, malformed token, or expiry.
	IsTokenValid(tokenString string, user *entity.User) bool

	// ValidateAccessToken fully verifies an access token and returns its
	// claims. Used by the HTTP authentication middleware.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
