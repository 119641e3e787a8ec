package middleware

import (
	"strings"

	deliverycontext "staffauth/internal/delivery/context"
	"staffauth/internal/delivery/http/response"
	"staffauth/internal/domain/repository"
	"staffauth/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	tokenRepo repository.TokenRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, tokenRepo repository.TokenRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, tokenRepo: tokenRepo}
}

// Authenticate validates the JWT access token and stores the caller's
// identity on the context for handlers below. The signature check alone is
// not enough: a rotated-away token stays cryptographically valid until its
// expiry, so the persisted record's flags are consulted as well.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		record, err := m.tokenRepo.FindByToken(c.Request().Context(), tokenString)
		if err != nil || !record.Valid() {
			return response.Unauthorized(c, "TOKEN_REVOKED", "Token has been revoked")
		}

		deliverycontext.SetUserID(c, claims.UserID)
		c.Set("subject", claims.Subject)

		return next(c)
	}
}
