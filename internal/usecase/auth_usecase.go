// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"errors"

	"staffauth/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBearerAbsent is returned by Refresh when the Authorization header is
// missing, does not carry the Bearer scheme, or the token's subject cannot
// be extracted. The HTTP layer maps it to an empty-bodied response,
// preserving the service's historical "no response" contract for malformed
// refresh input.
var ErrBearerAbsent = errors.New("bearer token absent or malformed")

// ClientContext carries the request attributes bound into access tokens.
type ClientContext struct {
	IP        string
	UserAgent string
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	FirstName string     `json:"firstName" validate:"required"`
	LastName  string     `json:"lastName" validate:"required"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=8"`
	Role      string     `json:"role" validate:"required"`
	Avatar    string     `json:"avatar"`
	ManagerID *uuid.UUID `json:"managerId"`
}

// AuthenticateInput defines the data required for a user to log in.
type AuthenticateInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the issued token pair after registration or login.
// The expiry hints are in seconds so clients can schedule refreshes without
// decoding the tokens.
type AuthOutput struct {
	AccessToken      string       `json:"accessToken"`
	RefreshToken     string       `json:"refreshToken"`
	ExpiresIn        int64        `json:"expiresIn"`
	RefreshExpiresIn int64        `json:"refreshExpiresIn"`
	User             *entity.User `json:"user,omitempty"`
}

// RefreshOutput returns the result of a token refresh: a fresh access token
// and the unchanged refresh token.
type RefreshOutput struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// AuthUsecase defines the interface for the authentication flows.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Register creates a new user and issues its first token pair.
	Register(ctx context.Context, input *RegisterInput, client ClientContext) (*AuthOutput, error)

	// Authenticate verifies credentials, revokes all previously valid tokens
	// for the user, and issues a fresh token pair.
	Authenticate(ctx context.Context, input *AuthenticateInput, client ClientContext) (*AuthOutput, error)

	// Refresh exchanges a valid refresh token presented via an
	// "Authorization: Bearer <token>" header value for a new access token.
	// The refresh token itself is never rotated.
	Refresh(ctx context.Context, authorizationHeader string, client ClientContext) (*RefreshOutput, error)
}
