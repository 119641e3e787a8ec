// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"

	domainerrors "staffauth/internal/domain/errors"
	"staffauth/internal/domain/repository"
	"staffauth/internal/domain/service"

	"github.com/pkg/errors"
)

// credentialAuthenticator checks an email/password pair against the stored
// bcrypt hash. It issues no tokens and writes no state.
type credentialAuthenticator struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
}

// NewAuthenticator is the constructor for credentialAuthenticator.
func NewAuthenticator(userRepo repository.UserRepository, hasher service.PasswordHasher) service.Authenticator {
	return &credentialAuthenticator{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// Authenticate verifies the plaintext password against the stored hash for
// email. An unknown account and a wrong password both surface as
// ErrInvalidCredentials so callers cannot probe for registered addresses.
func (a *credentialAuthenticator) Authenticate(ctx context.Context, email, password string) error {
	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown account")
		}

		return errors.Wrap(err, "failed to load credentials")
	}

	if !a.hasher.Check(password, user.PasswordHash) {
		return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return nil
}
