// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"staffauth/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTokenNotFound is returned when a token record is not found.
var ErrTokenNotFound = errors.New("token not found")

// TokenRepository defines the operations for the persisted access-token store.
// Records are flagged rather than deleted on rotation, so the store doubles
// as the issuance history for an account.
type TokenRepository interface {
	// Save persists a new token record.
	Save(ctx context.Context, token *entity.Token) error

	// FindByToken retrieves a token record by its opaque token string.
	FindByToken(ctx context.Context, tokenString string) (*entity.Token, error)

	// FindAllByUser retrieves every token record ever issued for a user,
	// valid or not, newest first.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Token, error)

	// FindAllValidByUser retrieves the token records for a user that are not
	// yet both expired and revoked.
	FindAllValidByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Token, error)

	// RevokeAllValid flips every currently-valid token of a user to
	// expired and revoked in a single statement, returning how many records
	// were affected. Runs inside the caller's transaction when obtained
	// through a RepositoryFactory.
	RevokeAllValid(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteByUserID removes all token records for a user. Only used by the
	// account-deletion cascade; rotation never deletes.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
