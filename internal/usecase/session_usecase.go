// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"staffauth/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for token-history inspection and
// administrative revocation.
type SessionUsecase interface {
	// ListUserTokens returns every token record for a user, valid or
	// rotated-away, newest first.
	ListUserTokens(ctx context.Context, userID uuid.UUID) ([]*entity.Token, error)

	// ListActiveUserTokens returns only the records that still authorise
	// requests, i.e. neither expired nor revoked.
	ListActiveUserTokens(ctx context.Context, userID uuid.UUID) ([]*entity.Token, error)

	// RevokeAllSessions force-revokes every currently-valid token for a
	// user and returns how many were revoked.
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) (int64, error)

	// PurgeUserTokens deletes all token records for a user. Part of the
	// account-deletion cascade.
	PurgeUserTokens(ctx context.Context, userID uuid.UUID) error
}
