package impl

import (
	"context"
	"log/slog"

	deliverycontext "staffauth/internal/delivery/context"
	"staffauth/internal/domain/entity"
	"staffauth/internal/domain/repository"
	"staffauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface over the token store.
type sessionService struct {
	txManager repository.TransactionManager
	tokenRepo repository.TokenRepository
	logger    *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TokenRepo repository.TokenRepository
	Logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager: params.TxManager,
		tokenRepo: params.TokenRepo,
		logger:    params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUserTokens returns the full issuance history for a user, newest first.
func (srv *sessionService) ListUserTokens(ctx context.Context, userID uuid.UUID) ([]*entity.Token, error) {
	tokens, err := srv.tokenRepo.FindAllByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list user tokens", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list user tokens")
	}

	return tokens, nil
}

// ListActiveUserTokens returns only the records still carrying clear flags.
func (srv *sessionService) ListActiveUserTokens(ctx context.Context, userID uuid.UUID) ([]*entity.Token, error) {
	tokens, err := srv.tokenRepo.FindAllValidByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list active user tokens", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list active user tokens")
	}

	return tokens, nil
}

// RevokeAllSessions force-revokes every currently-valid token for a user.
// Reuses the same rotation primitive as login, minus the fresh issuance.
func (srv *sessionService) RevokeAllSessions(ctx context.Context, userID uuid.UUID) (int64, error) {
	var revoked int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		revoked, err = repoFactory.TokenRepo().RevokeAllValid(ctx, userID)

		return errors.Wrap(err, "failed to revoke valid tokens")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to revoke sessions", slog.Any("userID", userID), slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to revoke sessions")
	}

	srv.log(ctx).Info("Revoked all sessions", slog.Any("userID", userID), slog.Int64("count", revoked))

	return revoked, nil
}

// PurgeUserTokens deletes every token record for a user. Unlike revocation
// this removes history, so it is reserved for the account-deletion cascade.
func (srv *sessionService) PurgeUserTokens(ctx context.Context, userID uuid.UUID) error {
	if err := srv.tokenRepo.DeleteByUserID(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to purge user tokens", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to purge user tokens")
	}

	srv.log(ctx).Info("Purged user tokens", slog.Any("userID", userID))

	return nil
}
