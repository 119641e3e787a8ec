// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"staffauth/config"
	deliverycontext "staffauth/internal/delivery/context"
	"staffauth/internal/domain/entity"
	domainerrors "staffauth/internal/domain/errors"
	"staffauth/internal/domain/repository"
	"staffauth/internal/domain/service"
	"staffauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// authService implements the AuthUsecase interface. It orchestrates the
// token store and token service around the revoke-then-save invariant: a
// successful authentication or refresh leaves the user with exactly one
// valid token record.
type authService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	tokenRepo     repository.TokenRepository
	tokenService  service.TokenService
	hasher        service.PasswordHasher
	authenticator service.Authenticator
	matricules    service.MatriculeGenerator
	leaveBalance  int
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	TokenRepo     repository.TokenRepository
	TokenService  service.TokenService
	Hasher        service.PasswordHasher
	Authenticator service.Authenticator
	Matricules    service.MatriculeGenerator
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	leaveBalance := 0
	if params.Config != nil && params.Config.Auth != nil {
		leaveBalance = params.Config.Auth.DefaultLeaveBalance
	}

	return &authService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		tokenRepo:     params.TokenRepo,
		tokenService:  params.TokenService,
		hasher:        params.Hasher,
		authenticator: params.Authenticator,
		matricules:    params.Matricules,
		leaveBalance:  leaveBalance,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user and issues its first token pair. The new user
// has no prior tokens, so no revocation step is needed.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput, client usecase.ClientContext) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.String("role", input.Role))

	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return nil, domainerrors.ErrInvalidRole.WrapMessage("role " + input.Role)
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: passwordHash,
		Role:         role,
		Matricule:    srv.matricules.Generate(),
		ManagerID:    input.ManagerID,
		Avatar:       input.Avatar,
		LeaveBalance: srv.leaveBalance,
	}

	var accessToken, refreshToken string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		accessToken, err = srv.tokenService.GenerateAccessToken(newUser, client.IP, client.UserAgent)
		if err != nil {
			return errors.Wrap(err, "failed to generate access token")
		}

		refreshToken, err = srv.tokenService.GenerateRefreshToken(newUser)
		if err != nil {
			return errors.Wrap(err, "failed to generate refresh token")
		}

		return srv.saveUserToken(ctx, repoFactory.TokenRepo(), newUser, accessToken)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID), slog.String("matricule", newUser.Matricule))

	return &usecase.AuthOutput{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        int64(srv.tokenService.AccessTokenDuration().Seconds()),
		RefreshExpiresIn: int64(srv.tokenService.RefreshTokenDuration().Seconds()),
	}, nil
}

// Authenticate verifies credentials, then rotates the user's token set:
// every previously valid token is flagged expired and revoked before the
// fresh token is persisted, all inside one transaction.
func (srv *authService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput, client usecase.ClientContext) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting authentication", slog.String("email", input.Email))

	// Credential check first; a failure aborts with zero side effects.
	if err := srv.authenticator.Authenticate(ctx, input.Email, input.Password); err != nil {
		srv.log(ctx).Warn("Authentication failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "authentication failed")
	}

	// The credential check guarantees existence, but a concurrent deletion
	// can still race it. That inconsistency is unrecoverable: fail loudly
	// rather than guess.
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Error("User vanished after credential check", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user after credential check")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user, client.IP, client.UserAgent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokenService.GenerateRefreshToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	if err := srv.rotateUserToken(ctx, user, accessToken); err != nil {
		srv.log(ctx).Error("Failed to rotate tokens", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to rotate tokens during authentication")
	}

	srv.log(ctx).Debug("User authenticated", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        int64(srv.tokenService.AccessTokenDuration().Seconds()),
		RefreshExpiresIn: int64(srv.tokenService.RefreshTokenDuration().Seconds()),
		User:             user,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token bound to
// the current client context. The refresh token is returned unchanged; its
// only invalidation path is the expiry baked into its own claims.
func (srv *authService) Refresh(ctx context.Context, authorizationHeader string, client usecase.ClientContext) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Debug("Attempting token refresh")

	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return nil, usecase.ErrBearerAbsent
	}
	refreshToken := strings.TrimPrefix(authorizationHeader, bearerPrefix)

	subject := srv.tokenService.ExtractSubject(refreshToken)
	if subject == "" {
		return nil, usecase.ErrBearerAbsent
	}

	user, err := srv.userRepo.FindByEmail(ctx, subject)
	if err != nil {
		srv.log(ctx).Error("Refresh subject has no account", slog.String("subject", subject), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user for refresh subject")
	}

	if !srv.tokenService.IsTokenValid(refreshToken, user) {
		srv.log(ctx).Warn("Refresh token rejected", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token rejected")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user, client.IP, client.UserAgent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	if err := srv.rotateUserToken(ctx, user, accessToken); err != nil {
		srv.log(ctx).Error("Failed to rotate tokens", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to rotate tokens during refresh")
	}

	srv.log(ctx).Debug("Access token refreshed", slog.Any("userID", user.ID))

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.AccessTokenDuration().Seconds()),
	}, nil
}

// rotateUserToken runs the revoke-then-save sequence in a single
// transaction: flag every currently-valid token, then persist the new one.
// The shared transaction closes the window in which two concurrent logins
// could both observe the old token set.
func (srv *authService) rotateUserToken(ctx context.Context, user *entity.User, accessToken string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.TokenRepo()

		revoked, err := tokenRepo.RevokeAllValid(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to revoke valid tokens")
		}
		if revoked > 0 {
			srv.log(ctx).Debug("Revoked prior tokens", slog.Any("userID", user.ID), slog.Int64("count", revoked))
		}

		return srv.saveUserToken(ctx, tokenRepo, user, accessToken)
	})
}

// saveUserToken persists the freshly issued access token as a valid record.
func (srv *authService) saveUserToken(ctx context.Context, tokenRepo repository.TokenRepository, user *entity.User, accessToken string) error {
	token := &entity.Token{
		UserID:    user.ID,
		Token:     accessToken,
		TokenType: entity.TokenTypeBearer,
		Expired:   false,
		Revoked:   false,
	}

	return errors.Wrap(tokenRepo.Save(ctx, token), "failed to save token")
}
