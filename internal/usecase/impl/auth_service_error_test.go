package impl

import (
	"context"
	"testing"

	"staffauth/internal/domain/entity"
	domainerrors "staffauth/internal/domain/errors"
	"staffauth/internal/domain/repository"
	mockRepo "staffauth/internal/mocks/repository"
	"staffauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register_UnknownRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "Password123!",
		Role:      "intern",
	}

	output, err := fx.service.Register(ctx, input, testClient)

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrInvalidRole)
	assert.Nil(t, output)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "Password123!",
		Role:      "employee",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt exploded"))

	output, err := fx.service.Register(ctx, input, testClient)

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestAuthService_Register_TransactionFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "Password123!",
		Role:      "employee",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.matricules.EXPECT().Generate().Return("STF-1A2B3C4D")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrUserAlreadyExists)

	output, err := fx.service.Register(ctx, input, testClient)

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, output)
}

func TestAuthService_Authenticate_InvalidCredentials(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.AuthenticateInput{Email: "ada@example.com", Password: "wrong"}

	// A failed credential check aborts before any token is touched.
	fx.authenticator.EXPECT().
		Authenticate(ctx, input.Email, input.Password).
		Return(domainerrors.ErrInvalidCredentials)

	output, err := fx.service.Authenticate(ctx, input, testClient)

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
	fx.tokenRepo.AssertNotCalled(t, "RevokeAllValid")
	fx.tokenRepo.AssertNotCalled(t, "Save")
}

func TestAuthService_Authenticate_UserVanishedAfterCheck(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.AuthenticateInput{Email: "ada@example.com", Password: "Password123!"}

	fx.authenticator.EXPECT().Authenticate(ctx, input.Email, input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Authenticate(ctx, input, testClient)

	require.Error(t, err)
	require.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.Nil(t, output)
}

func TestAuthService_Refresh_RejectedToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com"}

	fx.tokenService.EXPECT().ExtractSubject("stale-token").Return(user.Email)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tokenService.EXPECT().IsTokenValid("stale-token", user).Return(false)

	output, err := fx.service.Refresh(ctx, "Bearer stale-token", testClient)

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
	fx.tokenRepo.AssertNotCalled(t, "Save")
}

func TestAuthService_Refresh_UnknownSubject(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().ExtractSubject("orphan-token").Return("gone@example.com")
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "gone@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Refresh(ctx, "Bearer orphan-token", testClient)

	require.Error(t, err)
	require.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.Nil(t, output)
}

func TestAuthService_Refresh_RotationFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "ada@example.com"}

	fx.tokenService.EXPECT().ExtractSubject("old-refresh-token").Return(user.Email)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tokenService.EXPECT().IsTokenValid("old-refresh-token", user).Return(true)
	fx.tokenService.EXPECT().
		GenerateAccessToken(user, testClient.IP, testClient.UserAgent).
		Return("new-access-token", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)
			mockTokenRepo.EXPECT().
				RevokeAllValid(ctx, userID).
				Return(int64(0), errors.New("connection reset"))

			_ = fn(mockFactory)
		}).
		Return(errors.New("connection reset"))

	output, err := fx.service.Refresh(ctx, "Bearer old-refresh-token", testClient)

	require.Error(t, err)
	assert.Nil(t, output)
}
