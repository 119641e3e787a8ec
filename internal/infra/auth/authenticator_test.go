package auth

import (
	"context"
	"testing"

	"staffauth/internal/domain/entity"
	domainerrors "staffauth/internal/domain/errors"
	"staffauth/internal/domain/repository"
	mockRepo "staffauth/internal/mocks/repository"
	mockSvc "staffauth/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAuthenticator_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	authenticator := NewAuthenticator(userRepo, hasher)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "stored-hash"}

	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	hasher.EXPECT().Check("Password123!", "stored-hash").Return(true)

	require.NoError(t, authenticator.Authenticate(ctx, user.Email, "Password123!"))
}

func TestAuthenticator_WrongPassword(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	authenticator := NewAuthenticator(userRepo, hasher)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "stored-hash"}

	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	err := authenticator.Authenticate(ctx, user.Email, "wrong")

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthenticator_UnknownAccount(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	authenticator := NewAuthenticator(userRepo, hasher)

	ctx := context.Background()

	userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := authenticator.Authenticate(ctx, "ghost@example.com", "Password123!")

	// An unknown account is indistinguishable from a wrong password.
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthenticator_RepositoryFailure(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	authenticator := NewAuthenticator(userRepo, hasher)

	ctx := context.Background()

	userRepo.EXPECT().
		FindByEmail(ctx, "ada@example.com").
		Return(nil, errors.New("connection reset"))

	err := authenticator.Authenticate(ctx, "ada@example.com", "Password123!")

	require.Error(t, err)
	require.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
