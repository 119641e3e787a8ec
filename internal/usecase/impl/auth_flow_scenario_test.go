package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"staffauth/config"
	"staffauth/internal/domain/entity"
	"staffauth/internal/domain/repository"
	"staffauth/internal/domain/service"
	"staffauth/internal/infra/auth"
	"staffauth/internal/infra/matricule"
	"staffauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryStore backs the flow tests below with real state instead of mock
// expectations, so the revoke-then-save sequencing is observable as data.
type memoryStore struct {
	mu     sync.Mutex
	users  map[uuid.UUID]*entity.User
	tokens []*entity.Token
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: make(map[uuid.UUID]*entity.User)}
}

func (s *memoryStore) validTokens(userID uuid.UUID) []*entity.Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	var valid []*entity.Token
	for _, token := range s.tokens {
		if token.UserID == userID && token.Valid() {
			valid = append(valid, token)
		}
	}

	return valid
}

type memoryUserRepo struct{ store *memoryStore }

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.store.users[user.ID] = user

	return nil
}

func (r *memoryUserRepo) Update(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.users[user.ID] = user

	return nil
}

type memoryTokenRepo struct{ store *memoryStore }

func (r *memoryTokenRepo) Save(_ context.Context, token *entity.Token) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	r.store.tokens = append(r.store.tokens, token)

	return nil
}

func (r *memoryTokenRepo) FindByToken(_ context.Context, tokenString string) (*entity.Token, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, token := range r.store.tokens {
		if token.Token == tokenString {
			return token, nil
		}
	}

	return nil, repository.ErrTokenNotFound
}

func (r *memoryTokenRepo) FindAllByUser(_ context.Context, userID uuid.UUID) ([]*entity.Token, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var all []*entity.Token
	for i := len(r.store.tokens) - 1; i >= 0; i-- {
		if r.store.tokens[i].UserID == userID {
			all = append(all, r.store.tokens[i])
		}
	}

	return all, nil
}

func (r *memoryTokenRepo) FindAllValidByUser(_ context.Context, userID uuid.UUID) ([]*entity.Token, error) {
	return r.store.validTokens(userID), nil
}

func (r *memoryTokenRepo) RevokeAllValid(_ context.Context, userID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var revoked int64
	for _, token := range r.store.tokens {
		if token.UserID == userID && token.Valid() {
			token.Expired = true
			token.Revoked = true
			revoked++
		}
	}

	return revoked, nil
}

func (r *memoryTokenRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	kept := r.store.tokens[:0]
	for _, token := range r.store.tokens {
		if token.UserID != userID {
			kept = append(kept, token)
		}
	}
	r.store.tokens = kept

	return nil
}

type memoryTxManager struct{ store *memoryStore }

func (m *memoryTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&memoryRepoFactory{store: m.store})
}

type memoryRepoFactory struct{ store *memoryStore }

func (f *memoryRepoFactory) UserRepo() repository.UserRepository {
	return &memoryUserRepo{store: f.store}
}

func (f *memoryRepoFactory) TokenRepo() repository.TokenRepository {
	return &memoryTokenRepo{store: f.store}
}

type authFlowFixtures struct {
	service  usecase.AuthUsecase
	sessions usecase.SessionUsecase
	store    *memoryStore
	tokenSvc service.TokenService
}

func createAuthFlowFixtures(t *testing.T) authFlowFixtures {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:          bcrypt.MinCost,
			AccessTokenTTL:      15 * time.Minute,
			RefreshTokenTTL:     7 * 24 * time.Hour,
			DefaultLeaveBalance: 20,
			MatriculePrefix:     "STF",
		},
	}
	cfg.SecretKey.Signing = "test-signing-key-do-not-reuse"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	store := newMemoryStore()
	userRepo := &memoryUserRepo{store: store}
	tokenRepo := &memoryTokenRepo{store: store}
	txManager := &memoryTxManager{store: store}
	hasher := auth.NewBcryptHasher(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authService := NewAuthService(AuthServiceParams{
		TxManager:     txManager,
		UserRepo:      userRepo,
		TokenRepo:     tokenRepo,
		TokenService:  tokenSvc,
		Hasher:        hasher,
		Authenticator: auth.NewAuthenticator(userRepo, hasher),
		Matricules:    matricule.NewGenerator(cfg),
		Config:        cfg,
		Logger:        logger,
	})

	sessionService := NewSessionService(SessionServiceParams{
		TxManager: txManager,
		TokenRepo: tokenRepo,
		Logger:    logger,
	})

	return authFlowFixtures{
		service:  authService,
		sessions: sessionService,
		store:    store,
		tokenSvc: tokenSvc,
	}
}

// Walks a full account lifecycle through the real token service and hasher:
// every login and refresh must leave exactly one record authorising requests.
func TestAuthFlow_RegisterAuthenticateRefresh(t *testing.T) {
	fx := createAuthFlowFixtures(t)
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FirstName: "Alice",
		LastName:  "Martin",
		Email:     "alice@x.com",
		Password:  "Password123!",
		Role:      "employee",
	}, testClient)
	require.NoError(t, err)
	require.NotEmpty(t, registered.AccessToken)
	require.NotEmpty(t, registered.RefreshToken)
	assert.Equal(t, int64(900), registered.ExpiresIn)

	user, err := (&memoryUserRepo{store: fx.store}).FindByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	require.Len(t, fx.store.validTokens(user.ID), 1)

	authenticated, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    "alice@x.com",
		Password: "Password123!",
	}, testClient)
	require.NoError(t, err)
	require.NotNil(t, authenticated.User)
	assert.Equal(t, user.ID, authenticated.User.ID)

	// Login rotates: the registration token is flagged, the fresh one stands alone.
	first, err := (&memoryTokenRepo{store: fx.store}).FindByToken(ctx, registered.AccessToken)
	require.NoError(t, err)
	assert.True(t, first.Expired)
	assert.True(t, first.Revoked)

	valid := fx.store.validTokens(user.ID)
	require.Len(t, valid, 1)
	assert.Equal(t, authenticated.AccessToken, valid[0].Token)

	refreshed, err := fx.service.Refresh(ctx, "Bearer "+authenticated.RefreshToken, testClient)
	require.NoError(t, err)
	assert.NotEqual(t, authenticated.AccessToken, refreshed.AccessToken)
	// The refresh token survives the exchange unchanged.
	assert.Equal(t, authenticated.RefreshToken, refreshed.RefreshToken)

	claims, err := fx.tokenSvc.ValidateAccessToken(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice@x.com", claims.Subject)

	second, err := (&memoryTokenRepo{store: fx.store}).FindByToken(ctx, authenticated.AccessToken)
	require.NoError(t, err)
	assert.False(t, second.Valid())

	valid = fx.store.validTokens(user.ID)
	require.Len(t, valid, 1)
	assert.Equal(t, refreshed.AccessToken, valid[0].Token)
}

// Refreshing twice in a row must leave only the latest access token valid,
// with the whole issuance history retained.
func TestAuthFlow_DoubleRefreshKeepsLatestOnly(t *testing.T) {
	fx := createAuthFlowFixtures(t)
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FirstName: "Alice",
		LastName:  "Martin",
		Email:     "alice@x.com",
		Password:  "Password123!",
		Role:      "employee",
	}, testClient)
	require.NoError(t, err)

	user, err := (&memoryUserRepo{store: fx.store}).FindByEmail(ctx, "alice@x.com")
	require.NoError(t, err)

	firstRefresh, err := fx.service.Refresh(ctx, "Bearer "+registered.RefreshToken, testClient)
	require.NoError(t, err)
	secondRefresh, err := fx.service.Refresh(ctx, "Bearer "+registered.RefreshToken, testClient)
	require.NoError(t, err)
	assert.NotEqual(t, firstRefresh.AccessToken, secondRefresh.AccessToken)

	history, err := fx.sessions.ListUserTokens(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, history, 3)

	active, err := fx.sessions.ListActiveUserTokens(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, secondRefresh.AccessToken, active[0].Token)
}

// A rotated-away refresh presentation is fine (the refresh token is never
// revoked), but a forged one must be rejected against the stored user.
func TestAuthFlow_RefreshRejectsForeignToken(t *testing.T) {
	fx := createAuthFlowFixtures(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FirstName: "Alice",
		LastName:  "Martin",
		Email:     "alice@x.com",
		Password:  "Password123!",
		Role:      "employee",
	}, testClient)
	require.NoError(t, err)

	otherCfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	otherCfg.SecretKey.Signing = "a-different-signing-key"
	foreignSvc, err := auth.NewJWTService(otherCfg)
	require.NoError(t, err)

	user, err := (&memoryUserRepo{store: fx.store}).FindByEmail(ctx, "alice@x.com")
	require.NoError(t, err)

	forged, err := foreignSvc.GenerateRefreshToken(user)
	require.NoError(t, err)

	output, err := fx.service.Refresh(ctx, "Bearer "+forged, testClient)

	require.Error(t, err)
	assert.Nil(t, output)
}
