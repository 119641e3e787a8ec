// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"staffauth/internal/domain/entity"
	domainerrors "staffauth/internal/domain/errors"
	"staffauth/internal/domain/repository"
	"staffauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the repository.TokenRepository interface using GORM.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// Save persists a new token record.
func (repo *tokenRepository) Save(ctx context.Context, token *entity.Token) error {
	tokenM := fromTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("token string already persisted")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByToken retrieves a token record by its opaque token string.
func (repo *tokenRepository) FindByToken(ctx context.Context, tokenString string) (*entity.Token, error) {
	var tokenM model.TokenModel
	if err := repo.db.WithContext(ctx).First(&tokenM, "token = ?", tokenString).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find token")
	}

	return toTokenDomain(&tokenM), nil
}

// FindAllByUser retrieves every token record ever issued for a user, newest first.
func (repo *tokenRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Token, error) {
	var tokenModels []model.TokenModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tokens by user")
	}

	return toTokenDomainSlice(tokenModels), nil
}

// FindAllValidByUser retrieves the token records for a user that are not yet
// both expired and revoked. The OR condition mirrors the validity flagging:
// rotation always sets both flags together, so a record with either flag
// still clear has not been rotated away.
func (repo *tokenRepository) FindAllValidByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Token, error) {
	var tokenModels []model.TokenModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND (expired = ? OR revoked = ?)", userID, false, false).
		Order("created_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list valid tokens by user")
	}

	return toTokenDomainSlice(tokenModels), nil
}

// RevokeAllValid flips every currently-valid token of a user to expired and
// revoked in a single UPDATE, returning the number of affected records.
func (repo *tokenRepository) RevokeAllValid(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.TokenModel{}).
		Where("user_id = ? AND (expired = ? OR revoked = ?)", userID, false, false).
		Updates(map[string]any{"expired": true, "revoked": true})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to revoke tokens")
	}

	return result.RowsAffected, nil
}

// DeleteByUserID removes all token records for a user.
func (repo *tokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.TokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete tokens by user")
	}

	return nil
}

// --- Mapper Functions ---

// toTokenDomain converts a GORM TokenModel to a domain Token entity.
func toTokenDomain(data *model.TokenModel) *entity.Token {
	if data == nil {
		return nil
	}

	return &entity.Token{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		TokenType: entity.TokenType(data.TokenType),
		Expired:   data.Expired,
		Revoked:   data.Revoked,
		CreatedAt: data.CreatedAt,
	}
}

func toTokenDomainSlice(models []model.TokenModel) []*entity.Token {
	tokens := make([]*entity.Token, 0, len(models))
	for i := range models {
		tokens = append(tokens, toTokenDomain(&models[i]))
	}

	return tokens
}

// fromTokenDomain converts a domain Token entity to a GORM TokenModel.
func fromTokenDomain(data *entity.Token) *model.TokenModel {
	if data == nil {
		return nil
	}

	return &model.TokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		TokenType: string(data.TokenType),
		Expired:   data.Expired,
		Revoked:   data.Revoked,
		CreatedAt: data.CreatedAt,
	}
}
