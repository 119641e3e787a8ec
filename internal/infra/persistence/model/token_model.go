package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenModel mirrors the 'tokens' table. Rotation updates the expired and
// revoked flags in place; rows are only deleted by the user-deletion cascade.
type TokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:text;unique;not null"`
	TokenType string    `gorm:"type:varchar(20);not null;default:'bearer'"`
	Expired   bool      `gorm:"not null;default:false"`
	Revoked   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TokenModel) TableName() string {
	return "tokens"
}
