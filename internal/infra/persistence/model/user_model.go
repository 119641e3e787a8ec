package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v4().
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email        string     `gorm:"type:varchar(255);unique;not null"`
	FirstName    string     `gorm:"type:varchar(100);not null"`
	LastName     string     `gorm:"type:varchar(100);not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(20);not null"`
	Matricule    string     `gorm:"type:varchar(20);unique;not null"`
	ManagerID    *uuid.UUID `gorm:"type:uuid;index"`
	Avatar       string     `gorm:"type:text"`
	LeaveBalance int        `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Tokens []TokenModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
