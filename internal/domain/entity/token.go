// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenType identifies the scheme a persisted token is issued under.
type TokenType string

// TokenTypeBearer is the only token type currently issued.
const TokenTypeBearer TokenType = "bearer"

// Token is a persisted access-token record. Rotation never deletes records;
// superseded tokens are flagged expired and revoked so the issuance history
// of an account stays auditable.
type Token struct {
	ID        uuid.UUID // The unique ID for this token record.
	UserID    uuid.UUID // Links the token to the User it was issued for.
	Token     string    // The opaque signed token string as handed to the client.
	TokenType TokenType // The token scheme. Always "bearer" today.
	Expired   bool      // Set when the token is superseded by a newer issuance.
	Revoked   bool      // Set together with Expired; kept separate to mirror the stored columns.
	CreatedAt time.Time // Timestamp of when the token was issued.
}

// Valid reports whether the token record still authorises requests.
// A token is valid iff it is neither expired nor revoked.
func (t *Token) Valid() bool {
	return !t.Expired && !t.Revoked
}
