// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity. Its email address doubles as the login
// key and as the subject claim of every token issued for it.
type User struct {
	ID           uuid.UUID  // The unique identifier for the user.
	Email        string     // Unique login key; also the token subject.
	FirstName    string     // The user's given name.
	LastName     string     // The user's family name.
	PasswordHash string     // The bcrypt-hashed password. Never the plaintext.
	Role         Role       // The user's role within the organisation.
	Matricule    string     // Generated unique staff code, assigned at registration.
	ManagerID    *uuid.UUID // Optional reference to the user's manager. Nil for top-level staff.
	Avatar       string     // Avatar image URL. Purely cosmetic.
	LeaveBalance int        // Remaining leave days. Seeded at registration.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this account.
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
