package service

import "context"

// Authenticator performs the opaque credential check for a login attempt.
// It touches no tokens: a nil return means the email/password pair is good,
// nothing more. Token issuance is the authentication service's job.
type Authenticator interface {
	// Authenticate verifies the given plaintext password against the stored
	// credentials for email. Returns ErrInvalidCredentials (wrapped) when the
	// pair does not match or the account does not exist.
	Authenticate(ctx context.Context, email, password string) error
}
