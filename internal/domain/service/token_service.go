package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the principal decoded from a verified token. It exists only for
// the duration of one request; the stored user record remains the source of
// truth for the role.
type Claims struct {
	Email string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed tokens.
// This abstracts the details of token creation from the delivery layer.
type TokenService interface {
	// Generate issues a signed, time-limited token for the given email.
	// No check is made that the email belongs to an existing user.
	Generate(email string) (string, error)

	// Validate verifies the signature and expiry of a token string and
	// returns the decoded claims.
	Validate(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
