package ports

import (
	"context"
	"time"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// PasswordHasher is the one-way salted hashing primitive. Hashing the same
// plaintext twice yields different digests; Verify returns false (never an
// error) for malformed digests so the login path stays uniform.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// TokenClaims is the decoded payload of a verified bearer token.
type TokenClaims struct {
	Subject   string
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, time-bound bearer tokens.
// Tokens are stateless: a token for a since-deleted user stays valid until
// its natural expiry.
type TokenService interface {
	Issue(subject string, roles []string, issuedAt time.Time) (string, error)
	// Verify fails with domain.ErrTokenMalformed, domain.ErrTokenSignatureInvalid
	// or domain.ErrTokenExpired.
	Verify(token string) (*TokenClaims, error)
}

// RegisterInput carries an untrusted registration request.
type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

// AuthService is the public surface of the authentication core.
type AuthService interface {
	// Login fails with domain.ErrBadCredentials for both unknown identifiers
	// and wrong passwords.
	Login(ctx context.Context, usernameOrEmail, password string) (string, error)
	// Register fails with domain.ErrUsernameTaken before domain.ErrEmailTaken
	// when both collide.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
}
