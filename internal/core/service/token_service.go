package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// tokenClaims is the wire shape of the JWT payload: subject, roles, iat, exp,
// all covered by the HS256 signature.
type tokenClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// JWTTokenService issues and verifies HS256-signed bearer tokens with a fixed
// validity window. The secret and the window are set once at construction and
// never mutated, so concurrent use needs no locking.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token binding the subject and its roles to an expiry of
// issuedAt plus the configured validity window.
func (s *JWTTokenService) Issue(subject string, roles []string, issuedAt time.Time) (string, error) {
	claims := tokenClaims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses the token, checks the signature and the expiry, and returns
// the decoded claims. Only signature and expiry are checked: a token for a
// since-deleted user stays valid until it expires.
func (s *JWTTokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignatureInvalid
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenSignatureInvalid
	}

	out := &ports.TokenClaims{
		Subject: claims.Subject,
		Roles:   claims.Roles,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
