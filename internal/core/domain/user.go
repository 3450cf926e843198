package domain

import "time"

const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// DefaultRoles is the role set seeded at process start.
var DefaultRoles = []string{RoleAdmin, RoleUser}

// User models a registered account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role is a named permission tag referenced by users.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Principal is the request-scoped identity derived from a verified token.
// It lives for one request and is never persisted.
type Principal struct {
	Username string
	Roles    []string
}

// HasRole reports whether the principal holds the named role.
func (p Principal) HasRole(name string) bool {
	for _, r := range p.Roles {
		if r == name {
			return true
		}
	}
	return false
}
