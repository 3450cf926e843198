package domain

import "errors"

// Authentication and registration outcomes. ErrBadCredentials deliberately
// covers both "no such user" and "wrong password" so the response shape never
// reveals which field failed.
var (
	ErrBadCredentials     = errors.New("invalid username/email or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrDefaultRoleMissing = errors.New("default user role is not seeded")
)

// Token verification failures. The auth filter never surfaces these to the
// client directly; they all collapse to an unauthenticated request and the
// authorization gate answers for protected routes.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
)

// Authorization outcomes.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")
)

// Resource lookups.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrRoleNotFound     = errors.New("role not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCommentNotFound  = errors.New("comment not found")
)

// ErrCommentMismatch is returned when a comment addressed through a post path
// does not belong to that post.
var ErrCommentMismatch = errors.New("comment does not belong to the post")
