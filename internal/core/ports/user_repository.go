package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// UserRepository is the credential store consumed by the auth service.
// Implementations must keep username and email globally unique and must make
// a single Save either fully visible (user plus role references) or not at all.
type UserRepository interface {
	FindByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)

	FindRoleByName(ctx context.Context, name string) (*domain.Role, error)
	ExistsRoleByName(ctx context.Context, name string) (bool, error)
	SaveRole(ctx context.Context, role *domain.Role) (*domain.Role, error)
}
