package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// CategoryInput carries the writable fields of a category.
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindAll(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	Create(ctx context.Context, input CategoryInput) (*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetAll(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, id string, input CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
