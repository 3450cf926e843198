package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// PostInput carries the writable fields of a post.
type PostInput struct {
	Title       string
	Description string
	Content     string
	CategoryID  string
}

// PostPage is the paged listing result, mirroring the public response shape.
type PostPage struct {
	Content       []*domain.Post
	PageNo        int
	PageSize      int
	TotalElements int64
	TotalPages    int
	Last          bool
}

// PostService defines use-case operations for posts.
type PostService interface {
	Create(ctx context.Context, input PostInput) (*domain.Post, error)
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context, filter ListPostsFilter) (*PostPage, error)
	GetByCategory(ctx context.Context, categoryID string) ([]*domain.Post, error)
	Search(ctx context.Context, keyword string) ([]*domain.Post, error)
	Update(ctx context.Context, id string, input PostInput) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
